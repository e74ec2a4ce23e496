package binance

import (
	"errors"

	"github.com/adshao/go-binance/v2"
	"github.com/adshao/go-binance/v2/common"
	"github.com/ryan-shaw/binance-order-bot/internal/service/exchange"
	"github.com/shopspring/decimal"
)

// 币安 Invalid symbol 错误码
const codeInvalidSymbol = -1121

func binanceSide(side exchange.Side) binance.SideType {
	switch side {
	case exchange.SideBuy:
		return binance.SideTypeBuy
	case exchange.SideSell:
		return binance.SideTypeSell
	default:
		return ""
	}
}

func fromBinanceSide(side binance.SideType) exchange.Side {
	switch side {
	case binance.SideTypeBuy:
		return exchange.SideBuy
	case binance.SideTypeSell:
		return exchange.SideSell
	default:
		return exchange.Side(side)
	}
}

func isInvalidSymbol(err error) bool {
	var apiErr *common.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == codeInvalidSymbol
	}
	return false
}

// parseDecimal 币安返回的数值字段都是字符串，空串视为 0
func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
