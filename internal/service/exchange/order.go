package exchange

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"
)

// https://developers.binance.com/docs/binance-spot-api-docs/rest-api/trading-endpoints

type OrderId string

func (id OrderId) IsZero() bool {
	return id == ""
}
func (id OrderId) ToString() string {
	return string(id)
}
func (id OrderId) ToInt64() int64 {
	orderId, err := strconv.ParseInt(id.ToString(), 10, 64)
	if err != nil {
		return int64(0)
	}
	return orderId
}

func OrderIdFromInt64(id int64) OrderId {
	return OrderId(strconv.FormatInt(id, 10))
}

type OrderService interface {
	// CreateLimitOrder 下 GTC 限价单
	CreateLimitOrder(ctx context.Context, req CreateLimitOrderReq) (OrderId, error)
	GetOpenOrders(ctx context.Context, symbol string) ([]OpenOrder, error)
	CancelOrder(ctx context.Context, req CancelOrderReq) error
}

type CreateLimitOrderReq struct {
	TradingPair TradingPair
	Side        Side
	Price       decimal.Decimal
	Quantity    decimal.Decimal
}

type CancelOrderReq struct {
	Id     OrderId
	Symbol string
}

// OpenOrder 未成交挂单
type OpenOrder struct {
	Id       OrderId
	Symbol   string
	Side     Side
	Price    decimal.Decimal
	Quantity decimal.Decimal // 原始下单数量
}
