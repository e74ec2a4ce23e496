package exchange

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrSymbolNotFound 交易所不存在该交易对
	ErrSymbolNotFound = errors.New("symbol not found")
	// ErrLotSizeNotFound 交易对缺少 LOT_SIZE 过滤器
	ErrLotSizeNotFound = errors.New("lot size filter not found")
)

// Side 订单方向
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

func (s Side) IsValid() bool {
	return s == SideBuy || s == SideSell
}

func (s Side) ToString() string {
	return string(s)
}

func ParseSide(s string) (Side, error) {
	side := Side(strings.ToLower(s))
	if !side.IsValid() {
		return "", fmt.Errorf("invalid side %q, want buy or sell", s)
	}
	return side, nil
}

// LotSizeRule 交易对数量步进规则
type LotSizeRule struct {
	MinQuantity decimal.Decimal
	MaxQuantity decimal.Decimal
	StepSize    decimal.Decimal
}

// SymbolInfo 交易对规则及资产信息
type SymbolInfo struct {
	TradingPair TradingPair
	LotSize     *LotSizeRule // nil 表示交易所未返回 LOT_SIZE
}
