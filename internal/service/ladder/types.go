package ladder

import (
	"errors"
	"fmt"

	"github.com/ryan-shaw/binance-order-bot/internal/service/exchange"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidLadder 阶梯参数不合法
	ErrInvalidLadder = errors.New("invalid ladder")
	// ErrInvalidStepSize stepSize <= 0，无法计算精度
	ErrInvalidStepSize = errors.New("invalid step size")
)

const (
	DefaultPercent = 1
	DefaultOrders  = 5
)

// Spec 阶梯挂单参数，Quantity 与 QuoteQuantity 二选一
type Spec struct {
	Side        exchange.Side
	TradingPair exchange.TradingPair
	StartPrice  decimal.Decimal
	// Percent 相邻两档的价格间隔，占起始价的百分比
	Percent decimal.Decimal
	Orders  int

	// Quantity 基础币总数量，平均分配到每一档
	Quantity decimal.Decimal
	// QuoteQuantity 计价币总预算，平均分配到每一档
	QuoteQuantity decimal.Decimal
}

// Gap 相邻两档价格差（无符号）
func (s Spec) Gap() decimal.Decimal {
	return s.StartPrice.Mul(s.Percent).Shift(-2)
}

// SignedGap 每档价格减去的值，卖单为负即价格逐档升高
func (s Spec) SignedGap() decimal.Decimal {
	if s.Side == exchange.SideSell {
		return s.Gap().Neg()
	}
	return s.Gap()
}

// LastPrice 最后一档价格
func (s Spec) LastPrice() decimal.Decimal {
	return s.StartPrice.Sub(s.SignedGap().Mul(decimal.NewFromInt(int64(s.Orders - 1))))
}

func (s Spec) Validate() error {
	if !s.Side.IsValid() {
		return fmt.Errorf("%w: side %q", ErrInvalidLadder, s.Side)
	}
	if s.TradingPair.IsZero() {
		return fmt.Errorf("%w: empty trading pair", ErrInvalidLadder)
	}
	if !s.StartPrice.IsPositive() {
		return fmt.Errorf("%w: start price must be > 0, got %s", ErrInvalidLadder, s.StartPrice)
	}
	if !s.Percent.IsPositive() {
		return fmt.Errorf("%w: ladder percent must be > 0, got %s", ErrInvalidLadder, s.Percent)
	}
	if s.Orders < 1 {
		return fmt.Errorf("%w: ladder orders must be >= 1, got %d", ErrInvalidLadder, s.Orders)
	}
	if s.Quantity.IsNegative() || s.QuoteQuantity.IsNegative() {
		return fmt.Errorf("%w: quantity must be > 0", ErrInvalidLadder)
	}
	if s.Quantity.IsPositive() == s.QuoteQuantity.IsPositive() {
		return fmt.Errorf("%w: exactly one of quantity and quote quantity is required", ErrInvalidLadder)
	}
	if last := s.LastPrice(); !last.IsPositive() {
		return fmt.Errorf("%w: rung %d price %s is not positive", ErrInvalidLadder, s.Orders-1, last)
	}
	return nil
}

// Rung 阶梯中的一档
type Rung struct {
	Index    int
	Price    decimal.Decimal
	Quantity decimal.Decimal
}

// Cost 该档占用的计价币
func (r Rung) Cost() decimal.Decimal {
	return r.Price.Mul(r.Quantity)
}
