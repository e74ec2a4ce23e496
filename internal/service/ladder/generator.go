package ladder

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

type Mode string

const (
	ModeQuantity      Mode = "quantity"
	ModeQuoteQuantity Mode = "quote_quantity"
)

// Cursor 按 index 顺序逐档产出 Rung，只能遍历一次
type Cursor struct {
	spec Spec
	mode Mode
	gap  decimal.Decimal
	// quantity 根据该档价格计算数量
	quantity func(price decimal.Decimal) decimal.Decimal

	index int
	price decimal.Decimal
}

func newCursor(spec Spec, mode Mode, quantity func(price decimal.Decimal) decimal.Decimal) *Cursor {
	return &Cursor{
		spec:     spec,
		mode:     mode,
		gap:      spec.SignedGap(),
		quantity: quantity,
		price:    spec.StartPrice,
	}
}

// ByQuantity 固定基础币总数量，每档数量 = Quantity / Orders，不做精度处理
func ByQuantity(spec Spec) (*Cursor, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if !spec.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: quantity is required", ErrInvalidLadder)
	}
	perRung := spec.Quantity.Div(decimal.NewFromInt(int64(spec.Orders)))
	return newCursor(spec, ModeQuantity, func(decimal.Decimal) decimal.Decimal {
		return perRung
	}), nil
}

// ByQuoteBudget 固定计价币总预算，每档数量 = floor(预算 / Orders / 该档价格, precision)
// 精度只查询一次
func ByQuoteBudget(ctx context.Context, spec Spec, resolver PrecisionResolver) (*Cursor, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if !spec.QuoteQuantity.IsPositive() {
		return nil, fmt.Errorf("%w: quote quantity is required", ErrInvalidLadder)
	}
	precision, err := resolver.Resolve(ctx, spec.TradingPair)
	if err != nil {
		return nil, fmt.Errorf("resolve precision: %w", err)
	}
	orders := decimal.NewFromInt(int64(spec.Orders))
	return newCursor(spec, ModeQuoteQuantity, func(price decimal.Decimal) decimal.Decimal {
		return quoteQuantity(spec.QuoteQuantity, orders, price, precision)
	}), nil
}

// quoteQuantity floor(budget / (orders * price)) 到 precision 位
// QuoRem 截断商，避免先做有限精度除法再取整时被进位
func quoteQuantity(budget, orders, price decimal.Decimal, precision int32) decimal.Decimal {
	q, _ := budget.QuoRem(orders.Mul(price), precision)
	return q
}

// nextPrice 下一档价格
func nextPrice(price, signedGap decimal.Decimal) decimal.Decimal {
	return price.Sub(signedGap)
}

// Next 返回下一档，遍历结束返回 false
func (c *Cursor) Next() (Rung, bool) {
	if c.index >= c.spec.Orders {
		return Rung{}, false
	}
	r := Rung{
		Index:    c.index,
		Price:    c.price,
		Quantity: c.quantity(c.price),
	}
	c.index++
	c.price = nextPrice(c.price, c.gap)
	return r, true
}

func (c *Cursor) Spec() Spec {
	return c.spec
}

func (c *Cursor) Mode() Mode {
	return c.mode
}

// Gap 带符号的价格间隔
func (c *Cursor) Gap() decimal.Decimal {
	return c.gap
}

// QuantityPerRung 固定数量模式下每档数量
func (c *Cursor) QuantityPerRung() (decimal.Decimal, bool) {
	if c.mode != ModeQuantity {
		return decimal.Zero, false
	}
	return c.quantity(c.spec.StartPrice), true
}

// QuotePerRung 固定预算模式下每档预算
func (c *Cursor) QuotePerRung() (decimal.Decimal, bool) {
	if c.mode != ModeQuoteQuantity {
		return decimal.Zero, false
	}
	return c.spec.QuoteQuantity.Div(decimal.NewFromInt(int64(c.spec.Orders))), true
}

// Collect 取出剩余全部 Rung
func Collect(c *Cursor) []Rung {
	rungs := make([]Rung, 0, c.spec.Orders-c.index)
	for r, ok := c.Next(); ok; r, ok = c.Next() {
		rungs = append(rungs, r)
	}
	return rungs
}
