package ladder

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ryan-shaw/binance-order-bot/internal/service/exchange"
	"github.com/shopspring/decimal"
)

// Order 待提交的一档限价单
type Order struct {
	TradingPair exchange.TradingPair
	Side        exchange.Side
	Rung        Rung
}

// Submitter 负责把单档订单发送到交易所
type Submitter interface {
	Submit(ctx context.Context, order Order) (exchange.OrderId, error)
}

var _ Submitter = DryRunSubmitter{}

// DryRunSubmitter 不发送订单
type DryRunSubmitter struct{}

func (DryRunSubmitter) Submit(context.Context, Order) (exchange.OrderId, error) {
	return "", nil
}

var _ Submitter = (*ExchangeSubmitter)(nil)

type ExchangeSubmitter struct {
	orderSvc exchange.OrderService
}

func NewExchangeSubmitter(orderSvc exchange.OrderService) *ExchangeSubmitter {
	return &ExchangeSubmitter{orderSvc: orderSvc}
}

func (s *ExchangeSubmitter) Submit(ctx context.Context, order Order) (exchange.OrderId, error) {
	return s.orderSvc.CreateLimitOrder(ctx, exchange.CreateLimitOrderReq{
		TradingPair: order.TradingPair,
		Side:        order.Side,
		Price:       order.Rung.Price,
		Quantity:    order.Rung.Quantity,
	})
}

// RungError 某一档提交失败，之前的档位已下单且不会回滚
type RungError struct {
	Rung Rung
	Err  error
}

func (e *RungError) Error() string {
	return fmt.Sprintf("rung %d (%s @ %s): %v", e.Rung.Index, e.Rung.Quantity, e.Rung.Price, e.Err)
}

func (e *RungError) Unwrap() error {
	return e.Err
}

type Placement struct {
	Rung    Rung
	OrderId exchange.OrderId // dry run 时为空
}

// Report 已处理档位汇总
type Report struct {
	Placed   []Placement
	Quantity decimal.Decimal
	Cost     decimal.Decimal
}

// Placer 逐档打印并提交
type Placer struct {
	out       io.Writer
	submitter Submitter
}

func NewPlacer(out io.Writer, submitter Submitter) *Placer {
	if submitter == nil {
		submitter = DryRunSubmitter{}
	}
	return &Placer{
		out:       out,
		submitter: submitter,
	}
}

// Place 按顺序处理 cursor 中的每一档，遇到第一个失败即停止
func (p *Placer) Place(ctx context.Context, cursor *Cursor) (Report, error) {
	spec := cursor.Spec()
	report := Report{
		Quantity: decimal.Zero,
		Cost:     decimal.Zero,
	}

	for rung, ok := cursor.Next(); ok; rung, ok = cursor.Next() {
		if err := ctx.Err(); err != nil {
			return report, &RungError{Rung: rung, Err: err}
		}

		cost := rung.Cost()
		fmt.Fprintf(p.out, "%s - %s %s @ %s (%s)\n",
			spec.TradingPair.ToString(), spec.Side, rung.Quantity, rung.Price, cost)

		orderId, err := p.submitter.Submit(ctx, Order{
			TradingPair: spec.TradingPair,
			Side:        spec.Side,
			Rung:        rung,
		})
		if err != nil {
			slog.Error("submit rung failed", "symbol", spec.TradingPair.ToString(), "side", spec.Side,
				"index", rung.Index, "price", rung.Price.String(), "quantity", rung.Quantity.String(), "error", err)
			return report, &RungError{Rung: rung, Err: err}
		}
		if !orderId.IsZero() {
			slog.Info("order placed", "symbol", spec.TradingPair.ToString(), "side", spec.Side,
				"index", rung.Index, "price", rung.Price.String(), "quantity", rung.Quantity.String(), "order_id", orderId)
		}

		report.Placed = append(report.Placed, Placement{Rung: rung, OrderId: orderId})
		report.Quantity = report.Quantity.Add(rung.Quantity)
		report.Cost = report.Cost.Add(cost)
	}
	return report, nil
}
