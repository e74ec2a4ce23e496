package binance

import (
	"context"
	"fmt"

	"github.com/adshao/go-binance/v2"
	"github.com/ryan-shaw/binance-order-bot/internal/service/exchange"
)

var _ exchange.OrderService = (*OrderService)(nil)

type OrderService struct {
	cli *binance.Client
}

func NewOrderService(cli *binance.Client) *OrderService {
	return &OrderService{cli: cli}
}

func (svc *OrderService) CreateLimitOrder(ctx context.Context, req exchange.CreateLimitOrderReq) (exchange.OrderId, error) {
	side := binanceSide(req.Side)
	if side == "" {
		return "", fmt.Errorf("unsupported order side %q", req.Side)
	}
	resp, err := svc.cli.NewCreateOrderService().
		Symbol(req.TradingPair.ToString()).
		Side(side).
		Type(binance.OrderTypeLimit).
		TimeInForce(binance.TimeInForceTypeGTC).
		Quantity(req.Quantity.String()).
		Price(req.Price.String()).
		Do(ctx)
	if err != nil {
		return "", err
	}
	return exchange.OrderIdFromInt64(resp.OrderID), nil
}

func (svc *OrderService) GetOpenOrders(ctx context.Context, symbol string) ([]exchange.OpenOrder, error) {
	orders, err := svc.cli.NewListOpenOrdersService().Symbol(symbol).Do(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]exchange.OpenOrder, 0, len(orders))
	for _, o := range orders {
		order, err := svc.parseOrder(o)
		if err != nil {
			return nil, err
		}
		res = append(res, order)
	}
	return res, nil
}

func (svc *OrderService) CancelOrder(ctx context.Context, req exchange.CancelOrderReq) error {
	_, err := svc.cli.NewCancelOrderService().Symbol(req.Symbol).OrderID(req.Id.ToInt64()).Do(ctx)
	return err
}

func (svc *OrderService) parseOrder(order *binance.Order) (exchange.OpenOrder, error) {
	price, err := parseDecimal(order.Price)
	if err != nil {
		return exchange.OpenOrder{}, fmt.Errorf("parse order %d price: %w", order.OrderID, err)
	}
	qty, err := parseDecimal(order.OrigQuantity)
	if err != nil {
		return exchange.OpenOrder{}, fmt.Errorf("parse order %d quantity: %w", order.OrderID, err)
	}
	return exchange.OpenOrder{
		Id:       exchange.OrderIdFromInt64(order.OrderID),
		Symbol:   order.Symbol,
		Side:     fromBinanceSide(order.Side),
		Price:    price,
		Quantity: qty,
	}, nil
}
