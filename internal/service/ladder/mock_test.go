package ladder

import (
	"context"

	"github.com/ryan-shaw/binance-order-bot/internal/service/exchange"
	"github.com/stretchr/testify/mock"
)

// ============ Mock 定义 ============

type MockSymbolService struct {
	mock.Mock
}

func (m *MockSymbolService) GetSymbolInfo(ctx context.Context, symbol string) (exchange.SymbolInfo, error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(exchange.SymbolInfo), args.Error(1)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateLimitOrder(ctx context.Context, req exchange.CreateLimitOrderReq) (exchange.OrderId, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(exchange.OrderId), args.Error(1)
}

func (m *MockOrderService) GetOpenOrders(ctx context.Context, symbol string) ([]exchange.OpenOrder, error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).([]exchange.OpenOrder), args.Error(1)
}

func (m *MockOrderService) CancelOrder(ctx context.Context, req exchange.CancelOrderReq) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// fixedResolver 返回固定精度并记录调用次数
type fixedResolver struct {
	precision int32
	err       error
	calls     int
}

func (r *fixedResolver) Resolve(context.Context, exchange.TradingPair) (int32, error) {
	r.calls++
	return r.precision, r.err
}
