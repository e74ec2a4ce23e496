package command

import (
	"context"

	"github.com/ryan-shaw/binance-order-bot/internal/service/exchange"
	"github.com/stretchr/testify/mock"
)

type MockExchangeService struct {
	mock.Mock
	symbolSvc  *MockSymbolService
	accountSvc *MockAccountService
	orderSvc   *MockOrderService
}

func newMockExchange() *MockExchangeService {
	return &MockExchangeService{
		symbolSvc:  new(MockSymbolService),
		accountSvc: new(MockAccountService),
		orderSvc:   new(MockOrderService),
	}
}

func (m *MockExchangeService) SymbolService() exchange.SymbolService {
	return m.symbolSvc
}

func (m *MockExchangeService) AccountService() exchange.AccountService {
	return m.accountSvc
}

func (m *MockExchangeService) OrderService() exchange.OrderService {
	return m.orderSvc
}

type MockSymbolService struct {
	mock.Mock
}

func (m *MockSymbolService) GetSymbolInfo(ctx context.Context, symbol string) (exchange.SymbolInfo, error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(exchange.SymbolInfo), args.Error(1)
}

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAssetBalance(ctx context.Context, asset string) (exchange.Balance, error) {
	args := m.Called(ctx, asset)
	return args.Get(0).(exchange.Balance), args.Error(1)
}

func (m *MockAccountService) GetBalances(ctx context.Context) ([]exchange.Balance, error) {
	args := m.Called(ctx)
	return args.Get(0).([]exchange.Balance), args.Error(1)
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

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, pair exchange.TradingPair) (int32, error) {
	args := m.Called(ctx, pair)
	return args.Get(0).(int32), args.Error(1)
}
