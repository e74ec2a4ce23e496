package binance

import (
	"github.com/adshao/go-binance/v2"
	"github.com/ryan-shaw/binance-order-bot/internal/service/exchange"
)

var _ exchange.Service = (*Service)(nil)

// Service 币安现货网关
type Service struct {
	symbolSvc  exchange.SymbolService
	orderSvc   exchange.OrderService
	accountSvc exchange.AccountService
}

func NewService(cli *binance.Client) *Service {
	return &Service{
		symbolSvc:  NewSymbolService(cli),
		orderSvc:   NewOrderService(cli),
		accountSvc: NewAccountService(cli),
	}
}

func (s *Service) SymbolService() exchange.SymbolService {
	return s.symbolSvc
}

func (s *Service) OrderService() exchange.OrderService {
	return s.orderSvc
}

func (s *Service) AccountService() exchange.AccountService {
	return s.accountSvc
}
