package portfolio

import (
	"github.com/ryan-shaw/binance-order-bot/internal/service/exchange"
	"github.com/shopspring/decimal"
)

// Confirm 向用户确认，返回 true 表示继续
type Confirm func(prompt string) bool

// ExitReport exit-quick 执行结果
type ExitReport struct {
	Asset     string
	Orders    []exchange.OpenOrder // 撤单前的挂单
	Declined  bool                 // 用户拒绝撤单
	Cancelled []exchange.OrderId
	Free      decimal.Decimal // 撤单后可用余额
}
