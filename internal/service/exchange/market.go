package exchange

import (
	"context"
	"fmt"
	"strings"
)

// TradingPair 交易对
type TradingPair struct {
	Base  string
	Quote string
}

// 常见 Quote 列表，按长度优先匹配
var knownQuotes = []string{"FDUSD", "USDT", "USDC", "TUSD", "BUSD", "BTC", "ETH", "BNB", "EUR", "TRY"}

func SplitSymbol(s string) (string, string) {
	s = strings.ToUpper(s)
	for _, q := range knownQuotes {
		if strings.HasSuffix(s, q) && len(s) > len(q) {
			return strings.TrimSuffix(s, q), q
		}
	}
	// fallback
	return s, ""
}

// ParseTradingPair 解析 ETHUSDT 格式的交易对，未知 quote 时整个符号作为 Base
func ParseTradingPair(s string) TradingPair {
	base, quote := SplitSymbol(strings.TrimSpace(s))
	return TradingPair{Base: base, Quote: quote}
}

func (s TradingPair) IsZero() bool {
	return s.Base == ""
}

// ToString 币安使用 ETHUSDT 格式
func (s TradingPair) ToString() string {
	return fmt.Sprintf("%s%s", s.Base, s.Quote)
}

type SymbolService interface {
	// GetSymbolInfo 查询交易对规则，symbol 须为大写
	GetSymbolInfo(ctx context.Context, symbol string) (SymbolInfo, error)
}

// Service 交易所网关
type Service interface {
	SymbolService() SymbolService
	OrderService() OrderService
	AccountService() AccountService
}
