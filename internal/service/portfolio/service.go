package portfolio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ryan-shaw/binance-order-bot/internal/service/exchange"
	"github.com/samber/lo"
)

const confirmPrompt = "Continue? [Y\\n]"

type Service struct {
	symbolSvc  exchange.SymbolService
	accountSvc exchange.AccountService
	orderSvc   exchange.OrderService
	out        io.Writer
}

func NewService(exchangeSvc exchange.Service, out io.Writer) *Service {
	return &Service{
		symbolSvc:  exchangeSvc.SymbolService(),
		accountSvc: exchangeSvc.AccountService(),
		orderSvc:   exchangeSvc.OrderService(),
		out:        out,
	}
}

// ExitQuick 基础币有锁定余额时列出挂单，确认后全部撤销，最后输出可用余额
func (s *Service) ExitQuick(ctx context.Context, symbol string, confirm Confirm) (ExitReport, error) {
	symbol = strings.ToUpper(symbol)
	info, err := s.symbolSvc.GetSymbolInfo(ctx, symbol)
	if err != nil {
		return ExitReport{}, fmt.Errorf("get symbol info: %w", err)
	}
	base := info.TradingPair.Base
	report := ExitReport{Asset: base}

	balance, err := s.accountSvc.GetAssetBalance(ctx, base)
	if err != nil {
		return report, fmt.Errorf("get %s balance: %w", base, err)
	}

	if balance.Locked.IsPositive() {
		fmt.Fprintln(s.out, "Will close all positions:")
		orders, err := s.orderSvc.GetOpenOrders(ctx, symbol)
		if err != nil {
			return report, fmt.Errorf("get open orders: %w", err)
		}
		report.Orders = orders
		for _, o := range orders {
			fmt.Fprintf(s.out, "%s @ %s\n", o.Quantity, o.Price)
		}

		if confirm(confirmPrompt) {
			for _, o := range orders {
				if err := s.orderSvc.CancelOrder(ctx, exchange.CancelOrderReq{Id: o.Id, Symbol: symbol}); err != nil {
					return report, fmt.Errorf("cancel order %s: %w", o.Id, err)
				}
				slog.Info("order cancelled", "symbol", symbol, "order_id", o.Id)
				report.Cancelled = append(report.Cancelled, o.Id)
			}
		} else {
			report.Declined = true
		}
	}

	balance, err = s.accountSvc.GetAssetBalance(ctx, base)
	if err != nil {
		return report, fmt.Errorf("get %s balance: %w", base, err)
	}
	report.Free = balance.Free
	fmt.Fprintf(s.out, "Exiting %s %s quickly\n", balance.Free, base)
	return report, nil
}

// Balances 返回 free 或 locked 大于 0 的资产并逐行输出
func (s *Service) Balances(ctx context.Context) ([]exchange.Balance, error) {
	balances, err := s.accountSvc.GetBalances(ctx)
	if err != nil {
		return nil, err
	}
	balances = lo.Reject(balances, func(item exchange.Balance, index int) bool {
		return item.IsZero()
	})
	for _, b := range balances {
		fmt.Fprintf(s.out, "%s free=%s locked=%s\n", b.Asset, b.Free, b.Locked)
	}
	return balances, nil
}

// IsYes 只有 y/Y 视为确认
func IsYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}
