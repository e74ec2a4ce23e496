package binance

import (
	"context"
	"fmt"
	"strings"

	"github.com/adshao/go-binance/v2"
	"github.com/ryan-shaw/binance-order-bot/internal/service/exchange"
	"github.com/samber/lo"
)

var _ exchange.AccountService = (*AccountService)(nil)

type AccountService struct {
	cli *binance.Client
}

func NewAccountService(cli *binance.Client) *AccountService {
	return &AccountService{cli: cli}
}

func (s *AccountService) GetBalances(ctx context.Context) ([]exchange.Balance, error) {
	account, err := s.cli.NewGetAccountService().Do(ctx)
	if err != nil {
		return nil, err
	}

	balances := make([]exchange.Balance, 0, len(account.Balances))
	for _, b := range account.Balances {
		free, err := parseDecimal(b.Free)
		if err != nil {
			return nil, fmt.Errorf("parse %s free balance: %w", b.Asset, err)
		}
		locked, err := parseDecimal(b.Locked)
		if err != nil {
			return nil, fmt.Errorf("parse %s locked balance: %w", b.Asset, err)
		}
		balances = append(balances, exchange.Balance{
			Asset:  b.Asset,
			Free:   free,
			Locked: locked,
		})
	}
	return balances, nil
}

// GetAssetBalance 币安没有单资产余额接口，从账户信息中查找
func (s *AccountService) GetAssetBalance(ctx context.Context, asset string) (exchange.Balance, error) {
	asset = strings.ToUpper(asset)
	balances, err := s.GetBalances(ctx)
	if err != nil {
		return exchange.Balance{}, err
	}
	b, ok := lo.Find(balances, func(item exchange.Balance) bool {
		return item.Asset == asset
	})
	if !ok {
		return exchange.Balance{Asset: asset}, nil
	}
	return b, nil
}
