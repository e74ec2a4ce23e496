package exchange

import (
	"context"

	"github.com/shopspring/decimal"
)

type Balance struct {
	Asset  string
	Free   decimal.Decimal
	Locked decimal.Decimal
}

func (b Balance) IsZero() bool {
	return !b.Free.IsPositive() && !b.Locked.IsPositive()
}

type AccountService interface {
	// GetAssetBalance 账户中不存在的资产返回零余额
	GetAssetBalance(ctx context.Context, asset string) (Balance, error)
	GetBalances(ctx context.Context) ([]Balance, error)
}
