package ladder

import (
	"context"
	"errors"
	"time"

	"github.com/ryan-shaw/binance-order-bot/internal/entity"
	"github.com/ryan-shaw/binance-order-bot/internal/repo"
	"github.com/ryan-shaw/binance-order-bot/internal/service/exchange"
)

var _ PrecisionCache = (*StoreCache)(nil)

// StoreCache 持久化到数据库的精度缓存，跨进程复用，超过 ttl 的记录视为未命中
type StoreCache struct {
	repo repo.SymbolPrecisionRepo
	ttl  time.Duration
	mem  *MemoryCache
	now  func() time.Time
}

// NewStoreCache ttl <= 0 表示永不过期
func NewStoreCache(r repo.SymbolPrecisionRepo, ttl time.Duration) *StoreCache {
	return &StoreCache{
		repo: r,
		ttl:  ttl,
		mem:  NewMemoryCache(),
		now:  time.Now,
	}
}

func (c *StoreCache) Get(ctx context.Context, symbol string) (int32, bool, error) {
	if p, ok, _ := c.mem.Get(ctx, symbol); ok {
		return p, true, nil
	}

	record, err := c.repo.FindBySymbol(ctx, symbol)
	if errors.Is(err, repo.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if c.ttl > 0 && c.now().Sub(record.UpdatedAt) > c.ttl {
		return 0, false, nil
	}

	_ = c.mem.Set(ctx, symbol, exchange.LotSizeRule{}, record.Precision)
	return record.Precision, true, nil
}

func (c *StoreCache) Set(ctx context.Context, symbol string, rule exchange.LotSizeRule, precision int32) error {
	_ = c.mem.Set(ctx, symbol, rule, precision)
	return c.repo.Upsert(ctx, entity.SymbolPrecision{
		Symbol:    symbol,
		StepSize:  rule.StepSize.String(),
		Precision: precision,
	})
}
