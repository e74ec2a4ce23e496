package ladder

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/ryan-shaw/binance-order-bot/internal/service/exchange"
	"github.com/ryan-shaw/binance-order-bot/pkg/decimalx"
	"github.com/shopspring/decimal"
)

// PrecisionResolver 查询交易对数量精度
type PrecisionResolver interface {
	Resolve(ctx context.Context, pair exchange.TradingPair) (int32, error)
}

// PrecisionCache 以 symbol 为 key 缓存精度
type PrecisionCache interface {
	Get(ctx context.Context, symbol string) (int32, bool, error)
	Set(ctx context.Context, symbol string, rule exchange.LotSizeRule, precision int32) error
}

var _ PrecisionResolver = (*Resolver)(nil)

// Resolver 根据 LOT_SIZE stepSize 计算精度，结果由 cache 记忆
// 非并发安全
type Resolver struct {
	symbolSvc exchange.SymbolService
	cache     PrecisionCache
}

// NewResolver cache 为 nil 时使用进程内缓存
func NewResolver(symbolSvc exchange.SymbolService, cache PrecisionCache) *Resolver {
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &Resolver{
		symbolSvc: symbolSvc,
		cache:     cache,
	}
}

func (r *Resolver) Resolve(ctx context.Context, pair exchange.TradingPair) (int32, error) {
	symbol := strings.ToUpper(pair.ToString())

	precision, ok, err := r.cache.Get(ctx, symbol)
	if err != nil {
		slog.Warn("precision cache read failed", "symbol", symbol, "error", err)
	} else if ok {
		slog.Debug("precision cache hit", "symbol", symbol, "precision", precision)
		return precision, nil
	}

	info, err := r.symbolSvc.GetSymbolInfo(ctx, symbol)
	if err != nil {
		return 0, fmt.Errorf("get symbol info: %w", err)
	}
	if info.LotSize == nil {
		return 0, fmt.Errorf("%s: %w", symbol, exchange.ErrLotSizeNotFound)
	}

	precision, err = PrecisionFromStepSize(info.LotSize.StepSize)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", symbol, err)
	}
	if !decimalx.IsPowerOfTen(info.LotSize.StepSize) {
		slog.Warn("step size is not a power of ten, rounded quantities may be rejected",
			"symbol", symbol, "step_size", info.LotSize.StepSize.String(), "precision", precision)
	}
	slog.Debug("precision resolved", "symbol", symbol, "step_size", info.LotSize.StepSize.String(), "precision", precision)

	if err := r.cache.Set(ctx, symbol, *info.LotSize, precision); err != nil {
		slog.Warn("precision cache write failed", "symbol", symbol, "error", err)
	}
	return precision, nil
}

// PrecisionFromStepSize precision = round(-log10(stepSize))
// 10 的整数次幂直接由指数得出，其余按 float64 近似
func PrecisionFromStepSize(step decimal.Decimal) (int32, error) {
	if !step.IsPositive() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidStepSize, step.String())
	}

	var p float64
	if decimalx.IsPowerOfTen(step) {
		// 系数形如 1000，尾部的 0 计入指数
		zeros := len(step.Coefficient().String()) - 1
		p = -(float64(step.Exponent()) + float64(zeros))
	} else {
		p = math.Round(-math.Log10(step.InexactFloat64()))
	}
	if math.IsInf(p, 0) || math.IsNaN(p) || p > math.MaxInt32 || p < math.MinInt32 {
		return 0, fmt.Errorf("%w: %s out of range", ErrInvalidStepSize, step.String())
	}
	return int32(p), nil
}

var _ PrecisionCache = (*MemoryCache)(nil)

// MemoryCache 进程内精度缓存
type MemoryCache struct {
	m map[string]int32
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{m: make(map[string]int32)}
}

func (c *MemoryCache) Get(_ context.Context, symbol string) (int32, bool, error) {
	p, ok := c.m[symbol]
	return p, ok, nil
}

func (c *MemoryCache) Set(_ context.Context, symbol string, _ exchange.LotSizeRule, precision int32) error {
	c.m[symbol] = precision
	return nil
}
