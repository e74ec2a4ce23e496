package binance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/adshao/go-binance/v2"
	"github.com/ryan-shaw/binance-order-bot/internal/service/exchange"
)

var _ exchange.SymbolService = (*SymbolService)(nil)

type SymbolService struct {
	cli *binance.Client
}

func NewSymbolService(cli *binance.Client) *SymbolService {
	return &SymbolService{cli: cli}
}

func (svc *SymbolService) GetSymbolInfo(ctx context.Context, symbol string) (exchange.SymbolInfo, error) {
	symbol = strings.ToUpper(symbol)
	info, err := svc.cli.NewExchangeInfoService().Symbol(symbol).Do(ctx)
	if err != nil {
		if isInvalidSymbol(err) {
			return exchange.SymbolInfo{}, fmt.Errorf("%s: %w", symbol, exchange.ErrSymbolNotFound)
		}
		return exchange.SymbolInfo{}, err
	}

	for i := range info.Symbols {
		s := &info.Symbols[i]
		if s.Symbol != symbol {
			continue
		}
		res := exchange.SymbolInfo{
			TradingPair: exchange.TradingPair{Base: s.BaseAsset, Quote: s.QuoteAsset},
		}
		if f := s.LotSizeFilter(); f != nil {
			lotSize, err := parseLotSize(f)
			if err != nil {
				return exchange.SymbolInfo{}, fmt.Errorf("parse %s lot size: %w", symbol, err)
			}
			res.LotSize = &lotSize
		} else {
			slog.Warn("symbol has no lot size filter", "symbol", symbol)
		}
		return res, nil
	}
	return exchange.SymbolInfo{}, fmt.Errorf("%s: %w", symbol, exchange.ErrSymbolNotFound)
}

func parseLotSize(f *binance.LotSizeFilter) (exchange.LotSizeRule, error) {
	minQty, err := parseDecimal(f.MinQuantity)
	if err != nil {
		return exchange.LotSizeRule{}, err
	}
	maxQty, err := parseDecimal(f.MaxQuantity)
	if err != nil {
		return exchange.LotSizeRule{}, err
	}
	step, err := parseDecimal(f.StepSize)
	if err != nil {
		return exchange.LotSizeRule{}, err
	}
	return exchange.LotSizeRule{
		MinQuantity: minQty,
		MaxQuantity: maxQty,
		StepSize:    step,
	}, nil
}
