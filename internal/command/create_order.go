package command

import (
	"context"
	"fmt"
	"os"

	"github.com/ryan-shaw/binance-order-bot/internal/service/exchange"
	"github.com/ryan-shaw/binance-order-bot/internal/service/ladder"
	"github.com/ryan-shaw/binance-order-bot/pkg/decimalx"
	"github.com/shopspring/decimal"
)

var _ Command = (*CreateOrder)(nil)

// CreateOrder create-order <buy|sell> <pair> --start-price P (--quantity Q | --quote-quantity B)
type CreateOrder struct {
	opts Options
	Spec ladder.Spec
}

func parseCreateOrder(args []string) (*CreateOrder, error) {
	c := &CreateOrder{}
	fs := newFlagSet("create-order", &c.opts)
	startPrice := fs.String("start-price", "", "Price to start ladder at (required)")
	quantity := fs.String("quantity", "", "Quantity of asset to buy")
	quoteQuantity := fs.String("quote-quantity", "", "Quantity of quote to use to buy asset")
	percent := fs.String("ladder-percent", fmt.Sprint(ladder.DefaultPercent), "Ladder gap %")
	orders := fs.Int("ladder-orders", ladder.DefaultOrders, "How many orders to create")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: create-order {buy,sell} PAIR --start-price PRICE (--quantity Q | --quote-quantity Q) [flags]\n")
		fs.PrintDefaults()
	}
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	pos := fs.Args()
	if len(pos) != 2 {
		return nil, usageErrorf("create-order: expected order type and pair, got %d positional args", len(pos))
	}
	side, err := exchange.ParseSide(pos[0])
	if err != nil {
		return nil, usageErrorf("create-order: %v", err)
	}
	pair := exchange.ParseTradingPair(normalizeSymbol(pos[1]))
	if pair.IsZero() {
		return nil, usageErrorf("create-order: empty pair")
	}

	if !fs.Changed("start-price") {
		return nil, usageErrorf("create-order: --start-price is required")
	}
	hasQty, hasQuote := fs.Changed("quantity"), fs.Changed("quote-quantity")
	if hasQty == hasQuote {
		return nil, usageErrorf("create-order: exactly one of --quantity and --quote-quantity is required")
	}

	spec := ladder.Spec{
		Side:        side,
		TradingPair: pair,
		Orders:      *orders,
	}
	if spec.StartPrice, err = decimalx.ParsePositive("start-price", *startPrice); err != nil {
		return nil, usageErrorf("create-order: %v", err)
	}
	if spec.Percent, err = decimalx.ParsePositive("ladder-percent", *percent); err != nil {
		return nil, usageErrorf("create-order: %v", err)
	}
	if hasQty {
		spec.Quantity, err = decimalx.ParsePositive("quantity", *quantity)
	} else {
		spec.QuoteQuantity, err = decimalx.ParsePositive("quote-quantity", *quoteQuantity)
	}
	if err != nil {
		return nil, usageErrorf("create-order: %v", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: create-order: %w", ErrUsage, err)
	}

	c.Spec = spec
	return c, nil
}

func (c *CreateOrder) Name() string {
	return "create-order"
}

func (c *CreateOrder) Options() Options {
	return c.opts
}

func (c *CreateOrder) Run(ctx context.Context, deps Deps) error {
	cursor, err := c.cursor(ctx, deps)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Out, "ladder_gap=%s\n", cursor.Gap())

	var submitter ladder.Submitter = ladder.DryRunSubmitter{}
	verb := "would be placed"
	if c.opts.Execute {
		submitter = ladder.NewExchangeSubmitter(deps.Exchange.OrderService())
		verb = "placed"
	}

	report, err := ladder.NewPlacer(deps.Out, submitter).Place(ctx, cursor)
	fmt.Fprintf(deps.Out, "%d/%d orders %s, quantity=%s cost=%s\n",
		len(report.Placed), c.Spec.Orders, verb, report.Quantity, report.Cost)
	return err
}

func (c *CreateOrder) cursor(ctx context.Context, deps Deps) (*ladder.Cursor, error) {
	if c.Spec.Quantity.IsPositive() {
		cursor, err := ladder.ByQuantity(c.Spec)
		if err != nil {
			return nil, err
		}
		perRung, _ := cursor.QuantityPerRung()
		fmt.Fprintf(deps.Out, "order_quantity=%s per order\n", perRung)
		fmt.Fprintf(deps.Out, "total_cost=%s\n", totalCost(c.Spec.StartPrice, c.Spec.Quantity))
		return cursor, nil
	}

	cursor, err := ladder.ByQuoteBudget(ctx, c.Spec, deps.Resolver)
	if err != nil {
		return nil, err
	}
	perRung, _ := cursor.QuotePerRung()
	fmt.Fprintf(deps.Out, "quote_quantity=%s per order\n", perRung)
	return cursor, nil
}

// totalCost 按起始价估算的总成本
func totalCost(startPrice, quantity decimal.Decimal) decimal.Decimal {
	return startPrice.Mul(quantity)
}
