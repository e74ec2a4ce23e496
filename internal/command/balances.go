package command

import (
	"context"

	"github.com/ryan-shaw/binance-order-bot/internal/service/portfolio"
)

var _ Command = (*Balances)(nil)

// Balances --execute 只为与其他命令保持一致，没有作用
type Balances struct {
	opts Options
}

func parseBalances(args []string) (*Balances, error) {
	c := &Balances{}
	fs := newFlagSet("balances", &c.opts)
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, usageErrorf("balances: unexpected arguments %v", fs.Args())
	}
	return c, nil
}

func (c *Balances) Name() string {
	return "balances"
}

func (c *Balances) Options() Options {
	return c.opts
}

func (c *Balances) Run(ctx context.Context, deps Deps) error {
	_, err := newPortfolio(deps).Balances(ctx)
	return err
}

func newPortfolio(deps Deps) *portfolio.Service {
	return portfolio.NewService(deps.Exchange, deps.Out)
}
