package command

import (
	"context"
	"fmt"
)

var _ Command = (*ExitQuick)(nil)

type ExitQuick struct {
	opts   Options
	Symbol string
}

func parseExitQuick(args []string) (*ExitQuick, error) {
	c := &ExitQuick{}
	fs := newFlagSet("exit-quick", &c.opts)
	pair := fs.String("pair", "", "e.g. ETHUSDT")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, usageErrorf("exit-quick: unexpected arguments %v", fs.Args())
	}
	c.Symbol = normalizeSymbol(*pair)
	if c.Symbol == "" {
		return nil, usageErrorf("exit-quick: --pair is required")
	}
	return c, nil
}

func (c *ExitQuick) Name() string {
	return "exit-quick"
}

func (c *ExitQuick) Options() Options {
	return c.opts
}

func (c *ExitQuick) Run(ctx context.Context, deps Deps) error {
	if deps.Confirm == nil {
		return fmt.Errorf("exit-quick: no confirmation prompt configured")
	}
	_, err := newPortfolio(deps).ExitQuick(ctx, c.Symbol, deps.Confirm)
	return err
}
