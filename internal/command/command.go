package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ryan-shaw/binance-order-bot/internal/service/exchange"
	"github.com/ryan-shaw/binance-order-bot/internal/service/ladder"
	"github.com/ryan-shaw/binance-order-bot/internal/service/portfolio"
	"github.com/spf13/pflag"
)

// ErrUsage 命令行参数错误
var ErrUsage = errors.New("usage error")

const DefaultConfigFile = "./config/config.dev.yaml"

const usage = `Binance order creator

Usage:
  binance-order-bot <command> [flags]

Commands:
  create-order  Create order
  exit-quick    Exit positions quickly with limit orders
  balances      Balances

Run 'binance-order-bot <command> --help' for command flags.
`

// Deps 命令执行依赖
type Deps struct {
	Out      io.Writer
	Exchange exchange.Service
	Resolver ladder.PrecisionResolver
	Confirm  portfolio.Confirm
}

// Options 所有子命令共有的参数
type Options struct {
	ConfigFile string
	Execute    bool
}

type Command interface {
	Name() string
	Options() Options
	Run(ctx context.Context, deps Deps) error
}

// Parse 解析子命令及其参数，不做任何网络请求
func Parse(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: no command given\n\n%s", ErrUsage, usage)
	}

	name, rest := args[0], args[1:]
	switch name {
	case "create-order":
		return parseCreateOrder(rest)
	case "exit-quick":
		return parseExitQuick(rest)
	case "balances":
		return parseBalances(rest)
	case "-h", "--help", "help":
		fmt.Fprint(os.Stderr, usage)
		return nil, pflag.ErrHelp
	default:
		return nil, fmt.Errorf("%w: unknown command %q\n\n%s", ErrUsage, name, usage)
	}
}

// newFlagSet 对应原来的 common 参数：--execute 与 --config
func newFlagSet(name string, opts *Options) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.BoolVar(&opts.Execute, "execute", false, "Create the orders")
	fs.StringVar(&opts.ConfigFile, "config", DefaultConfigFile, "specify config file")
	return fs
}

func parseFlags(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %s: %w", ErrUsage, fs.Name(), err)
	}
	return nil
}

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

func normalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
