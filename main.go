package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ryan-shaw/binance-order-bot/internal/command"
	"github.com/ryan-shaw/binance-order-bot/internal/service/exchange/binance"
	"github.com/ryan-shaw/binance-order-bot/internal/service/ladder"
	"github.com/ryan-shaw/binance-order-bot/internal/service/portfolio"
	"github.com/ryan-shaw/binance-order-bot/ioc"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func initViper(file string) {
	viper.SetConfigFile(file)
	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s \n", err))
	}
	_ = viper.BindEnv("cex.binance.api_key", "BINANCE_API_KEY")
	_ = viper.BindEnv("cex.binance.api_secret", "BINANCE_API_SECRET")
}

func run(ctx context.Context, args []string) error {
	cmd, err := command.Parse(args)
	if err != nil {
		return err
	}

	initViper(cmd.Options().ConfigFile)
	ioc.InitLogger()

	exchangeSvc := binance.NewService(ioc.InitBinanceCli())
	resolver := ladder.NewResolver(exchangeSvc.SymbolService(), ioc.InitPrecisionCache())

	return cmd.Run(ctx, command.Deps{
		Out:      os.Stdout,
		Exchange: exchangeSvc,
		Resolver: resolver,
		Confirm:  portfolio.NewPrompt(os.Stdin, os.Stdout),
	})
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		stop()
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
