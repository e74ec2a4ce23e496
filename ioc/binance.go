package ioc

import (
	"github.com/adshao/go-binance/v2"
	"github.com/spf13/viper"
)

func InitBinanceCli() *binance.Client {
	type Config struct {
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
		Testnet   bool   `mapstructure:"testnet"`
	}

	var cfg Config
	if err := viper.UnmarshalKey("cex.binance", &cfg); err != nil {
		panic(err)
	}
	// 环境变量优先于配置文件
	if key := viper.GetString("cex.binance.api_key"); key != "" {
		cfg.ApiKey = key
	}
	if secret := viper.GetString("cex.binance.api_secret"); secret != "" {
		cfg.ApiSecret = secret
	}

	if cfg.ApiKey == "" || cfg.ApiSecret == "" {
		panic("no binance api key or secret set")
	}

	binance.UseTestnet = cfg.Testnet
	return binance.NewClient(cfg.ApiKey, cfg.ApiSecret)
}
