package ioc

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ryan-shaw/binance-order-bot/internal/repo"
	"github.com/ryan-shaw/binance-order-bot/internal/service/ladder"
	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultCacheTTL = 24 * time.Hour

// InitDB 打开 sqlite 并迁移表，所在目录不存在时自动创建
func InitDB(dsn string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open db %s: %w", dsn, err)
	}
	if err := repo.InitTables(db); err != nil {
		return nil, fmt.Errorf("init tables: %w", err)
	}
	return db, nil
}

// InitPrecisionCache 未配置 cache.sqlite 或数据库不可用时返回 nil，由 Resolver 使用进程内缓存
func InitPrecisionCache() ladder.PrecisionCache {
	type Config struct {
		Sqlite string        `mapstructure:"sqlite"`
		TTL    time.Duration `mapstructure:"ttl"`
	}

	cfg := Config{TTL: defaultCacheTTL}
	if err := viper.UnmarshalKey("cache", &cfg); err != nil {
		panic(err)
	}
	if cfg.Sqlite == "" {
		return nil
	}

	db, err := InitDB(cfg.Sqlite)
	if err != nil {
		slog.Warn("precision cache db unavailable, using in-memory cache", "path", cfg.Sqlite, "error", err)
		return nil
	}
	return ladder.NewStoreCache(repo.NewSymbolPrecisionRepo(db), cfg.TTL)
}
