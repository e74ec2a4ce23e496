package repo

import (
	"github.com/ryan-shaw/binance-order-bot/internal/entity"
	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&entity.SymbolPrecision{})
}
