package entity

import (
	"time"
)

// SymbolPrecision 交易对数量精度缓存
type SymbolPrecision struct {
	Id        int64  `gorm:"primaryKey"`
	Symbol    string `gorm:"uniqueIndex"`
	StepSize  string // LOT_SIZE stepSize 原始值
	Precision int32
	CreatedAt time.Time
	UpdatedAt time.Time `gorm:"index"`
}
