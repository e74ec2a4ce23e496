package repo

import (
	"context"
	"errors"

	"github.com/ryan-shaw/binance-order-bot/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrRecordNotFound 未找到记录
var ErrRecordNotFound = gorm.ErrRecordNotFound

type SymbolPrecisionRepo interface {
	// Upsert 按 symbol 新建或覆盖
	Upsert(ctx context.Context, p entity.SymbolPrecision) error
	FindBySymbol(ctx context.Context, symbol string) (entity.SymbolPrecision, error)
	DeleteBySymbol(ctx context.Context, symbol string) error
}

type symbolPrecisionRepo struct {
	db *gorm.DB
}

func NewSymbolPrecisionRepo(db *gorm.DB) SymbolPrecisionRepo {
	return &symbolPrecisionRepo{
		db: db,
	}
}

func (repo *symbolPrecisionRepo) Upsert(ctx context.Context, p entity.SymbolPrecision) error {
	return repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}},
		DoUpdates: clause.AssignmentColumns([]string{"step_size", "precision", "updated_at"}),
	}).Create(&p).Error
}

func (repo *symbolPrecisionRepo) FindBySymbol(ctx context.Context, symbol string) (entity.SymbolPrecision, error) {
	var p entity.SymbolPrecision
	err := repo.db.WithContext(ctx).Where("symbol = ?", symbol).First(&p).Error
	if err != nil {
		return entity.SymbolPrecision{}, err
	}
	return p, nil
}

func (repo *symbolPrecisionRepo) DeleteBySymbol(ctx context.Context, symbol string) error {
	err := repo.db.WithContext(ctx).Where("symbol = ?", symbol).Delete(&entity.SymbolPrecision{}).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
