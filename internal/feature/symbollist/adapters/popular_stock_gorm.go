// Package adapters はsymbollistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"stock_dashboard/internal/feature/symbollist/domain/entity"
	"stock_dashboard/internal/feature/symbollist/usecase"
)

const seedBatchSize = 100

// popularStockGorm はPopularStockRepositoryインターフェースのGORM実装です。
// SQLiteとPostgreSQLのどちらでも動作します。
type popularStockGorm struct {
	db *gorm.DB
}

var _ usecase.PopularStockRepository = (*popularStockGorm)(nil)

// NewPopularStockRepository は指定されたDB接続でリポジトリの新しいインスタンスを生成します。
func NewPopularStockRepository(db *gorm.DB) *popularStockGorm {
	return &popularStockGorm{db: db}
}

// ListActive はsort_key順にアクティブな銘柄を返します。categoryが空の場合は全カテゴリです。
func (r *popularStockGorm) ListActive(ctx context.Context, category entity.Category) ([]entity.PopularStock, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var stocks []entity.PopularStock
	if err := q.Order("sort_key ASC").Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// ListActiveSymbols はsort_key順にアクティブな銘柄のシンボルのみを返します。
func (r *popularStockGorm) ListActiveSymbols(ctx context.Context) ([]string, error) {
	var symbols []string
	if err := r.db.WithContext(ctx).
		Model(&entity.PopularStock{}).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Pluck("symbol", &symbols).Error; err != nil {
		return nil, err
	}
	return symbols, nil
}

// Count は登録済みの銘柄数を返します。
func (r *popularStockGorm) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&entity.PopularStock{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// Create は銘柄をまとめて登録します。
func (r *popularStockGorm) Create(ctx context.Context, stocks []entity.PopularStock) error {
	if len(stocks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(stocks, seedBatchSize).Error
}
