// Package usecase implements the business logic for the popular stocks catalogue.
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"stock_dashboard/internal/feature/symbollist/domain"
	"stock_dashboard/internal/feature/symbollist/domain/entity"
)

// PopularStockRepository abstracts the persistence layer for popular stocks.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type PopularStockRepository interface {
	// ListActive returns active stocks ordered by sort key. An empty category means all categories.
	ListActive(ctx context.Context, category entity.Category) ([]entity.PopularStock, error)
	ListActiveSymbols(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, stocks []entity.PopularStock) error
}

// PopularUsecase provides business logic for the popular stocks catalogue.
type PopularUsecase struct {
	repo PopularStockRepository
}

// NewPopularUsecase creates a new PopularUsecase with the given repository.
func NewPopularUsecase(r PopularStockRepository) *PopularUsecase {
	return &PopularUsecase{repo: r}
}

// ListPopular returns the active stocks of one category, or all of them when category is empty.
func (u *PopularUsecase) ListPopular(ctx context.Context, category string) ([]entity.PopularStock, error) {
	var cat entity.Category
	if category != "" {
		c, ok := entity.ParseCategory(category)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, category)
		}
		cat = c
	}
	return u.repo.ListActive(ctx, cat)
}

// ActiveSymbols は先読み対象となるアクティブ銘柄のシンボルを返します。
func (u *PopularUsecase) ActiveSymbols(ctx context.Context) ([]string, error) {
	return u.repo.ListActiveSymbols(ctx)
}

// EnsureSeeded inserts the given stocks when the catalogue is empty.
// It reports how many rows were inserted.
func (u *PopularUsecase) EnsureSeeded(ctx context.Context, stocks []entity.PopularStock) (int, error) {
	n, err := u.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count popular stocks: %w", err)
	}
	if n > 0 {
		return 0, nil
	}
	if err := u.repo.Create(ctx, stocks); err != nil {
		return 0, fmt.Errorf("seed popular stocks: %w", err)
	}
	slog.Info("popular stocks seeded", "count", len(stocks))
	return len(stocks), nil
}
