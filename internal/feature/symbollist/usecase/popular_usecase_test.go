package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_dashboard/internal/feature/symbollist/domain"
	"stock_dashboard/internal/feature/symbollist/domain/entity"
	"stock_dashboard/internal/feature/symbollist/usecase"
)

// mockRepository はPopularStockRepositoryインターフェースのモック実装です。
type mockRepository struct {
	ListActiveFunc        func(ctx context.Context, category entity.Category) ([]entity.PopularStock, error)
	ListActiveSymbolsFunc func(ctx context.Context) ([]string, error)
	CountFunc             func(ctx context.Context) (int64, error)
	CreateFunc            func(ctx context.Context, stocks []entity.PopularStock) error
}

func (m *mockRepository) ListActive(ctx context.Context, category entity.Category) ([]entity.PopularStock, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx, category)
	}
	return nil, nil
}

func (m *mockRepository) ListActiveSymbols(ctx context.Context) ([]string, error) {
	if m.ListActiveSymbolsFunc != nil {
		return m.ListActiveSymbolsFunc(ctx)
	}
	return nil, nil
}

func (m *mockRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockRepository) Create(ctx context.Context, stocks []entity.PopularStock) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, stocks)
	}
	return nil
}

func TestPopularUsecase_ListPopular(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		category     string
		wantCategory entity.Category
		wantErr      error
	}{
		{name: "all categories", category: "", wantCategory: ""},
		{name: "known category", category: "tech", wantCategory: entity.CategoryTech},
		{name: "case-insensitive", category: " Chinese ", wantCategory: entity.CategoryChinese},
		{name: "unknown category", category: "crypto", wantErr: domain.ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got entity.Category
			called := false
			repo := &mockRepository{
				ListActiveFunc: func(ctx context.Context, category entity.Category) ([]entity.PopularStock, error) {
					called = true
					got = category
					return []entity.PopularStock{{Symbol: "NVDA"}}, nil
				},
			}
			uc := usecase.NewPopularUsecase(repo)

			stocks, err := uc.ListPopular(context.Background(), tt.category)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, called, "repository must not be queried")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCategory, got)
			assert.Len(t, stocks, 1)
		})
	}
}

func TestPopularUsecase_EnsureSeeded(t *testing.T) {
	t.Parallel()

	t.Run("seeds an empty catalogue", func(t *testing.T) {
		t.Parallel()
		var created []entity.PopularStock
		repo := &mockRepository{
			CreateFunc: func(ctx context.Context, stocks []entity.PopularStock) error {
				created = stocks
				return nil
			},
		}
		n, err := usecase.NewPopularUsecase(repo).EnsureSeeded(context.Background(), usecase.DefaultPopularStocks())
		require.NoError(t, err)
		assert.Equal(t, len(usecase.DefaultPopularStocks()), n)
		assert.Len(t, created, n)
	})

	t.Run("keeps an existing catalogue", func(t *testing.T) {
		t.Parallel()
		repo := &mockRepository{
			CountFunc: func(ctx context.Context) (int64, error) { return 3, nil },
			CreateFunc: func(ctx context.Context, stocks []entity.PopularStock) error {
				t.Fatal("Create must not be called")
				return nil
			},
		}
		n, err := usecase.NewPopularUsecase(repo).EnsureSeeded(context.Background(), usecase.DefaultPopularStocks())
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("count failure", func(t *testing.T) {
		t.Parallel()
		repo := &mockRepository{
			CountFunc: func(ctx context.Context) (int64, error) { return 0, errors.New("db down") },
		}
		_, err := usecase.NewPopularUsecase(repo).EnsureSeeded(context.Background(), nil)
		assert.EqualError(t, err, "count popular stocks: db down")
	})
}

func TestDefaultPopularStocks(t *testing.T) {
	t.Parallel()

	stocks := usecase.DefaultPopularStocks()
	require.NotEmpty(t, stocks)

	seen := map[string]bool{}
	byCategory := map[entity.Category][]string{}
	for i, s := range stocks {
		assert.False(t, seen[s.Symbol], "duplicate %s", s.Symbol)
		seen[s.Symbol] = true
		assert.Equal(t, i+1, s.SortKey)
		assert.True(t, s.IsActive)
		byCategory[s.Category] = append(byCategory[s.Category], s.Symbol)
	}

	assert.Equal(t, []string{"NVDA", "AAPL", "MSFT", "GOOGL", "META", "AMD", "INTC"}, byCategory[entity.CategoryTech])
	assert.Equal(t, []string{"UNH", "JNJ", "PFE", "NVO"}, byCategory[entity.CategoryHealthcare])
	assert.Equal(t, []string{"NIO", "BABA", "BIDU", "JD", "GRAB"}, byCategory[entity.CategoryChinese])
	assert.Contains(t, byCategory[entity.CategoryOther], "TSLA")
}
