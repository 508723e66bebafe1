package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stock_dashboard/internal/feature/eulisting/domain"
	"stock_dashboard/internal/feature/eulisting/domain/entity"
	"stock_dashboard/internal/feature/eulisting/usecase"
)

func TestGenerateVariants(t *testing.T) {
	tests := []struct {
		symbol string
		want   []string
	}{
		{symbol: "V", want: []string{"V.DE", "V.F", "V.MU", "V.SG"}},
		{symbol: "UNH", want: []string{"UNH.DE", "UNH.F", "UNH.MU", "UNH.SG"}},
		{symbol: "XYZQ", want: []string{"XYZQ.DE", "XYZ.DE", "XYZQ.F", "XYZ.F", "XYZQ.MU", "XYZQ.SG"}},
		{symbol: "GOOGL", want: []string{"GOOGL.DE", "GOO.DE", "GOOG.DE", "GOOGL.F", "GOO.F", "GOOGL.MU", "GOOGL.SG"}},
		{symbol: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			assert.Equal(t, tt.want, usecase.GenerateVariants(tt.symbol))
		})
	}
}

func TestBuildCandidates(t *testing.T) {
	mappings := domain.NewKnownMappings(map[string][]string{
		"BABA": {"AHLA.DE", "AHLA.F"},
		"UNH":  {"UNH.F"},
	})

	t.Run("mapping entries come first", func(t *testing.T) {
		got := usecase.BuildCandidates(mappings, "BABA")
		assert.Equal(t, []entity.Candidate{
			{Symbol: "AHLA.DE", Stage: entity.StageMapping},
			{Symbol: "AHLA.F", Stage: entity.StageMapping},
			{Symbol: "BABA.DE", Stage: entity.StageVariant},
			{Symbol: "BAB.DE", Stage: entity.StageVariant},
			{Symbol: "BABA.F", Stage: entity.StageVariant},
			{Symbol: "BAB.F", Stage: entity.StageVariant},
			{Symbol: "BABA.MU", Stage: entity.StageVariant},
			{Symbol: "BABA.SG", Stage: entity.StageVariant},
		}, got)
	})

	t.Run("duplicates keep the first position", func(t *testing.T) {
		got := usecase.BuildCandidates(mappings, "UNH")
		assert.Equal(t, []entity.Candidate{
			{Symbol: "UNH.F", Stage: entity.StageMapping},
			{Symbol: "UNH.DE", Stage: entity.StageVariant},
			{Symbol: "UNH.MU", Stage: entity.StageVariant},
			{Symbol: "UNH.SG", Stage: entity.StageVariant},
		}, got)
	})

	t.Run("unmapped symbol yields variants only", func(t *testing.T) {
		got := usecase.BuildCandidates(mappings, "XYZQ")
		assert.Len(t, got, 6)
		for _, c := range got {
			assert.Equal(t, entity.StageVariant, c.Stage)
		}
	})
}
