package usecase

import (
	"stock_dashboard/internal/feature/eulisting/domain"
	"stock_dashboard/internal/feature/eulisting/domain/entity"
)

// GenerateVariants derives German exchange candidates from the US symbol itself:
// S.DE, S[:3].DE, S[:4].DE, S.F, S[:3].F, S.MU, S.SG.
// Truncated forms only appear when the symbol is longer than the prefix.
// symbol must already be normalized.
func GenerateVariants(symbol string) []string {
	if symbol == "" {
		return nil
	}
	out := make([]string, 0, 7)
	out = append(out, symbol+domain.SuffixXetra)
	if len(symbol) >= 4 {
		out = append(out, symbol[:3]+domain.SuffixXetra)
	}
	if len(symbol) >= 5 {
		out = append(out, symbol[:4]+domain.SuffixXetra)
	}
	out = append(out, symbol+domain.SuffixFrankfurt)
	if len(symbol) >= 4 {
		out = append(out, symbol[:3]+domain.SuffixFrankfurt)
	}
	out = append(out, symbol+domain.SuffixMunich, symbol+domain.SuffixStuttgart)
	return out
}

// BuildCandidates returns mapped candidates in table order followed by the generated variants.
// A symbol that appears twice keeps its first position and stage.
func BuildCandidates(mappings domain.KnownMappings, symbol string) []entity.Candidate {
	mapped := mappings.Lookup(symbol)
	variants := GenerateVariants(symbol)

	seen := make(map[string]struct{}, len(mapped)+len(variants))
	out := make([]entity.Candidate, 0, len(mapped)+len(variants))
	add := func(s string, stage entity.Stage) {
		if _, dup := seen[s]; dup {
			return
		}
		seen[s] = struct{}{}
		out = append(out, entity.Candidate{Symbol: s, Stage: stage})
	}
	for _, s := range mapped {
		add(s, entity.StageMapping)
	}
	for _, s := range variants {
		add(s, entity.StageVariant)
	}
	return out
}
