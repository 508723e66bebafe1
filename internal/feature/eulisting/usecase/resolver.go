// Package usecase implements the EU listing resolver and the cached EU quote lookup built on it.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"stock_dashboard/internal/feature/eulisting/domain"
	"stock_dashboard/internal/feature/eulisting/domain/entity"
	qdomain "stock_dashboard/internal/feature/quotes/domain"
	qentity "stock_dashboard/internal/feature/quotes/domain/entity"
	qusecase "stock_dashboard/internal/feature/quotes/usecase"
	"stock_dashboard/internal/shared/ratelimiter"
)

// DefaultCandidateTimeout bounds each outbound lookup made while resolving.
const DefaultCandidateTimeout = 5 * time.Second

// QuoteLookup is the subset of the market provider the resolver needs.
//
//go:generate mockgen -package=usecase_test -destination=mock_quote_lookup_test.go -source=resolver.go QuoteLookup
type QuoteLookup interface {
	CheckConfig() error
	GetQuotes(ctx context.Context, symbols []string, region string) ([]qentity.Quote, error)
	Search(ctx context.Context, query, region string) ([]qentity.SearchHit, error)
}

// Resolver maps a US ticker to its German listing by walking a fixed fallback chain:
// known mappings, generated suffix variants, then one company-name search.
// Candidates are verified one at a time and the first valid one wins.
type Resolver struct {
	lookup           QuoteLookup
	mappings         domain.KnownMappings
	candidateTimeout time.Duration
	limiter          ratelimiter.RateLimiterInterface // nil = no pacing
}

// NewResolver creates a Resolver. A non-positive candidateTimeout falls back to DefaultCandidateTimeout.
func NewResolver(lookup QuoteLookup, mappings domain.KnownMappings, candidateTimeout time.Duration) *Resolver {
	if candidateTimeout <= 0 {
		candidateTimeout = DefaultCandidateTimeout
	}
	return &Resolver{lookup: lookup, mappings: mappings, candidateTimeout: candidateTimeout}
}

// WithRateLimiter returns a copy of r that waits on limiter before every upstream call.
// The wait happens outside the per-candidate timeout.
func (r *Resolver) WithRateLimiter(limiter ratelimiter.RateLimiterInterface) *Resolver {
	cp := *r
	cp.limiter = limiter
	return &cp
}

// pace blocks until the limiter admits one more upstream call.
func (r *Resolver) pace(ctx context.Context) error {
	if r.limiter == nil {
		return nil
	}
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("resolve eu listing: %w", err)
	}
	return nil
}

// Resolve returns the first candidate quoted with a positive EUR price.
// A Resolution without a quote is the normal "no EU listing" outcome and carries every tried symbol.
// The only errors are an invalid symbol, a provider configuration error and cancellation of ctx.
func (r *Resolver) Resolve(ctx context.Context, usSymbol string) (entity.Resolution, error) {
	sym, err := qusecase.NormalizeSymbol(usSymbol)
	if err != nil {
		return entity.Resolution{}, err
	}
	if err := r.lookup.CheckConfig(); err != nil {
		return entity.Resolution{}, err
	}

	res := entity.Resolution{USSymbol: sym}
	tried := make(map[string]struct{})

	for _, c := range BuildCandidates(r.mappings, sym) {
		tried[c.Symbol] = struct{}{}
		q, attempt, err := r.verify(ctx, c)
		res.Attempts = append(res.Attempts, attempt)
		if err != nil {
			return entity.Resolution{}, err
		}
		if q != nil {
			res.Quote = q
			r.logOutcome(res)
			return res, nil
		}
	}

	c, ok, err := r.nameSearchCandidate(ctx, sym, tried)
	if err != nil {
		return entity.Resolution{}, err
	}
	if ok {
		q, attempt, err := r.verify(ctx, c)
		res.Attempts = append(res.Attempts, attempt)
		if err != nil {
			return entity.Resolution{}, err
		}
		res.Quote = q
	}

	r.logOutcome(res)
	return res, nil
}

// verify looks c up in the German market. A non-nil error means resolution must stop.
func (r *Resolver) verify(ctx context.Context, c entity.Candidate) (*qentity.Quote, entity.Attempt, error) {
	attempt := entity.Attempt{Symbol: c.Symbol, Stage: c.Stage}
	if err := r.pace(ctx); err != nil {
		attempt.Outcome, attempt.Detail = entity.OutcomeError, err.Error()
		return nil, attempt, err
	}

	cctx, cancel := context.WithTimeout(ctx, r.candidateTimeout)
	quotes, err := r.lookup.GetQuotes(cctx, []string{c.Symbol}, qusecase.RegionDE)
	cancel()

	switch {
	case err != nil:
		attempt.Outcome, attempt.Detail = entity.OutcomeError, err.Error()
		if hard := r.hardFailure(ctx, err); hard != nil {
			return nil, attempt, hard
		}
	case len(quotes) == 0:
		attempt.Outcome, attempt.Detail = entity.OutcomeRejected, "no quote returned"
	case !quotes[0].HasEURPrice():
		q := quotes[0]
		attempt.Outcome = entity.OutcomeRejected
		attempt.Detail = fmt.Sprintf("price %v %s", q.Price, q.Currency)
	default:
		attempt.Outcome = entity.OutcomeFound
		q := quotes[0]
		slog.Debug("eu candidate", "symbol", c.Symbol, "stage", c.Stage, "outcome", attempt.Outcome)
		return &q, attempt, nil
	}

	slog.Debug("eu candidate", "symbol", c.Symbol, "stage", c.Stage, "outcome", attempt.Outcome, "detail", attempt.Detail)
	return nil, attempt, nil
}

// nameSearchCandidate searches the German market for the company's US display name and
// returns the first hit with a German exchange suffix that has not been tried yet.
// Lookup failures other than configuration errors mean "no fallback".
func (r *Resolver) nameSearchCandidate(ctx context.Context, sym string, tried map[string]struct{}) (entity.Candidate, bool, error) {
	if err := r.pace(ctx); err != nil {
		return entity.Candidate{}, false, err
	}
	qctx, cancel := context.WithTimeout(ctx, r.candidateTimeout)
	quotes, err := r.lookup.GetQuotes(qctx, []string{sym}, qusecase.RegionUS)
	cancel()
	if err != nil {
		slog.Debug("eu name fallback: us quote failed", "symbol", sym, "error", err)
		return entity.Candidate{}, false, r.hardFailure(ctx, err)
	}
	if len(quotes) == 0 {
		return entity.Candidate{}, false, nil
	}
	name := quotes[0].DisplayName()
	if name == "" {
		return entity.Candidate{}, false, nil
	}

	if err := r.pace(ctx); err != nil {
		return entity.Candidate{}, false, err
	}
	sctx, cancel := context.WithTimeout(ctx, r.candidateTimeout)
	hits, err := r.lookup.Search(sctx, name, qusecase.RegionDE)
	cancel()
	if err != nil {
		slog.Debug("eu name fallback: search failed", "symbol", sym, "query", name, "error", err)
		return entity.Candidate{}, false, r.hardFailure(ctx, err)
	}

	for _, h := range hits {
		s := strings.ToUpper(strings.TrimSpace(h.Symbol))
		if !domain.HasEUSuffix(s) {
			continue
		}
		if _, done := tried[s]; done {
			continue
		}
		return entity.Candidate{Symbol: s, Stage: entity.StageNameSearch}, true, nil
	}
	slog.Debug("eu name fallback: no german listing in search results", "symbol", sym, "query", name, "hits", len(hits))
	return entity.Candidate{}, false, nil
}

// hardFailure picks out the errors that abort resolution: configuration errors and
// cancellation of the caller's context. Per-candidate timeouts are not hard failures.
func (r *Resolver) hardFailure(ctx context.Context, err error) error {
	if errors.Is(err, qdomain.ErrProviderNotConfigured) {
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("resolve eu listing: %w", ctxErr)
	}
	return nil
}

func (r *Resolver) logOutcome(res entity.Resolution) {
	if res.Found() {
		slog.Info("eu listing resolved", "symbol", res.USSymbol, "eu_symbol", res.Quote.Symbol, "attempts", len(res.Attempts))
		return
	}
	slog.Info("no eu listing found", "symbol", res.USSymbol, "tried", res.Tried())
}
