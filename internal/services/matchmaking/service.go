// Package matchmaking wraps the pure milan core with configuration, logging
// and wire validation. The core stays free of I/O; everything operational
// lives here
package matchmaking

import (
	"context"

	"github.com/google/uuid"

	"kundali/internal/core/milan"
	"kundali/internal/platform/bind"
	"kundali/internal/platform/logger"
)

// Service runs pair and batch matches for wire payloads
type Service struct {
	cfg Config
	log *logger.Logger
}

// New constructs a matchmaking service. Zero or negative worker counts are
// clamped to 1
func New(cfg Config) *Service {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Service{cfg: cfg, log: logger.Named("matchmaking")}
}

// BatchReport is the batch outcome plus run metadata
type BatchReport struct {
	RunID string `json:"run_id"`
	milan.BatchResult
	// BelowMinGuna counts ranked pairs dropped by the MinGuna floor
	BelowMinGuna int `json:"below_min_guna,omitempty"`
}

// MatchPair validates the payload and computes one pair result
func (s *Service) MatchPair(ctx context.Context, req PairRequest) (milan.MatchResult, error) {
	runID := uuid.NewString()
	ctx = logger.WithRun(ctx, runID, "")

	if err := bind.Validate(req); err != nil {
		logger.C(ctx).Warn().Err(err).Msg("pair payload rejected")
		return milan.MatchResult{}, err
	}

	res, err := milan.Match(req.A.ToPerson(), req.B.ToPerson())
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("pair match failed")
		return milan.MatchResult{}, err
	}

	logger.C(ctx).Info().
		Int("total_guna", res.TotalGuna).
		Str("verdict", string(res.Verdict)).
		Int("warnings", len(res.Warnings)).
		Msg("pair matched")
	return res, nil
}

// MatchBatch validates the payload, stamps missing candidate ids, and runs
// the ranked batch under the configured policy
func (s *Service) MatchBatch(ctx context.Context, req BatchRequest) (BatchReport, error) {
	runID := uuid.NewString()
	ctx = logger.WithRun(ctx, runID, "")

	if err := bind.Validate(req); err != nil {
		logger.C(ctx).Warn().Err(err).Msg("batch payload rejected")
		return BatchReport{}, err
	}

	candidates := make([]milan.Candidate, len(req.Candidates))
	for i, c := range req.Candidates {
		id := c.ID
		if id == "" {
			id = uuid.NewString()
		}
		candidates[i] = milan.Candidate{ID: id, Person: c.Person.ToPerson()}
	}

	var reject milan.Predicate
	if s.cfg.RejectSameNadi {
		reject = milan.SameNadi
	}

	res, err := milan.Batch(req.Subject.ToPerson(), candidates, milan.BatchOptions{
		Reject:  reject,
		Policy:  s.cfg.RejectPolicy,
		Workers: s.cfg.Workers,
	})
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("batch match failed")
		return BatchReport{}, err
	}

	report := BatchReport{RunID: runID, BatchResult: res}
	if s.cfg.MinGuna > 0 {
		kept := report.Pairs[:0]
		for _, p := range report.Pairs {
			if p.Result != nil && p.Result.TotalGuna < s.cfg.MinGuna {
				report.BelowMinGuna++
				continue
			}
			kept = append(kept, p)
		}
		report.Pairs = kept
	}

	logger.C(ctx).Info().
		Int("total_pairs", report.TotalPairs).
		Int("early_rejections", report.EarlyRejections).
		Int("below_min_guna", report.BelowMinGuna).
		Str("policy", s.cfg.RejectPolicy.String()).
		Msg("batch matched")
	return report, nil
}
