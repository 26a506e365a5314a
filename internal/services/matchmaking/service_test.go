package matchmaking

import (
	"context"
	"testing"

	"kundali/internal/core/chart"
	"kundali/internal/core/milan"
	"kundali/internal/platform/config"
	perr "kundali/internal/platform/errors"
)

// ashwiniAries is the stock wire payload: moon in Ashwini/Aries, Aries
// ascendant, mars mahadasha
func ashwiniAries() PersonPayload {
	return PersonPayload{
		MoonNakshatra: int(chart.Ashwini),
		MoonRashi:     int(chart.Aries),
		Ascendant:     int(chart.Aries),
		DashaLord:     int(chart.Mars),
		SubDashaLord:  int(chart.Mars),
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("CORE_MATCH_WORKERS", "8")
	t.Setenv("CORE_MATCH_REJECT_POLICY", "rank_last")
	t.Setenv("CORE_MATCH_REJECT_SAME_NADI", "true")
	t.Setenv("CORE_MATCH_MIN_GUNA", "18")

	cfg := ConfigFromEnv(config.New())
	if cfg.Workers != 8 {
		t.Fatalf("workers = %d, want 8", cfg.Workers)
	}
	if cfg.RejectPolicy != milan.RejectRankLast {
		t.Fatalf("policy = %v, want rank_last", cfg.RejectPolicy)
	}
	if !cfg.RejectSameNadi {
		t.Fatal("reject_same_nadi not read")
	}
	if cfg.MinGuna != 18 {
		t.Fatalf("min_guna = %d, want 18", cfg.MinGuna)
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	cfg := ConfigFromEnv(config.New())
	if cfg.Workers != 4 || cfg.RejectPolicy != milan.RejectExclude ||
		cfg.RejectSameNadi || cfg.MinGuna != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestMatchPair(t *testing.T) {
	svc := New(Config{})
	res, err := svc.MatchPair(context.Background(), PairRequest{
		A: ashwiniAries(),
		B: ashwiniAries(),
	})
	if err != nil {
		t.Fatalf("MatchPair: %v", err)
	}
	if res.TotalGuna != 25 {
		t.Fatalf("total = %d, want 25", res.TotalGuna)
	}
}

func TestMatchPairWireValidation(t *testing.T) {
	bad := ashwiniAries()
	bad.MoonNakshatra = 33

	_, err := New(Config{}).MatchPair(context.Background(), PairRequest{
		A: bad,
		B: ashwiniAries(),
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("code = %v, want validation", perr.CodeOf(err))
	}
	if perr.FieldOf(err) != "moon_nakshatra" {
		t.Fatalf("field = %q, want moon_nakshatra", perr.FieldOf(err))
	}
}

func TestMatchBatchAssignsIDs(t *testing.T) {
	other := ashwiniAries()
	other.MoonNakshatra = int(chart.Bharani)

	report, err := New(Config{Workers: 2}).MatchBatch(context.Background(), BatchRequest{
		Subject: ashwiniAries(),
		Candidates: []CandidatePayload{
			{Person: other},
			{ID: "named", Person: other},
		},
	})
	if err != nil {
		t.Fatalf("MatchBatch: %v", err)
	}
	if report.RunID == "" {
		t.Fatal("run id not stamped")
	}
	if len(report.Pairs) != 2 {
		t.Fatalf("pairs = %d, want 2", len(report.Pairs))
	}
	named := false
	for _, p := range report.Pairs {
		if p.CandidateID == "" {
			t.Fatal("candidate id not assigned")
		}
		if p.CandidateID == "named" {
			named = true
		}
	}
	if !named {
		t.Fatal("caller-supplied id was replaced")
	}
}

func TestMatchBatchEmptyCandidates(t *testing.T) {
	_, err := New(Config{}).MatchBatch(context.Background(), BatchRequest{
		Subject: ashwiniAries(),
	})
	if err == nil {
		t.Fatal("expected validation error for empty candidate list")
	}
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("code = %v, want validation", perr.CodeOf(err))
	}
}

func TestMatchBatchMinGuna(t *testing.T) {
	strong := ashwiniAries()
	strong.MoonNakshatra = int(chart.Bharani) // scores 33 against the subject

	weak := ashwiniAries()
	weak.MoonNakshatra = int(chart.Pushya)
	weak.MoonRashi = int(chart.Cancer)
	weak.Ascendant = int(chart.Cancer) // scores 28

	report, err := New(Config{MinGuna: 30}).MatchBatch(context.Background(), BatchRequest{
		Subject: ashwiniAries(),
		Candidates: []CandidatePayload{
			{ID: "strong", Person: strong},
			{ID: "weak", Person: weak},
		},
	})
	if err != nil {
		t.Fatalf("MatchBatch: %v", err)
	}
	if report.BelowMinGuna != 1 {
		t.Fatalf("below_min_guna = %d, want 1", report.BelowMinGuna)
	}
	if len(report.Pairs) != 1 || report.Pairs[0].CandidateID != "strong" {
		t.Fatalf("floor kept %+v, want only strong", report.Pairs)
	}
	// the floor trims the report, not the run accounting
	if report.TotalPairs != 2 {
		t.Fatalf("total_pairs = %d, want 2", report.TotalPairs)
	}
}

func TestMatchBatchSameNadiFromConfig(t *testing.T) {
	sameNadi := ashwiniAries()
	sameNadi.MoonNakshatra = int(chart.Ardra) // aadi, like the subject

	report, err := New(Config{
		RejectSameNadi: true,
		RejectPolicy:   milan.RejectRankLast,
	}).MatchBatch(context.Background(), BatchRequest{
		Subject: ashwiniAries(),
		Candidates: []CandidatePayload{
			{ID: "nadi-clash", Person: sameNadi},
		},
	})
	if err != nil {
		t.Fatalf("MatchBatch: %v", err)
	}
	if report.EarlyRejections != 1 {
		t.Fatalf("early_rejections = %d, want 1", report.EarlyRejections)
	}
	if len(report.Pairs) != 1 || !report.Pairs[0].Rejected {
		t.Fatalf("rank-last pair missing: %+v", report.Pairs)
	}
}
