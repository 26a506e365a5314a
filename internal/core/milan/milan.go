// Package milan is the match orchestrator: it validates a pair of chart
// slices, runs the eight koota factors, bands the total, and applies the
// dosha analysis when the optional inputs allow. Everything here is pure and
// deterministic; identical inputs always produce identical results
package milan

import (
	"fmt"

	"kundali/internal/core/chart"
	"kundali/internal/core/dosha"
	"kundali/internal/core/koota"
)

// Tri is a three-valued flag: unknown until the inputs required to compute
// it are present. Unknown is never coerced to false
type Tri int

// Tri values; the zero value is unknown
const (
	TriUnknown Tri = iota
	TriNo
	TriYes
)

var triNames = [3]string{"unknown", "no", "yes"}

func (t Tri) String() string {
	if t < 0 || int(t) >= len(triNames) {
		return fmt.Sprintf("Tri(%d)", int(t))
	}
	return triNames[t]
}

// MarshalJSON encodes the flag as "yes"/"no"/"unknown"
func (t Tri) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// triOf lifts a computed bool into the Tri domain
func triOf(b bool) Tri {
	if b {
		return TriYes
	}
	return TriNo
}

// DoshaFlags carries the three dosha findings
type DoshaFlags struct {
	Manglik Tri `json:"manglik"`
	Nadi    Tri `json:"nadi"`
	Bhakoot Tri `json:"bhakoot"`
}

// CompatibilityFlags carries the derived pair-level findings
type CompatibilityFlags struct {
	SexualIncompatibility Tri `json:"sexual_incompatibility"`
	SevereNadiDosha       Tri `json:"severe_nadi_dosha"`
	DashaConflict         Tri `json:"dasha_conflict"`
	DashaGrowth           Tri `json:"dasha_growth"`
}

// MatchResult is the full outcome of one pair computation. It is assembled
// once and never mutated
type MatchResult struct {
	Scores    koota.Vector  `json:"scores"`
	TotalGuna int           `json:"total_guna"`
	Verdict   koota.Verdict `json:"verdict"`

	Dosha DoshaFlags         `json:"dosha"`
	Flags CompatibilityFlags `json:"flags"`

	// ManglikCompatible is the pair-level Manglik verdict (unknown when
	// either Mars position is absent); mismatched statuses are incompatible
	ManglikCompatible Tri `json:"manglik_compatible"`

	// Warnings names the optional inputs that were absent, per side, and the
	// flags downgraded because of them
	Warnings []string `json:"warnings,omitempty"`
}

// Match computes the full compatibility result for a pair. a is the
// groom-analog side by caller contract. The only error condition is a
// mandatory field outside its domain; there is no partial result
func Match(a, b chart.Person) (MatchResult, error) {
	if err := a.Validate(); err != nil {
		return MatchResult{}, err
	}
	if err := b.Validate(); err != nil {
		return MatchResult{}, err
	}

	scores := koota.Score(a, b)
	total := scores.Total()

	res := MatchResult{
		Scores:    scores,
		TotalGuna: total,
		Verdict:   koota.VerdictOf(total),
	}

	nadiDosha := scores.Nadi == 0
	res.Dosha.Nadi = triOf(nadiDosha)
	res.Dosha.Bhakoot = triOf(scores.Bhakoot == 0)

	res.Flags.SexualIncompatibility = triOf(
		koota.YoniRelationOf(a.MoonNakshatra, b.MoonNakshatra) == koota.YoniEnemy)
	res.Flags.SevereNadiDosha = triOf(nadiDosha && !dosha.NadiCancellation(a, b))

	res.Flags.DashaConflict = triOf(
		chart.Friendship(a.DashaLord, b.DashaLord) == chart.RelationEnemy &&
			chart.Friendship(b.DashaLord, a.DashaLord) == chart.RelationEnemy ||
			chart.Friendship(a.SubDashaLord, b.SubDashaLord) == chart.RelationEnemy &&
				chart.Friendship(b.SubDashaLord, a.SubDashaLord) == chart.RelationEnemy)
	res.Flags.DashaGrowth = triOf(
		chart.Friendship(a.DashaLord, b.DashaLord) == chart.RelationFriend &&
			chart.Friendship(b.DashaLord, a.DashaLord) == chart.RelationFriend)

	// non-fatal: absent optional inputs are surfaced, not defaulted
	for _, side := range []struct {
		tag string
		p   chart.Person
	}{{"a", a}, {"b", b}} {
		for _, f := range side.p.MissingOptional() {
			res.Warnings = append(res.Warnings, side.tag+"."+f+" missing")
		}
	}

	if m, ok := dosha.MatchManglik(a, b); ok {
		res.Dosha.Manglik = triOf(m.A.Final || m.B.Final)
		res.ManglikCompatible = triOf(m.Compatible)
	} else {
		// leave the Manglik findings unknown rather than guessing
		res.Warnings = append(res.Warnings, "manglik not computed")
	}

	return res, nil
}
