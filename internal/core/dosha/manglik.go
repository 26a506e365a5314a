// Package dosha implements Kuja (Manglik) dosha detection with its classical
// cancellation rules, and the Nadi dosha cancellation used by the aggregator.
// All functions are pure table/arithmetic checks over chart indices
package dosha

import "kundali/internal/core/chart"

// manglikHouses is the afflicted set: Mars in any of these houses flags the
// dosha
var manglikHouses = [13]bool{
	1: true, 2: true, 4: true, 7: true, 8: true, 12: true,
}

// IsManglikHouse reports whether a Mars position in h is afflicted
func IsManglikHouse(h chart.House) bool {
	if !h.Valid() {
		return false
	}
	return manglikHouses[h]
}

// RelativeHouse recounts a Lagna-referenced Mars position from another
// reference house (Moon or Venus)
func RelativeHouse(mars, ref chart.House) chart.House {
	return chart.House((int(mars)-int(ref)+chart.RashiCount)%chart.RashiCount + 1)
}

// Cancellation reports whether the dosha is nullified by Mars's dignity:
// own sign (Aries, Scorpio), exaltation (Capricorn), debilitation (Cancer —
// treated as a full cancellation here rather than a severity reduction), or
// Mars rising in the Lagna sign itself
func Cancellation(marsHouse chart.House, marsRashi, lagnaRashi chart.Rashi) bool {
	switch marsRashi {
	case chart.Aries, chart.Scorpio, chart.Capricorn, chart.Cancer:
		return true
	}
	return marsHouse == 1 && marsRashi == lagnaRashi
}

// Status is the per-person Manglik finding
type Status struct {
	// Raw is the pre-cancellation flag: Mars afflicted from the Lagna, the
	// Moon, or (when known) Venus — any one reference suffices
	Raw bool
	// Cancelled reports whether a cancellation rule applied
	Cancelled bool
	// Final is the post-cancellation status
	Final bool
}

// Analyze computes the Manglik status of one person. ok is false when the
// Mars position is unknown, in which case the status carries no meaning
func Analyze(p chart.Person) (Status, bool) {
	if !p.MarsHouse.Known() {
		return Status{}, false
	}

	raw := IsManglikHouse(p.MarsHouse) ||
		IsManglikHouse(RelativeHouse(p.MarsHouse, p.HouseOfRashi(p.MoonRashi)))
	if p.VenusHouse.Known() {
		raw = raw || IsManglikHouse(RelativeHouse(p.MarsHouse, p.VenusHouse))
	}

	st := Status{Raw: raw}
	if raw {
		st.Cancelled = Cancellation(p.MarsHouse, p.RashiOfHouse(p.MarsHouse), p.Ascendant)
		st.Final = !st.Cancelled
	}
	return st, true
}

// Match is the pair-level Manglik verdict
type Match struct {
	A, B Status
	// Compatible is true when the final statuses agree; mismatched statuses
	// are incompatible by definition
	Compatible bool
}

// MatchManglik analyzes both sides and compares final statuses. ok is false
// when either Mars position is unknown
func MatchManglik(a, b chart.Person) (Match, bool) {
	sa, okA := Analyze(a)
	sb, okB := Analyze(b)
	if !okA || !okB {
		return Match{}, false
	}
	return Match{A: sa, B: sb, Compatible: sa.Final == sb.Final}, true
}

// Penalty is the fixed score deduction callers may apply when final Manglik
// statuses differ. It adjusts an external relationship score only; it never
// gates the match
const Penalty = 8

// ManglikPenalty returns Penalty when the final statuses differ, else 0
func ManglikPenalty(manglikA, manglikB bool) int {
	if manglikA != manglikB {
		return Penalty
	}
	return 0
}
