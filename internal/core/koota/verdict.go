package koota

// Verdict is the banded reading of a total guna score
type Verdict string

// Verdict bands. Thresholds are part of the caller contract:
// <18 unfavorable, 18..24 acceptable, 25..32 good, 33..36 excellent
const (
	VerdictUnfavorable Verdict = "unfavorable"
	VerdictAcceptable  Verdict = "acceptable"
	VerdictGood        Verdict = "good"
	VerdictExcellent   Verdict = "excellent"
)

// VerdictOf bands a total guna score
func VerdictOf(total int) Verdict {
	switch {
	case total < 18:
		return VerdictUnfavorable
	case total <= 24:
		return VerdictAcceptable
	case total <= 32:
		return VerdictGood
	default:
		return VerdictExcellent
	}
}
