package dosha

import "kundali/internal/core/chart"

// NadiCancellation reports whether a present Nadi dosha is nullified:
// the pair shares a moon sign with different nakshatras, or shares a
// nakshatra with different moon signs
func NadiCancellation(a, b chart.Person) bool {
	sameRashi := a.MoonRashi == b.MoonRashi
	sameNakshatra := a.MoonNakshatra == b.MoonNakshatra
	if sameRashi && !sameNakshatra {
		return true
	}
	if sameNakshatra && !sameRashi {
		return true
	}
	return false
}
