// Package koota implements the eight Ashtakoota compatibility factors over
// moon-chart indices. Every scorer is a pure O(1) table lookup; side A is the
// groom-analog by caller contract (only Varna is sensitive to it)
package koota

import "kundali/internal/core/chart"

// Per-factor maxima and the 36-point total
const (
	MaxVarna       = 1
	MaxVashya      = 2
	MaxTara        = 3
	MaxYoni        = 4
	MaxGrahaMaitri = 5
	MaxGana        = 6
	MaxBhakoot     = 7
	MaxNadi        = 8
	MaxTotal       = 36
)

// Vector holds the eight subscores of one match. The total is always derived
// via Total(), never stored
type Vector struct {
	Varna       int `json:"varna"`
	Vashya      int `json:"vashya"`
	Tara        int `json:"tara"`
	Yoni        int `json:"yoni"`
	GrahaMaitri int `json:"graha_maitri"`
	Gana        int `json:"gana"`
	Bhakoot     int `json:"bhakoot"`
	Nadi        int `json:"nadi"`
}

// Total sums the eight subscores (0..36)
func (v Vector) Total() int {
	return v.Varna + v.Vashya + v.Tara + v.Yoni + v.GrahaMaitri + v.Gana + v.Bhakoot + v.Nadi
}

// Score runs all eight factors for the pair. a is the groom-analog side
func Score(a, b chart.Person) Vector {
	return Vector{
		Varna:       VarnaScore(a.MoonRashi, b.MoonRashi),
		Vashya:      VashyaScore(a.MoonRashi, b.MoonRashi),
		Tara:        TaraScore(a.MoonNakshatra, b.MoonNakshatra),
		Yoni:        YoniScore(a.MoonNakshatra, b.MoonNakshatra),
		GrahaMaitri: GrahaMaitriScore(a.MoonRashi, b.MoonRashi),
		Gana:        GanaScore(a.MoonNakshatra, b.MoonNakshatra),
		Bhakoot:     BhakootScore(a.MoonRashi, b.MoonRashi),
		Nadi:        NadiScore(a.MoonNakshatra, b.MoonNakshatra),
	}
}
