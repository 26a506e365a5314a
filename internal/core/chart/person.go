package chart

import (
	perr "kundali/internal/platform/errors"
)

// Person is the chart slice this engine consumes. It is produced by an
// external ephemeris calculator and treated as immutable here.
// MoonNakshatra, MoonRashi, Ascendant and the two dasha lords are mandatory;
// the planetary houses are optional (HouseUnknown when absent)
type Person struct {
	MoonNakshatra Nakshatra
	MoonRashi     Rashi
	Ascendant     Rashi

	MarsHouse    House
	JupiterHouse House
	VenusHouse   House
	SaturnHouse  House

	DashaLord    Graha
	SubDashaLord Graha
}

// Validate checks every field against its declared domain and returns a
// Validation error naming the first offending field, or nil.
// Optional houses are checked only when supplied
func (p Person) Validate() error {
	if !p.MoonNakshatra.Valid() {
		return perr.Validationf("moon_nakshatra", "nakshatra index %d out of range 0..26", int(p.MoonNakshatra))
	}
	if !p.MoonRashi.Valid() {
		return perr.Validationf("moon_rashi", "rashi index %d out of range 0..11", int(p.MoonRashi))
	}
	if !p.Ascendant.Valid() {
		return perr.Validationf("ascendant", "rashi index %d out of range 0..11", int(p.Ascendant))
	}
	for _, f := range []struct {
		name string
		h    House
	}{
		{"mars_house", p.MarsHouse},
		{"jupiter_house", p.JupiterHouse},
		{"venus_house", p.VenusHouse},
		{"saturn_house", p.SaturnHouse},
	} {
		if f.h.Known() && !f.h.Valid() {
			return perr.Validationf(f.name, "house position %d out of range 1..12", int(f.h))
		}
	}
	if !p.DashaLord.Valid() {
		return perr.Validationf("dasha_lord", "graha index %d out of range 0..8", int(p.DashaLord))
	}
	if !p.SubDashaLord.Valid() {
		return perr.Validationf("sub_dasha_lord", "graha index %d out of range 0..8", int(p.SubDashaLord))
	}
	return nil
}

// MissingOptional lists the optional house fields that were not supplied,
// in declaration order. Callers surface these as incomplete-input warnings
func (p Person) MissingOptional() []string {
	var out []string
	if !p.MarsHouse.Known() {
		out = append(out, "mars_house")
	}
	if !p.JupiterHouse.Known() {
		out = append(out, "jupiter_house")
	}
	if !p.VenusHouse.Known() {
		out = append(out, "venus_house")
	}
	if !p.SaturnHouse.Known() {
		out = append(out, "saturn_house")
	}
	return out
}

// RashiOfHouse resolves a whole-sign house position to the rashi it falls in
// for this person's ascendant
func (p Person) RashiOfHouse(h House) Rashi {
	return Rashi((int(p.Ascendant) + int(h) - 1) % RashiCount)
}

// HouseOfRashi is the inverse: the house (from the ascendant) a rashi
// occupies in this chart
func (p Person) HouseOfRashi(r Rashi) House {
	return House((int(r)-int(p.Ascendant)+RashiCount)%RashiCount + 1)
}
