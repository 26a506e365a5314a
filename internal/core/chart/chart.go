// Package chart defines the finite index domains of a Vedic birth chart and
// the frozen attribute tables over them. Every accessor is total for valid
// indices; an out-of-range index is a programming defect and panics
package chart

import "fmt"

// Nakshatra is one of the 27 lunar divisions (0..26)
type Nakshatra int

// Nakshatra indices in zodiacal order starting at Ashwini
const (
	Ashwini Nakshatra = iota
	Bharani
	Krittika
	Rohini
	Mrigashira
	Ardra
	Punarvasu
	Pushya
	Ashlesha
	Magha
	PurvaPhalguni
	UttaraPhalguni
	Hasta
	Chitra
	Swati
	Vishakha
	Anuradha
	Jyeshtha
	Mula
	PurvaAshadha
	UttaraAshadha
	Shravana
	Dhanishta
	Shatabhisha
	PurvaBhadrapada
	UttaraBhadrapada
	Revati
)

// NakshatraCount is the size of the nakshatra domain
const NakshatraCount = 27

var nakshatraNames = [NakshatraCount]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha",
	"Jyeshtha", "Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana",
	"Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada",
	"Revati",
}

// Valid reports whether n is inside the nakshatra domain
func (n Nakshatra) Valid() bool { return n >= 0 && n < NakshatraCount }

func (n Nakshatra) String() string {
	if !n.Valid() {
		return fmt.Sprintf("Nakshatra(%d)", int(n))
	}
	return nakshatraNames[n]
}

// Rashi is one of the 12 zodiac signs (0..11)
type Rashi int

// Rashi indices in zodiacal order starting at Aries
const (
	Aries Rashi = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// RashiCount is the size of the rashi domain
const RashiCount = 12

var rashiNames = [RashiCount]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Valid reports whether r is inside the rashi domain
func (r Rashi) Valid() bool { return r >= 0 && r < RashiCount }

func (r Rashi) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rashi(%d)", int(r))
	}
	return rashiNames[r]
}

// Graha is one of the nine classical planets (0..8). The leading seven are
// the non-nodal planets used for sign rulership; Rahu and Ketu appear only
// as dasha lords
type Graha int

// Graha indices
const (
	Sun Graha = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu
	Ketu
)

// GrahaCount is the size of the graha domain; NonNodalGrahaCount covers the
// seven planets that rule signs
const (
	GrahaCount         = 9
	NonNodalGrahaCount = 7
)

var grahaNames = [GrahaCount]string{
	"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "Rahu", "Ketu",
}

// Valid reports whether g is inside the graha domain
func (g Graha) Valid() bool { return g >= 0 && g < GrahaCount }

func (g Graha) String() string {
	if !g.Valid() {
		return fmt.Sprintf("Graha(%d)", int(g))
	}
	return grahaNames[g]
}

// House is a whole-sign house position counted from the ascendant (1..12).
// The zero value marks an absent optional position
type House int

// HouseUnknown is the zero value for optional house fields
const HouseUnknown House = 0

// Valid reports whether h is a concrete house position
func (h House) Valid() bool { return h >= 1 && h <= 12 }

// Known reports whether the optional position was supplied
func (h House) Known() bool { return h != HouseUnknown }

// Gana is the temperament category of a nakshatra
type Gana int

// Gana values
const (
	GanaDeva Gana = iota
	GanaManushya
	GanaRakshasa
)

var ganaNames = [3]string{"Deva", "Manushya", "Rakshasa"}

func (g Gana) String() string {
	if g < 0 || int(g) >= len(ganaNames) {
		return fmt.Sprintf("Gana(%d)", int(g))
	}
	return ganaNames[g]
}

// Nadi is the humor/pulse category of a nakshatra
type Nadi int

// Nadi values
const (
	NadiAadi Nadi = iota
	NadiMadhya
	NadiAntya
)

var nadiNames = [3]string{"Aadi", "Madhya", "Antya"}

func (n Nadi) String() string {
	if n < 0 || int(n) >= len(nadiNames) {
		return fmt.Sprintf("Nadi(%d)", int(n))
	}
	return nadiNames[n]
}

// Varna is the hierarchy category of a rashi; the numeric value is the rank
// (Shudra lowest, Brahmin highest)
type Varna int

// Varna values in ascending rank order
const (
	VarnaShudra Varna = iota
	VarnaVaishya
	VarnaKshatriya
	VarnaBrahmin
)

var varnaNames = [4]string{"Shudra", "Vaishya", "Kshatriya", "Brahmin"}

func (v Varna) String() string {
	if v < 0 || int(v) >= len(varnaNames) {
		return fmt.Sprintf("Varna(%d)", int(v))
	}
	return varnaNames[v]
}

// Yoni is the symbolic animal nature of a nakshatra (14 animals)
type Yoni int

// Yoni values
const (
	YoniHorse Yoni = iota
	YoniElephant
	YoniSheep
	YoniSerpent
	YoniDog
	YoniCat
	YoniRat
	YoniCow
	YoniBuffalo
	YoniTiger
	YoniDeer
	YoniMonkey
	YoniMongoose
	YoniLion
)

// YoniCount is the size of the yoni domain
const YoniCount = 14

var yoniNames = [YoniCount]string{
	"Horse", "Elephant", "Sheep", "Serpent", "Dog", "Cat", "Rat",
	"Cow", "Buffalo", "Tiger", "Deer", "Monkey", "Mongoose", "Lion",
}

func (y Yoni) String() string {
	if y < 0 || y >= YoniCount {
		return fmt.Sprintf("Yoni(%d)", int(y))
	}
	return yoniNames[y]
}

// VashyaGroup is the magnetism/control class of a rashi
type VashyaGroup int

// VashyaGroup values
const (
	VashyaChatushpada VashyaGroup = iota // quadruped
	VashyaManava                         // human
	VashyaJalachara                      // water-dwelling
	VashyaVanachara                      // wild (Leo alone)
	VashyaKeeta                          // insect (Scorpio alone)
)

var vashyaNames = [5]string{"Chatushpada", "Manava", "Jalachara", "Vanachara", "Keeta"}

func (v VashyaGroup) String() string {
	if v < 0 || int(v) >= len(vashyaNames) {
		return fmt.Sprintf("VashyaGroup(%d)", int(v))
	}
	return vashyaNames[v]
}
