package chart

import "fmt"

// NakshatraAttr is the attribute tuple of one nakshatra
type NakshatraAttr struct {
	Gana Gana
	Nadi Nadi
	Yoni Yoni
}

// The classical 27-row table. Kept in one place on purpose: earlier renditions
// of this engine carried several renamed copies that drifted apart
var nakshatraAttrs = [NakshatraCount]NakshatraAttr{
	Ashwini:          {GanaDeva, NadiAadi, YoniHorse},
	Bharani:          {GanaManushya, NadiMadhya, YoniElephant},
	Krittika:         {GanaRakshasa, NadiAntya, YoniSheep},
	Rohini:           {GanaManushya, NadiAntya, YoniSerpent},
	Mrigashira:       {GanaDeva, NadiMadhya, YoniSerpent},
	Ardra:            {GanaManushya, NadiAadi, YoniDog},
	Punarvasu:        {GanaDeva, NadiAadi, YoniCat},
	Pushya:           {GanaDeva, NadiMadhya, YoniSheep},
	Ashlesha:         {GanaRakshasa, NadiAntya, YoniCat},
	Magha:            {GanaRakshasa, NadiAntya, YoniRat},
	PurvaPhalguni:    {GanaManushya, NadiMadhya, YoniRat},
	UttaraPhalguni:   {GanaManushya, NadiAadi, YoniCow},
	Hasta:            {GanaDeva, NadiAadi, YoniBuffalo},
	Chitra:           {GanaRakshasa, NadiMadhya, YoniTiger},
	Swati:            {GanaDeva, NadiAntya, YoniBuffalo},
	Vishakha:         {GanaRakshasa, NadiAntya, YoniTiger},
	Anuradha:         {GanaDeva, NadiMadhya, YoniDeer},
	Jyeshtha:         {GanaRakshasa, NadiAadi, YoniDeer},
	Mula:             {GanaRakshasa, NadiAadi, YoniDog},
	PurvaAshadha:     {GanaManushya, NadiMadhya, YoniMonkey},
	UttaraAshadha:    {GanaManushya, NadiAntya, YoniMongoose},
	Shravana:         {GanaDeva, NadiAntya, YoniMonkey},
	Dhanishta:        {GanaRakshasa, NadiMadhya, YoniLion},
	Shatabhisha:      {GanaRakshasa, NadiAadi, YoniHorse},
	PurvaBhadrapada:  {GanaManushya, NadiAadi, YoniLion},
	UttaraBhadrapada: {GanaManushya, NadiMadhya, YoniCow},
	Revati:           {GanaDeva, NadiAntya, YoniElephant},
}

// NakshatraAttributes returns the attribute tuple for n.
// Panics on an out-of-range index: callers reach this only through validated
// input, so a panic here is a library defect, not a runtime condition
func NakshatraAttributes(n Nakshatra) NakshatraAttr {
	if !n.Valid() {
		panic(fmt.Sprintf("chart: nakshatra index %d out of range", int(n)))
	}
	return nakshatraAttrs[n]
}

// RashiAttr is the attribute tuple of one rashi
type RashiAttr struct {
	Varna  Varna
	Lord   Graha
	Vashya VashyaGroup
}

var rashiAttrs = [RashiCount]RashiAttr{
	Aries:       {VarnaKshatriya, Mars, VashyaChatushpada},
	Taurus:      {VarnaVaishya, Venus, VashyaChatushpada},
	Gemini:      {VarnaShudra, Mercury, VashyaManava},
	Cancer:      {VarnaBrahmin, Moon, VashyaJalachara},
	Leo:         {VarnaKshatriya, Sun, VashyaVanachara},
	Virgo:       {VarnaVaishya, Mercury, VashyaManava},
	Libra:       {VarnaShudra, Venus, VashyaManava},
	Scorpio:     {VarnaBrahmin, Mars, VashyaKeeta},
	Sagittarius: {VarnaKshatriya, Jupiter, VashyaChatushpada},
	Capricorn:   {VarnaVaishya, Saturn, VashyaJalachara},
	Aquarius:    {VarnaShudra, Saturn, VashyaManava},
	Pisces:      {VarnaBrahmin, Jupiter, VashyaJalachara},
}

// RashiAttributes returns the attribute tuple for r.
// Panics on an out-of-range index (see NakshatraAttributes)
func RashiAttributes(r Rashi) RashiAttr {
	if !r.Valid() {
		panic(fmt.Sprintf("chart: rashi index %d out of range", int(r)))
	}
	return rashiAttrs[r]
}
