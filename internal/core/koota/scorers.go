package koota

import (
	"fmt"

	"kundali/internal/core/chart"
)

// VarnaScore awards 1 when a's varna rank is at least b's. a is the
// groom-analog side; the asymmetry is deliberate and classical
func VarnaScore(a, b chart.Rashi) int {
	if chart.RashiAttributes(a).Varna >= chart.RashiAttributes(b).Varna {
		return MaxVarna
	}
	return 0
}

// VashyaScore scores the mutual magnetism of the two moon signs from their
// vashya groups: same group 2, the Leo/quadruped predator pairing 0, any
// other cross-group pairing 1. Symmetric by construction
func VashyaScore(a, b chart.Rashi) int {
	ga := chart.RashiAttributes(a).Vashya
	gb := chart.RashiAttributes(b).Vashya
	if ga == gb {
		return MaxVashya
	}
	if (ga == chart.VashyaVanachara && gb == chart.VashyaChatushpada) ||
		(gb == chart.VashyaVanachara && ga == chart.VashyaChatushpada) {
		return 0
	}
	return 1
}

// TaraBala is the named tara category of a nakshatra distance
type TaraBala int

// Tara categories indexed by cyclic distance mod 9
const (
	TaraJanma TaraBala = iota
	TaraSampat
	TaraVipat
	TaraKshema
	TaraPratyak
	TaraSadhaka
	TaraNaidhana
	TaraMitra
	TaraParamaMitra
)

var taraNames = [9]string{
	"Janma", "Sampat", "Vipat", "Kshema", "Pratyak",
	"Sadhaka", "Naidhana", "Mitra", "Parama Mitra",
}

func (t TaraBala) String() string {
	if t < 0 || int(t) >= len(taraNames) {
		return fmt.Sprintf("TaraBala(%d)", int(t))
	}
	return taraNames[t]
}

// Auspicious reports whether the category scores. Janma, Vipat, Pratyak and
// Naidhana are the inauspicious four; this set is fixed here once — older
// material disagrees about Janma and this engine counts it inauspicious
func (t TaraBala) Auspicious() bool {
	switch t {
	case TaraJanma, TaraVipat, TaraPratyak, TaraNaidhana:
		return false
	default:
		return true
	}
}

// TaraBalaOf computes the category of a's nakshatra counted from b's
func TaraBalaOf(a, b chart.Nakshatra) TaraBala {
	if !a.Valid() || !b.Valid() {
		panic(fmt.Sprintf("koota: nakshatra index out of range (%d, %d)", int(a), int(b)))
	}
	d := (int(a) - int(b) + chart.NakshatraCount) % chart.NakshatraCount
	return TaraBala(d % 9)
}

// TaraScore is 3 for an auspicious tara category and 0 otherwise
func TaraScore(a, b chart.Nakshatra) int {
	if TaraBalaOf(a, b).Auspicious() {
		return MaxTara
	}
	return 0
}

// YoniRelation classifies a yoni pairing
type YoniRelation int

// Yoni relationship classes; the numeric value doubles as the score
const (
	YoniEnemy YoniRelation = iota
	YoniUnfriendly
	YoniNeutral
	YoniFriendly
	YoniSame
)

var yoniRelationNames = [5]string{"enemy", "unfriendly", "neutral", "friendly", "same"}

func (y YoniRelation) String() string {
	if y < 0 || int(y) >= len(yoniRelationNames) {
		return fmt.Sprintf("YoniRelation(%d)", int(y))
	}
	return yoniRelationNames[y]
}

// YoniRelationOf looks up the symmetric animal-nature pairing of the two
// nakshatras
func YoniRelationOf(a, b chart.Nakshatra) YoniRelation {
	ya := chart.NakshatraAttributes(a).Yoni
	yb := chart.NakshatraAttributes(b).Yoni
	return YoniRelation(yoniMatrix[ya][yb])
}

// YoniScore is the 0..4 value of the pairing class
func YoniScore(a, b chart.Nakshatra) int {
	return int(YoniRelationOf(a, b))
}

// MaitriKind is the mutual category of the two moon-sign lords
type MaitriKind int

// Maitri categories
const (
	MaitriMutualEnemy MaitriKind = iota
	MaitriMixed
	MaitriMutualNeutral
	MaitriOneSided
	MaitriMutualFriend
)

var maitriNames = [5]string{
	"mutual-enemy", "mixed", "mutual-neutral", "one-sided", "mutual-friend",
}

func (m MaitriKind) String() string {
	if m < 0 || int(m) >= len(maitriNames) {
		return fmt.Sprintf("MaitriKind(%d)", int(m))
	}
	return maitriNames[m]
}

// maitriScores is the fixed category -> score mapping
var maitriScores = [5]int{
	MaitriMutualEnemy:   0,
	MaitriMixed:         1,
	MaitriMutualNeutral: 3,
	MaitriOneSided:      4,
	MaitriMutualFriend:  MaxGrahaMaitri,
}

// MaitriKindOf combines the two directed lord relations into one mutual
// category. A shared lord is a mutual friend. "Mixed" covers every pairing
// where exactly one direction is inimical; two inimical directions are a
// mutual enemy
func MaitriKindOf(a, b chart.Rashi) MaitriKind {
	la := chart.RashiAttributes(a).Lord
	lb := chart.RashiAttributes(b).Lord
	ab := chart.Friendship(la, lb)
	ba := chart.Friendship(lb, la)

	switch {
	case ab == chart.RelationFriend && ba == chart.RelationFriend:
		return MaitriMutualFriend
	case ab == chart.RelationEnemy && ba == chart.RelationEnemy:
		return MaitriMutualEnemy
	case ab == chart.RelationEnemy || ba == chart.RelationEnemy:
		return MaitriMixed
	case ab == chart.RelationNeutral && ba == chart.RelationNeutral:
		return MaitriMutualNeutral
	default:
		return MaitriOneSided
	}
}

// GrahaMaitriScore maps the mutual lord category to its 0..5 score
func GrahaMaitriScore(a, b chart.Rashi) int {
	return maitriScores[MaitriKindOf(a, b)]
}

// ganaScores is the symmetric canonical gana table. The long-disputed
// Manushya/Rakshasa cell is fixed at 1, matching the Deva/Rakshasa cell
var ganaScores = [3][3]int{
	chart.GanaDeva:     {chart.GanaDeva: MaxGana, chart.GanaManushya: 5, chart.GanaRakshasa: 1},
	chart.GanaManushya: {chart.GanaDeva: 5, chart.GanaManushya: MaxGana, chart.GanaRakshasa: 1},
	chart.GanaRakshasa: {chart.GanaDeva: 1, chart.GanaManushya: 1, chart.GanaRakshasa: MaxGana},
}

// GanaScore scores temperament agreement between the two nakshatras
func GanaScore(a, b chart.Nakshatra) int {
	ga := chart.NakshatraAttributes(a).Gana
	gb := chart.NakshatraAttributes(b).Gana
	return ganaScores[ga][gb]
}

// bhakootBad is the canonical bad-distance set: the 2/12, 5/9 and 6/8 sign
// pairings in both directions. Opposition (distance 6, the 7/7 pairing) is
// auspicious and deliberately absent
var bhakootBad = [chart.RashiCount]bool{
	1: true, 4: true, 5: true, 7: true, 8: true, 11: true,
}

// BhakootScore is 0 when the cyclic sign distance falls in the bad set and 7
// otherwise. Symmetric because the bad set is closed under d -> 12-d
func BhakootScore(a, b chart.Rashi) int {
	if !a.Valid() || !b.Valid() {
		panic(fmt.Sprintf("koota: rashi index out of range (%d, %d)", int(a), int(b)))
	}
	d := (int(a) - int(b) + chart.RashiCount) % chart.RashiCount
	if bhakootBad[d] {
		return 0
	}
	return MaxBhakoot
}

// NadiScore is 0 when both sides share a nadi (the dosha) and 8 otherwise
func NadiScore(a, b chart.Nakshatra) int {
	if chart.NakshatraAttributes(a).Nadi == chart.NakshatraAttributes(b).Nadi {
		return 0
	}
	return MaxNadi
}
