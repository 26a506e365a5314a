package chart

import (
	"testing"

	kit "kundali/internal/platform/testkit"
)

func TestNakshatraAttributesTotality(t *testing.T) {
	ganaCount := map[Gana]int{}
	nadiCount := map[Nadi]int{}
	yoniCount := map[Yoni]int{}

	for n := Nakshatra(0); n < NakshatraCount; n++ {
		var a NakshatraAttr
		kit.MustNotPanic(t, func() { a = NakshatraAttributes(n) })
		if a.Gana < GanaDeva || a.Gana > GanaRakshasa {
			t.Fatalf("%v: gana %d outside enum", n, a.Gana)
		}
		if a.Nadi < NadiAadi || a.Nadi > NadiAntya {
			t.Fatalf("%v: nadi %d outside enum", n, a.Nadi)
		}
		if a.Yoni < 0 || a.Yoni >= YoniCount {
			t.Fatalf("%v: yoni %d outside enum", n, a.Yoni)
		}
		ganaCount[a.Gana]++
		nadiCount[a.Nadi]++
		yoniCount[a.Yoni]++
	}

	// classical distribution: nine nakshatras per gana and per nadi
	for g, c := range ganaCount {
		if c != 9 {
			t.Fatalf("gana %v has %d members, want 9", g, c)
		}
	}
	for n, c := range nadiCount {
		if c != 9 {
			t.Fatalf("nadi %v has %d members, want 9", n, c)
		}
	}
	// every yoni animal appears, mongoose alone, the rest paired
	if yoniCount[YoniMongoose] != 1 {
		t.Fatalf("mongoose count = %d, want 1", yoniCount[YoniMongoose])
	}
	for y := Yoni(0); y < YoniCount; y++ {
		if y == YoniMongoose {
			continue
		}
		if yoniCount[y] != 2 {
			t.Fatalf("yoni %v count = %d, want 2", y, yoniCount[y])
		}
	}
}

func TestRashiAttributesTotality(t *testing.T) {
	varnaCount := map[Varna]int{}
	for r := Rashi(0); r < RashiCount; r++ {
		var a RashiAttr
		kit.MustNotPanic(t, func() { a = RashiAttributes(r) })
		if a.Varna < VarnaShudra || a.Varna > VarnaBrahmin {
			t.Fatalf("%v: varna %d outside enum", r, a.Varna)
		}
		if !a.Lord.Valid() || a.Lord >= Rahu {
			t.Fatalf("%v: lord %v is not a non-nodal planet", r, a.Lord)
		}
		varnaCount[a.Varna]++
	}
	// three signs per varna (fire, earth, air, water triplicities)
	for v, c := range varnaCount {
		if c != 3 {
			t.Fatalf("varna %v has %d signs, want 3", v, c)
		}
	}
}

func TestRashiLords(t *testing.T) {
	want := map[Rashi]Graha{
		Aries: Mars, Taurus: Venus, Gemini: Mercury, Cancer: Moon,
		Leo: Sun, Virgo: Mercury, Libra: Venus, Scorpio: Mars,
		Sagittarius: Jupiter, Capricorn: Saturn, Aquarius: Saturn, Pisces: Jupiter,
	}
	for r, g := range want {
		if got := RashiAttributes(r).Lord; got != g {
			t.Fatalf("lord of %v = %v, want %v", r, got, g)
		}
	}
}

func TestAttributeLookupPanicsOutOfRange(t *testing.T) {
	kit.MustPanic(t, func() { NakshatraAttributes(-1) })
	kit.MustPanic(t, func() { NakshatraAttributes(27) })
	kit.MustPanic(t, func() { RashiAttributes(-1) })
	kit.MustPanic(t, func() { RashiAttributes(12) })
	kit.MustPanic(t, func() { Friendship(-1, Sun) })
	kit.MustPanic(t, func() { Friendship(Sun, 9) })
}

func TestFriendshipTable(t *testing.T) {
	// self is always a friend
	for g := Sun; g <= Saturn; g++ {
		if Friendship(g, g) != RelationFriend {
			t.Fatalf("%v does not befriend itself", g)
		}
	}
	// the classic one-sided pair: Moon befriends Mercury, Mercury resents Moon
	if Friendship(Moon, Mercury) != RelationFriend {
		t.Fatalf("Moon->Mercury should be friend")
	}
	if Friendship(Mercury, Moon) != RelationEnemy {
		t.Fatalf("Mercury->Moon should be enemy")
	}
	// Moon is the only planet with no enemies
	for g := Sun; g <= Saturn; g++ {
		if Friendship(Moon, g) == RelationEnemy {
			t.Fatalf("Moon->%v should never be enemy", g)
		}
	}
	// nodes resolve through Saturn and Mars
	if Friendship(Rahu, Sun) != Friendship(Saturn, Sun) {
		t.Fatalf("Rahu should relate as Saturn")
	}
	if Friendship(Ketu, Mercury) != Friendship(Mars, Mercury) {
		t.Fatalf("Ketu should relate as Mars")
	}
}

func TestStringers(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{Ashwini.String(), "Ashwini"},
		{Revati.String(), "Revati"},
		{Aries.String(), "Aries"},
		{Pisces.String(), "Pisces"},
		{Ketu.String(), "Ketu"},
		{GanaRakshasa.String(), "Rakshasa"},
		{NadiMadhya.String(), "Madhya"},
		{VarnaBrahmin.String(), "Brahmin"},
		{YoniMongoose.String(), "Mongoose"},
		{VashyaKeeta.String(), "Keeta"},
		{RelationFriend.String(), "friend"},
		{Nakshatra(99).String(), "Nakshatra(99)"},
		{Rashi(-2).String(), "Rashi(-2)"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Fatalf("String() = %q, want %q", c.got, c.want)
		}
	}
}
