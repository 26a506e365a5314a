package chart

import "fmt"

// Relation is a directed planetary disposition
type Relation int

// Relation values
const (
	RelationEnemy Relation = iota
	RelationNeutral
	RelationFriend
)

var relationNames = [3]string{"enemy", "neutral", "friend"}

func (r Relation) String() string {
	if r < 0 || int(r) >= len(relationNames) {
		return fmt.Sprintf("Relation(%d)", int(r))
	}
	return relationNames[r]
}

// Naisargika (natural) friendship, directional: friendship[a][b] is how a
// regards b. Rows cover the seven non-nodal planets only; the nodes are
// folded in by effective()
var friendship = [NonNodalGrahaCount][NonNodalGrahaCount]Relation{
	Sun: {
		Sun: RelationFriend, Moon: RelationFriend, Mars: RelationFriend,
		Mercury: RelationNeutral, Jupiter: RelationFriend,
		Venus: RelationEnemy, Saturn: RelationEnemy,
	},
	Moon: {
		Sun: RelationFriend, Moon: RelationFriend, Mars: RelationNeutral,
		Mercury: RelationFriend, Jupiter: RelationNeutral,
		Venus: RelationNeutral, Saturn: RelationNeutral,
	},
	Mars: {
		Sun: RelationFriend, Moon: RelationFriend, Mars: RelationFriend,
		Mercury: RelationEnemy, Jupiter: RelationFriend,
		Venus: RelationNeutral, Saturn: RelationNeutral,
	},
	Mercury: {
		Sun: RelationFriend, Moon: RelationEnemy, Mars: RelationNeutral,
		Mercury: RelationFriend, Jupiter: RelationNeutral,
		Venus: RelationFriend, Saturn: RelationNeutral,
	},
	Jupiter: {
		Sun: RelationFriend, Moon: RelationFriend, Mars: RelationFriend,
		Mercury: RelationEnemy, Jupiter: RelationFriend,
		Venus: RelationEnemy, Saturn: RelationNeutral,
	},
	Venus: {
		Sun: RelationEnemy, Moon: RelationEnemy, Mars: RelationNeutral,
		Mercury: RelationFriend, Jupiter: RelationNeutral,
		Venus: RelationFriend, Saturn: RelationFriend,
	},
	Saturn: {
		Sun: RelationEnemy, Moon: RelationEnemy, Mars: RelationEnemy,
		Mercury: RelationFriend, Jupiter: RelationNeutral,
		Venus: RelationFriend, Saturn: RelationFriend,
	},
}

// effective maps the lunar nodes onto the planets whose relations they
// inherit (Rahu as Saturn, Ketu as Mars)
func effective(g Graha) Graha {
	switch g {
	case Rahu:
		return Saturn
	case Ketu:
		return Mars
	default:
		return g
	}
}

// Friendship returns how a regards b (directional). Both nodes are accepted
// and resolved through their effective planet
func Friendship(a, b Graha) Relation {
	if !a.Valid() || !b.Valid() {
		panic(fmt.Sprintf("chart: graha index out of range (%d, %d)", int(a), int(b)))
	}
	return friendship[effective(a)][effective(b)]
}
