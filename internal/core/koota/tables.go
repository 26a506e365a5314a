package koota

import "kundali/internal/core/chart"

// yoniMatrix is the classical 14x14 animal compatibility table, indexed by
// chart.Yoni in declaration order (Horse, Elephant, Sheep, Serpent, Dog, Cat,
// Rat, Cow, Buffalo, Tiger, Deer, Monkey, Mongoose, Lion). Symmetric; the
// diagonal is 4; the seven sworn-enemy pairs sit at 0
var yoniMatrix = [chart.YoniCount][chart.YoniCount]int8{
	/* Horse    */ {4, 2, 2, 3, 2, 2, 2, 1, 0, 1, 3, 3, 2, 1},
	/* Elephant */ {2, 4, 3, 3, 2, 2, 2, 2, 3, 1, 2, 3, 2, 0},
	/* Sheep    */ {2, 3, 4, 2, 1, 2, 1, 3, 3, 1, 2, 0, 3, 1},
	/* Serpent  */ {3, 3, 2, 4, 2, 1, 1, 1, 1, 2, 2, 2, 0, 2},
	/* Dog      */ {2, 2, 1, 2, 4, 2, 1, 2, 2, 1, 0, 2, 1, 1},
	/* Cat      */ {2, 2, 2, 1, 2, 4, 0, 2, 2, 1, 3, 3, 2, 1},
	/* Rat      */ {2, 2, 1, 1, 1, 0, 4, 2, 2, 2, 2, 2, 1, 2},
	/* Cow      */ {1, 2, 3, 1, 2, 2, 2, 4, 3, 0, 3, 2, 2, 1},
	/* Buffalo  */ {0, 3, 3, 1, 2, 2, 2, 3, 4, 1, 2, 2, 2, 1},
	/* Tiger    */ {1, 1, 1, 2, 1, 1, 2, 0, 1, 4, 1, 1, 2, 1},
	/* Deer     */ {3, 2, 2, 2, 0, 3, 2, 3, 2, 1, 4, 2, 2, 1},
	/* Monkey   */ {3, 3, 0, 2, 2, 3, 2, 2, 2, 1, 2, 4, 3, 2},
	/* Mongoose */ {2, 2, 3, 0, 1, 2, 1, 2, 2, 2, 2, 3, 4, 2},
	/* Lion     */ {1, 0, 1, 2, 1, 1, 2, 1, 1, 1, 1, 2, 2, 4},
}
