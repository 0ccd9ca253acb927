package yatzy

import "slices"

const (
	smallScore = 15
	largeScore = 20
	yatzyScore = 50
)

var (
	smallStraight = Hand{1, 2, 3, 4, 5}
	largeStraight = Hand{2, 3, 4, 5, 6}
)

// Ones through Sixes score the sum of the dice showing that face.

func (h Hand) Ones() int   { return h.upper(1) }
func (h Hand) Twos() int   { return h.upper(2) }
func (h Hand) Threes() int { return h.upper(3) }
func (h Hand) Fours() int  { return h.upper(4) }
func (h Hand) Fives() int  { return h.upper(5) }
func (h Hand) Sixes() int  { return h.upper(6) }

func (h Hand) upper(face int) int {
	return h.counts()[face] * face
}

// OnePair scores the highest face appearing at least twice.
func (h Hand) OnePair() int {
	return 2 * h.highestOfAKind(2)
}

// TwoPairs scores two distinct faces that each appear at least twice.
// A three-and-two counts, four of a kind does not.
func (h Hand) TwoPairs() int {
	counts := h.counts()
	var pairs []int
	for face := 1; face <= Faces; face++ {
		if counts[face] >= 2 {
			pairs = append(pairs, face)
		}
	}
	if len(pairs) != 2 {
		return 0
	}
	return 2 * (pairs[0] + pairs[1])
}

// ThreeAlike scores the highest face appearing at least three times.
func (h Hand) ThreeAlike() int {
	return 3 * h.highestOfAKind(3)
}

// FourAlike scores the highest face appearing at least four times.
func (h Hand) FourAlike() int {
	return 4 * h.highestOfAKind(4)
}

// highestOfAKind returns the highest face with at least n dice, or 0.
func (h Hand) highestOfAKind(n int) int {
	counts := h.counts()
	for face := Faces; face >= 1; face-- {
		if counts[face] >= n {
			return face
		}
	}
	return 0
}

func (h Hand) Small() int {
	if h.sorted() == smallStraight {
		return smallScore
	}
	return 0
}

func (h Hand) Large() int {
	if h.sorted() == largeStraight {
		return largeScore
	}
	return 0
}

// FullHouse scores the dice total when they split into exactly a pair and
// a triple. Five of a kind is not a full house.
func (h Hand) FullHouse() int {
	var pair, triple bool
	for _, n := range h.counts() {
		switch n {
		case 0:
		case 2:
			pair = true
		case 3:
			triple = true
		default:
			return 0
		}
	}
	if pair && triple {
		return h.Chance()
	}
	return 0
}

// Chance is the sum of all dice.
func (h Hand) Chance() int {
	sum := 0
	for _, v := range h {
		sum += v
	}
	return sum
}

func (h Hand) Yatzy() int {
	if !h.Valid() {
		return 0
	}
	for _, v := range h[1:] {
		if v != h[0] {
			return 0
		}
	}
	return yatzyScore
}

func (h Hand) sorted() Hand {
	s := h
	slices.Sort(s[:])
	return s
}

// Score applies a single category. Unknown categories score 0.
func (h Hand) Score(c Category) int {
	switch c {
	case Ones:
		return h.Ones()
	case Twos:
		return h.Twos()
	case Threes:
		return h.Threes()
	case Fours:
		return h.Fours()
	case Fives:
		return h.Fives()
	case Sixes:
		return h.Sixes()
	case OnePair:
		return h.OnePair()
	case TwoPairs:
		return h.TwoPairs()
	case ThreeAlike:
		return h.ThreeAlike()
	case FourAlike:
		return h.FourAlike()
	case Small:
		return h.Small()
	case Large:
		return h.Large()
	case FullHouse:
		return h.FullHouse()
	case Chance:
		return h.Chance()
	case Yatzy:
		return h.Yatzy()
	default:
		return 0
	}
}

// Scorecard holds the score of a hand in every category, indexed by Category.
type Scorecard [NumCategories]int

// Scores evaluates every category.
func (h Hand) Scores() Scorecard {
	var sc Scorecard
	for c := range NumCategories {
		sc[c] = h.Score(c)
	}
	return sc
}

// Get returns the score for c, or 0 for unknown categories.
func (sc Scorecard) Get(c Category) int {
	if !c.Valid() {
		return 0
	}
	return sc[c]
}

// Best returns the highest scoring category. Ties go to the category that
// comes first on the scorecard.
func (sc Scorecard) Best() (Category, int) {
	best := Ones
	for c := range NumCategories {
		if sc[c] > sc[best] {
			best = c
		}
	}
	return best, sc[best]
}
