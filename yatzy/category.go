package yatzy

import (
	"fmt"
	"strings"
)

// Category is a named scoring rule.
type Category uint8

const (
	Ones Category = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	OnePair
	TwoPairs
	ThreeAlike
	FourAlike
	Small
	Large
	FullHouse
	Chance
	Yatzy

	// NumCategories is the number of categories on a scorecard.
	NumCategories
)

var categoryNames = [NumCategories]string{
	Ones:       "Ones",
	Twos:       "Twos",
	Threes:     "Threes",
	Fours:      "Fours",
	Fives:      "Fives",
	Sixes:      "Sixes",
	OnePair:    "OnePair",
	TwoPairs:   "TwoPairs",
	ThreeAlike: "ThreeAlike",
	FourAlike:  "FourAlike",
	Small:      "Small",
	Large:      "Large",
	FullHouse:  "FullHouse",
	Chance:     "Chance",
	Yatzy:      "Yatzy",
}

// Categories returns every category in scorecard order.
func Categories() []Category {
	cs := make([]Category, NumCategories)
	for i := range cs {
		cs[i] = Category(i)
	}
	return cs
}

func (c Category) String() string {
	if c < NumCategories {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// Valid reports whether c names a known category.
func (c Category) Valid() bool {
	return c < NumCategories
}

// ParseCategory matches a category name case-insensitively, ignoring
// dashes, underscores and spaces, so "full-house" finds FullHouse.
func ParseCategory(s string) (Category, error) {
	key := normalizeCategory(s)
	for i, name := range categoryNames {
		if normalizeCategory(name) == key {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

func normalizeCategory(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(s))
}
