package yatzy

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const (
	// HandSize is the number of dice in a hand.
	HandSize = 5
	// Faces is the number of faces on each die.
	Faces = 6
)

// Hand is the five dice currently held, in roll order. Build one with
// NewHand or ParseHand; a literal with faces outside [1,6] is not Valid and
// those dice are ignored by the face-count categories.
type Hand [HandSize]int

// LockMask records which dice are held back from the next reroll.
type LockMask [HandSize]bool

// Roller is the random source for dice. *rand.Rand from math/rand/v2
// satisfies it.
type Roller interface {
	// IntN returns a uniform int in [0, n).
	IntN(n int) int
}

// RollDie draws a single face in [1,6].
func RollDie(r Roller) int {
	return r.IntN(Faces) + 1
}

// RandomHand draws five independent dice.
func RandomHand(r Roller) Hand {
	var h Hand
	for i := range h {
		h[i] = RollDie(r)
	}
	return h
}

// NewHand validates values and converts them to a Hand.
func NewHand(values ...int) (Hand, error) {
	var h Hand
	if len(values) != HandSize {
		return h, &InvalidHandError{
			Values: append([]int(nil), values...),
			Reason: fmt.Sprintf("expected %d dice, got %d", HandSize, len(values)),
		}
	}
	for i, v := range values {
		if v < 1 || v > Faces {
			return h, &InvalidHandError{
				Values: append([]int(nil), values...),
				Reason: fmt.Sprintf("die %d has value %d, want 1-%d", i+1, v, Faces),
			}
		}
		h[i] = v
	}
	return h, nil
}

// MustHand is NewHand for literals known to be valid. It panics otherwise.
func MustHand(values ...int) Hand {
	h, err := NewHand(values...)
	if err != nil {
		panic(err)
	}
	return h
}

// ParseHand reads a hand written as "1,1,2,4,6", "1 1 2 4 6" or "11246".
func ParseHand(s string) (Hand, error) {
	s = strings.TrimSpace(s)
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	// Compact form: a single run of digits
	if len(fields) == 1 && len(fields[0]) > 1 {
		fields = strings.Split(fields[0], "")
	}

	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Hand{}, &InvalidHandError{
				Values: values,
				Reason: fmt.Sprintf("%q is not a die value", f),
			}
		}
		values = append(values, v)
	}
	return NewHand(values...)
}

// Valid reports whether every die is in [1,6].
func (h Hand) Valid() bool {
	for _, v := range h {
		if v < 1 || v > Faces {
			return false
		}
	}
	return true
}

// Values returns the dice as a slice.
func (h Hand) Values() []int {
	return append([]int(nil), h[:]...)
}

func (h Hand) String() string {
	return fmt.Sprint([HandSize]int(h))
}

// counts returns how many dice show each face, indexed by face value.
func (h Hand) counts() [Faces + 1]int {
	var c [Faces + 1]int
	for _, v := range h {
		if v >= 1 && v <= Faces {
			c[v]++
		}
	}
	return c
}
