package yatzy

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHand is matched by every *InvalidHandError.
	ErrInvalidHand = errors.New("invalid hand")
	// ErrIndexOutOfRange is matched by every *IndexOutOfRangeError.
	ErrIndexOutOfRange = errors.New("die index out of range")
	// ErrNilRoller is returned when an engine is built without a Roller.
	ErrNilRoller = errors.New("roller must not be nil")
)

// InvalidHandError reports a hand that is not exactly five values in [1,6].
type InvalidHandError struct {
	Values []int
	Reason string
}

func (e *InvalidHandError) Error() string {
	return fmt.Sprintf("invalid hand %v: %s", e.Values, e.Reason)
}

// Is lets errors.Is match ErrInvalidHand.
func (e *InvalidHandError) Is(target error) bool {
	return target == ErrInvalidHand
}

// IndexOutOfRangeError reports a die index outside [0,5).
type IndexOutOfRangeError struct {
	Index int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("die index %d out of range [0,%d)", e.Index, HandSize)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
