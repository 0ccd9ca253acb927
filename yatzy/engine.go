package yatzy

// Engine holds one hand and its lock mask. It is not safe for concurrent
// use; give each caller its own engine.
type Engine struct {
	hand   Hand
	locked LockMask
	rolls  int
	roller Roller
}

// New builds an engine. With no dice the hand is rolled from roller;
// otherwise dice must be exactly five values in [1,6].
func New(roller Roller, dice ...int) (*Engine, error) {
	if roller == nil {
		return nil, ErrNilRoller
	}
	if len(dice) == 0 {
		return &Engine{hand: RandomHand(roller), roller: roller}, nil
	}
	hand, err := NewHand(dice...)
	if err != nil {
		return nil, err
	}
	return &Engine{hand: hand, roller: roller}, nil
}

// NewWithHand builds an engine around an existing hand.
func NewWithHand(roller Roller, hand Hand) (*Engine, error) {
	return New(roller, hand[:]...)
}

// Hand returns a copy of the current dice.
func (e *Engine) Hand() Hand {
	return e.hand
}

// Reroll redraws every unlocked die and returns the new hand.
func (e *Engine) Reroll() Hand {
	for i := range e.hand {
		if !e.locked[i] {
			e.hand[i] = RollDie(e.roller)
		}
	}
	e.rolls++
	return e.hand
}

// Rolls is the number of Reroll calls made on this engine.
func (e *Engine) Rolls() int {
	return e.rolls
}

// ToggleLock flips whether die index is held back from rerolls.
func (e *Engine) ToggleLock(index int) error {
	if err := checkIndex(index); err != nil {
		return err
	}
	e.locked[index] = !e.locked[index]
	return nil
}

// Locked reports whether die index is held.
func (e *Engine) Locked(index int) (bool, error) {
	if err := checkIndex(index); err != nil {
		return false, err
	}
	return e.locked[index], nil
}

// LockMask returns a copy of the lock flags.
func (e *Engine) LockMask() LockMask {
	return e.locked
}

// Unlock releases every held die.
func (e *Engine) Unlock() {
	e.locked = LockMask{}
}

func checkIndex(index int) error {
	if index < 0 || index >= HandSize {
		return &IndexOutOfRangeError{Index: index}
	}
	return nil
}

// Scoring shortcuts over the current hand.

func (e *Engine) Ones() int            { return e.hand.Ones() }
func (e *Engine) Twos() int            { return e.hand.Twos() }
func (e *Engine) Threes() int          { return e.hand.Threes() }
func (e *Engine) Fours() int           { return e.hand.Fours() }
func (e *Engine) Fives() int           { return e.hand.Fives() }
func (e *Engine) Sixes() int           { return e.hand.Sixes() }
func (e *Engine) OnePair() int         { return e.hand.OnePair() }
func (e *Engine) TwoPairs() int        { return e.hand.TwoPairs() }
func (e *Engine) ThreeAlike() int      { return e.hand.ThreeAlike() }
func (e *Engine) FourAlike() int       { return e.hand.FourAlike() }
func (e *Engine) Small() int           { return e.hand.Small() }
func (e *Engine) Large() int           { return e.hand.Large() }
func (e *Engine) FullHouse() int       { return e.hand.FullHouse() }
func (e *Engine) Chance() int          { return e.hand.Chance() }
func (e *Engine) Yatzy() int           { return e.hand.Yatzy() }
func (e *Engine) Score(c Category) int { return e.hand.Score(c) }
func (e *Engine) Scores() Scorecard    { return e.hand.Scores() }
