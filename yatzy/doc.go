// Package yatzy scores Yatzy hands.
//
// A Hand is five dice in [1,6]. Hand methods compute each category score
// as a pure function of the dice. Engine wraps a hand with a lock mask and
// an injected Roller so unlocked dice can be rerolled:
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	e, _ := yatzy.New(rng)
//	_ = e.ToggleLock(0)
//	e.Reroll()
//	fmt.Println(e.Hand(), e.FullHouse())
package yatzy
