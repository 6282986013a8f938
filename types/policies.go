package types

import (
	"time"

	"golang.org/x/exp/rand"
)

// NewRandomSampler picks uniformly among the actions available in the state
func NewRandomSampler(src rand.Source) ActionSampler {
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	return func(_ int, state State) (Action, bool) {
		actions := state.Actions()
		i, ok := Discrete{N: len(actions)}.Sample(src)
		if !ok {
			return nil, false
		}
		return actions[i], true
	}
}

// NewFixedSampler replays the given actions in order and stops when they run out
func NewFixedSampler(actions ...Action) ActionSampler {
	return func(step int, _ State) (Action, bool) {
		if step >= len(actions) {
			return nil, false
		}
		return actions[step], true
	}
}
