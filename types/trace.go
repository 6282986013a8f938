package types

// Trace of an episode as (state, action, reward, nextState) steps
type Trace struct {
	states     []State
	actions    []Action
	rewards    []int
	nextStates []State
}

func NewTrace() *Trace {
	return &Trace{
		states:     make([]State, 0),
		actions:    make([]Action, 0),
		rewards:    make([]int, 0),
		nextStates: make([]State, 0),
	}
}

func (t *Trace) Append(state State, action Action, reward int, nextState State) {
	t.states = append(t.states, state)
	t.actions = append(t.actions, action)
	t.rewards = append(t.rewards, reward)
	t.nextStates = append(t.nextStates, nextState)
}

func (t *Trace) Len() int {
	return len(t.states)
}

func (t *Trace) Get(i int) (State, Action, int, State, bool) {
	if i < 0 || i >= len(t.states) {
		return nil, nil, 0, nil, false
	}
	return t.states[i], t.actions[i], t.rewards[i], t.nextStates[i], true
}

func (t *Trace) Last() (State, Action, int, State, bool) {
	return t.Get(len(t.states) - 1)
}

// Return is the undiscounted sum of rewards in the trace
func (t *Trace) Return() int {
	total := 0
	for _, r := range t.rewards {
		total += r
	}
	return total
}
