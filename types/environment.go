package types

// Environment is the capability an episode runner needs from a simulated world.
// Implementations own their state; callers only observe what Step returns.
type Environment interface {
	// Reset starts a new episode and returns the initial observation
	Reset() (State, error)
	// Step applies the action and returns the resulting transition
	Step(Action) (*Transition, error)
	// Render returns a textual view of the current state
	Render() string
	// ActionSpace declared for the environment
	ActionSpace() Discrete
}

// State of the system that an agent observes
type State interface {
	// Indexed by the Hash
	// Should be deterministic
	Hash() string
	// Actions possible from the state
	Actions() []Action
}

// An Action that an agent can take
type Action interface {
	// Index of the action
	// Should be deterministic
	Hash() string
}

// Transition is the outcome of a single Step
type Transition struct {
	Observation State
	Reward      int
	Done        bool
	Info        map[string]interface{}
}

type StateAbstractor func(State) string

func DefaultStateAbstractor() StateAbstractor {
	return func(s State) string {
		return s.Hash()
	}
}
