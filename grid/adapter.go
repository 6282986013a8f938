package grid

import (
	"fmt"

	"github.com/zeu5/gridworld/types"
)

// Env exposes a GridEnvironment through the framework neutral types.Environment
func Env(g *GridEnvironment) types.Environment {
	return &envAdapter{g: g}
}

type envAdapter struct {
	g *GridEnvironment
}

var _ types.Environment = &envAdapter{}

func (e *envAdapter) Reset() (types.State, error) {
	p, err := e.g.Reset()
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (e *envAdapter) Step(a types.Action) (*types.Transition, error) {
	action, ok := a.(Action)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected action type %T", ErrInvalidAction, a)
	}
	res, err := e.g.Step(action)
	if err != nil {
		return nil, err
	}
	return &types.Transition{
		Observation: res.Observation,
		Reward:      res.Reward,
		Done:        res.Done,
		Info:        res.Info,
	}, nil
}

func (e *envAdapter) Render() string {
	return e.g.Render()
}

func (e *envAdapter) ActionSpace() types.Discrete {
	return e.g.ActionSpace()
}
