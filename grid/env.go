package grid

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/zeu5/gridworld/logging"
	"github.com/zeu5/gridworld/types"
	"golang.org/x/exp/rand"
)

// StepResult of a single call to Step
type StepResult struct {
	Observation Position
	Reward      int
	Done        bool
	Info        map[string]interface{}
}

// GridEnvironment is a rectangular grid where the agent walks toward a target
// cell while avoiding death cells. Death cells are penalized but do not end
// the episode; only the target or the step limit does.
//
// A GridEnvironment is not safe for concurrent use.
type GridEnvironment struct {
	config Config
	deaths map[Position]bool
	rand   *rand.Rand
	logger *slog.Logger

	position Position
	steps    int
	started  bool
	done     bool
	episode  int
}

// NewGridEnvironment creates an environment from DefaultConfig and the options.
// The environment must be Reset before the first Step.
func NewGridEnvironment(opts ...Option) (*GridEnvironment, error) {
	g := &GridEnvironment{
		config: DefaultConfig(),
	}
	for _, o := range opts {
		o(g)
	}
	if err := g.config.Validate(); err != nil {
		return nil, err
	}

	seed := uint64(time.Now().UnixNano())
	if g.config.Seed != nil {
		seed = uint64(*g.config.Seed)
	}
	g.rand = rand.New(rand.NewSource(seed))
	if g.logger == nil {
		g.logger = logging.Discard()
	}
	g.deaths = make(map[Position]bool, len(g.config.Deaths))
	for _, d := range g.config.Deaths {
		g.deaths[d] = true
	}
	return g, nil
}

// New returns an environment with the default 5x5 layout
func New() *GridEnvironment {
	g, err := NewGridEnvironment()
	if err != nil {
		// the default config always validates
		panic(err)
	}
	return g
}

// Reset places the agent uniformly at random on any cell but the target
func (g *GridEnvironment) Reset() (Position, error) {
	for {
		p := Position{
			Row: g.rand.Intn(g.config.Rows),
			Col: g.rand.Intn(g.config.Cols),
		}
		if p.Eq(g.config.Target) {
			continue
		}
		g.position = p
		break
	}
	g.steps = 0
	g.done = false
	g.started = true
	g.episode++
	g.logger.Debug("episode reset", slog.Int("episode", g.episode), slog.String("position", g.position.Hash()))
	return g.position, nil
}

// Step moves the agent, clamping at the edges, and rewards the resulting cell
func (g *GridEnvironment) Step(a Action) (StepResult, error) {
	if !g.started {
		return StepResult{}, ErrNotReset
	}
	if g.done {
		return StepResult{}, ErrEpisodeDone
	}
	if !a.Valid() && !g.config.Permissive {
		return StepResult{}, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidAction, int(a), NumActions)
	}

	g.steps++
	// an invalid action in permissive mode leaves the position unchanged
	next := a.apply(g.position, g.config.Rows, g.config.Cols)
	reward := g.Reward(next)
	done := next.Eq(g.config.Target) || g.steps >= g.config.MaxSteps

	g.position = next
	g.done = done
	if done {
		g.logger.Debug("episode done",
			slog.Int("episode", g.episode),
			slog.Int("steps", g.steps),
			slog.Bool("target", next.Eq(g.config.Target)))
	}
	return StepResult{
		Observation: next,
		Reward:      reward,
		Done:        done,
		Info:        map[string]interface{}{},
	}, nil
}

// Reward of landing on p. The target takes priority over death cells.
func (g *GridEnvironment) Reward(p Position) int {
	if p.Eq(g.config.Target) {
		return TargetReward
	}
	if g.deaths[p] {
		return DeathReward
	}
	return DefaultReward
}

// IsDeath reports whether p is one of the death cells
func (g *GridEnvironment) IsDeath(p Position) bool {
	return g.deaths[p]
}

// Position of the agent, only meaningful after Reset
func (g *GridEnvironment) Position() Position {
	return g.position
}

// Steps taken in the current episode
func (g *GridEnvironment) Steps() int {
	return g.steps
}

// Done reports whether the current episode has terminated
func (g *GridEnvironment) Done() bool {
	return g.done
}

// Config the environment was built with
func (g *GridEnvironment) Config() Config {
	return g.config
}

// ActionSpace has one value per Action
func (g *GridEnvironment) ActionSpace() types.Discrete {
	return types.Discrete{N: NumActions}
}

// ObservationSpace bounds the (row, col) observation, inclusive
func (g *GridEnvironment) ObservationSpace() types.Box {
	return types.Box{
		Low:  []int{0, 0},
		High: []int{g.config.Rows - 1, g.config.Cols - 1},
	}
}

// RewardRange declared for the environment, wider than the rewards produced
func (g *GridEnvironment) RewardRange() types.RewardRange {
	return types.RewardRange{Min: MinReward, Max: MaxReward}
}

// RenderTo writes the grid followed by a blank line
func (g *GridEnvironment) RenderTo(w io.Writer) error {
	_, err := io.WriteString(w, g.Render()+"\n")
	return err
}
