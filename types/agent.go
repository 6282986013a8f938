package types

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zeu5/gridworld/logging"
)

// ActionSampler picks the next action to take from state.
// Returns false when no action can be taken.
type ActionSampler func(step int, state State) (Action, bool)

// StepObserver is invoked after every successful step
type StepObserver func(episode, step int, env Environment, transition *Transition)

type RunnerConfig struct {
	Episodes    int
	Horizon     int
	Sampler     ActionSampler
	Environment Environment
	// Optional, called after each step
	Observer StepObserver
}

// EpisodeSummary aggregates one episode of a run
type EpisodeSummary struct {
	Episode    int
	Return     int
	Steps      int
	Terminated bool
}

// Runner drives an environment for the configured number of episodes.
// It does not learn: actions come from the configured sampler.
type Runner struct {
	config *RunnerConfig
	// collects the traces of the run
	// Only populated if the Run function is invoked
	traces    []*Trace
	summaries []EpisodeSummary
}

// Instantiates a new Runner
func NewRunner(config *RunnerConfig) *Runner {
	return &Runner{
		config:    config,
		traces:    make([]*Trace, 0, config.Episodes),
		summaries: make([]EpisodeSummary, 0, config.Episodes),
	}
}

// Run the configured number of episodes, stopping early if ctx is cancelled
func (r *Runner) Run(ctx context.Context) error {
	logger := logging.FromContext(ctx)
	for i := 0; i < r.config.Episodes; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		trace, summary, err := r.runEpisode(ctx, i)
		if err != nil {
			return fmt.Errorf("episode %d: %w", i, err)
		}
		r.traces = append(r.traces, trace)
		r.summaries = append(r.summaries, summary)
		logger.Debug("episode finished",
			slog.Int("episode", i),
			slog.Int("return", summary.Return),
			slog.Int("steps", summary.Steps),
			slog.Bool("terminated", summary.Terminated))
	}
	return nil
}

// run a single episode and return the resulting trace
func (r *Runner) runEpisode(ctx context.Context, episode int) (*Trace, EpisodeSummary, error) {
	summary := EpisodeSummary{Episode: episode}
	trace := NewTrace()

	state, err := r.config.Environment.Reset()
	if err != nil {
		return nil, summary, err
	}

	for i := 0; i < r.config.Horizon; i++ {
		select {
		case <-ctx.Done():
			return nil, summary, ctx.Err()
		default:
		}
		nextAction, ok := r.config.Sampler(i, state)
		if !ok {
			break
		}
		transition, err := r.config.Environment.Step(nextAction)
		if err != nil {
			return nil, summary, err
		}
		trace.Append(state, nextAction, transition.Reward, transition.Observation)
		if r.config.Observer != nil {
			r.config.Observer(episode, i, r.config.Environment, transition)
		}
		state = transition.Observation
		if transition.Done {
			summary.Terminated = true
			break
		}
	}
	summary.Return = trace.Return()
	summary.Steps = trace.Len()
	return trace, summary, nil
}

func (r *Runner) Traces() []*Trace {
	return r.traces
}

func (r *Runner) Summaries() []EpisodeSummary {
	return r.summaries
}
