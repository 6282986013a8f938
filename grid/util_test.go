package grid

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeu5/gridworld/types"
)

func TestVisitAnalyzer(t *testing.T) {
	g := New()
	trace := types.NewTrace()
	trace.Append(Position{3, 0}, IncreaseCol, DeathReward, Position{3, 1})
	trace.Append(Position{3, 1}, IncreaseCol, DefaultReward, Position{3, 2})
	trace.Append(Position{3, 2}, IncreaseRow, DefaultReward, Position{4, 2})
	trace.Append(Position{4, 2}, IncreaseCol, DefaultReward, Position{4, 3})
	trace.Append(Position{4, 3}, IncreaseCol, TargetReward, Position{4, 4})

	ds := VisitAnalyzer(g)([]*types.Trace{trace}).(*VisitDataSet)
	assert.Equal(t, 1, ds.Episodes)
	assert.Equal(t, 1, ds.Reached)
	assert.Equal(t, 2, ds.DeathHits)
	assert.Equal(t, 1, ds.Visits[3][0])
	assert.Equal(t, 1, ds.Visits[4][4])
	assert.Equal(t, 0, ds.Visits[0][0])
	assert.Equal(t, 1, ds.Max())

	c, r := ds.Dims()
	assert.Equal(t, 5, c)
	assert.Equal(t, 5, r)
}

func TestRunnerOverGrid(t *testing.T) {
	g := newSeeded(t)
	runner := types.NewRunner(&types.RunnerConfig{
		Episodes:    20,
		Horizon:     300,
		Sampler:     types.NewRandomSampler(nil),
		Environment: Env(g),
	})
	require.NoError(t, runner.Run(context.Background()))

	// the horizon exceeds the step limit so every episode terminates
	for _, s := range runner.Summaries() {
		require.True(t, s.Terminated)
		require.LessOrEqual(t, s.Steps, DefaultMaxSteps)
	}
	ds := VisitAnalyzer(g)(runner.Traces()).(*VisitDataSet)
	require.Equal(t, 20, ds.Episodes)

	figPath := filepath.Join(t.TempDir(), "visits.png")
	require.NoError(t, SaveHeatmap(ds, "visits", figPath))
	require.FileExists(t, figPath)
}

func TestAdapterRejectsForeignActions(t *testing.T) {
	env := Env(New())
	_, err := env.Reset()
	require.NoError(t, err)
	_, err = env.Step(foreignAction{})
	require.ErrorIs(t, err, ErrInvalidAction)

	tr, err := env.Step(DecreaseRow)
	require.NoError(t, err)
	require.IsType(t, Position{}, tr.Observation)
}

type foreignAction struct{}

func (foreignAction) Hash() string { return "foreign" }
