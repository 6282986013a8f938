package benchmarks

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeu5/gridworld/grid"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := GetRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestRenderCommand(t *testing.T) {
	out := execute(t, "render", "--seed", "5")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, 1, strings.Count(out, "*"))
	// the agent never starts on the target
	assert.Equal(t, 1, strings.Count(out, "w"))
}

func TestRolloutCommand(t *testing.T) {
	dir := t.TempDir()
	plot := filepath.Join(dir, "visits.png")
	out := execute(t, "rollout", "--seed", "11", "--episodes", "3", "--save", dir, "--plot", plot)

	assert.Contains(t, out, "episode 0:")
	assert.Contains(t, out, "episode 2:")
	assert.Contains(t, out, "summary: episodes=3")
	assert.FileExists(t, plot)
	assert.FileExists(t, filepath.Join(dir, "summary.json"))
}

func TestRolloutIsReproducible(t *testing.T) {
	a := execute(t, "rollout", "--seed", "9", "--episodes", "4")
	b := execute(t, "rollout", "--seed", "9", "--episodes", "4")
	assert.Equal(t, a, b)
}

func TestRolloutLive(t *testing.T) {
	env, err := grid.NewGridEnvironment(grid.WithSeed(2))
	require.NoError(t, err)
	s := int64(2)
	var out bytes.Buffer
	res, err := Rollout(context.Background(), &out, env, RolloutConfig{
		Episodes:    1,
		Horizon:     5,
		Live:        true,
		SamplerSeed: &s,
	})
	require.NoError(t, err)
	require.Len(t, res.Summaries, 1)
	assert.Contains(t, out.String(), "episode 0 step 1")
}

func TestRolloutRejectsBadFlags(t *testing.T) {
	cmd := GetRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"rollout", "--episodes", "0"})
	require.Error(t, cmd.Execute())

	cmd = GetRootCommand()
	cmd.SetArgs([]string{"render", "--log-level", "loud"})
	require.Error(t, cmd.Execute())
}

func TestRolloutScriptedActions(t *testing.T) {
	env, err := grid.NewGridEnvironment(grid.WithSeed(4))
	require.NoError(t, err)
	var out bytes.Buffer
	res, err := Rollout(context.Background(), &out, env, RolloutConfig{
		Episodes: 5,
		Horizon:  10,
		Script:   []grid.Action{grid.DecreaseRow},
	})
	require.NoError(t, err)
	require.Len(t, res.Summaries, 5)
	for _, s := range res.Summaries {
		// the script runs out after a single move
		assert.Equal(t, 1, s.Steps)
	}

	require.Len(t, res.Coverage, 5)
	require.GreaterOrEqual(t, res.Coverage[0], 1)
	for i := 1; i < len(res.Coverage); i++ {
		require.GreaterOrEqual(t, res.Coverage[i], res.Coverage[i-1])
	}
	assert.Contains(t, out.String(), "distinct cells visited:")
}

func TestRolloutCommandScript(t *testing.T) {
	out := execute(t, "rollout", "--seed", "3", "--episodes", "2", "--actions", "2,2,0")
	assert.Contains(t, out, "episode 1:")

	cmd := GetRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"rollout", "--actions", "7", "--log-level", "error"})
	require.ErrorIs(t, cmd.Execute(), grid.ErrInvalidAction)
}

func TestRolloutSamplerSeedDiffersFromEnvironment(t *testing.T) {
	root := GetRootCommand()
	rollout, _, err := root.Find([]string{"rollout"})
	require.NoError(t, err)
	require.NoError(t, rollout.ParseFlags([]string{"--seed", "9"}))

	config, err := newRolloutConfig(rollout, &rolloutFlags{})
	require.NoError(t, err)
	require.NotNil(t, config.SamplerSeed)
	assert.Equal(t, int64(10), *config.SamplerSeed)

	root = GetRootCommand()
	rollout, _, err = root.Find([]string{"rollout"})
	require.NoError(t, err)
	require.NoError(t, rollout.ParseFlags(nil))
	config, err = newRolloutConfig(rollout, &rolloutFlags{})
	require.NoError(t, err)
	assert.Nil(t, config.SamplerSeed)
}
