package benchmarks

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/gosuri/uilive"
	"github.com/spf13/cobra"
	"github.com/zeu5/gridworld/grid"
	"github.com/zeu5/gridworld/logging"
	"github.com/zeu5/gridworld/types"
	"github.com/zeu5/gridworld/util"
	"golang.org/x/exp/rand"
)

type RolloutConfig struct {
	Episodes int
	Horizon  int
	// Folder for summary.json, skipped when empty
	SavePath string
	// Heatmap of cell visits, skipped when empty
	PlotPath string
	// Render every step in place
	Live bool
	// Delay between live frames
	FrameDelay time.Duration
	// Seed of the action sampler, clock when nil
	SamplerSeed *int64
	// Actions replayed in every episode instead of sampling, when set
	Script []grid.Action
}

// RolloutResult is what the rollout reports and saves
type RolloutResult struct {
	Summaries []types.EpisodeSummary
	Returns   *types.ReturnStats
	Visits    *grid.VisitDataSet
	// Distinct cells visited so far, after each episode
	Coverage []int
}

// Rollout plays episodes in env, sampling actions uniformly unless a script is
// given, and reports the outcome to out
func Rollout(ctx context.Context, out io.Writer, env *grid.GridEnvironment, config RolloutConfig) (*RolloutResult, error) {
	logger := logging.FromContext(ctx)

	var src rand.Source
	if config.SamplerSeed != nil {
		src = rand.NewSource(uint64(*config.SamplerSeed))
	}

	sampler := types.NewRandomSampler(src)
	if len(config.Script) > 0 {
		actions := make([]types.Action, len(config.Script))
		for i, a := range config.Script {
			actions[i] = a
		}
		sampler = types.NewFixedSampler(actions...)
	}

	runnerConfig := &types.RunnerConfig{
		Episodes:    config.Episodes,
		Horizon:     config.Horizon,
		Sampler:     sampler,
		Environment: grid.Env(env),
	}

	var live *uilive.Writer
	if config.Live {
		live = uilive.New()
		live.Out = out
		live.Start()
		runnerConfig.Observer = func(episode, step int, e types.Environment, t *types.Transition) {
			fmt.Fprintf(live, "episode %d step %d reward %d\n%s", episode, step+1, t.Reward, e.Render())
			live.Flush()
			if config.FrameDelay > 0 {
				time.Sleep(config.FrameDelay)
			}
		}
	}

	runner := types.NewRunner(runnerConfig)
	err := runner.Run(ctx)
	if live != nil {
		live.Stop()
	}
	if err != nil {
		return nil, err
	}

	result := &RolloutResult{
		Summaries: runner.Summaries(),
		Returns:   types.ReturnsAnalyzer()(runner.Traces()).(*types.ReturnStats),
		Visits:    grid.VisitAnalyzer(env)(runner.Traces()).(*grid.VisitDataSet),
		Coverage:  types.PureCoverage(types.DefaultStateAbstractor())(runner.Traces()).([]int),
	}

	for _, s := range result.Summaries {
		fmt.Fprintf(out, "episode %d: return=%d steps=%d terminated=%t\n", s.Episode, s.Return, s.Steps, s.Terminated)
	}
	fmt.Fprintf(out, "summary: %s\n", result.Returns)
	fmt.Fprintf(out, "target reached: %d/%d, death cell hits: %d\n", result.Visits.Reached, result.Visits.Episodes, result.Visits.DeathHits)
	if n := len(result.Coverage); n > 0 {
		fmt.Fprintf(out, "distinct cells visited: %d\n", result.Coverage[n-1])
	}

	if config.PlotPath != "" {
		if err := grid.SaveHeatmap(result.Visits, "Cell visits", config.PlotPath); err != nil {
			return nil, err
		}
		logger.Info("saved heatmap", "path", config.PlotPath)
	}
	if config.SavePath != "" {
		summaryFile := path.Join(config.SavePath, "summary.json")
		if err := util.WriteJSON(summaryFile, result); err != nil {
			return nil, err
		}
		logger.Info("saved summary", "path", summaryFile)
	}
	return result, nil
}

// rolloutFlags are the rollout specific flags, the rest are persistent on the root
type rolloutFlags struct {
	plotPath   string
	live       bool
	frameDelay time.Duration
	script     []int
}

func newRolloutConfig(cmd *cobra.Command, flags *rolloutFlags) (RolloutConfig, error) {
	if episodes <= 0 {
		return RolloutConfig{}, fmt.Errorf("episodes must be positive (got %d)", episodes)
	}
	if horizon <= 0 {
		return RolloutConfig{}, fmt.Errorf("horizon must be positive (got %d)", horizon)
	}
	config := RolloutConfig{
		Episodes:   episodes,
		Horizon:    horizon,
		SavePath:   saveFile,
		PlotPath:   flags.plotPath,
		Live:       flags.live,
		FrameDelay: flags.frameDelay,
	}
	if cmd.Flags().Changed("seed") {
		// distinct from the environment seed so the two streams differ
		samplerSeed := seed + 1
		config.SamplerSeed = &samplerSeed
	}
	for _, v := range flags.script {
		a, err := grid.ParseAction(v)
		if err != nil {
			return RolloutConfig{}, err
		}
		config.Script = append(config.Script, a)
	}
	return config, nil
}

func RolloutCommand() *cobra.Command {
	flags := &rolloutFlags{}

	cmd := &cobra.Command{
		Use:   "rollout",
		Short: "Play random or scripted episodes and summarize them",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := newRolloutConfig(cmd, flags)
			if err != nil {
				return err
			}
			env, err := newEnvironment(cmd)
			if err != nil {
				return err
			}
			_, err = Rollout(cmd.Context(), cmd.OutOrStdout(), env, config)
			return err
		},
	}
	cmd.Flags().StringVar(&flags.plotPath, "plot", "", "Write a heatmap of cell visits to this file")
	cmd.Flags().BoolVar(&flags.live, "live", false, "Render every step in place")
	cmd.Flags().DurationVar(&flags.frameDelay, "frame-delay", 50*time.Millisecond, "Delay between live frames")
	cmd.Flags().IntSliceVar(&flags.script, "actions", nil, "Replay these actions in every episode instead of sampling (0-3)")
	return cmd
}
