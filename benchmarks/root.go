package benchmarks

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/zeu5/gridworld/grid"
	"github.com/zeu5/gridworld/logging"
)

var (
	episodes  int
	horizon   int
	saveFile  string
	seed      int64
	logLevel  string
	logFormat string
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "gridworld",
		Short:         "5x5 grid world environment",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.Setup(os.Stderr, logFormat, logLevel)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logging.WithLogger(ctx, logger))
			return nil
		},
	}
	rootCommand.PersistentFlags().IntVarP(&episodes, "episodes", "e", 10, "Number of episodes to run")
	rootCommand.PersistentFlags().IntVar(&horizon, "horizon", grid.DefaultMaxSteps, "Horizon of each episode")
	rootCommand.PersistentFlags().StringVarP(&saveFile, "save", "s", "", "Save the result data in the specified folder")
	rootCommand.PersistentFlags().Int64Var(&seed, "seed", 0, "Seed of the environment random source (clock when unset)")
	rootCommand.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCommand.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")
	// adding the subcommands here
	rootCommand.AddCommand(RenderCommand())
	rootCommand.AddCommand(RolloutCommand())
	rootCommand.AddCommand(ServeCommand())
	return rootCommand
}

// newEnvironment honours --seed only when it was given explicitly
func newEnvironment(cmd *cobra.Command, opts ...grid.Option) (*grid.GridEnvironment, error) {
	if cmd.Flags().Changed("seed") {
		opts = append(opts, grid.WithSeed(seed))
	}
	opts = append(opts, grid.WithLogger(logging.FromContext(cmd.Context())))
	return grid.NewGridEnvironment(opts...)
}
