package benchmarks

import (
	"github.com/spf13/cobra"
)

func RenderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Reset the environment and print the grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnvironment(cmd)
			if err != nil {
				return err
			}
			if _, err := env.Reset(); err != nil {
				return err
			}
			return env.RenderTo(cmd.OutOrStdout())
		},
	}
}
