package benchmarks

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/zeu5/gridworld/grid"
	"github.com/zeu5/gridworld/logging"
	"github.com/zeu5/gridworld/server"
)

func ServeCommand() *cobra.Command {
	var addr string
	var permissive bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve one environment session over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []grid.Option
			if permissive {
				opts = append(opts, grid.WithPermissiveActions())
			}
			env, err := newEnvironment(cmd, opts...)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.NewServer(addr, env, logging.FromContext(ctx)).Start(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:7074", "Address to listen on")
	cmd.Flags().BoolVar(&permissive, "permissive", false, "Treat invalid actions as no-op moves")
	return cmd
}
