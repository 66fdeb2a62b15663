package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fiberops/subcore/internal/interfaces/cli/migrate"
	"github.com/fiberops/subcore/internal/interfaces/cli/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := &cobra.Command{
		Use:          "subcore",
		Short:        "Subscriber provisioning core",
		Long:         `subcore serves the subscriber provisioning API and carries its database maintenance commands.`,
		SilenceUsage: true,
	}
	root.AddCommand(server.NewCommand(), migrate.NewCommand())

	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
