package main

import (
	"os"

	"github.com/spf13/cobra"

	"zelo/internal/interfaces/cli/migrate"
	"zelo/internal/interfaces/cli/server"
	"zelo/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "zelo",
		Short: "Zelo - property maintenance management",
		Long:  `Zelo manages building maintenance requests, the supplier portal, and the reminder worker.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
