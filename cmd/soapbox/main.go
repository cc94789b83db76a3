package main

import (
	"os"

	"github.com/spf13/cobra"

	"soapbox/internal/interfaces/cli/migrate"
	"soapbox/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "soapbox",
		Short: "Soapbox - a public feedback board",
		Long:  `Soapbox hosts public feedback boards with ticket workflows, threaded comments, upvotes and email subscriptions.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
