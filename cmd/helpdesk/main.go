package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ecoride/helpdesk/internal/interfaces/cli/migrate"
	"github.com/ecoride/helpdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "helpdesk",
		Short: "EcoRide customer support portal",
		Long:  `Helpdesk is the EcoRide customer support backend: a public help center, a chat assistant, and a ticketed query desk.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
