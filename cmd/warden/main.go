package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/haven-rp/warden/internal/interfaces/cli/bot"
	"github.com/haven-rp/warden/internal/interfaces/cli/migrate"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "warden",
		Short: "Warden - community assistant for the guild",
		Long:  `Warden runs the guild's ticket, verification, checkout, and moderation workflows against an embedded sqlite store.`,
	}

	rootCmd.AddCommand(
		bot.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
