// Package main is the entry point for petparrk-cli, the maintenance tool that
// regenerates the sitemap and geocodes vet addresses.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	commands "petparrk/cmd/petparrk-cli/internal/commands"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "petparrk-cli",
		Short: "PetParrk maintenance tool",
		Long: `petparrk-cli runs maintenance jobs against the PetParrk database.

It reads the same environment variables as the API (DB_*, SITE_BASE_URL, GEOCODER_*, LOG_*).`,
		SilenceUsage: true,
	}

	commands.InitSitemapCommand(rootCmd, commands.OpenEnv)
	commands.InitGeocodeCommand(rootCmd, commands.OpenEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}
	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
