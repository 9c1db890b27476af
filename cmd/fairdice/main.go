// Package main is the entry point for the fairdice CLI game
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/fairdice/internal/common/clock"
	"github.com/KirkDiggler/fairdice/internal/common/entropy"
	"github.com/KirkDiggler/fairdice/internal/common/uuid"
	"github.com/KirkDiggler/fairdice/internal/dice"
	"github.com/KirkDiggler/fairdice/internal/handlers/cli"
	exchangeRepo "github.com/KirkDiggler/fairdice/internal/repositories/exchange"
	"github.com/KirkDiggler/fairdice/internal/services/fairness"
	gameService "github.com/KirkDiggler/fairdice/internal/services/game"
)

const exampleArgs = "2,2,4,4,9,9 1,1,6,6,8,8 3,3,5,5,7,7"

var rootCmd = &cobra.Command{
	Use:   "fairdice [dice]...",
	Short: "Provably-fair non-transitive dice game",
	Long: `fairdice plays a non-transitive dice game where every random value is
produced by a commit-reveal exchange between you and the computer, so
neither side can cheat. Pass at least three dice, each as six
comma-separated integers:

  fairdice ` + exampleArgs,
	Args:         cobra.ArbitraryArgs,
	RunE:         runGame,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGame(cmd *cobra.Command, args []string) error {
	// A .env file is optional; real env vars still win
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Skipping .env: %v", err)
	}

	if len(args) == 0 {
		args = strings.Fields(getEnv("FAIRDICE_DICE", ""))
	}

	set, err := dice.Parse(args)
	if err != nil {
		return fmt.Errorf("invalid dice configuration: %w (example: fairdice %s)", err, exampleArgs)
	}

	console, err := cli.NewConsole(&cli.ConsoleConfig{
		Input:  cmd.InOrStdin(),
		Output: cmd.OutOrStdout(),
		Set:    set,
	})
	if err != nil {
		return fmt.Errorf("create console: %w", err)
	}

	repo, err := exchangeRepo.NewMemory(&exchangeRepo.Config{})
	if err != nil {
		return fmt.Errorf("create exchange repository: %w", err)
	}

	fairnessSvc, err := fairness.New(&fairness.Config{
		Entropy:       entropy.New(&entropy.Config{}),
		Counterparty:  console,
		ExchangeRepo:  repo,
		UUIDGenerator: uuid.New(),
		Clock:         &clock.DefaultClock{},
	})
	if err != nil {
		return fmt.Errorf("create fairness service: %w", err)
	}

	gameSvc, err := gameService.New(&gameService.Config{
		Fairness:     fairnessSvc,
		Picker:       console,
		ExchangeRepo: repo,
	})
	if err != nil {
		return fmt.Errorf("create game service: %w", err)
	}

	handler, err := cli.New(&cli.Config{
		GameService: gameSvc,
		Console:     console,
		Set:         set,
		Output:      cmd.OutOrStdout(),
	})
	if err != nil {
		return fmt.Errorf("create handler: %w", err)
	}

	return handler.Run(cmd.Context())
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
