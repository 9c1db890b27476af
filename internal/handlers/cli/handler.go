package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/KirkDiggler/fairdice/internal/dice"
	"github.com/KirkDiggler/fairdice/internal/services/game"
)

// Handler runs the interactive game loop on top of the game service
type Handler struct {
	gameService game.Service
	console     *Console
	set         *dice.Set
	out         io.Writer
}

// Config holds the configuration for the handler
type Config struct {
	// GameService plays rounds and exposes the exchange transcript
	GameService game.Service

	// Console renders prompts and reads user input
	Console *Console

	// Set is the validated dice configuration
	Set *dice.Set

	// Output receives game text, usually os.Stdout
	Output io.Writer
}

// New creates a new CLI handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.Console == nil {
		return nil, errors.New("console cannot be nil")
	}

	if cfg.Set == nil {
		return nil, errors.New("die set cannot be nil")
	}

	if cfg.Output == nil {
		return nil, errors.New("output cannot be nil")
	}

	return &Handler{
		gameService: cfg.GameService,
		console:     cfg.Console,
		set:         cfg.Set,
		out:         cfg.Output,
	}, nil
}

// Run plays rounds until the user leaves, then prints the exchange
// transcript for independent verification
func (h *Handler) Run(ctx context.Context) error {
	fmt.Fprintln(h.out, "Welcome to the provably-fair dice game! Enter ? at any prompt for the win-probability table.")

	for {
		out, err := h.gameService.PlayRound(ctx, &game.PlayRoundInput{Set: h.set})
		if err != nil {
			if errors.Is(err, ErrExit) || errors.Is(err, ErrInputClosed) {
				break
			}
			return fmt.Errorf("play round: %w", err)
		}

		renderRound(h.out, h.set, out)

		again, err := h.console.Confirm("Play another round?")
		if err != nil || !again {
			break
		}
	}

	transcript, err := h.gameService.GetTranscript(ctx, &game.GetTranscriptInput{})
	if err != nil {
		return fmt.Errorf("get transcript: %w", err)
	}
	renderTranscript(h.out, transcript.Exchanges)

	fmt.Fprintln(h.out, "Thanks for playing!")
	return nil
}
