package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/fairdice/internal/services/game Service
//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/KirkDiggler/fairdice/internal/services/game Picker

import "context"

// Service defines the interface for game operations
type Service interface {
	// PlayRound plays one full round: first-move exchange, die selection
	// for both parties, one fair roll each, and a winner
	PlayRound(ctx context.Context, input *PlayRoundInput) (*PlayRoundOutput, error)

	// GetTranscript returns the transcripts of every exchange played so
	// far, for after-the-fact verification
	GetTranscript(ctx context.Context, input *GetTranscriptInput) (*GetTranscriptOutput, error)
}

// Picker is the user's die-selection capability, implemented by the CLI
type Picker interface {
	// PickDie blocks until the user chooses one of the available die
	// indices; implementations re-prompt on invalid input
	PickDie(ctx context.Context, input *PickDieInput) (*PickDieOutput, error)
}
