package fairness

import (
	"github.com/KirkDiggler/fairdice/internal/common/clock"
	"github.com/KirkDiggler/fairdice/internal/common/entropy"
	"github.com/KirkDiggler/fairdice/internal/common/uuid"
	"github.com/KirkDiggler/fairdice/internal/models"
	exchangeRepo "github.com/KirkDiggler/fairdice/internal/repositories/exchange"
)

// Config holds configuration for the fairness service
type Config struct {
	// Entropy supplies cryptographically secure random bytes
	Entropy entropy.Source

	// Counterparty is the interactive party prompted during exchanges
	Counterparty Counterparty

	// ExchangeRepo records completed exchange transcripts
	ExchangeRepo exchangeRepo.Repository

	// UUIDGenerator creates exchange IDs
	UUIDGenerator uuid.UUID

	// Clock timestamps completed exchanges
	Clock clock.Clock
}

type CommitInput struct {
	// Max is the exclusive upper bound; must be at least 2
	Max int
}

type CommitOutput struct {
	Commitment *models.Commitment
}

type VerifyCommitmentInput struct {
	// Digest is the commitment digest disclosed before the reveal
	Digest []byte

	// Secret is the revealed value
	Secret int

	// Key is the revealed HMAC key
	Key []byte
}

type CombineInput struct {
	Secret    int
	UserValue int
	Max       int
}

type CombineOutput struct {
	Value int
}

type FairRandomInput struct {
	// Max is the exclusive upper bound; must be at least 2
	Max int

	// Label describes what the exchange decides, e.g. "first move"
	Label string
}

type FairRandomOutput struct {
	// Value is the combined result in [0, Max)
	Value int

	// Exchange is the recorded transcript of the exchange
	Exchange *models.Exchange
}

type AnnounceCommitmentInput struct {
	Label  string
	Max    int
	Digest []byte
}

type PromptValueInput struct {
	Label string
	Max   int
}

type PromptValueOutput struct {
	Value int
}

type RevealCommitmentInput struct {
	Label  string
	Secret int
	Key    []byte
}
