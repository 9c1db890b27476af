package fairness

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/fairdice/internal/services/fairness Service
//go:generate mockgen -package=mocks -destination=mocks/mock_counterparty.go github.com/KirkDiggler/fairdice/internal/services/fairness Counterparty

import "context"

// Service defines the interface for fair randomness operations
type Service interface {
	// Commit draws a secret in [0, max) without modulo bias and binds it
	// with an HMAC digest
	Commit(ctx context.Context, input *CommitInput) (*CommitOutput, error)

	// VerifyCommitment recomputes the digest from revealed values and
	// compares it to the disclosed one
	VerifyCommitment(ctx context.Context, input *VerifyCommitmentInput) error

	// Combine folds the counterparty's contribution into the committed
	// secret, producing the exchange result
	Combine(ctx context.Context, input *CombineInput) (*CombineOutput, error)

	// FairRandom runs a full commit, announce, prompt, reveal, combine
	// exchange and records its transcript
	FairRandom(ctx context.Context, input *FairRandomInput) (*FairRandomOutput, error)
}

// Counterparty is the interactive party contributing to an exchange. The
// protocol only ever calls it in announce, prompt, reveal order.
type Counterparty interface {
	// AnnounceCommitment discloses the commitment digest before the
	// counterparty contributes
	AnnounceCommitment(ctx context.Context, input *AnnounceCommitmentInput) error

	// PromptValue blocks until the counterparty supplies a value in
	// [0, max); implementations re-prompt on invalid input rather than
	// returning it
	PromptValue(ctx context.Context, input *PromptValueInput) (*PromptValueOutput, error)

	// RevealCommitment discloses the secret and key once the
	// counterparty's value is fixed
	RevealCommitment(ctx context.Context, input *RevealCommitmentInput) error
}
