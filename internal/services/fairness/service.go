package fairness

import (
	"context"
	"crypto/hmac"
	"encoding/binary"
	"fmt"
	"strconv"

	"golang.org/x/crypto/sha3"

	"github.com/KirkDiggler/fairdice/internal/common/clock"
	"github.com/KirkDiggler/fairdice/internal/common/entropy"
	"github.com/KirkDiggler/fairdice/internal/common/uuid"
	"github.com/KirkDiggler/fairdice/internal/models"
	exchangeRepo "github.com/KirkDiggler/fairdice/internal/repositories/exchange"
)

// keySize is the HMAC key length in bytes (256 bits)
const keySize = 32

// service implements the Service interface
type service struct {
	entropy       entropy.Source
	counterparty  Counterparty
	exchangeRepo  exchangeRepo.Repository
	uuidGenerator uuid.UUID
	clock         clock.Clock
}

// New creates a new fairness service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Entropy == nil {
		return nil, ErrNilEntropy
	}

	if cfg.Counterparty == nil {
		return nil, ErrNilCounterparty
	}

	if cfg.ExchangeRepo == nil {
		return nil, ErrNilExchangeRepo
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		entropy:       cfg.Entropy,
		counterparty:  cfg.Counterparty,
		exchangeRepo:  cfg.ExchangeRepo,
		uuidGenerator: cfg.UUIDGenerator,
		clock:         cfg.Clock,
	}, nil
}

// Commit draws a secret in [0, max) without modulo bias and binds it with
// an HMAC-SHA3-256 digest under a fresh 256-bit key
func (s *service) Commit(ctx context.Context, input *CommitInput) (*CommitOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Max < 2 {
		return nil, ErrInvalidMax
	}

	secret, err := s.sampleUniform(input.Max)
	if err != nil {
		return nil, fmt.Errorf("draw secret: %w", err)
	}

	key := make([]byte, keySize)
	if err := s.entropy.Read(key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}

	return &CommitOutput{
		Commitment: &models.Commitment{
			Max:    input.Max,
			Secret: secret,
			Key:    key,
			Digest: computeDigest(key, secret),
		},
	}, nil
}

// VerifyCommitment recomputes the digest from revealed values and compares
// it to the disclosed one. A mismatch means the implementation is broken or
// the transcript was tampered with; callers must treat it as fatal.
func (s *service) VerifyCommitment(ctx context.Context, input *VerifyCommitmentInput) error {
	if input == nil {
		return ErrNilInput
	}

	if !hmac.Equal(computeDigest(input.Key, input.Secret), input.Digest) {
		return ErrCommitmentMismatch
	}

	return nil
}

// Combine folds the counterparty's contribution into the committed secret.
// As long as the secret is uniform and independent of the contribution, the
// sum mod max is uniform no matter how the contribution was chosen.
func (s *service) Combine(ctx context.Context, input *CombineInput) (*CombineOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Max < 2 {
		return nil, ErrInvalidMax
	}

	if input.Secret < 0 || input.Secret >= input.Max {
		return nil, ErrValueOutOfRange
	}

	if input.UserValue < 0 || input.UserValue >= input.Max {
		return nil, ErrValueOutOfRange
	}

	return &CombineOutput{
		Value: (input.Secret + input.UserValue) % input.Max,
	}, nil
}

// FairRandom runs one full exchange. The counterparty's value is fixed
// before the secret and key leave this method; nothing between Commit and
// PromptValue discloses them.
func (s *service) FairRandom(ctx context.Context, input *FairRandomInput) (*FairRandomOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	commitOut, err := s.Commit(ctx, &CommitInput{Max: input.Max})
	if err != nil {
		return nil, err
	}
	commitment := commitOut.Commitment

	err = s.counterparty.AnnounceCommitment(ctx, &AnnounceCommitmentInput{
		Label:  input.Label,
		Max:    input.Max,
		Digest: commitment.Digest,
	})
	if err != nil {
		return nil, fmt.Errorf("announce commitment: %w", err)
	}

	promptOut, err := s.counterparty.PromptValue(ctx, &PromptValueInput{
		Label: input.Label,
		Max:   input.Max,
	})
	if err != nil {
		// The commitment is discarded unused; the digest alone leaks
		// nothing about the secret.
		return nil, fmt.Errorf("prompt value: %w", err)
	}

	if promptOut.Value < 0 || promptOut.Value >= input.Max {
		return nil, ErrValueOutOfRange
	}

	err = s.VerifyCommitment(ctx, &VerifyCommitmentInput{
		Digest: commitment.Digest,
		Secret: commitment.Secret,
		Key:    commitment.Key,
	})
	if err != nil {
		return nil, err
	}

	err = s.counterparty.RevealCommitment(ctx, &RevealCommitmentInput{
		Label:  input.Label,
		Secret: commitment.Secret,
		Key:    commitment.Key,
	})
	if err != nil {
		return nil, fmt.Errorf("reveal commitment: %w", err)
	}

	combineOut, err := s.Combine(ctx, &CombineInput{
		Secret:    commitment.Secret,
		UserValue: promptOut.Value,
		Max:       input.Max,
	})
	if err != nil {
		return nil, err
	}

	record := &models.Exchange{
		ID:        s.uuidGenerator.NewUUID(),
		Label:     input.Label,
		Max:       input.Max,
		Digest:    commitment.Digest,
		Secret:    commitment.Secret,
		Key:       commitment.Key,
		UserValue: promptOut.Value,
		Result:    combineOut.Value,
		CreatedAt: s.clock.Now(),
	}

	err = s.exchangeRepo.SaveExchange(ctx, &exchangeRepo.SaveExchangeInput{
		Exchange: record,
	})
	if err != nil {
		return nil, fmt.Errorf("record exchange: %w", err)
	}

	return &FairRandomOutput{
		Value:    combineOut.Value,
		Exchange: record,
	}, nil
}

// sampleUniform draws an unbiased value in [0, max) by rejection sampling.
// A 32-bit draw is rejected when it lands in the trailing incomplete bucket
// above the largest multiple of max; reducing such a draw mod max would
// skew the low values.
func (s *service) sampleUniform(max int) (int, error) {
	var buf [4]byte
	limit := uint64(1<<32) - uint64(1<<32)%uint64(max)

	for {
		if err := s.entropy.Read(buf[:]); err != nil {
			return 0, err
		}

		draw := uint64(binary.BigEndian.Uint32(buf[:]))
		if draw < limit {
			return int(draw % uint64(max)), nil
		}
	}
}

// computeDigest computes HMAC-SHA3-256 over the secret's base-10 ASCII
// representation. External verifiers must use the same encoding.
func computeDigest(key []byte, secret int) []byte {
	mac := hmac.New(sha3.New256, key)
	mac.Write([]byte(strconv.Itoa(secret)))
	return mac.Sum(nil)
}
