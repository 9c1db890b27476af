package fairness_test

import (
	"context"
	"crypto/hmac"
	mrand "math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/sha3"

	clockMocks "github.com/KirkDiggler/fairdice/internal/common/clock/mocks"
	"github.com/KirkDiggler/fairdice/internal/common/entropy"
	entropyMocks "github.com/KirkDiggler/fairdice/internal/common/entropy/mocks"
	uuidMocks "github.com/KirkDiggler/fairdice/internal/common/uuid/mocks"
	"github.com/KirkDiggler/fairdice/internal/models"
	exchangeRepo "github.com/KirkDiggler/fairdice/internal/repositories/exchange"
	exchangeMocks "github.com/KirkDiggler/fairdice/internal/repositories/exchange/mocks"
	"github.com/KirkDiggler/fairdice/internal/services/fairness"
	"github.com/KirkDiggler/fairdice/internal/services/fairness/mocks"
)

type FairnessServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockCounterparty *mocks.MockCounterparty
	mockEntropy      *entropyMocks.MockSource
	mockRepo         *exchangeMocks.MockRepository
	mockUUID         *uuidMocks.MockUUID
	mockClock        *clockMocks.MockClock
	ctx              context.Context

	testTime time.Time
}

func (s *FairnessServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCounterparty = mocks.NewMockCounterparty(s.mockCtrl)
	s.mockEntropy = entropyMocks.NewMockSource(s.mockCtrl)
	s.mockRepo = exchangeMocks.NewMockRepository(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
}

func (s *FairnessServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFairnessServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FairnessServiceTestSuite))
}

// newService builds a service around the mock entropy source
func (s *FairnessServiceTestSuite) newService() fairness.Service {
	svc, err := fairness.New(&fairness.Config{
		Entropy:       s.mockEntropy,
		Counterparty:  s.mockCounterparty,
		ExchangeRepo:  s.mockRepo,
		UUIDGenerator: s.mockUUID,
		Clock:         s.mockClock,
	})
	s.Require().NoError(err)
	return svc
}

// newSeededService builds a service whose entropy is a deterministic
// seeded stream, for statistical tests
func (s *FairnessServiceTestSuite) newSeededService(seed int64) fairness.Service {
	svc, err := fairness.New(&fairness.Config{
		Entropy:       entropy.New(&entropy.Config{Reader: mrand.New(mrand.NewSource(seed))}),
		Counterparty:  s.mockCounterparty,
		ExchangeRepo:  s.mockRepo,
		UUIDGenerator: s.mockUUID,
		Clock:         s.mockClock,
	})
	s.Require().NoError(err)
	return svc
}

func expectedDigest(key []byte, secret int) []byte {
	mac := hmac.New(sha3.New256, key)
	mac.Write([]byte(strconv.Itoa(secret)))
	return mac.Sum(nil)
}

func (s *FairnessServiceTestSuite) TestNewValidation() {
	_, err := fairness.New(nil)
	s.ErrorIs(err, fairness.ErrNilConfig)

	_, err = fairness.New(&fairness.Config{})
	s.ErrorIs(err, fairness.ErrNilEntropy)

	_, err = fairness.New(&fairness.Config{
		Entropy: s.mockEntropy,
	})
	s.ErrorIs(err, fairness.ErrNilCounterparty)

	_, err = fairness.New(&fairness.Config{
		Entropy:      s.mockEntropy,
		Counterparty: s.mockCounterparty,
	})
	s.ErrorIs(err, fairness.ErrNilExchangeRepo)

	_, err = fairness.New(&fairness.Config{
		Entropy:      s.mockEntropy,
		Counterparty: s.mockCounterparty,
		ExchangeRepo: s.mockRepo,
	})
	s.ErrorIs(err, fairness.ErrNilUUIDGenerator)

	_, err = fairness.New(&fairness.Config{
		Entropy:       s.mockEntropy,
		Counterparty:  s.mockCounterparty,
		ExchangeRepo:  s.mockRepo,
		UUIDGenerator: s.mockUUID,
	})
	s.ErrorIs(err, fairness.ErrNilClock)
}

func (s *FairnessServiceTestSuite) TestCommitRejectsInvalidMax() {
	svc := s.newService()

	for _, max := range []int{1, 0, -5} {
		_, err := svc.Commit(s.ctx, &fairness.CommitInput{Max: max})
		s.ErrorIs(err, fairness.ErrInvalidMax)
	}
}

func (s *FairnessServiceTestSuite) TestCommitBinding() {
	svc := s.newSeededService(42)

	out, err := svc.Commit(s.ctx, &fairness.CommitInput{Max: 6})
	s.Require().NoError(err)

	commitment := out.Commitment
	s.GreaterOrEqual(commitment.Secret, 0)
	s.Less(commitment.Secret, 6)
	s.Len(commitment.Key, 32)
	s.Len(commitment.Digest, 32)

	// The digest must be HMAC-SHA3-256 over the secret's decimal string,
	// reproducible by any external verifier.
	s.Equal(expectedDigest(commitment.Key, commitment.Secret), commitment.Digest)

	err = svc.VerifyCommitment(s.ctx, &fairness.VerifyCommitmentInput{
		Digest: commitment.Digest,
		Secret: commitment.Secret,
		Key:    commitment.Key,
	})
	s.NoError(err)
}

func (s *FairnessServiceTestSuite) TestVerifyCommitmentDetectsTampering() {
	svc := s.newSeededService(7)

	out, err := svc.Commit(s.ctx, &fairness.CommitInput{Max: 6})
	s.Require().NoError(err)
	commitment := out.Commitment

	err = svc.VerifyCommitment(s.ctx, &fairness.VerifyCommitmentInput{
		Digest: commitment.Digest,
		Secret: (commitment.Secret + 1) % 6,
		Key:    commitment.Key,
	})
	s.ErrorIs(err, fairness.ErrCommitmentMismatch)

	tamperedKey := append([]byte(nil), commitment.Key...)
	tamperedKey[0] ^= 0x01
	err = svc.VerifyCommitment(s.ctx, &fairness.VerifyCommitmentInput{
		Digest: commitment.Digest,
		Secret: commitment.Secret,
		Key:    tamperedKey,
	})
	s.ErrorIs(err, fairness.ErrCommitmentMismatch)
}

func (s *FairnessServiceTestSuite) TestCommitmentHiding() {
	svc := s.newSeededService(11)

	out, err := svc.Commit(s.ctx, &fairness.CommitInput{Max: 6})
	s.Require().NoError(err)
	commitment := out.Commitment

	// Without the key, brute-forcing the whole secret domain never
	// reproduces the digest.
	zeroKey := make([]byte, 32)
	for candidate := 0; candidate < 6; candidate++ {
		s.NotEqual(expectedDigest(zeroKey, candidate), commitment.Digest)
		s.NotEqual(expectedDigest(nil, candidate), commitment.Digest)
	}

	// Fresh keys make every digest distinct even when secrets collide.
	seen := make(map[string]bool)
	for i := 0; i < 32; i++ {
		next, err := svc.Commit(s.ctx, &fairness.CommitInput{Max: 2})
		s.Require().NoError(err)
		s.False(seen[next.Commitment.DigestHex()])
		seen[next.Commitment.DigestHex()] = true
	}
}

func (s *FairnessServiceTestSuite) TestCombine() {
	svc := s.newService()

	tests := []struct {
		name      string
		secret    int
		userValue int
		max       int
		want      int
	}{
		{name: "no wrap", secret: 2, userValue: 1, max: 6, want: 3},
		{name: "wraps", secret: 5, userValue: 3, max: 6, want: 2},
		{name: "zeroes", secret: 0, userValue: 0, max: 2, want: 0},
		{name: "sum equals max", secret: 1, userValue: 1, max: 2, want: 0},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			out, err := svc.Combine(s.ctx, &fairness.CombineInput{
				Secret:    tt.secret,
				UserValue: tt.userValue,
				Max:       tt.max,
			})
			s.Require().NoError(err)
			s.Equal(tt.want, out.Value)
		})
	}
}

func (s *FairnessServiceTestSuite) TestCombineRejectsOutOfRange() {
	svc := s.newService()

	tests := []struct {
		name  string
		input *fairness.CombineInput
	}{
		{name: "secret negative", input: &fairness.CombineInput{Secret: -1, UserValue: 0, Max: 6}},
		{name: "secret too large", input: &fairness.CombineInput{Secret: 6, UserValue: 0, Max: 6}},
		{name: "user negative", input: &fairness.CombineInput{Secret: 0, UserValue: -1, Max: 6}},
		{name: "user too large", input: &fairness.CombineInput{Secret: 0, UserValue: 6, Max: 6}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := svc.Combine(s.ctx, tt.input)
			s.ErrorIs(err, fairness.ErrValueOutOfRange)
		})
	}
}

// TestCombineUniformity pits the protocol against a constant adversarial
// contribution: the combined results must still be uniform because the
// committed secret is.
func (s *FairnessServiceTestSuite) TestCombineUniformity() {
	svc := s.newSeededService(1234)

	const (
		max    = 6
		trials = 6000
	)

	counts := make([]int, max)
	for i := 0; i < trials; i++ {
		out, err := svc.Commit(s.ctx, &fairness.CommitInput{Max: max})
		s.Require().NoError(err)

		combined, err := svc.Combine(s.ctx, &fairness.CombineInput{
			Secret:    out.Commitment.Secret,
			UserValue: 3,
			Max:       max,
		})
		s.Require().NoError(err)
		counts[combined.Value]++
	}

	// Chi-square against uniform, 5 degrees of freedom; 20.52 is the
	// p=0.001 critical value.
	expected := float64(trials) / float64(max)
	var chi float64
	for _, count := range counts {
		diff := float64(count) - expected
		chi += diff * diff / expected
	}
	s.Less(chi, 20.52)
}

// TestCommitRejectionSampling feeds the sampler a draw from the trailing
// incomplete bucket and expects it to be discarded, not reduced mod max.
func (s *FairnessServiceTestSuite) TestCommitRejectionSampling() {
	svc := s.newService()

	// For max=6 the largest multiple of 6 below 2^32 is 2^32-4, so
	// 0xFFFFFFFE falls in the rejected range.
	gomock.InOrder(
		s.mockEntropy.EXPECT().Read(gomock.Len(4)).DoAndReturn(func(p []byte) error {
			copy(p, []byte{0xff, 0xff, 0xff, 0xfe})
			return nil
		}),
		s.mockEntropy.EXPECT().Read(gomock.Len(4)).DoAndReturn(func(p []byte) error {
			copy(p, []byte{0x00, 0x00, 0x00, 0x09})
			return nil
		}),
		s.mockEntropy.EXPECT().Read(gomock.Len(32)).DoAndReturn(func(p []byte) error {
			for i := range p {
				p[i] = 0x11
			}
			return nil
		}),
	)

	out, err := svc.Commit(s.ctx, &fairness.CommitInput{Max: 6})
	s.Require().NoError(err)
	s.Equal(3, out.Commitment.Secret)
}

// TestFairRandomOrdering asserts the exchange sequencing structurally: the
// digest is announced, then the user's value is fixed, and only then are
// the secret and key revealed.
func (s *FairnessServiceTestSuite) TestFairRandomOrdering() {
	svc := s.newService()

	var recorded *models.Exchange

	gomock.InOrder(
		s.mockEntropy.EXPECT().Read(gomock.Len(4)).DoAndReturn(func(p []byte) error {
			copy(p, []byte{0x00, 0x00, 0x00, 0x05})
			return nil
		}),
		s.mockEntropy.EXPECT().Read(gomock.Len(32)).DoAndReturn(func(p []byte) error {
			for i := range p {
				p[i] = 0x22
			}
			return nil
		}),
		s.mockCounterparty.EXPECT().
			AnnounceCommitment(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *fairness.AnnounceCommitmentInput) error {
				s.Equal("first move", input.Label)
				s.Equal(6, input.Max)
				s.Len(input.Digest, 32)
				return nil
			}),
		s.mockCounterparty.EXPECT().
			PromptValue(s.ctx, &fairness.PromptValueInput{Label: "first move", Max: 6}).
			Return(&fairness.PromptValueOutput{Value: 3}, nil),
		s.mockCounterparty.EXPECT().
			RevealCommitment(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *fairness.RevealCommitmentInput) error {
				s.Equal(5, input.Secret)
				s.Len(input.Key, 32)
				return nil
			}),
		s.mockUUID.EXPECT().NewUUID().Return("test-exchange-id"),
		s.mockClock.EXPECT().Now().Return(s.testTime),
		s.mockRepo.EXPECT().
			SaveExchange(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *exchangeRepo.SaveExchangeInput) error {
				recorded = input.Exchange
				return nil
			}),
	)

	out, err := svc.FairRandom(s.ctx, &fairness.FairRandomInput{Max: 6, Label: "first move"})
	s.Require().NoError(err)

	// secret 5 + user 3 mod 6
	s.Equal(2, out.Value)

	s.Require().NotNil(recorded)
	s.Equal("test-exchange-id", recorded.ID)
	s.Equal(5, recorded.Secret)
	s.Equal(3, recorded.UserValue)
	s.Equal(2, recorded.Result)
	s.Equal(s.testTime, recorded.CreatedAt)
	s.Equal(expectedDigest(recorded.Key, recorded.Secret), recorded.Digest)
}

func (s *FairnessServiceTestSuite) TestFairRandomPromptAbortDiscardsCommitment() {
	svc := s.newService()

	s.mockEntropy.EXPECT().Read(gomock.Any()).DoAndReturn(func(p []byte) error {
		return nil
	}).Times(2)
	s.mockCounterparty.EXPECT().AnnounceCommitment(s.ctx, gomock.Any()).Return(nil)
	s.mockCounterparty.EXPECT().
		PromptValue(s.ctx, gomock.Any()).
		Return(nil, context.Canceled)

	// No RevealCommitment and no SaveExchange expectations: an aborted
	// prompt must leave the commitment unrevealed and unrecorded.
	_, err := svc.FairRandom(s.ctx, &fairness.FairRandomInput{Max: 6, Label: "roll"})
	s.ErrorIs(err, context.Canceled)
}

func (s *FairnessServiceTestSuite) TestFairRandomRejectsOutOfRangeValue() {
	svc := s.newService()

	s.mockEntropy.EXPECT().Read(gomock.Any()).DoAndReturn(func(p []byte) error {
		return nil
	}).Times(2)
	s.mockCounterparty.EXPECT().AnnounceCommitment(s.ctx, gomock.Any()).Return(nil)
	s.mockCounterparty.EXPECT().
		PromptValue(s.ctx, gomock.Any()).
		Return(&fairness.PromptValueOutput{Value: 6}, nil)

	_, err := svc.FairRandom(s.ctx, &fairness.FairRandomInput{Max: 6, Label: "roll"})
	s.ErrorIs(err, fairness.ErrValueOutOfRange)
}

func (s *FairnessServiceTestSuite) TestFairRandomRejectsInvalidMax() {
	svc := s.newService()

	_, err := svc.FairRandom(s.ctx, &fairness.FairRandomInput{Max: 1, Label: "roll"})
	s.ErrorIs(err, fairness.ErrInvalidMax)
}
