package game

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/fairdice/internal/dice"
	exchangeRepo "github.com/KirkDiggler/fairdice/internal/repositories/exchange"
	"github.com/KirkDiggler/fairdice/internal/services/fairness"
)

// service implements the Service interface
type service struct {
	fairness     fairness.Service
	picker       Picker
	exchangeRepo exchangeRepo.Repository
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Fairness == nil {
		return nil, ErrNilFairness
	}

	if cfg.Picker == nil {
		return nil, ErrNilPicker
	}

	if cfg.ExchangeRepo == nil {
		return nil, ErrNilExchangeRepo
	}

	return &service{
		fairness:     cfg.Fairness,
		picker:       cfg.Picker,
		exchangeRepo: cfg.ExchangeRepo,
	}, nil
}

// PlayRound plays one full round of the game
func (s *service) PlayRound(ctx context.Context, input *PlayRoundInput) (*PlayRoundOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Set == nil {
		return nil, ErrNilDieSet
	}
	set := input.Set

	firstOut, err := s.fairness.FairRandom(ctx, &fairness.FairRandomInput{
		Max:   2,
		Label: LabelFirstMove,
	})
	if err != nil {
		return nil, fmt.Errorf("determine first mover: %w", err)
	}

	firstMover := MoverComputer
	if firstOut.Value == 1 {
		firstMover = MoverUser
	}

	var userDie, computerDie int
	if firstMover == MoverUser {
		userDie, err = s.pickUserDie(ctx, set, -1)
		if err != nil {
			return nil, err
		}

		computerDie, err = s.pickComputerDie(ctx, set, userDie)
		if err != nil {
			return nil, err
		}
	} else {
		computerDie, err = s.pickComputerDie(ctx, set, -1)
		if err != nil {
			return nil, err
		}

		userDie, err = s.pickUserDie(ctx, set, computerDie)
		if err != nil {
			return nil, err
		}
	}

	out := &PlayRoundOutput{
		FirstMover:  firstMover,
		UserDie:     userDie,
		ComputerDie: computerDie,
	}

	// The first mover rolls first; each roll is its own exchange.
	rolls := []func(context.Context, *dice.Set, *PlayRoundOutput) error{
		s.rollComputer,
		s.rollUser,
	}
	if firstMover == MoverUser {
		rolls[0], rolls[1] = s.rollUser, s.rollComputer
	}
	for _, roll := range rolls {
		if err := roll(ctx, set, out); err != nil {
			return nil, err
		}
	}

	switch {
	case out.UserFace > out.ComputerFace:
		out.Outcome = OutcomeUserWins
	case out.UserFace < out.ComputerFace:
		out.Outcome = OutcomeComputerWins
	default:
		out.Outcome = OutcomeDraw
	}

	return out, nil
}

// GetTranscript returns every recorded exchange in completion order
func (s *service) GetTranscript(ctx context.Context, input *GetTranscriptInput) (*GetTranscriptOutput, error) {
	listOut, err := s.exchangeRepo.ListExchanges(ctx, &exchangeRepo.ListExchangesInput{})
	if err != nil {
		return nil, fmt.Errorf("list exchanges: %w", err)
	}

	return &GetTranscriptOutput{
		Exchanges: listOut.Exchanges,
	}, nil
}

// pickUserDie prompts the user for a die, excluding the taken index
// (pass -1 when no die is taken yet)
func (s *service) pickUserDie(ctx context.Context, set *dice.Set, taken int) (int, error) {
	available := make([]int, 0, set.Len())
	for i := 0; i < set.Len(); i++ {
		if i != taken {
			available = append(available, i)
		}
	}

	pickOut, err := s.picker.PickDie(ctx, &PickDieInput{
		Dice:      set.Dice(),
		Available: available,
	})
	if err != nil {
		return 0, fmt.Errorf("pick user die: %w", err)
	}

	for _, i := range available {
		if pickOut.Index == i {
			return pickOut.Index, nil
		}
	}

	return 0, ErrInvalidDiePick
}

// pickComputerDie selects the computer's die with a fair exchange over all
// die indices. When the result collides with the user's die the whole
// exchange is re-run with a fresh commitment and prompt; re-mapping the
// rejected value onto the remaining dice would need its own bias proof.
func (s *service) pickComputerDie(ctx context.Context, set *dice.Set, taken int) (int, error) {
	for {
		out, err := s.fairness.FairRandom(ctx, &fairness.FairRandomInput{
			Max:   set.Len(),
			Label: LabelComputerDie,
		})
		if err != nil {
			return 0, fmt.Errorf("pick computer die: %w", err)
		}

		if out.Value != taken {
			return out.Value, nil
		}
	}
}

func (s *service) rollUser(ctx context.Context, set *dice.Set, out *PlayRoundOutput) error {
	rollOut, err := s.fairness.FairRandom(ctx, &fairness.FairRandomInput{
		Max:   dice.FaceCount,
		Label: LabelUserRoll,
	})
	if err != nil {
		return fmt.Errorf("user roll: %w", err)
	}

	out.UserFaceIndex = rollOut.Value
	out.UserFace = set.Die(out.UserDie).Face(rollOut.Value)
	return nil
}

func (s *service) rollComputer(ctx context.Context, set *dice.Set, out *PlayRoundOutput) error {
	rollOut, err := s.fairness.FairRandom(ctx, &fairness.FairRandomInput{
		Max:   dice.FaceCount,
		Label: LabelComputerRoll,
	})
	if err != nil {
		return fmt.Errorf("computer roll: %w", err)
	}

	out.ComputerFaceIndex = rollOut.Value
	out.ComputerFace = set.Die(out.ComputerDie).Face(rollOut.Value)
	return nil
}
