package game

import (
	"github.com/KirkDiggler/fairdice/internal/dice"
	"github.com/KirkDiggler/fairdice/internal/models"
	exchangeRepo "github.com/KirkDiggler/fairdice/internal/repositories/exchange"
	"github.com/KirkDiggler/fairdice/internal/services/fairness"
)

// Mover identifies which party acts first in a round
type Mover string

const (
	// MoverUser indicates the user picks their die first
	MoverUser Mover = "user"

	// MoverComputer indicates the computer picks its die first
	MoverComputer Mover = "computer"
)

// Outcome is the result of a round
type Outcome string

const (
	// OutcomeUserWins indicates the user's face beat the computer's
	OutcomeUserWins Outcome = "user_wins"

	// OutcomeComputerWins indicates the computer's face beat the user's
	OutcomeComputerWins Outcome = "computer_wins"

	// OutcomeDraw indicates both parties rolled the same face value
	OutcomeDraw Outcome = "draw"
)

// Exchange labels surfaced to the user during a round
const (
	LabelFirstMove    = "first move"
	LabelComputerDie  = "computer die"
	LabelUserRoll     = "user roll"
	LabelComputerRoll = "computer roll"
)

// Config holds configuration for the game service
type Config struct {
	// Fairness runs the commit-reveal exchanges
	Fairness fairness.Service

	// Picker is the user's die-selection capability
	Picker Picker

	// ExchangeRepo reads back recorded exchange transcripts
	ExchangeRepo exchangeRepo.Repository
}

type PlayRoundInput struct {
	// Set is the validated dice configuration for this process
	Set *dice.Set
}

type PlayRoundOutput struct {
	// FirstMover is the party the first-move exchange selected
	FirstMover Mover

	// UserDie and ComputerDie are indices into the set
	UserDie     int
	ComputerDie int

	// UserFaceIndex and ComputerFaceIndex are the fair roll results
	UserFaceIndex     int
	ComputerFaceIndex int

	// UserFace and ComputerFace are the rolled face values
	UserFace     int
	ComputerFace int

	// Outcome is who won the round
	Outcome Outcome
}

type GetTranscriptInput struct {
}

type GetTranscriptOutput struct {
	Exchanges []*models.Exchange
}

type PickDieInput struct {
	// Dice is the full set in configuration order
	Dice []dice.Die

	// Available holds the still-selectable indices into Dice
	Available []int
}

type PickDieOutput struct {
	// Index is the chosen die index; must be one of Available
	Index int
}
