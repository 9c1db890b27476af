package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       GameError = "config cannot be nil"
	ErrNilFairness     GameError = "fairness service cannot be nil"
	ErrNilPicker       GameError = "picker cannot be nil"
	ErrNilExchangeRepo GameError = "exchange repository cannot be nil"
	ErrNilInput        GameError = "input cannot be nil"
	ErrNilDieSet       GameError = "die set cannot be nil"
	ErrInvalidDiePick  GameError = "picked die is not available"
)
