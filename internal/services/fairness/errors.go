package fairness

// FairnessError is a custom error type for protocol errors
type FairnessError string

// Error implements the error interface
func (e FairnessError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig          FairnessError = "config cannot be nil"
	ErrNilEntropy         FairnessError = "entropy source cannot be nil"
	ErrNilCounterparty    FairnessError = "counterparty cannot be nil"
	ErrNilExchangeRepo    FairnessError = "exchange repository cannot be nil"
	ErrNilUUIDGenerator   FairnessError = "UUID generator cannot be nil"
	ErrNilClock           FairnessError = "clock cannot be nil"
	ErrNilInput           FairnessError = "input cannot be nil"
	ErrInvalidMax         FairnessError = "max must be at least 2"
	ErrValueOutOfRange    FairnessError = "value is outside [0, max)"
	ErrCommitmentMismatch FairnessError = "revealed values do not reproduce the disclosed digest"
)
