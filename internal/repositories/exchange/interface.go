package exchange

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/fairdice/internal/repositories/exchange Repository

import (
	"context"

	"github.com/KirkDiggler/fairdice/internal/models"
)

// Repository defines the interface for the exchange transcript log
type Repository interface {
	// SaveExchange records a completed exchange
	SaveExchange(ctx context.Context, input *SaveExchangeInput) error

	// GetExchange retrieves an exchange by ID
	GetExchange(ctx context.Context, input *GetExchangeInput) (*models.Exchange, error)

	// ListExchanges retrieves all recorded exchanges in completion order
	ListExchanges(ctx context.Context, input *ListExchangesInput) (*ListExchangesOutput, error)
}
