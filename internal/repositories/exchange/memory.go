package exchange

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/fairdice/internal/models"
)

// ErrExchangeNotFound is returned when an exchange is not found
var ErrExchangeNotFound = errors.New("exchange not found")

// Config holds configuration for the in-memory exchange repository
type Config struct {
}

// memoryRepository implements the Repository interface in process memory.
// The transcript only needs to outlive the game round it belongs to, so
// nothing is written outside the process.
type memoryRepository struct {
	mu        sync.RWMutex
	byID      map[string]*models.Exchange
	exchanges []*models.Exchange
}

// NewMemory creates a new in-memory exchange repository
func NewMemory(cfg *Config) (*memoryRepository, error) {
	return &memoryRepository{
		byID: make(map[string]*models.Exchange),
	}, nil
}

// SaveExchange records a completed exchange
func (r *memoryRepository) SaveExchange(ctx context.Context, input *SaveExchangeInput) error {
	if input == nil || input.Exchange == nil {
		return errors.New("input and exchange cannot be nil")
	}

	if input.Exchange.ID == "" {
		return errors.New("exchange ID cannot be empty")
	}

	stored := cloneExchange(input.Exchange)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[stored.ID]; !exists {
		r.exchanges = append(r.exchanges, stored)
	} else {
		for i, existing := range r.exchanges {
			if existing.ID == stored.ID {
				r.exchanges[i] = stored
				break
			}
		}
	}
	r.byID[stored.ID] = stored

	return nil
}

// GetExchange retrieves an exchange by ID
func (r *memoryRepository) GetExchange(ctx context.Context, input *GetExchangeInput) (*models.Exchange, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[input.ExchangeID]
	if !ok {
		return nil, ErrExchangeNotFound
	}

	return cloneExchange(stored), nil
}

// ListExchanges retrieves all recorded exchanges in completion order
func (r *memoryRepository) ListExchanges(ctx context.Context, input *ListExchangesInput) (*ListExchangesOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exchanges := make([]*models.Exchange, 0, len(r.exchanges))
	for _, stored := range r.exchanges {
		exchanges = append(exchanges, cloneExchange(stored))
	}

	return &ListExchangesOutput{
		Exchanges: exchanges,
	}, nil
}

// cloneExchange copies an exchange so callers cannot mutate stored state
func cloneExchange(e *models.Exchange) *models.Exchange {
	clone := *e
	clone.Key = append([]byte(nil), e.Key...)
	clone.Digest = append([]byte(nil), e.Digest...)
	return &clone
}
