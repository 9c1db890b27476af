package entropy

import (
	"crypto/rand"
	"io"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_entropy.go github.com/KirkDiggler/fairdice/internal/common/entropy Source

// Source supplies cryptographically secure random bytes
type Source interface {
	// Read fills p entirely with random bytes
	Read(p []byte) error
}

// Config for the entropy source
type Config struct {
	// Optional reader for testing; defaults to crypto/rand.Reader
	Reader io.Reader
}

// DefaultSource implements the Source interface over an io.Reader
type DefaultSource struct {
	reader io.Reader
}

// New creates a new entropy source
func New(cfg *Config) *DefaultSource {
	reader := io.Reader(rand.Reader)
	if cfg != nil && cfg.Reader != nil {
		reader = cfg.Reader
	}

	return &DefaultSource{
		reader: reader,
	}
}

// Read fills p entirely with random bytes
func (s *DefaultSource) Read(p []byte) error {
	_, err := io.ReadFull(s.reader, p)
	return err
}
