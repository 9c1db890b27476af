package models

import (
	"encoding/hex"
	"time"
)

// Exchange is the transcript of one completed fair-randomness exchange.
// Everything needed to re-verify the commitment after the fact is here.
type Exchange struct {
	// ID is the unique identifier for the exchange
	ID string

	// Label describes what the exchange decided, e.g. "first move"
	Label string

	// Max is the exclusive upper bound of the result range
	Max int

	// Digest is the commitment digest disclosed before the user acted
	Digest []byte

	// Secret is the computer's revealed value in [0, Max)
	Secret int

	// Key is the revealed 256-bit HMAC key
	Key []byte

	// UserValue is the user's contribution in [0, Max)
	UserValue int

	// Result is (Secret + UserValue) mod Max
	Result int

	// CreatedAt is when the exchange completed
	CreatedAt time.Time
}

// DigestHex renders the digest as lowercase hexadecimal
func (e *Exchange) DigestHex() string {
	return hex.EncodeToString(e.Digest)
}

// KeyHex renders the key as lowercase hexadecimal
func (e *Exchange) KeyHex() string {
	return hex.EncodeToString(e.Key)
}
