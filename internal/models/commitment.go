package models

import "encoding/hex"

// Commitment binds the computer to a secret value before the user acts.
// The digest is disclosed up front; the secret and key stay withheld until
// the user's contribution is fixed. A commitment is single-use.
type Commitment struct {
	// Max is the exclusive upper bound the secret was drawn from
	Max int

	// Secret is the committed value in [0, Max), withheld until reveal
	Secret int

	// Key is the 256-bit HMAC key, withheld until reveal
	Key []byte

	// Digest is HMAC-SHA3-256(Key, decimal string of Secret), disclosed
	// to the user before they contribute
	Digest []byte
}

// DigestHex renders the disclosed digest as lowercase hexadecimal
func (c *Commitment) DigestHex() string {
	return hex.EncodeToString(c.Digest)
}

// KeyHex renders the revealed key as lowercase hexadecimal
func (c *Commitment) KeyHex() string {
	return hex.EncodeToString(c.Key)
}
