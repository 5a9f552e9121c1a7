package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// KeyType represents the type of limiter key
type KeyType string

const (
	// KeyTypeIP represents an IP-based rate limit key
	KeyTypeIP KeyType = "ip"
)

// LimiterKey is a value object that represents a rate limiter key.
// The value is always a one-way hash so raw client addresses never
// reach the store.
type LimiterKey struct {
	Type  KeyType
	Value string
}

// NewIPKey creates a limiter key from a caller IP. The address is
// SHA-256 hashed before use.
func NewIPKey(ip string) LimiterKey {
	sum := sha256.Sum256([]byte(ip))
	return LimiterKey{Type: KeyTypeIP, Value: hex.EncodeToString(sum[:])}
}

// String returns the string representation for use as Redis key
func (k LimiterKey) String() string {
	return fmt.Sprintf("rate_limit:%s:%s", k.Type, k.Value)
}

// IsValid validates the value object
func (k LimiterKey) IsValid() bool {
	return k.Type != "" && k.Value != ""
}
