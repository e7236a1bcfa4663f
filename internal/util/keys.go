package util

import (
	"crypto/sha256"
	"fmt"
)

// LedgerKey returns prefix + ":" + the first 16 hex chars of sha256(text).
// The whole combined text is hashed, so any edit to it yields a new key.
func LedgerKey(prefix, text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("%s:%x", prefix, sum[:8])
}
