// Package identity generates device credentials.
package identity

import (
	"crypto/rand"
	"math/big"
)

const (
	apiKeyChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	apiKeyLen   = 32

	friendlyChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	friendlyLen   = 6
)

// NewAPIKey returns a 32-character mixed-case alphanumeric API key.
func NewAPIKey() string {
	return randomString(apiKeyLen, apiKeyChars)
}

// NewFriendlyID returns a 6-character uppercase alphanumeric device ID.
func NewFriendlyID() string {
	return randomString(friendlyLen, friendlyChars)
}

func randomString(n int, alphabet string) string {
	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken.
			panic(err)
		}
		out[i] = alphabet[idx.Int64()]
	}
	return string(out)
}
