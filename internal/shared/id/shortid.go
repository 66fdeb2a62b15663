// Package id draws random strings for generated credentials.
package id

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// Alphabets the credential tokens draw from.
const (
	Digits       = "0123456789"
	Letters      = "abcdefghijklmnopqrstuvwxyz"
	Alphanumeric = Digits + Letters
)

// DefaultLength applies when a caller asks for zero or fewer characters.
const DefaultLength = 12

var errAlphabet = errors.New("alphabet must hold between 1 and 256 bytes")

// GenerateFrom returns length bytes drawn uniformly from alphabet using
// crypto/rand. Bytes that would bias the result are rejected and redrawn.
func GenerateFrom(alphabet string, length int) (string, error) {
	n := len(alphabet)
	if n == 0 || n > 256 {
		return "", errAlphabet
	}
	if length <= 0 {
		length = DefaultLength
	}

	// largest multiple of n that fits in a byte
	limit := 256 - 256%n
	out := make([]byte, 0, length)
	buf := make([]byte, length+length/2+1)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%n])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}
