package security

import (
	"crypto/rand"
	"errors"
	"strings"
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errAlphabetSize   = errors.New("alphabet must contain between 1 and 256 characters")
)

// RandomString draws length characters uniformly from alphabet using
// crypto/rand. Bytes from the tail of the range that does not divide
// evenly by the alphabet size are discarded, so no character is more
// likely than another.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 || len(alphabet) > 256 {
		return "", errAlphabetSize
	}

	cutoff := 256 - 256%len(alphabet)

	var builder strings.Builder
	builder.Grow(length)
	buffer := make([]byte, length)
	for builder.Len() < length {
		if _, err := rand.Read(buffer); err != nil {
			return "", err
		}
		for _, randomByte := range buffer {
			if int(randomByte) >= cutoff {
				continue
			}
			builder.WriteByte(alphabet[int(randomByte)%len(alphabet)])
			if builder.Len() == length {
				break
			}
		}
	}
	return builder.String(), nil
}
