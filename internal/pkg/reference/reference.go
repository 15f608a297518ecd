package reference

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	Digits = "0123456789"
	// Upper-case letters and digits without the look-alikes 0, O, 1 and I.
	Readable = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"
)

// Generate returns a cryptographically secure random string over alphabet.
func Generate(alphabet string, length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid reference length: %d", length)
	}
	if len(alphabet) < 2 || len(alphabet) > 256 {
		return "", fmt.Errorf("invalid alphabet size: %d", len(alphabet))
	}

	// Rejection sampling to avoid modulo bias.
	maxRandomByte := 256 - 256%len(alphabet)

	out := make([]byte, length)
	buf := make([]byte, length*2)
	written := 0

	for written < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read secure random bytes: %w", err)
		}

		for _, b := range buf {
			if int(b) >= maxRandomByte {
				continue
			}
			out[written] = alphabet[int(b)%len(alphabet)]
			written++
			if written == length {
				break
			}
		}
	}

	return string(out), nil
}

// PolicyNumber returns a number like POL-39284756.
func PolicyNumber() (string, error) {
	digits, err := Generate(Digits, 8)
	if err != nil {
		return "", err
	}
	return "POL-" + digits, nil
}

// PaymentReference identifies a mock payment, e.g. PAY-7K3M9QXR.
func PaymentReference() (string, error) {
	code, err := Generate(Readable, 8)
	if err != nil {
		return "", err
	}
	return "PAY-" + code, nil
}

// TransactionID is an opaque id attached to every payment confirmation.
func TransactionID() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}
