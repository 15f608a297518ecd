package reference

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Generate(Digits, 0)
	assert.Error(t, err)

	_, err = Generate("a", 4)
	assert.Error(t, err)
}

func TestGenerateLengthAndAlphabet(t *testing.T) {
	t.Parallel()

	code, err := Generate(Readable, 32)
	require.NoError(t, err)
	assert.Len(t, code, 32)
	for i := 0; i < len(code); i++ {
		assert.NotEqual(t, -1, strings.IndexByte(Readable, code[i]), "unexpected character %q", code[i])
	}
}

func TestPolicyNumberFormat(t *testing.T) {
	t.Parallel()

	rx := regexp.MustCompile(`^POL-\d{8}$`)
	for i := 0; i < 20; i++ {
		n, err := PolicyNumber()
		require.NoError(t, err)
		assert.Regexp(t, rx, n)
	}
}

func TestPaymentReferenceUniqueWithinSmallBatch(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		ref, err := PaymentReference()
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(ref, "PAY-"))
		_, dup := seen[ref]
		assert.False(t, dup, "duplicate reference %s", ref)
		seen[ref] = struct{}{}
	}
}

func TestTransactionID(t *testing.T) {
	t.Parallel()

	id := TransactionID()
	assert.Regexp(t, `^[0-9A-F]{32}$`, id)
}
