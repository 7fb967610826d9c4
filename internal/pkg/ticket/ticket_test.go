package ticket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		id, err := New()
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(id, Prefix))
		assert.Len(t, id, len(Prefix)+8)
		assert.True(t, Valid(id), "generated id should match its own pattern: %s", id)
	}
}

func TestNew_CharsetIsUppercaseAlphanumeric(t *testing.T) {
	id, err := New()
	require.NoError(t, err)

	for _, r := range strings.TrimPrefix(id, Prefix) {
		inUpper := r >= 'A' && r <= 'Z'
		inDigit := r >= '0' && r <= '9'
		assert.True(t, inUpper || inDigit, "unexpected character %q in %s", r, id)
	}
}

func TestValid(t *testing.T) {
	cases := []struct {
		id    string
		valid bool
	}{
		{"MRU-7K2XQ9AB", true},
		{"MRU-ABCDEFGH", true},
		{"MRU-12345678", true},
		{"MRU-abcd1234", false}, // lowercase
		{"MRU-1234567", false},  // too short
		{"MRU-123456789", false},
		{"XYZ-12345678", false}, // wrong prefix
		{"MRU12345678", false},  // missing dash
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, Valid(tc.id), "id %q", tc.id)
	}
}
