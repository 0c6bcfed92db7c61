package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePasswordPolicy(t *testing.T) {
	for i := 0; i < 100; i++ {
		password, err := GeneratePassword()
		require.NoError(t, err)

		assert.Len(t, password, PasswordLength)
		assert.True(t, strings.ContainsAny(password, lowerChars), "missing lowercase in %q", password)
		assert.True(t, strings.ContainsAny(password, upperChars), "missing uppercase in %q", password)
		assert.True(t, strings.ContainsAny(password, digitChars), "missing digit in %q", password)
		assert.True(t, strings.ContainsAny(password, specialChars), "missing special in %q", password)
	}
}

func TestGeneratePasswordUsesOnlyKnownClasses(t *testing.T) {
	all := lowerChars + upperChars + digitChars + specialChars

	password, err := GeneratePassword()
	require.NoError(t, err)

	for _, c := range password {
		assert.Contains(t, all, string(c))
	}
}

func TestGeneratePasswordNotRepeating(t *testing.T) {
	first, err := GeneratePassword()
	require.NoError(t, err)

	second, err := GeneratePassword()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
