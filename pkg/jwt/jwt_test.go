package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken("secret", "admin")
	require.NoError(t, err)

	subject, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", "admin")
	require.NoError(t, err)

	_, err = ParseToken("other", token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken("secret", "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
