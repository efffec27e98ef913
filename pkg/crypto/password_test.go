package crypto

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Password123!")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.True(t, CheckPassword("Password123!", hash))
	assert.False(t, CheckPassword("WrongPass", hash))
}

func TestGenerateURLSafeToken(t *testing.T) {
	token, err := GenerateURLSafeToken(32)
	assert.NoError(t, err)
	// 32 bytes base64url without padding
	assert.Len(t, token, 43)
	assert.False(t, strings.ContainsAny(token, "+/="))

	other, err := GenerateURLSafeToken(32)
	assert.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestHashPasswordAndGenerateURLSafeToken_ErrorBranches(t *testing.T) {
	origBcrypt := bcryptGenerateFromPassword
	origRandRead := randomRead
	t.Cleanup(func() {
		bcryptGenerateFromPassword = origBcrypt
		randomRead = origRandRead
	})

	bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) {
		return nil, errors.New("bcrypt failed")
	}
	_, err := HashPassword("Password123!")
	assert.Error(t, err)

	bcryptGenerateFromPassword = origBcrypt
	randomRead = func([]byte) (int, error) {
		return 0, errors.New("rand failed")
	}
	_, err = GenerateURLSafeToken(16)
	assert.Error(t, err)
}
