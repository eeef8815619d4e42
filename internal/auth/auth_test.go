package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordProducesTaggedHash(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, HashPrefix))
	assert.True(t, IsHashed(hash))
	assert.NotContains(t, hash, "secret123")

	// rounds$salt$checksum after the prefix
	parts := strings.Split(strings.TrimPrefix(hash, HashPrefix), "$")
	assert.Len(t, parts, 3)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestHashesAreSalted(t *testing.T) {
	h1, err := HashPassword("same")
	require.NoError(t, err)
	h2, err := HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPasswordHash("same", h1))
	assert.True(t, CheckPasswordHash("same", h2))
}

func TestCheckPasswordHashRejectsMalformed(t *testing.T) {
	assert.False(t, CheckPasswordHash("pw", "plaintext"))
	assert.False(t, CheckPasswordHash("pw", HashPrefix))
	assert.False(t, CheckPasswordHash("pw", HashPrefix+"notanumber$AAAA$BBBB"))
	assert.False(t, CheckPasswordHash("pw", HashPrefix+"29000$!!$??"))
}

func TestIsHashed(t *testing.T) {
	assert.False(t, IsHashed("hunter2"))
	assert.False(t, IsHashed(""))
	assert.True(t, IsHashed(HashPrefix+"29000$abc$def"))
}

func TestGenerateJWT(t *testing.T) {
	token, err := GenerateJWT("admin@salon.test", "admin", "admin-id")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}
