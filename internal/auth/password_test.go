package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "secret1", hash)

	assert.True(t, CheckPassword(hash, "secret1"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestCheckPassword_EmptyHashNeverMatches(t *testing.T) {
	t.Parallel()

	// Accounts without a stored secret cannot password-login.
	assert.False(t, CheckPassword("", ""))
	assert.False(t, CheckPassword("", "anything"))
}

func TestAvatarURL_Deterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, AvatarURL("asha@x.com"), AvatarURL("asha@x.com"))
	assert.NotEqual(t, AvatarURL("asha@x.com"), AvatarURL("meera@x.com"))
	assert.Contains(t, AvatarURL("asha@x.com"), "i.pravatar.cc")
}
