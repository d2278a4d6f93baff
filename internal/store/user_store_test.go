package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weekend-explore/explore/internal/models"
)

func TestUserStore_CreateAndFind(t *testing.T) {
	t.Parallel()

	conn := newTestDB(t)
	users := NewUserStore(conn)

	createTestUser(t, conn, "u1", "Asha", "asha@x.com")

	found, err := users.FindByEmail("asha@x.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", found.ID)
	assert.Equal(t, "Asha", found.Name)
}

func TestUserStore_DuplicateEmail(t *testing.T) {
	t.Parallel()

	conn := newTestDB(t)
	users := NewUserStore(conn)

	createTestUser(t, conn, "u1", "Asha", "asha@x.com")

	err := users.Create(&models.User{ID: "u2", Name: "Other", Email: "asha@x.com"})
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestUserStore_FindByEmail_Unknown(t *testing.T) {
	t.Parallel()

	users := NewUserStore(newTestDB(t))

	_, err := users.FindByEmail("nobody@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserStore_FindByEmail_CaseSensitive(t *testing.T) {
	t.Parallel()

	conn := newTestDB(t)
	users := NewUserStore(conn)

	createTestUser(t, conn, "u1", "Asha", "asha@x.com")

	// Emails are compared exactly as stored.
	_, err := users.FindByEmail("Asha@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
