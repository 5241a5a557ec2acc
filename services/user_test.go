package services

import (
	"testing"

	"github.com/skinvibe/skinvibe-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	db := newTestDB(t)

	user, err := Register(db, RegisterInput{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "s3cret!",
		FirstName: "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NotEqual(t, "s3cret!", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret!")))
}

func TestRegisterDuplicates(t *testing.T) {
	db := newTestDB(t)

	_, err := Register(db, RegisterInput{Username: "alice", Email: "alice@example.com", Password: "pw123456"})
	require.NoError(t, err)

	_, err = Register(db, RegisterInput{Username: "alice", Email: "other@example.com", Password: "pw123456"})
	require.ErrorIs(t, err, ErrUsernameTaken)

	_, err = Register(db, RegisterInput{Username: "alice2", Email: "alice@example.com", Password: "pw123456"})
	require.ErrorIs(t, err, ErrEmailTaken)

	// Neither failed attempt left a row behind.
	n, err := CountUsers(db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)

	registered, err := Register(db, RegisterInput{
		Username: "bob", Email: "bob@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	user, err := Authenticate(db, "bob", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = Authenticate(db, "bob", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = Authenticate(db, "nobody", "hunter22")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetAndUpdateUser(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "carol")

	fetched, err := GetUser(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "carol", fetched.Username)

	fetched.Phone = "555-0100"
	require.NoError(t, UpdateUser(db, fetched))

	again, err := GetUser(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "555-0100", again.Phone)

	_, err = GetUser(db, 9999)
	require.ErrorIs(t, err, ErrNotFound)
}
