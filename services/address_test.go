package services

import (
	"testing"

	"github.com/skinvibe/skinvibe-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAddressSingleDefaultPerType(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")

	first := createTestAddress(t, db, user.ID, models.AddressTypeShipping, true)
	second := createTestAddress(t, db, user.ID, models.AddressTypeShipping, true)

	// Only the latest save keeps the flag.
	a, err := GetAddress(db, first.ID)
	require.NoError(t, err)
	assert.False(t, a.IsDefault)

	b, err := GetAddress(db, second.ID)
	require.NoError(t, err)
	assert.True(t, b.IsDefault)

	def, err := DefaultAddress(db, user.ID, models.AddressTypeShipping)
	require.NoError(t, err)
	assert.Equal(t, second.ID, def.ID)

	var n int64
	require.NoError(t, db.Model(&models.Address{}).
		Where("user_id = ? AND address_type = ? AND is_default = ?",
			user.ID, models.AddressTypeShipping, true).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestSaveAddressLeavesOtherPairsAlone(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	aliceBilling := createTestAddress(t, db, alice.ID, models.AddressTypeBilling, true)
	bobShipping := createTestAddress(t, db, bob.ID, models.AddressTypeShipping, true)

	// A new default shipping address for alice must not touch her billing
	// default or bob's shipping default.
	createTestAddress(t, db, alice.ID, models.AddressTypeShipping, true)

	a, err := GetAddress(db, aliceBilling.ID)
	require.NoError(t, err)
	assert.True(t, a.IsDefault)

	b, err := GetAddress(db, bobShipping.ID)
	require.NoError(t, err)
	assert.True(t, b.IsDefault)
}

func TestSaveAddressUpdateKeepsOwnDefault(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "carol")

	address := createTestAddress(t, db, user.ID, models.AddressTypeShipping, true)

	// Re-saving the same default row must not demote it.
	address.City = "Shelbyville"
	require.NoError(t, SaveAddress(db, address))

	reloaded, err := GetAddress(db, address.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsDefault)
	assert.Equal(t, "Shelbyville", reloaded.City)
}

func TestDeleteAddress(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "dave")
	address := createTestAddress(t, db, user.ID, models.AddressTypeShipping, true)

	require.NoError(t, DeleteAddress(db, address.ID))

	_, err := GetAddress(db, address.ID)
	require.ErrorIs(t, err, ErrNotFound)

	// Deleting the default does not promote another address.
	_, err = DefaultAddress(db, user.ID, models.AddressTypeShipping)
	require.ErrorIs(t, err, ErrNotFound)

	err = DeleteAddress(db, address.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAddressesFilterByType(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "eve")
	createTestAddress(t, db, user.ID, models.AddressTypeShipping, false)
	createTestAddress(t, db, user.ID, models.AddressTypeBilling, false)

	all, err := Addresses(db, user.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	billing, err := Addresses(db, user.ID, models.AddressTypeBilling)
	require.NoError(t, err)
	require.Len(t, billing, 1)
	assert.Equal(t, models.AddressTypeBilling, billing[0].AddressType)
}
