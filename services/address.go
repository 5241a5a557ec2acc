package services

import (
	"errors"
	"fmt"

	"github.com/skinvibe/skinvibe-api/models"
	"gorm.io/gorm"
)

// Addresses returns the user's address book, optionally limited to one type.
func Addresses(db *gorm.DB, userID uint, addressType models.AddressType) ([]models.Address, error) {
	query := db.Where("user_id = ?", userID)
	if addressType != "" {
		query = query.Where("address_type = ?", addressType)
	}
	var addresses []models.Address
	if err := query.Order("created_at ASC").Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

func GetAddress(db *gorm.DB, id uint) (*models.Address, error) {
	var address models.Address
	if err := db.First(&address, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: address %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &address, nil
}

// DefaultAddress returns the user's default address of the given type, or
// ErrNotFound if none is marked.
func DefaultAddress(db *gorm.DB, userID uint, addressType models.AddressType) (*models.Address, error) {
	var address models.Address
	err := db.Where("user_id = ? AND address_type = ? AND is_default = ?",
		userID, addressType, true).First(&address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: no default %s address", ErrNotFound, addressType)
	}
	if err != nil {
		return nil, err
	}
	return &address, nil
}

// SaveAddress inserts or updates an address. When the address is marked
// default, every other row of the same (user, type) is demoted in the same
// transaction, so exactly one default per pair survives concurrent saves.
func SaveAddress(db *gorm.DB, address *models.Address) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if address.IsDefault {
			if err := tx.Model(&models.Address{}).
				Where("user_id = ? AND address_type = ? AND id <> ?",
					address.UserID, address.AddressType, address.ID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Save(address).Error
	})
}

// DeleteAddress removes the row unconditionally; no other address inherits
// the default flag.
func DeleteAddress(db *gorm.DB, id uint) error {
	res := db.Delete(&models.Address{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: address %d", ErrNotFound, id)
	}
	return nil
}
