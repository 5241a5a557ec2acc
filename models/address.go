package models

import "time"

type AddressType string

const (
	AddressTypeShipping AddressType = "SHIPPING"
	AddressTypeBilling  AddressType = "BILLING"
)

type Address struct {
	ID           uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint        `gorm:"not null;index" json:"user_id"`
	Street       string      `gorm:"not null" json:"street"`
	AddressLine2 string      `json:"address_line_2"`
	City         string      `gorm:"not null" json:"city"`
	State        string      `gorm:"not null" json:"state"`
	PostalCode   string      `gorm:"not null" json:"postal_code"`
	Country      string      `gorm:"not null" json:"country"`
	AddressType  AddressType `gorm:"type:VARCHAR(20);default:'SHIPPING'" json:"address_type"`
	IsDefault    bool        `gorm:"default:false" json:"is_default"` // at most one per (user, type)
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
