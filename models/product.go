package models

import "time"

type Product struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Description   string    `gorm:"type:TEXT" json:"description"`
	Price         float64   `gorm:"not null" json:"price"` // must be > 0
	StockQuantity int       `gorm:"not null;default:0" json:"stock_quantity"`
	SKU           string    `gorm:"uniqueIndex" json:"sku"`
	ImageURL      string    `json:"image_url"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	IsFeatured    bool      `gorm:"default:false" json:"is_featured"`
	Weight        float64   `json:"weight"` // grams
	Dimensions    string    `json:"dimensions"`
	Ingredients   string    `gorm:"type:TEXT" json:"ingredients"`
	Usage         string    `gorm:"type:TEXT;column:usage_instructions" json:"usage_instructions"`
	CategoryID    uint      `gorm:"not null;index" json:"category_id"`
	Category      Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
