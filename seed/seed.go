// Package seed populates an empty database with the admin account and a
// starter skincare catalog so the storefront is browsable immediately.
package seed

import (
	"errors"
	"log"

	"github.com/skinvibe/skinvibe-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Run is idempotent: the admin user is created only when missing, and the
// catalog only when there are no categories at all.
func Run(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	return seedCatalog(db)
}

func seedAdmin(db *gorm.DB) error {
	var admin models.User
	err := db.Where("username = ?", "admin").First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin = models.User{
		Username:  "admin",
		Email:     "admin@skinvibe.com",
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "User",
		Role:      models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("✅ Seeded admin user (username=admin)")
	return nil
}

func seedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{Name: "Cleansers", Description: "Gentle cleansers for all skin types", IsActive: true},
		{Name: "Moisturizers", Description: "Hydrating moisturizers for healthy skin", IsActive: true},
		{Name: "Serums", Description: "Concentrated treatments for specific skin concerns", IsActive: true},
		{Name: "Sunscreens", Description: "Protection from harmful UV rays", IsActive: true},
		{Name: "Face Masks", Description: "Weekly treatments for deep cleansing and nourishment", IsActive: true},
		{Name: "Toners", Description: "Balancing and refreshing toners", IsActive: true},
		{Name: "Eye Care", Description: "Specialized treatments for the delicate eye area", IsActive: true},
		{Name: "Treatments", Description: "Targeted treatments for specific skin concerns", IsActive: true},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	byName := make(map[string]uint, len(categories))
	for _, c := range categories {
		byName[c.Name] = c.ID
	}

	products := []models.Product{
		{
			Name:          "Ocean Mist Gel Cleanser",
			Description:   "A lightweight gel cleanser with sea minerals that removes impurities without stripping the skin.",
			Price:         24.99,
			StockQuantity: 50,
			SKU:           "SKV-CLN-001",
			IsActive:      true,
			IsFeatured:    true,
			Weight:        150,
			Dimensions:    "5x5x15 cm",
			Ingredients:   "Water, Sea Kelp Extract, Glycerin, Coco-Glucoside",
			Usage:         "Massage onto damp skin morning and evening, rinse with lukewarm water.",
			CategoryID:    byName["Cleansers"],
		},
		{
			Name:          "Hydra Barrier Cream",
			Description:   "A ceramide-rich moisturizer that restores the skin barrier overnight.",
			Price:         32.50,
			StockQuantity: 40,
			SKU:           "SKV-MST-001",
			IsActive:      true,
			IsFeatured:    true,
			Weight:        50,
			Dimensions:    "6x6x6 cm",
			Ingredients:   "Water, Ceramide NP, Squalane, Shea Butter, Niacinamide",
			Usage:         "Apply a pea-sized amount to clean skin as the last step of your routine.",
			CategoryID:    byName["Moisturizers"],
		},
		{
			Name:          "Vitamin C Glow Serum",
			Description:   "10% vitamin C serum that brightens and evens skin tone.",
			Price:         38.00,
			StockQuantity: 35,
			SKU:           "SKV-SRM-001",
			IsActive:      true,
			IsFeatured:    true,
			Weight:        30,
			Dimensions:    "3x3x10 cm",
			Ingredients:   "Water, Ascorbic Acid, Ferulic Acid, Vitamin E",
			Usage:         "Apply 3-4 drops to clean skin every morning before moisturizer.",
			CategoryID:    byName["Serums"],
		},
		{
			Name:          "Daily Shield SPF 50",
			Description:   "Broad-spectrum mineral sunscreen with a weightless finish.",
			Price:         27.00,
			StockQuantity: 60,
			SKU:           "SKV-SUN-001",
			IsActive:      true,
			Weight:        75,
			Dimensions:    "4x3x14 cm",
			Ingredients:   "Zinc Oxide, Titanium Dioxide, Aloe Vera, Green Tea Extract",
			Usage:         "Apply generously 15 minutes before sun exposure; reapply every two hours.",
			CategoryID:    byName["Sunscreens"],
		},
		{
			Name:          "Clay Detox Mask",
			Description:   "Kaolin clay mask that draws out impurities and tightens pores.",
			Price:         21.00,
			StockQuantity: 45,
			SKU:           "SKV-MSK-001",
			IsActive:      true,
			Weight:        100,
			Dimensions:    "7x7x7 cm",
			Ingredients:   "Kaolin, Bentonite, Charcoal Powder, Tea Tree Oil",
			Usage:         "Apply a thin layer once a week, leave for 10 minutes, rinse off.",
			CategoryID:    byName["Face Masks"],
		},
		{
			Name:          "Rose Petal Toner",
			Description:   "Alcohol-free toner that rebalances the skin after cleansing.",
			Price:         18.50,
			StockQuantity: 55,
			SKU:           "SKV-TNR-001",
			IsActive:      true,
			Weight:        200,
			Dimensions:    "5x5x18 cm",
			Ingredients:   "Rose Water, Witch Hazel, Glycerin, Allantoin",
			Usage:         "Sweep over the face with a cotton pad after cleansing, morning and night.",
			CategoryID:    byName["Toners"],
		},
		{
			Name:          "Caffeine Eye Cream",
			Description:   "De-puffing eye cream with caffeine and peptides.",
			Price:         29.00,
			StockQuantity: 30,
			SKU:           "SKV-EYE-001",
			IsActive:      true,
			Weight:        15,
			Dimensions:    "3x3x8 cm",
			Ingredients:   "Water, Caffeine, Acetyl Hexapeptide-8, Hyaluronic Acid",
			Usage:         "Pat a small amount around the eye area morning and evening.",
			CategoryID:    byName["Eye Care"],
		},
		{
			Name:          "Retinol Night Treatment",
			Description:   "0.3% encapsulated retinol for smoother texture and fine lines.",
			Price:         42.00,
			StockQuantity: 25,
			SKU:           "SKV-TRT-001",
			IsActive:      true,
			Weight:        30,
			Dimensions:    "3x3x10 cm",
			Ingredients:   "Water, Retinol, Squalane, Bisabolol",
			Usage:         "Use two to three evenings a week after cleansing; always wear SPF the next day.",
			CategoryID:    byName["Treatments"],
		},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded %d categories and %d products", len(categories), len(products))
	return nil
}
