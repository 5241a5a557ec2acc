package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skinvibe/skinvibe-api/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ImportProductsFromExcel bulk-creates or updates catalog rows from an
// uploaded spreadsheet. Column layout matches ExportProductsToExcel; rows
// with a known ID are updated, the rest inserted, bad rows skipped.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			description := get(2)
			price, err1 := strconv.ParseFloat(get(3), 64)
			stock, _ := strconv.ParseFloat(get(4), 64)
			sku := get(5)
			imageURL := get(6)
			active := !strings.EqualFold(get(7), "false")
			featured := strings.EqualFold(get(8), "true")
			weight, _ := strconv.ParseFloat(get(9), 64)
			dimensions := get(10)
			ingredients := get(11)
			usage := get(12)
			categoryID, err2 := strconv.Atoi(get(13))

			if name == "" || err1 != nil || price <= 0 || err2 != nil {
				skippedCount++
				continue
			}

			product := models.Product{
				Name:          name,
				Description:   description,
				Price:         price,
				StockQuantity: int(stock),
				SKU:           sku,
				ImageURL:      imageURL,
				IsActive:      active,
				IsFeatured:    featured,
				Weight:        weight,
				Dimensions:    dimensions,
				Ingredients:   ingredients,
				Usage:         usage,
				CategoryID:    uint(categoryID),
			}

			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					var existing models.Product
					if err := db.First(&existing, id).Error; err == nil {
						product.ID = existing.ID
						product.CreatedAt = existing.CreatedAt
						if err := db.Save(&product).Error; err == nil {
							updatedCount++
						} else {
							skippedCount++
						}
						continue
					}
				}
			}

			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
