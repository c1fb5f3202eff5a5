package utils

import (
	"strings"

	"github.com/lamsa-beauty/lamsa-api/models"
	"gorm.io/gorm"
)

// NormalizeCategoryName trims the name and collapses internal whitespace
// runs to single spaces. Applied to every category name at write time so
// that lookups never depend on data-entry whitespace.
func NormalizeCategoryName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// ResolveCategory matches free-text category input against stored categories.
// Historical rows (and user-typed filters) carry inconsistent whitespace, so
// exact variants are tried first, then a substring match, and finally the
// input is treated literally as a category id.
func ResolveCategory(db *gorm.DB, input string) (*models.Category, error) {
	normalized := NormalizeCategoryName(input)

	// Exact-match variants in priority order. Trailing-space variants cover
	// rows written before names were normalized at write time.
	variants := []string{input, normalized}
	if normalized != "" {
		variants = append(variants, normalized+" ", " "+normalized)
	}

	var category models.Category
	for _, v := range variants {
		if v == "" {
			continue
		}
		if err := db.Where("name = ?", v).First(&category).Error; err == nil {
			return &category, nil
		}
	}

	// Substring fallback
	if normalized != "" {
		if err := db.Where("name LIKE ?", "%"+normalized+"%").First(&category).Error; err == nil {
			return &category, nil
		}
	}

	// Last resort: treat the input as a category id
	if err := db.First(&category, "id = ?", strings.TrimSpace(input)).Error; err != nil {
		return nil, err
	}
	return &category, nil
}
