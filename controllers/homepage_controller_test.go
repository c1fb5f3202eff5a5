package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lamsa-beauty/lamsa-api/models"
	"github.com/stretchr/testify/assert"
)

func homepageRouter() *gin.Engine {
	r := gin.New()
	r.GET("/api/v1/homepage-products", ListHomepageProducts)
	r.POST("/api/v1/homepage-products", CreateHomepageProduct)
	r.PUT("/api/v1/homepage-products/:id", UpdateHomepageProduct)
	r.DELETE("/api/v1/homepage-products/:id", DeleteHomepageProduct)
	r.GET("/api/v1/homepage-settings", GetHomepageSettings)
	r.PUT("/api/v1/homepage-settings", UpdateHomepageSettings)
	return r
}

func pinProduct(t *testing.T, router *gin.Engine, productID uint, section string, sortOrder int) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	body, _ := json.Marshal(map[string]interface{}{
		"product_id": productID,
		"section":    section,
		"sort_order": sortOrder,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/homepage-products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return w, response
}

func TestCreateHomepageProduct(t *testing.T) {
	db := setupTestDB(t)
	category := createTestCategory(t, db, "المكياج")
	product := createTestProduct(t, db, "Palette", category.ID, 95, 10)

	router := homepageRouter()

	w, response := pinProduct(t, router, product.ID, models.SectionBestSellers, 1)
	assert.Equal(t, http.StatusCreated, w.Code)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, models.SectionBestSellers, data["section"])
	assert.Equal(t, "Palette", data["product"].(map[string]interface{})["name"])

	// Same product, same section: conflict
	w, response = pinProduct(t, router, product.ID, models.SectionBestSellers, 2)
	assert.Equal(t, http.StatusConflict, w.Code)
	errObj := response["error"].(map[string]interface{})
	assert.Equal(t, "HOMEPAGE_PRODUCT_EXISTS", errObj["code"])

	// Same product in a different section is allowed
	w, _ = pinProduct(t, router, product.ID, models.SectionNewProducts, 1)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Unknown products cannot be pinned
	w, _ = pinProduct(t, router, 999, models.SectionBestSellers, 1)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListHomepageProductsBySection(t *testing.T) {
	db := setupTestDB(t)
	category := createTestCategory(t, db, "المكياج")
	first := createTestProduct(t, db, "Palette", category.ID, 95, 10)
	second := createTestProduct(t, db, "Brush Kit", category.ID, 60, 10)

	router := homepageRouter()
	pinProduct(t, router, first.ID, models.SectionBestSellers, 2)
	pinProduct(t, router, second.ID, models.SectionBestSellers, 1)
	pinProduct(t, router, first.ID, models.SectionNewProducts, 1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/homepage-products?section="+models.SectionBestSellers, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	assert.Len(t, data, 2)

	// Sorted by sort_order: Brush Kit (1) before Palette (2)
	firstEntry := data[0].(map[string]interface{})
	assert.Equal(t, "Brush Kit", firstEntry["product"].(map[string]interface{})["name"])
}

func TestUpdateHomepageProductSectionConflict(t *testing.T) {
	db := setupTestDB(t)
	category := createTestCategory(t, db, "المكياج")
	product := createTestProduct(t, db, "Palette", category.ID, 95, 10)

	router := homepageRouter()
	_, created := pinProduct(t, router, product.ID, models.SectionBestSellers, 1)
	pinProduct(t, router, product.ID, models.SectionNewProducts, 1)

	entryID := created["data"].(map[string]interface{})["id"].(float64)

	// Moving the best-sellers pin onto the new-products section would
	// duplicate the pair
	body, _ := json.Marshal(map[string]interface{}{"section": models.SectionNewProducts})
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/v1/homepage-products/%.0f", entryID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteHomepageProduct(t *testing.T) {
	db := setupTestDB(t)
	category := createTestCategory(t, db, "المكياج")
	product := createTestProduct(t, db, "Palette", category.ID, 95, 10)

	router := homepageRouter()
	_, created := pinProduct(t, router, product.ID, models.SectionBestSellers, 1)
	entryID := created["data"].(map[string]interface{})["id"].(float64)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/v1/homepage-products/%.0f", entryID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	assert.NoError(t, db.Model(&models.HomepageProduct{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestHomepageSettingsSingleton(t *testing.T) {
	db := setupTestDB(t)
	router := homepageRouter()

	// First read creates the row with defaults
	req := httptest.NewRequest(http.MethodGet, "/api/v1/homepage-settings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(models.HomepageSettingsID), data["id"])
	assert.Equal(t, true, data["show_best_sellers"])
	assert.Equal(t, float64(8), data["best_sellers_count"])

	// Update touches only the provided fields
	body, _ := json.Marshal(map[string]interface{}{
		"show_offers":        false,
		"best_sellers_count": 4,
	})
	req = httptest.NewRequest(http.MethodPut, "/api/v1/homepage-settings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.HomepageSettings
	assert.NoError(t, db.First(&stored, models.HomepageSettingsID).Error)
	assert.False(t, stored.ShowOffers)
	assert.Equal(t, 4, stored.BestSellersCount)
	assert.True(t, stored.ShowNewProducts)

	// Still exactly one row
	var count int64
	assert.NoError(t, db.Model(&models.HomepageSettings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
