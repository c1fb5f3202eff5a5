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

func categoryRouter() *gin.Engine {
	r := gin.New()
	r.GET("/api/v1/categories", ListCategories)
	r.GET("/api/v1/categories/:id", GetCategory)
	r.POST("/api/v1/categories", CreateCategory)
	r.PUT("/api/v1/categories/:id", UpdateCategory)
	r.DELETE("/api/v1/categories/:id", DeleteCategory)
	return r
}

func postCategory(t *testing.T, router *gin.Engine, payload map[string]interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return w, response
}

func TestCreateCategoryNormalizesName(t *testing.T) {
	db := setupTestDB(t)
	router := categoryRouter()

	w, response := postCategory(t, router, map[string]interface{}{
		"name":        "  العناية   بالبشرة  ",
		"description": "Skincare essentials",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "العناية بالبشرة", data["name"])

	var stored models.Category
	assert.NoError(t, db.First(&stored, "name = ?", "العناية بالبشرة").Error)
}

func TestCreateCategoryDuplicate(t *testing.T) {
	setupTestDB(t)
	router := categoryRouter()

	w, _ := postCategory(t, router, map[string]interface{}{"name": "المكياج"})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Same name after normalization collides
	w, response := postCategory(t, router, map[string]interface{}{"name": " المكياج "})
	assert.Equal(t, http.StatusConflict, w.Code)
	errObj := response["error"].(map[string]interface{})
	assert.Equal(t, "CATEGORY_EXISTS", errObj["code"])
}

func TestCreateCategoryBlankName(t *testing.T) {
	setupTestDB(t)
	router := categoryRouter()

	w, response := postCategory(t, router, map[string]interface{}{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	errObj := response["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errObj["code"])
}

func TestListCategoriesWithProductCounts(t *testing.T) {
	db := setupTestDB(t)
	makeup := createTestCategory(t, db, "المكياج")
	createTestCategory(t, db, "العطور")
	createTestProduct(t, db, "Lipstick", makeup.ID, 25, 5)
	createTestProduct(t, db, "Blush", makeup.ID, 35, 5)

	router := categoryRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	assert.Len(t, data, 2)

	counts := map[string]float64{}
	for _, raw := range data {
		entry := raw.(map[string]interface{})
		counts[entry["name"].(string)] = entry["product_count"].(float64)
	}
	assert.Equal(t, float64(2), counts["المكياج"])
	assert.Equal(t, float64(0), counts["العطور"])
}

func TestUpdateCategory(t *testing.T) {
	db := setupTestDB(t)
	category := createTestCategory(t, db, "الشعر")
	createTestCategory(t, db, "المكياج")

	router := categoryRouter()

	body, _ := json.Marshal(map[string]interface{}{"name": "  العناية  بالشعر "})
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/v1/categories/%d", category.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Category
	assert.NoError(t, db.First(&stored, category.ID).Error)
	assert.Equal(t, "العناية بالشعر", stored.Name)

	// Renaming onto an existing name conflicts
	body, _ = json.Marshal(map[string]interface{}{"name": "المكياج"})
	req = httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/v1/categories/%d", category.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteCategory(t *testing.T) {
	db := setupTestDB(t)
	busy := createTestCategory(t, db, "المكياج")
	empty := createTestCategory(t, db, "العطور")
	createTestProduct(t, db, "Foundation", busy.ID, 80, 5)

	router := categoryRouter()

	// Delete is blocked while products reference the category
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/v1/categories/%d", busy.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	errObj := response["error"].(map[string]interface{})
	assert.Equal(t, "CATEGORY_IN_USE", errObj["code"])

	// Empty categories delete cleanly
	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/v1/categories/%d", empty.ID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var remaining int64
	assert.NoError(t, db.Model(&models.Category{}).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining)
}

func TestGetCategoryNotFound(t *testing.T) {
	setupTestDB(t)
	router := categoryRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
