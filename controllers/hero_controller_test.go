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
	"gorm.io/gorm"
)

func heroRouter() *gin.Engine {
	r := gin.New()
	r.GET("/api/v1/hero-slides", ListHeroSlides)
	r.POST("/api/v1/hero-slides", CreateHeroSlide)
	r.DELETE("/api/v1/hero-slides/clear", ClearHeroSlides)
	r.PUT("/api/v1/hero-slides/:id", UpdateHeroSlide)
	r.DELETE("/api/v1/hero-slides/:id", DeleteHeroSlide)
	return r
}

func createTestSlide(t *testing.T, db *gorm.DB, title string, active bool, sortOrder int) models.HeroSlide {
	t.Helper()
	slide := models.HeroSlide{
		Title:     title,
		IsActive:  active,
		SortOrder: sortOrder,
	}
	if err := db.Create(&slide).Error; err != nil {
		t.Fatalf("Failed to create hero slide: %v", err)
	}
	return slide
}

func TestListHeroSlides(t *testing.T) {
	db := setupTestDB(t)
	createTestSlide(t, db, "Second", true, 2)
	createTestSlide(t, db, "First", true, 1)
	createTestSlide(t, db, "Hidden", false, 3)

	router := heroRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/hero-slides?active=true", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	assert.Len(t, data, 2)

	// Carousel order follows sort_order
	assert.Equal(t, "First", data[0].(map[string]interface{})["title"])
	assert.Equal(t, "Second", data[1].(map[string]interface{})["title"])
}

func TestCreateHeroSlide(t *testing.T) {
	setupTestDB(t)
	router := heroRouter()

	body, _ := json.Marshal(map[string]interface{}{
		"title":    "New arrivals",
		"subtitle": "Fresh this week",
		"cta_text": "تسوقي الآن",
		"cta_link": "/products?new=true",
		"gradient": "from-pink-500 to-rose-400",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hero-slides", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "New arrivals", data["title"])
	assert.Equal(t, true, data["is_active"])

	// Title is required
	body, _ = json.Marshal(map[string]interface{}{"subtitle": "no title"})
	req = httptest.NewRequest(http.MethodPost, "/api/v1/hero-slides", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateHeroSlide(t *testing.T) {
	db := setupTestDB(t)
	slide := createTestSlide(t, db, "Old title", true, 1)

	router := heroRouter()

	body, _ := json.Marshal(map[string]interface{}{
		"title":     "New title",
		"is_active": false,
	})
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/v1/hero-slides/%d", slide.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.HeroSlide
	assert.NoError(t, db.First(&stored, slide.ID).Error)
	assert.Equal(t, "New title", stored.Title)
	assert.False(t, stored.IsActive)
}

func TestClearHeroSlides(t *testing.T) {
	db := setupTestDB(t)
	createTestSlide(t, db, "One", true, 1)
	createTestSlide(t, db, "Two", true, 2)

	router := heroRouter()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/hero-slides/clear", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	assert.NoError(t, db.Model(&models.HeroSlide{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
