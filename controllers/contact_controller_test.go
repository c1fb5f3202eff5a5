package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lamsa-beauty/lamsa-api/services"
	"github.com/stretchr/testify/assert"
)

func contactRouter() *gin.Engine {
	r := gin.New()
	r.POST("/api/v1/contact", Contact)
	r.POST("/api/v1/send-whatsapp", SendWhatsApp)
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload map[string]interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return w, response
}

func TestContactBuildsStoreLink(t *testing.T) {
	setupTestDB(t)
	services.SetNotificationService(&services.WhatsAppService{})

	router := contactRouter()
	w, response := postJSON(t, router, "/api/v1/contact", map[string]interface{}{
		"name":    "Sara",
		"email":   "sara@example.com",
		"message": "هل المنتج متوفر؟",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	link := response["data"].(map[string]interface{})["whatsapp_link"].(string)
	// Store number with spaces collapses to bare digits in the link
	assert.True(t, strings.HasPrefix(link, "https://wa.me/966500000000?text="), link)
	assert.Contains(t, link, "Contact+from+Sara")
}

func TestContactValidation(t *testing.T) {
	setupTestDB(t)
	router := contactRouter()

	w, response := postJSON(t, router, "/api/v1/contact", map[string]interface{}{
		"name": "Sara",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	errObj := response["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errObj["code"])
}

func TestSendWhatsApp(t *testing.T) {
	setupTestDB(t)
	services.SetNotificationService(&services.WhatsAppService{})

	router := contactRouter()

	// Explicit phone wins over the store default
	w, response := postJSON(t, router, "/api/v1/send-whatsapp", map[string]interface{}{
		"message": "طلبك في الطريق",
		"phone":   "+966 55 123 4567",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	link := response["data"].(map[string]interface{})["whatsapp_link"].(string)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/966551234567?text="), link)

	// No phone falls back to the store number
	w, response = postJSON(t, router, "/api/v1/send-whatsapp", map[string]interface{}{
		"message": "مرحبا",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	link = response["data"].(map[string]interface{})["whatsapp_link"].(string)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/966500000000?text="), link)

	// A phone with no digits cannot produce a link
	w, response = postJSON(t, router, "/api/v1/send-whatsapp", map[string]interface{}{
		"message": "مرحبا",
		"phone":   "+++---",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	errObj := response["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_PHONE", errObj["code"])
}
