package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lamsa-beauty/lamsa-api/config"
	"github.com/stretchr/testify/assert"
)

func testConfig(ttl time.Duration) *config.Config {
	return &config.Config{
		JWTSecret:  "test-secret",
		SessionTTL: ttl,
	}
}

func TestTokenRoundtrip(t *testing.T) {
	cfg := testConfig(time.Hour)

	token, err := GenerateAdminToken(cfg, 7, "layla", "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateAdminToken(cfg, token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.AdminID)
	assert.Equal(t, "layla", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateAdminTokenRejectsExpired(t *testing.T) {
	cfg := testConfig(-time.Minute)

	token, err := GenerateAdminToken(cfg, 7, "layla", "admin")
	assert.NoError(t, err)

	_, err = ValidateAdminToken(cfg, token)
	assert.Error(t, err)
}

func TestValidateAdminTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateAdminToken(testConfig(time.Hour), 7, "layla", "admin")
	assert.NoError(t, err)

	other := &config.Config{JWTSecret: "different-secret", SessionTTL: time.Hour}
	_, err = ValidateAdminToken(other, token)
	assert.Error(t, err)
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(time.Hour)

	router := gin.New()
	router.GET("/protected", RequireAdmin(cfg), func(c *gin.Context) {
		adminID, err := GetAdminID(c)
		assert.NoError(t, err)
		claims, err := GetAdminClaims(c)
		assert.NoError(t, err)
		c.JSON(http.StatusOK, gin.H{
			"admin_id": adminID,
			"username": claims.Username,
		})
	})

	token, err := GenerateAdminToken(cfg, 3, "noor", "admin")
	assert.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer token", "Basic abc123", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
