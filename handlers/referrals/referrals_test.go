package referrals

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ghorbari-server/handlers/auth"
	"ghorbari-server/models"
	"ghorbari-server/utils"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, utils.MigrateAll(db))
	utils.DB = db

	r := gin.New()
	protected := r.Group("/api")
	protected.Use(auth.AuthMiddleware())
	protected.GET("/referral/check", CheckReferral)
	protected.POST("/referral/apply-code", ApplyCode)
	protected.GET("/referral/referrer-stats", ReferrerStats)
	return r
}

func createUser(t *testing.T, user *models.User) string {
	t.Helper()
	require.NoError(t, utils.DB.Create(user).Error)
	token, err := utils.GenerateToken(user.ID, user.Role)
	require.NoError(t, err)
	return token
}

func doRequest(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		b, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestApplyCodeFlow(t *testing.T) {
	r := setupRouter(t)

	referrer := models.User{UserCode: "premium-abc123", Name: "Referrer", Email: "referrer@example.com", Password: "x", Role: models.RolePremium}
	createUser(t, &referrer)
	applicant := models.User{UserCode: "standard-xyz789", Name: "Applicant", Email: "applicant@example.com", Password: "x", Role: models.RoleNonPremium}
	token := createUser(t, &applicant)

	// No referral yet
	w := doRequest(r, "GET", "/api/referral/check", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var check struct {
		HasReferral bool `json:"hasReferral"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &check))
	require.False(t, check.HasReferral)

	// Apply the referrer's suffix
	w = doRequest(r, "POST", "/api/referral/apply-code", token, gin.H{"code6": "abc123"})
	require.Equal(t, http.StatusOK, w.Code)

	// Second apply is rejected
	w = doRequest(r, "POST", "/api/referral/apply-code", token, gin.H{"code6": "abc123"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "already applied")

	// Check now reports the referral
	w = doRequest(r, "GET", "/api/referral/check", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var after struct {
		HasReferral  bool    `json:"hasReferral"`
		ReferralCode string  `json:"referralCode"`
		Discount     float64 `json:"discount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &after))
	require.True(t, after.HasReferral)
	require.Equal(t, "abc123", after.ReferralCode)
	require.Equal(t, float64(100), after.Discount)

	// Referrer sees the referred account
	referrerToken, err := utils.GenerateToken(referrer.ID, referrer.Role)
	require.NoError(t, err)
	w = doRequest(r, "GET", "/api/referral/referrer-stats", referrerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats struct {
		IsReferrer    bool              `json:"isReferrer"`
		ReferredUsers []models.Referral `json:"referredUsers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	require.True(t, stats.IsReferrer)
	require.Len(t, stats.ReferredUsers, 1)
}

func TestApplyCodeValidation(t *testing.T) {
	r := setupRouter(t)

	applicant := models.User{UserCode: "standard-xyz789", Name: "Applicant", Email: "applicant@example.com", Password: "x", Role: models.RoleNonPremium}
	token := createUser(t, &applicant)

	// Wrong length fails before any lookup
	w := doRequest(r, "POST", "/api/referral/apply-code", token, gin.H{"code6": "abc"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid code")

	// Unknown code
	w = doRequest(r, "POST", "/api/referral/apply-code", token, gin.H{"code6": "zzz999"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestApplyCodeRequiresAuth(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, "POST", "/api/referral/apply-code", "", gin.H{"code6": "abc123"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
