package auth

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
	r.POST("/api/auth/register", Register)
	r.POST("/api/auth/login", Login)
	protected := r.Group("/api")
	protected.Use(AuthMiddleware())
	protected.GET("/whoami", func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_code": user.UserCode, "role": user.Role})
	})
	protected.GET("/admin-only", RoleCheck(models.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func post(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	r := setupRouter(t)

	w := post(r, "/api/auth/register", gin.H{
		"name":       "Asha",
		"email":      "Asha@Example.com",
		"password":   "secret123",
		"age":        29,
		"location":   "Dhanmondi",
		"occupation": "Engineer",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Email is stored lowercased; login with any casing
	w = post(r, "/api/auth/login", gin.H{"email": "asha@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			UserCode string `json:"user_code"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, models.RoleNonPremium, resp.User.Role)
	require.Len(t, resp.User.UserCode, 36)

	// Token authenticates requests
	req := httptest.NewRequest("GET", "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), resp.User.UserCode)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupRouter(t)

	body := gin.H{"name": "Asha", "email": "asha@example.com", "password": "secret123"}
	w := post(r, "/api/auth/register", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = post(r, "/api/auth/register", body)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupRouter(t)

	w := post(r, "/api/auth/register", gin.H{"name": "Asha", "email": "asha@example.com", "password": "secret123"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = post(r, "/api/auth/login", gin.H{"email": "asha@example.com", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleCheck(t *testing.T) {
	r := setupRouter(t)

	user := models.User{UserCode: "standard-aa1122", Name: "Standard", Email: "standard@example.com", Password: "x", Role: models.RoleNonPremium}
	require.NoError(t, utils.DB.Create(&user).Error)
	token, err := utils.GenerateToken(user.ID, user.Role)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)

	admin := models.User{UserCode: "admin-bb3344", Name: "Admin", Email: "admin@example.com", Password: "x", Role: models.RoleAdmin}
	require.NoError(t, utils.DB.Create(&admin).Error)
	adminToken, err := utils.GenerateToken(admin.ID, admin.Role)
	require.NoError(t, err)

	req = httptest.NewRequest("GET", "/api/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestMiddlewareRejectsBadTokens(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest("GET", "/api/whoami", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest("GET", "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
