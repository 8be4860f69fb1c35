package payments

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
	protected.POST("/payment/initiate", InitiatePayment)
	protected.POST("/payment/confirm", ConfirmPayment)
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
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestInitiateAndConfirm(t *testing.T) {
	r := setupRouter(t)

	user := models.User{UserCode: "payer-aa1122", Name: "Rahim", Email: "rahim@example.com", Password: "x", Role: models.RoleNonPremium}
	token := createUser(t, &user)

	w := doRequest(r, "POST", "/api/payment/initiate", token, gin.H{"method": "bkash"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		PaymentInfo struct {
			TransactionID  string  `json:"transactionId"`
			Amount         float64 `json:"amount"`
			OriginalAmount float64 `json:"originalAmount"`
			Discount       float64 `json:"discount"`
		} `json:"paymentInfo"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, float64(1000), resp.PaymentInfo.Amount)
	require.Equal(t, float64(0), resp.PaymentInfo.Discount)
	require.NotEmpty(t, resp.PaymentInfo.TransactionID)

	w = doRequest(r, "POST", "/api/payment/confirm", token, gin.H{"transactionId": resp.PaymentInfo.TransactionID})
	require.Equal(t, http.StatusOK, w.Code)

	var promoted models.User
	require.NoError(t, utils.DB.Where("user_code = ?", user.UserCode).First(&promoted).Error)
	require.Equal(t, models.RolePremium, promoted.Role)
	require.NotNil(t, promoted.PremiumEndDate)

	var payment models.Payment
	require.NoError(t, utils.DB.Where("transaction_id = ?", resp.PaymentInfo.TransactionID).First(&payment).Error)
	require.Equal(t, models.PaymentCompleted, payment.Status)
}

func TestInitiateDiscountedWithReferral(t *testing.T) {
	r := setupRouter(t)

	user := models.User{UserCode: "payer-bb3344", Name: "Mina", Email: "mina@example.com", Password: "x", Role: models.RoleNonPremium}
	token := createUser(t, &user)
	require.NoError(t, utils.DB.Create(&models.Referral{
		UserCode:     user.UserCode,
		ReferrerCode: "premium-cc5566",
		Code:         "cc5566",
		Discount:     100,
	}).Error)

	w := doRequest(r, "POST", "/api/payment/initiate", token, gin.H{"method": "nagad"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"amount":900`)
	require.Contains(t, w.Body.String(), `"discount":100`)
}

func TestConfirmUnknownTransaction(t *testing.T) {
	r := setupRouter(t)

	user := models.User{UserCode: "payer-dd7788", Name: "Karim", Email: "karim@example.com", Password: "x", Role: models.RoleNonPremium}
	token := createUser(t, &user)

	w := doRequest(r, "POST", "/api/payment/confirm", token, gin.H{"transactionId": "TXN_unknown"})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Payment not found")
}

func TestConfirmCannotUseAnotherUsersTransaction(t *testing.T) {
	r := setupRouter(t)

	owner := models.User{UserCode: "payer-ee9900", Name: "Owner", Email: "owner@example.com", Password: "x", Role: models.RoleNonPremium}
	ownerToken := createUser(t, &owner)
	other := models.User{UserCode: "payer-ff0011", Name: "Other", Email: "other@example.com", Password: "x", Role: models.RoleNonPremium}
	otherToken := createUser(t, &other)

	w := doRequest(r, "POST", "/api/payment/initiate", ownerToken, gin.H{"method": "card"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		PaymentInfo struct {
			TransactionID string `json:"transactionId"`
		} `json:"paymentInfo"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	w = doRequest(r, "POST", "/api/payment/confirm", otherToken, gin.H{"transactionId": resp.PaymentInfo.TransactionID})
	require.Equal(t, http.StatusNotFound, w.Code)
}
