package payments

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"ghorbari-server/handlers/auth"
	"ghorbari-server/handlers/notifications"
	"ghorbari-server/pricing"
	"ghorbari-server/utils"
)

// InitiatePayment quotes the membership fee for the current user and records
// a pending payment. No gateway is called; the client settles against the
// configured merchant number out of band.
func InitiatePayment(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var input struct {
		Method string `json:"method"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Method == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment method is required"})
		return
	}

	svc := pricing.NewService(utils.DB)
	payment, err := svc.InitiatePayment(user, input.Method)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initiate payment"})
		return
	}

	merchantNumber := os.Getenv("MERCHANT_NUMBER")
	if merchantNumber == "" {
		merchantNumber = "01234567890"
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"paymentInfo": gin.H{
			"transactionId":  payment.TransactionID,
			"amount":         payment.Amount,
			"originalAmount": payment.OriginalAmount,
			"discount":       payment.Discount,
			"method":         payment.Method,
			"merchantNumber": merchantNumber,
		},
	})
}

// ConfirmPayment completes a pending payment and activates the premium
// membership for 30 days.
func ConfirmPayment(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return
	}

	var input struct {
		TransactionID string `json:"transactionId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.TransactionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Transaction ID is required"})
		return
	}

	svc := pricing.NewService(utils.DB)
	payment, err := svc.ConfirmPayment(user, input.TransactionID)
	if err != nil {
		if errors.Is(err, pricing.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Payment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm payment"})
		return
	}

	notifications.NotifyAdmins("payment_confirmed",
		fmt.Sprintf("Payment confirmed! %s is now premium member. Transaction: %s",
			user.Name, payment.TransactionID),
		payment.TransactionID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment confirmed and premium membership activated",
	})
}
