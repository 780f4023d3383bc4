package handlers

import (
	"errors"
	"io"
	"net/http"

	"capetown/models"
	"capetown/services/payment"

	"github.com/gin-gonic/gin"
)

// CreateCheckoutSessionHandler is the direct checkout-session RPC. It
// exists alongside booking creation for clients that already hold a
// pending booking and need a fresh payment link.
func CreateCheckoutSessionHandler(issuer payment.CheckoutIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "User must be authenticated",
				"code":  payment.CodeUnauthenticated,
			})
			return
		}

		var req models.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "invalid input",
				"code":  payment.CodeInvalidArgument,
			})
			return
		}
		// The session is always attributed to the authenticated caller.
		req.UserID = userID

		session, err := issuer.CreateSession(c.Request.Context(), req)
		if err != nil {
			switch payment.CodeOf(err) {
			case payment.CodeInvalidArgument:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": payment.CodeInvalidArgument})
			case payment.CodeUnauthenticated:
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "code": payment.CodeUnauthenticated})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "code": payment.CodeInternal})
			}
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// StripeWebhookHandler receives asynchronous payment events. The raw body
// is passed untouched to signature verification; a bad signature is a 400
// and mutates nothing, a store failure is a 500 so the event redelivers.
func StripeWebhookHandler(processor *payment.WebhookProcessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
			return
		}

		err = processor.Process(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
		if err != nil {
			var sigErr *payment.SignatureError
			if errors.As(err, &sigErr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "webhook processing failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}
