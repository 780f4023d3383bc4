package handlers

import (
	"errors"
	"net/http"

	"capetown/models"
	"capetown/services/user"

	"github.com/gin-gonic/gin"
)

// RegisterUserHandler creates an account and returns a signed-in session.
func RegisterUserHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.User
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		resp, err := svc.RegisterUser(c.Request.Context(), input)
		if err != nil {
			if errors.Is(err, user.ErrEmailTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// AuthenticateUserHandler signs a user in with email and password.
func AuthenticateUserHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		resp, err := svc.AuthenticateUser(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			if errors.Is(err, user.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetUserByIDHandler returns the caller's own profile.
func GetUserByIDHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if c.Param("id") != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "cannot access another user's profile"})
			return
		}

		profile, err := svc.GetProfile(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch profile"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// UpdateFCMTokenHandler stores the device token for push reminders.
func UpdateFCMTokenHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			FCMToken string `json:"fcmToken" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		userID := c.GetString("userID")
		if err := svc.UpdateFCMToken(c.Request.Context(), userID, input.FCMToken); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update device token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// RevokeUserTokenHandler signs the caller out everywhere.
func RevokeUserTokenHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if err := svc.RevokeToken(c.Request.Context(), userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// DeleteUserHandler removes the caller's account.
func DeleteUserHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if err := svc.DeleteAccount(c.Request.Context(), userID); err != nil {
			if errors.Is(err, user.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete account"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
