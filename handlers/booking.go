package handlers

import (
	"errors"
	"net/http"

	"capetown/models"
	"capetown/services/booking"

	"github.com/gin-gonic/gin"
)

// CreateBookingHandler writes the pending record and returns the hosted
// checkout redirect. A degraded response means the record was stashed
// locally and no checkout session exists yet.
func CreateBookingHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.BookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		userID := c.GetString("userID")
		userEmail := c.GetString("userEmail")

		confirmation, err := svc.CreateBooking(c.Request.Context(), userID, userEmail, input)
		if err != nil {
			var ve *booking.ValidationError
			if errors.As(err, &ve) {
				c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
			return
		}
		c.JSON(http.StatusCreated, confirmation)
	}
}

// ListBookingsHandler returns the caller's bookings, newest first.
func ListBookingsHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := svc.ListBookings(c.Request.Context(), c.GetString("userID"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": records})
	}
}

// GetBookingHandler returns one booking. The payment success and cancel
// pages poll this; status is whatever the webhook has applied so far.
func GetBookingHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		record, err := svc.GetBooking(c.Request.Context(), c.GetString("userID"), c.Param("id"))
		if err != nil {
			if errors.Is(err, booking.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking"})
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

// DeleteBookingHandler removes one of the caller's bookings.
func DeleteBookingHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.DeleteBooking(c.Request.Context(), c.GetString("userID"), c.Param("id"))
		if err != nil {
			if errors.Is(err, booking.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete booking"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
