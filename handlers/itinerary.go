package handlers

import (
	"errors"
	"net/http"

	"capetown/models"
	"capetown/services/itinerary"

	"github.com/gin-gonic/gin"
)

// SaveItineraryHandler stores a trip plan for the caller.
func SaveItineraryHandler(svc itinerary.ItineraryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Itinerary
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		saved, err := svc.Save(c.Request.Context(), c.GetString("userID"), input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save itinerary"})
			return
		}
		c.JSON(http.StatusCreated, saved)
	}
}

// ListItinerariesHandler returns the caller's saved trip plans.
func ListItinerariesHandler(svc itinerary.ItineraryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		plans, err := svc.List(c.Request.Context(), c.GetString("userID"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list itineraries"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"itineraries": plans})
	}
}

// DeleteItineraryHandler removes one of the caller's trip plans.
func DeleteItineraryHandler(svc itinerary.ItineraryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.Delete(c.Request.Context(), c.GetString("userID"), c.Param("id"))
		if err != nil {
			if errors.Is(err, itinerary.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "itinerary not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete itinerary"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
