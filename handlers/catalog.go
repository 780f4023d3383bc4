package handlers

import (
	"net/http"

	"capetown/services/catalog"

	"github.com/gin-gonic/gin"
)

func catalogFilter(c *gin.Context) catalog.Filter {
	return catalog.Filter{
		Area:     c.Query("area"),
		Category: c.Query("category"),
		Cuisine:  c.Query("cuisine"),
	}
}

// ListHotelsHandler serves the accommodation listing.
func ListHotelsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"hotels": svc.Hotels(catalogFilter(c))})
	}
}

// ListRestaurantsHandler serves the dining listing.
func ListRestaurantsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"restaurants": svc.Restaurants(catalogFilter(c))})
	}
}

// ListAttractionsHandler serves the attractions listing.
func ListAttractionsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"attractions": svc.Attractions(catalogFilter(c))})
	}
}

// GetCatalogItemHandler looks up a single catalog entry by ID.
func GetCatalogItemHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := svc.GetByID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "catalog item not found"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
