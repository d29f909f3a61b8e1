package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reuben-idan/alx-listing-app-04/internal/model"
	"github.com/reuben-idan/alx-listing-app-04/internal/repository"
)

// PropertyHandler serves read-only property summaries for the card UI.
type PropertyHandler struct {
	Repo *repository.PropertyRepository
}

func (h *PropertyHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.GET("/properties", h.GetProperties)
	api.GET("/properties/:propertyId", h.GetPropertyByID)
}

// GET /api/properties
func (h *PropertyHandler) GetProperties(c *gin.Context) {
	properties, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load properties"})
		return
	}
	if properties == nil {
		properties = []model.Property{}
	}
	c.JSON(http.StatusOK, properties)
}

// GET /api/properties/:propertyId
func (h *PropertyHandler) GetPropertyByID(c *gin.Context) {
	id := c.Param("propertyId")

	property, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load property"})
		return
	}
	c.JSON(http.StatusOK, property)
}
