package web

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reuben-idan/alx-listing-app-04/internal/model"
	"github.com/reuben-idan/alx-listing-app-04/internal/repository"
)

// PageHandler renders the HTML pages: the index shell with the card grid and
// the property page with its review section.
type PageHandler struct {
	Properties *repository.PropertyRepository
	Reviews    *ReviewsClient
}

func NewPageHandler(props *repository.PropertyRepository, reviews *ReviewsClient) *PageHandler {
	return &PageHandler{Properties: props, Reviews: reviews}
}

func (h *PageHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.Index)
	router.GET("/properties/:propertyId", h.Property)
}

type indexView struct {
	Properties []model.Property
}

type propertyView struct {
	Property model.Property
	Section  ReviewSectionView
}

// GET /
func (h *PageHandler) Index(c *gin.Context) {
	properties, err := h.Properties.GetAll(c.Request.Context())
	if err != nil {
		log.Printf("[Index] %v", err)
		c.String(http.StatusInternalServerError, "failed to load properties")
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(c.Writer, "index", indexView{Properties: properties}); err != nil {
		log.Printf("[Index] render: %v", err)
	}
}

// GET /properties/:propertyId
func (h *PageHandler) Property(c *gin.Context) {
	id := c.Param("propertyId")

	property, err := h.Properties.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			c.String(http.StatusNotFound, "property not found")
			return
		}
		log.Printf("[Property] %v", err)
		c.String(http.StatusInternalServerError, "failed to load property")
		return
	}

	section := BuildReviewSection(c.Request.Context(), h.Reviews, id)

	c.Header("Content-Type", "text/html; charset=utf-8")
	view := propertyView{Property: *property, Section: section}
	if err := templates.ExecuteTemplate(c.Writer, "property", view); err != nil {
		log.Printf("[Property] render: %v", err)
	}
}
