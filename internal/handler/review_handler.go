package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/reuben-idan/alx-listing-app-04/internal/model"
	"github.com/reuben-idan/alx-listing-app-04/internal/repository"
	"github.com/reuben-idan/alx-listing-app-04/internal/service"
)

// CreateReviewRequestDTO is the JSON payload for creating a new review.
// Rating is a pointer so an explicit zero is distinguishable from an absent
// field; its range is enforced by the collection validator, not here.
type CreateReviewRequestDTO struct {
	UserID    string   `json:"userId" binding:"required"`
	UserName  string   `json:"userName" binding:"required"`
	UserImage string   `json:"userImage"`
	Rating    *float64 `json:"rating" binding:"required"`
	Comment   string   `json:"comment" binding:"required"`
}

// ReviewHandler ties HTTP requests to the ReviewService. Every response it
// writes is the {success, data, message?} envelope with data never null.
type ReviewHandler struct {
	reviewSvc *service.ReviewService
}

func NewReviewHandler(rs *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewSvc: rs}
}

// RegisterRoutes registers:
//
//	GET  /api/properties/:propertyId/reviews
//	POST /api/properties/:propertyId/reviews
//
// plus a 405 with an Allow header for every other method on the route.
func (h *ReviewHandler) RegisterRoutes(router *gin.Engine) {
	grp := router.Group("/api/properties/:propertyId/reviews")
	grp.GET("", h.GetReviews)
	grp.POST("", h.CreateReview)
	for _, m := range []string{
		http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodDelete,
		http.MethodConnect, http.MethodOptions, http.MethodTrace,
	} {
		grp.Handle(m, "", h.methodNotAllowed)
	}
}

func reviewFailure(c *gin.Context, status int, message string) {
	c.JSON(status, model.ReviewAPIResponse{
		Success: false,
		Data:    []model.Review{},
		Message: message,
	})
}

// GetReviews handles GET /api/properties/:propertyId/reviews
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	propertyID := c.Param("propertyId")
	if propertyID == "" {
		reviewFailure(c, http.StatusBadRequest, "Property ID is required")
		return
	}

	reviews, err := h.reviewSvc.GetReviews(c.Request.Context(), propertyID)
	if err != nil {
		log.Printf("[GetReviews] %v", err)
		reviewFailure(c, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}
	if reviews == nil {
		reviews = []model.Review{}
	}

	c.JSON(http.StatusOK, model.ReviewAPIResponse{Success: true, Data: reviews})
}

// CreateReview handles POST /api/properties/:propertyId/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	propertyID := c.Param("propertyId")
	if propertyID == "" {
		reviewFailure(c, http.StatusBadRequest, "Property ID is required")
		return
	}

	var req CreateReviewRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			msgs := make([]string, 0, len(vErrs))
			for _, fe := range vErrs {
				msgs = append(msgs, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
			}
			reviewFailure(c, http.StatusBadRequest, "Validation error: "+strings.Join(msgs, ", "))
			return
		}
		reviewFailure(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	_, reviews, err := h.reviewSvc.CreateReview(
		c.Request.Context(),
		propertyID,
		req.UserID,
		req.UserName,
		req.UserImage,
		*req.Rating,
		req.Comment,
	)
	if err != nil {
		var schemaErr *repository.SchemaError
		switch {
		case errors.Is(err, repository.ErrAlreadyReviewed):
			reviewFailure(c, http.StatusBadRequest, "You have already reviewed this property")
		case errors.As(err, &schemaErr):
			reviewFailure(c, http.StatusBadRequest, "Validation error: "+strings.Join(schemaErr.Messages, ", "))
		default:
			log.Printf("[CreateReview] %v", err)
			reviewFailure(c, http.StatusInternalServerError, "Failed to create review")
		}
		return
	}

	c.JSON(http.StatusCreated, model.ReviewAPIResponse{
		Success: true,
		Data:    reviews,
		Message: "Review submitted successfully",
	})
}

func (h *ReviewHandler) methodNotAllowed(c *gin.Context) {
	c.Header("Allow", "GET, POST")
	reviewFailure(c, http.StatusMethodNotAllowed, fmt.Sprintf("Method %s not allowed", c.Request.Method))
}
