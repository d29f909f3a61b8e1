package web

import (
	"context"
	"errors"
	"unicode"

	"github.com/reuben-idan/alx-listing-app-04/internal/model"
)

// Review section states. A server render resolves the fetch before writing,
// so Loading never reaches a response; it exists for partial renders.
const (
	SectionLoading = "loading"
	SectionError   = "error"
	SectionEmpty   = "empty"
	SectionList    = "list"
)

const (
	genericFetchError  = "An error occurred while fetching reviews. Please try again later."
	fallbackFetchError = "Failed to load reviews"
	dateLayout         = "January 2, 2006"
	starCount          = 5
)

type ReviewView struct {
	Name      string
	Initial   string // uppercase fallback when no avatar image
	Image     string
	Stars     []bool
	Date      string
	Comment   string
	UpdatedOn string // empty unless the review was edited after creation
}

type ReviewSectionView struct {
	State   string
	Message string
	Count   int
	Reviews []ReviewView
}

// BuildReviewSection fetches the property's reviews and shapes them for the
// template. An empty property id is an immediate error state, no request
// made. Every call fetches fresh; nothing is cached between renders.
func BuildReviewSection(ctx context.Context, client *ReviewsClient, propertyID string) ReviewSectionView {
	if propertyID == "" {
		return ReviewSectionView{State: SectionError, Message: "No property ID provided"}
	}

	reviews, err := client.List(ctx, propertyID)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			msg := apiErr.Message
			if msg == "" {
				msg = fallbackFetchError
			}
			return ReviewSectionView{State: SectionError, Message: msg}
		}
		return ReviewSectionView{State: SectionError, Message: genericFetchError}
	}

	if len(reviews) == 0 {
		return ReviewSectionView{State: SectionEmpty}
	}

	views := make([]ReviewView, 0, len(reviews))
	for _, r := range reviews {
		views = append(views, newReviewView(r))
	}
	return ReviewSectionView{State: SectionList, Count: len(views), Reviews: views}
}

func newReviewView(r model.Review) ReviewView {
	view := ReviewView{
		Name:    r.UserName,
		Initial: initialOf(r.UserName),
		Image:   r.UserImage,
		Stars:   starsFor(r.Rating),
		Date:    r.CreatedAt.Format(dateLayout),
		Comment: r.Comment,
	}
	if !r.UpdatedAt.IsZero() && !r.UpdatedAt.Equal(r.CreatedAt) {
		view.UpdatedOn = r.UpdatedAt.Format(dateLayout)
	}
	return view
}

// starsFor fills star i while i < rating, so fractional ratings round up.
func starsFor(rating float64) []bool {
	stars := make([]bool, starCount)
	for i := range stars {
		stars[i] = float64(i) < rating
	}
	return stars
}

func initialOf(name string) string {
	for _, r := range name {
		return string(unicode.ToUpper(r))
	}
	return ""
}
