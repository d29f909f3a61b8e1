package service

import (
	"context"
	"fmt"

	"github.com/reuben-idan/alx-listing-app-04/internal/model"
	"github.com/reuben-idan/alx-listing-app-04/internal/repository"
)

// ReviewStore is the document-collection contract the service runs against.
type ReviewStore interface {
	FindByProperty(ctx context.Context, propertyID string) ([]model.Review, error)
	FindByPropertyAndUser(ctx context.Context, propertyID, userID string) (*model.Review, error)
	Insert(ctx context.Context, review *model.Review) error
}

// ReviewService contains business logic for reviews.
type ReviewService struct {
	store ReviewStore
}

func NewReviewService(store ReviewStore) *ReviewService {
	return &ReviewService{store: store}
}

// GetReviews fetches all reviews for the given property, sorted by
// createdAt DESC.
func (s *ReviewService) GetReviews(ctx context.Context, propertyID string) ([]model.Review, error) {
	reviews, err := s.store.FindByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("ReviewService.GetReviews: %w", err)
	}
	return reviews, nil
}

// CreateReview inserts a new review after checking the user has not already
// reviewed the property, then returns the created review together with the
// refreshed descending-order list (created review first, every other review
// exactly once). The pre-check is advisory; the unique index on the
// collection decides concurrent double-submits, and the store reports the
// loser as repository.ErrAlreadyReviewed.
func (s *ReviewService) CreateReview(
	ctx context.Context,
	propertyID string,
	userID string,
	userName string,
	userImage string,
	rating float64,
	comment string,
) (*model.Review, []model.Review, error) {
	existing, err := s.store.FindByPropertyAndUser(ctx, propertyID, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("ReviewService.CreateReview: checking existing review: %w", err)
	}
	if existing != nil {
		return nil, nil, fmt.Errorf("ReviewService.CreateReview: %w", repository.ErrAlreadyReviewed)
	}

	rev := &model.Review{
		PropertyID: propertyID,
		UserID:     userID,
		UserName:   userName,
		UserImage:  userImage,
		Rating:     rating,
		Comment:    comment,
	}
	if err := s.store.Insert(ctx, rev); err != nil {
		return nil, nil, fmt.Errorf("ReviewService.CreateReview: insert: %w", err)
	}

	reviews, err := s.store.FindByProperty(ctx, propertyID)
	if err != nil {
		return nil, nil, fmt.Errorf("ReviewService.CreateReview: refresh: %w", err)
	}

	// The fresh review sorts first on createdAt, but make the ordering
	// explicit: created review up front, the rest exactly once.
	out := make([]model.Review, 0, len(reviews)+1)
	out = append(out, *rev)
	for _, r := range reviews {
		if r.ID != rev.ID {
			out = append(out, r)
		}
	}
	return rev, out, nil
}
