package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/reuben-idan/alx-listing-app-04/internal/model"
)

// ErrAlreadyReviewed is returned when a (propertyId, userId) pair already
// holds a review, either found by the pre-check or reported by the unique
// index on insert.
var ErrAlreadyReviewed = errors.New("user has already reviewed this property")

// SchemaError carries the field-level messages of a document-validation
// failure reported by the store.
type SchemaError struct {
	Messages []string
}

func (e *SchemaError) Error() string {
	return "schema validation failed: " + strings.Join(e.Messages, ", ")
}

// Mongo server code for a document failing the collection validator.
const documentValidationFailure = 121

type ReviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(client *mongo.Client, dbName string) *ReviewRepository {
	return &ReviewRepository{coll: client.Database(dbName).Collection("reviews")}
}

// FindByProperty returns all reviews for a property, most recent first.
// The result is never nil, so callers can hand it straight to the envelope.
func (r *ReviewRepository) FindByProperty(ctx context.Context, propertyID string) ([]model.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"propertyId": propertyID}, opts)
	if err != nil {
		return nil, fmt.Errorf("ReviewRepository.FindByProperty: %w", err)
	}
	defer cur.Close(ctx)

	reviews := []model.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("ReviewRepository.FindByProperty: decode: %w", err)
	}
	return reviews, nil
}

// FindByPropertyAndUser returns the user's review of the property, or
// (nil, nil) when none exists.
func (r *ReviewRepository) FindByPropertyAndUser(ctx context.Context, propertyID, userID string) (*model.Review, error) {
	var review model.Review
	err := r.coll.FindOne(ctx, bson.M{"propertyId": propertyID, "userId": userID}).Decode(&review)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ReviewRepository.FindByPropertyAndUser: %w", err)
	}
	return &review, nil
}

// Insert persists a new review, assigning its ID and timestamps. A
// duplicate-key write error (the lost race behind the pre-check) comes back
// as ErrAlreadyReviewed, a validator rejection as *SchemaError.
func (r *ReviewRepository) Insert(ctx context.Context, review *model.Review) error {
	review.ID = primitive.NewObjectID()
	now := time.Now().UTC().Truncate(time.Millisecond)
	review.CreatedAt = now
	review.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		if translated := translateWriteError(err); translated != nil {
			return translated
		}
		return fmt.Errorf("ReviewRepository.Insert: %w", err)
	}
	return nil
}

// translateWriteError maps store-level write errors onto the domain errors
// the handler knows how to report. Returns nil for anything it does not
// recognize.
func translateWriteError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrAlreadyReviewed
	}

	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		var messages []string
		for _, we := range writeErr.WriteErrors {
			if we.Code == documentValidationFailure {
				messages = append(messages, we.Message)
			}
		}
		if len(messages) > 0 {
			return &SchemaError{Messages: messages}
		}
	}
	return nil
}
