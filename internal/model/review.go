package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is one user's evaluation of one property. A user holds at most
// one review per property; the reviews collection carries a unique index
// on (propertyId, userId).
type Review struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PropertyID string             `bson:"propertyId" json:"propertyId"`
	UserID     string             `bson:"userId" json:"userId"`
	UserName   string             `bson:"userName" json:"userName"`
	UserImage  string             `bson:"userImage,omitempty" json:"userImage,omitempty"`
	Rating     float64            `bson:"rating" json:"rating"`
	Comment    string             `bson:"comment" json:"comment"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ReviewAPIResponse is the uniform envelope of the review endpoint.
// Data is always present (empty slice on failure) so clients only branch
// on Success and fall back to Message.
type ReviewAPIResponse struct {
	Success bool     `json:"success"`
	Data    []Review `json:"data"`
	Message string   `json:"message,omitempty"`
}
