package mongo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func NewMongoClient(uri string) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("❌ Mongo connect error: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("❌ Mongo ping failed: %v", err)
	}

	log.Println("✅ Connected to MongoDB")
	return client
}

const namespaceExists = 48

// EnsureReviewSchema creates the reviews collection with its document
// validator and the unique (propertyId, userId) index. The validator keeps
// rating inside [1,5] at the storage layer; the index makes the losing side
// of a concurrent double-submit fail with a duplicate-key write error.
func EnsureReviewSchema(ctx context.Context, db *mongo.Database) error {
	validator := bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"propertyId", "userId", "userName", "rating", "comment", "createdAt"},
			"properties": bson.M{
				"propertyId": bson.M{"bsonType": "string", "minLength": 1},
				"userId":     bson.M{"bsonType": "string", "minLength": 1},
				"userName":   bson.M{"bsonType": "string", "minLength": 1},
				"rating": bson.M{
					"bsonType":    []string{"double", "int", "long", "decimal"},
					"minimum":     1,
					"maximum":     5,
					"description": "rating must be between 1 and 5",
				},
				"comment": bson.M{"bsonType": "string", "minLength": 1},
			},
		},
	}

	err := db.CreateCollection(ctx, "reviews", options.CreateCollection().SetValidator(validator))
	if err != nil {
		var cmdErr mongo.CommandError
		if !errors.As(err, &cmdErr) || !cmdErr.HasErrorCode(namespaceExists) {
			return fmt.Errorf("mongo.EnsureReviewSchema: create collection: %w", err)
		}
	}

	_, err = db.Collection("reviews").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "propertyId", Value: 1}, {Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("propertyId_userId_unique"),
	})
	if err != nil {
		return fmt.Errorf("mongo.EnsureReviewSchema: create index: %w", err)
	}
	return nil
}
