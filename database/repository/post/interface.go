package postRepo

import (
	"context"

	"postpilot/database"
	"postpilot/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PostRepository persists posts across their lifecycle.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteByID(ctx context.Context, id string) error
	ListByProfileID(ctx context.Context, profileID, status string) ([]models.Post, error)
}

type mongoPostRepo struct {
	coll *mongo.Collection
}

// NewMongoPostRepo constructs a new MongoDB PostRepository.
func NewMongoPostRepo() PostRepository {
	db := database.MongoClient.Database("postpilot")
	return &mongoPostRepo{
		coll: db.Collection("posts"),
	}
}
