package userRepo

import (
	"context"

	"postpilot/database"
	"postpilot/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository persists workspace member accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo() UserRepository {
	db := database.MongoClient.Database("postpilot")
	return &mongoUserRepo{
		coll: db.Collection("users"),
	}
}
