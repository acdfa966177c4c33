package scheduleRepo

import (
	"context"

	"postpilot/database"
	"postpilot/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository persists per-profile recurring posting schedules.
type ScheduleRepository interface {
	GetByProfileID(ctx context.Context, profileID string) (*models.PostingSchedule, error)
	Upsert(ctx context.Context, sched *models.PostingSchedule) error
	DeleteByProfileID(ctx context.Context, profileID string) error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database("postpilot")
	return &mongoScheduleRepo{
		coll: db.Collection("posting_schedules"),
	}
}
