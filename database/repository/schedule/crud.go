package scheduleRepo

import (
	"context"
	"time"

	"postpilot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoScheduleRepo) GetByProfileID(ctx context.Context, profileID string) (*models.PostingSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var sched models.PostingSchedule
	err := r.coll.FindOne(ctx, bson.M{"profileId": profileID}).Decode(&sched)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sched, nil
}

func (r *mongoScheduleRepo) Upsert(ctx context.Context, sched *models.PostingSchedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"profileId": sched.ProfileID}
	update := bson.M{"$set": sched}
	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoScheduleRepo) DeleteByProfileID(ctx context.Context, profileID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"profileId": profileID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
