package cron

import (
	"context"
	"encoding/json"
	"time"

	"postpilot/config"
	"postpilot/models"

	"github.com/hibiken/asynq"
)

// PublishEnqueuer defers publish tasks onto the asynq queue.
type PublishEnqueuer struct {
	client *asynq.Client
}

func NewPublishEnqueuer() *PublishEnqueuer {
	return &PublishEnqueuer{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisPublishDB,
		}),
	}
}

// EnqueuePublish schedules a publish task for the given instant. Publish
// failures are recorded on the post itself, so the task is not retried.
func (e *PublishEnqueuer) EnqueuePublish(ctx context.Context, payload models.PublishTaskPayload, at time.Time) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypePublishSend, b)
	_, err = e.client.EnqueueContext(ctx, task, asynq.ProcessAt(at), asynq.MaxRetry(0))
	return err
}

// Close releases the underlying queue connection.
func (e *PublishEnqueuer) Close() error {
	return e.client.Close()
}
