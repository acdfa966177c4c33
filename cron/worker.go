package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"postpilot/config"
	"postpilot/models"
	"postpilot/services/notification"
	postSvc "postpilot/services/post"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypePublishSend = "post:publish"

// InitPublishWorker runs the async publish worker in background.
func InitPublishWorker(posts postSvc.PostService, notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPublishDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePublishSend, handlePublishTask(posts, notifSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[PublishWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PublishWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PublishWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handlePublishTask(posts postSvc.PostService, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.PublishTaskPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[PublishHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		log.Printf("[PublishHandler] ⏰ Publishing deferred post %s for user %s", p.PostID, p.AuthorID)

		if err := posts.ExecutePublish(ctx, p.PostID); err != nil {
			log.Printf("[PublishHandler] ❌ Publish failed for post %s: %v", p.PostID, err)
			if nerr := notifSvc.NotifyPublishResult(ctx, p.AuthorID, p.PostID, false, err.Error()); nerr != nil {
				log.Printf("[PublishHandler] ⚠️ Failed to notify user %s: %v", p.AuthorID, nerr)
			}
			return err
		}

		if nerr := notifSvc.NotifyPublishResult(ctx, p.AuthorID, p.PostID, true, ""); nerr != nil {
			log.Printf("[PublishHandler] ⚠️ Failed to notify user %s: %v", p.AuthorID, nerr)
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPublishDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[PublishWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
