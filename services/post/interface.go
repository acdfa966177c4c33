package postSvc

import (
	"context"
	"errors"
	"time"

	postRepo "postpilot/database/repository/post"
	"postpilot/models"
	scheduleSvc "postpilot/services/schedule"
)

var (
	// ErrNotFound is returned when the post does not exist.
	ErrNotFound = errors.New("post not found")
	// ErrForbidden is returned when a caller touches someone else's post.
	ErrForbidden = errors.New("post belongs to another user")
	// ErrNotEditable is returned when mutating a post that already left the
	// draft/scheduled stages.
	ErrNotEditable = errors.New("post can no longer be edited")
	// ErrPastInstant is returned when scheduling into the past.
	ErrPastInstant = errors.New("scheduled time is in the past")
)

// Publisher pushes a finished post to LinkedIn and returns the remote share id.
type Publisher interface {
	Publish(ctx context.Context, post *models.Post) (string, error)
}

// TaskEnqueuer defers a publish to a concrete instant. Implemented on asynq
// in the cron package; an interface here keeps the service testable and
// avoids an import cycle with the worker.
type TaskEnqueuer interface {
	EnqueuePublish(ctx context.Context, payload models.PublishTaskPayload, at time.Time) error
}

// PostService manages posts from draft through publication.
type PostService interface {
	CreateDraft(ctx context.Context, authorID string, req models.DraftRequest) (*models.Post, error)
	UpdateDraft(ctx context.Context, authorID, postID string, req models.DraftRequest) (*models.Post, error)
	DeletePost(ctx context.Context, authorID, postID string) error
	ListPosts(ctx context.Context, profileID, status string) ([]models.Post, error)
	PublishNow(ctx context.Context, authorID, postID string) (*models.Post, error)
	SchedulePost(ctx context.Context, authorID, postID string, at time.Time) (*models.Post, error)
	QueuePost(ctx context.Context, authorID, postID string) (*models.Post, error)
	ExecutePublish(ctx context.Context, postID string) error
}

// DefaultPostService is the production implementation.
type DefaultPostService struct {
	Repo        postRepo.PostRepository
	ScheduleSvc scheduleSvc.ScheduleService
	Publisher   Publisher
	Enqueuer    TaskEnqueuer
	Now         func() time.Time // defaults to time.Now
}

func (s *DefaultPostService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
