package postSvc

import (
	"context"
	"fmt"
	"time"

	"postpilot/models"
	"postpilot/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateDraft stores a new draft post.
func (s *DefaultPostService) CreateDraft(ctx context.Context, authorID string, req models.DraftRequest) (*models.Post, error) {
	now := s.now()
	post := &models.Post{
		ID:        uuid.New().String(),
		ProfileID: req.ProfileID,
		AuthorID:  authorID,
		Body:      req.Body,
		MediaURL:  req.MediaURL,
		Status:    models.PostStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create draft: %w", err)
	}
	return post, nil
}

// UpdateDraft replaces the editable fields of a draft or scheduled post.
func (s *DefaultPostService) UpdateDraft(ctx context.Context, authorID, postID string, req models.DraftRequest) (*models.Post, error) {
	post, err := s.ownedPost(ctx, authorID, postID)
	if err != nil {
		return nil, err
	}
	if post.Status != models.PostStatusDraft && post.Status != models.PostStatusScheduled && post.Status != models.PostStatusQueued {
		return nil, ErrNotEditable
	}

	post.Body = req.Body
	post.MediaURL = req.MediaURL
	post.UpdatedAt = s.now()
	if err := s.Repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update draft: %w", err)
	}
	return post, nil
}

// DeletePost removes a post that has not been published.
func (s *DefaultPostService) DeletePost(ctx context.Context, authorID, postID string) error {
	post, err := s.ownedPost(ctx, authorID, postID)
	if err != nil {
		return err
	}
	if post.Status == models.PostStatusPublished {
		return ErrNotEditable
	}
	if err := s.Repo.DeleteByID(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

// ListPosts lists a profile's posts, optionally filtered by status.
func (s *DefaultPostService) ListPosts(ctx context.Context, profileID, status string) ([]models.Post, error) {
	posts, err := s.Repo.ListByProfileID(ctx, profileID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// PublishNow pushes the post to LinkedIn immediately. On failure the post
// keeps its previous status so the caller can retry manually.
func (s *DefaultPostService) PublishNow(ctx context.Context, authorID, postID string) (*models.Post, error) {
	post, err := s.ownedPost(ctx, authorID, postID)
	if err != nil {
		return nil, err
	}
	if post.Status == models.PostStatusPublished {
		return nil, ErrNotEditable
	}

	if _, err := s.Publisher.Publish(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to publish post: %w", err)
	}

	now := s.now()
	post.Status = models.PostStatusPublished
	post.PublishedAt = &now
	post.FailReason = ""
	post.UpdatedAt = now
	if err := s.Repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to record publication: %w", err)
	}
	return post, nil
}

// SchedulePost pins the post to an explicit future instant and defers its
// publication to the worker.
func (s *DefaultPostService) SchedulePost(ctx context.Context, authorID, postID string, at time.Time) (*models.Post, error) {
	if !at.After(s.now()) {
		return nil, ErrPastInstant
	}
	return s.deferPublish(ctx, authorID, postID, at, models.PostStatusScheduled)
}

// QueuePost places the post on the next free slot of the profile's
// recurring schedule.
func (s *DefaultPostService) QueuePost(ctx context.Context, authorID, postID string) (*models.Post, error) {
	post, err := s.ownedPost(ctx, authorID, postID)
	if err != nil {
		return nil, err
	}
	at, err := s.ScheduleSvc.NextSlotAfter(ctx, post.ProfileID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to find a queue slot: %w", err)
	}
	return s.deferPublish(ctx, authorID, postID, at, models.PostStatusQueued)
}

func (s *DefaultPostService) deferPublish(ctx context.Context, authorID, postID string, at time.Time, status string) (*models.Post, error) {
	post, err := s.ownedPost(ctx, authorID, postID)
	if err != nil {
		return nil, err
	}
	if post.Status == models.PostStatusPublished {
		return nil, ErrNotEditable
	}

	payload := models.PublishTaskPayload{PostID: post.ID, AuthorID: authorID}
	if err := s.Enqueuer.EnqueuePublish(ctx, payload, at); err != nil {
		// Enqueue failed: leave the post untouched so nothing is lost.
		return nil, fmt.Errorf("failed to enqueue publish task: %w", err)
	}

	post.Status = status
	post.ScheduledAt = &at
	post.UpdatedAt = s.now()
	if err := s.Repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post schedule: %w", err)
	}
	return post, nil
}

// ExecutePublish is invoked by the worker when a deferred task fires. A post
// that was deleted or already published in the meantime is skipped silently;
// a publish failure is recorded on the post and returned so the worker can
// notify the author.
func (s *DefaultPostService) ExecutePublish(ctx context.Context, postID string) error {
	logger := utils.GetLogger()

	post, err := s.Repo.GetByID(ctx, postID)
	if err != nil {
		logger.Warn("Deferred publish skipped: post missing", zap.String("postId", postID))
		return nil
	}
	if post.Status != models.PostStatusScheduled && post.Status != models.PostStatusQueued {
		return nil
	}

	if _, err := s.Publisher.Publish(ctx, post); err != nil {
		fields := map[string]interface{}{
			"status":     models.PostStatusFailed,
			"failReason": err.Error(),
			"updatedAt":  s.now(),
		}
		if updErr := s.Repo.UpdateFields(ctx, postID, fields); updErr != nil {
			logger.Error("Failed to record publish failure", zap.String("postId", postID), zap.Error(updErr))
		}
		return fmt.Errorf("failed to publish post %s: %w", postID, err)
	}

	now := s.now()
	fields := map[string]interface{}{
		"status":      models.PostStatusPublished,
		"publishedAt": now,
		"failReason":  "",
		"updatedAt":   now,
	}
	if err := s.Repo.UpdateFields(ctx, postID, fields); err != nil {
		return fmt.Errorf("failed to record publication: %w", err)
	}
	return nil
}

func (s *DefaultPostService) ownedPost(ctx context.Context, authorID, postID string) (*models.Post, error) {
	post, err := s.Repo.GetByID(ctx, postID)
	if err != nil {
		return nil, ErrNotFound
	}
	if post.AuthorID != authorID {
		return nil, ErrForbidden
	}
	return post, nil
}
