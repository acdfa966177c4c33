package models

import "time"

// Post lifecycle statuses.
const (
	PostStatusDraft     = "draft"
	PostStatusQueued    = "queued"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
	PostStatusFailed    = "failed"
)

// Post represents a LinkedIn post in any stage of its lifecycle.
type Post struct {
	ID          string     `bson:"id" json:"id"`
	ProfileID   string     `bson:"profileId" json:"profileId"`
	AuthorID    string     `bson:"authorId" json:"authorId"`
	Body        string     `bson:"body" json:"body"`
	MediaURL    string     `bson:"mediaUrl,omitempty" json:"mediaUrl,omitempty"`
	Status      string     `bson:"status" json:"status"`
	ScheduledAt *time.Time `bson:"scheduledAt,omitempty" json:"scheduledAt,omitempty"`
	PublishedAt *time.Time `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	FailReason  string     `bson:"failReason,omitempty" json:"failReason,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// DraftRequest defines the payload for creating or updating a draft.
type DraftRequest struct {
	ProfileID string `json:"profileId" binding:"required"`
	Body      string `json:"body" binding:"required"`
	MediaURL  string `json:"mediaUrl"`
}

// SchedulePostRequest schedules a post for a concrete instant.
type SchedulePostRequest struct {
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
}

// PublishTaskPayload is the asynq task payload for deferred publishing.
type PublishTaskPayload struct {
	PostID   string `json:"postId"`
	AuthorID string `json:"authorId"`
}
