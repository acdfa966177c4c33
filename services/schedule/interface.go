package scheduleSvc

import (
	"context"
	"errors"
	"time"

	scheduleRepo "postpilot/database/repository/schedule"
	"postpilot/models"

	"github.com/go-redis/redis/v8"
)

var (
	// ErrEmptySchedule is returned when a save payload flattens to nothing.
	// Persisting an entirely inactive schedule is meaningless; the client is
	// expected to guard the save action on this condition.
	ErrEmptySchedule = errors.New("schedule has no active time slots")
	// ErrInvalidSlot is returned when a group carries a malformed time or
	// an out-of-range weekday.
	ErrInvalidSlot = errors.New("invalid time slot")
	// ErrNoConfiguredSlots is returned by NextSlotAfter when the profile has
	// no active recurring slots to queue onto.
	ErrNoConfiguredSlots = errors.New("no active time slots configured")
)

// ScheduleService manages the recurring weekly posting schedule per profile.
type ScheduleService interface {
	GetTimeSlots(ctx context.Context, profileID string) ([]models.TimeSlotGroup, error)
	SaveTimeSlots(ctx context.Context, profileID string, req models.SaveScheduleRequest) (*models.PostingSchedule, error)
	NextSlotAfter(ctx context.Context, profileID string, after time.Time) (time.Time, error)
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Repo  scheduleRepo.ScheduleRepository
	Cache *redis.Client // optional; nil disables read-through caching
}
