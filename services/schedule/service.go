package scheduleSvc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"postpilot/models"
	"postpilot/schedule"
	"postpilot/utils"

	"go.uber.org/zap"
)

const cacheTTL = 10 * time.Minute

// GetTimeSlots returns the profile's saved schedule groups. A profile with
// no saved schedule yields an empty slice; the grid layer turns that into
// its single default row.
func (s *DefaultScheduleService) GetTimeSlots(ctx context.Context, profileID string) ([]models.TimeSlotGroup, error) {
	if cached, ok := s.cacheGet(ctx, profileID); ok {
		return cached, nil
	}

	sched, err := s.Repo.GetByProfileID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}
	if sched == nil {
		return []models.TimeSlotGroup{}, nil
	}

	s.cacheSet(ctx, profileID, sched.TimeSlots)
	return sched.TimeSlots, nil
}

// SaveTimeSlots validates, canonicalizes and persists the schedule. The
// payload is round-tripped through the grid (Hydrate then Flatten) so that
// whatever is stored obeys the wire invariants: active entries only, no
// dead groups, weekday-ordered slots. Duplicate times pass through
// unmerged. Saves are last-write-wins; there is no concurrency check.
func (s *DefaultScheduleService) SaveTimeSlots(ctx context.Context, profileID string, req models.SaveScheduleRequest) (*models.PostingSchedule, error) {
	for _, g := range req.TimeSlots {
		if !schedule.ValidTime(g.Time) {
			return nil, fmt.Errorf("%w: bad time %q", ErrInvalidSlot, g.Time)
		}
		for _, slot := range g.Slots {
			if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
				return nil, fmt.Errorf("%w: dayOfWeek %d out of range", ErrInvalidSlot, slot.DayOfWeek)
			}
		}
	}

	canonical := schedule.Flatten(schedule.Hydrate(req.TimeSlots))
	if len(canonical) == 0 {
		return nil, ErrEmptySchedule
	}

	tz := req.Timezone
	if tz == "" {
		tz = "UTC"
	}
	sched := &models.PostingSchedule{
		ProfileID: profileID,
		Timezone:  tz,
		TimeSlots: canonical,
		UpdatedAt: time.Now(),
	}
	if err := s.Repo.Upsert(ctx, sched); err != nil {
		return nil, fmt.Errorf("failed to save schedule: %w", err)
	}

	s.cacheInvalidate(ctx, profileID)
	return sched, nil
}

// NextSlotAfter computes the next recurring posting instant strictly after
// the given time, in the profile's timezone.
func (s *DefaultScheduleService) NextSlotAfter(ctx context.Context, profileID string, after time.Time) (time.Time, error) {
	sched, err := s.Repo.GetByProfileID(ctx, profileID)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to fetch schedule: %w", err)
	}
	if sched == nil || len(sched.TimeSlots) == 0 {
		return time.Time{}, ErrNoConfiguredSlots
	}

	loc, err := time.LoadLocation(sched.Timezone)
	if err != nil {
		loc = time.UTC
	}
	next, ok := schedule.NextSlotAfter(sched.TimeSlots, after.In(loc))
	if !ok {
		return time.Time{}, ErrNoConfiguredSlots
	}
	return next, nil
}

func (s *DefaultScheduleService) cacheGet(ctx context.Context, profileID string) ([]models.TimeSlotGroup, bool) {
	if s.Cache == nil {
		return nil, false
	}
	data, err := s.Cache.Get(ctx, utils.ScheduleCachePrefix+profileID).Result()
	if err != nil {
		return nil, false
	}
	var groups []models.TimeSlotGroup
	if err := json.Unmarshal([]byte(data), &groups); err != nil {
		return nil, false
	}
	return groups, true
}

func (s *DefaultScheduleService) cacheSet(ctx context.Context, profileID string, groups []models.TimeSlotGroup) {
	if s.Cache == nil {
		return
	}
	b, err := json.Marshal(groups)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, utils.ScheduleCachePrefix+profileID, b, cacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache schedule", zap.String("profileId", profileID), zap.Error(err))
	}
}

func (s *DefaultScheduleService) cacheInvalidate(ctx context.Context, profileID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.ScheduleCachePrefix+profileID).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate schedule cache", zap.String("profileId", profileID), zap.Error(err))
	}
}
