package postSvc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"postpilot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePostRepo is an in-memory PostRepository for tests.
type fakePostRepo struct {
	byID map[string]*models.Post
	err  error // if set, every call returns this error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{byID: make(map[string]*models.Post)}
}

func (f *fakePostRepo) Create(ctx context.Context, post *models.Post) error {
	if f.err != nil {
		return f.err
	}
	cp := *post
	f.byID[post.ID] = &cp
	return nil
}

func (f *fakePostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.byID[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, errors.New("not found")
}

func (f *fakePostRepo) Update(ctx context.Context, post *models.Post) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[post.ID]; !ok {
		return errors.New("not found")
	}
	cp := *post
	f.byID[post.ID] = &cp
	return nil
}

func (f *fakePostRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	if f.err != nil {
		return f.err
	}
	p, ok := f.byID[id]
	if !ok {
		return errors.New("not found")
	}
	for k, v := range fields {
		switch k {
		case "status":
			p.Status = v.(string)
		case "failReason":
			p.FailReason = v.(string)
		case "publishedAt":
			t := v.(time.Time)
			p.PublishedAt = &t
		case "updatedAt":
			p.UpdatedAt = v.(time.Time)
		}
	}
	return nil
}

func (f *fakePostRepo) DeleteByID(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[id]; !ok {
		return errors.New("not found")
	}
	delete(f.byID, id)
	return nil
}

func (f *fakePostRepo) ListByProfileID(ctx context.Context, profileID, status string) ([]models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Post
	for _, p := range f.byID {
		if p.ProfileID == profileID && (status == "" || p.Status == status) {
			out = append(out, *p)
		}
	}
	return out, nil
}

// fakeScheduleService returns a canned next slot.
type fakeScheduleService struct {
	next time.Time
	err  error
}

func (f *fakeScheduleService) GetTimeSlots(ctx context.Context, profileID string) ([]models.TimeSlotGroup, error) {
	return nil, nil
}

func (f *fakeScheduleService) SaveTimeSlots(ctx context.Context, profileID string, req models.SaveScheduleRequest) (*models.PostingSchedule, error) {
	return nil, nil
}

func (f *fakeScheduleService) NextSlotAfter(ctx context.Context, profileID string, after time.Time) (time.Time, error) {
	if f.err != nil {
		return time.Time{}, f.err
	}
	return f.next, nil
}

// fakePublisher records publishes and can be made to fail.
type fakePublisher struct {
	published []string
	err       error
}

func (f *fakePublisher) Publish(ctx context.Context, post *models.Post) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.published = append(f.published, post.ID)
	return fmt.Sprintf("urn:li:share:%d", len(f.published)), nil
}

// fakeEnqueuer records deferred tasks and can be made to fail.
type fakeEnqueuer struct {
	tasks []models.PublishTaskPayload
	ats   []time.Time
	err   error
}

func (f *fakeEnqueuer) EnqueuePublish(ctx context.Context, payload models.PublishTaskPayload, at time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.tasks = append(f.tasks, payload)
	f.ats = append(f.ats, at)
	return nil
}

var testNow = time.Date(2025, time.June, 9, 10, 0, 0, 0, time.UTC)

func newTestService() (*DefaultPostService, *fakePostRepo, *fakePublisher, *fakeEnqueuer, *fakeScheduleService) {
	repo := newFakePostRepo()
	pub := &fakePublisher{}
	enq := &fakeEnqueuer{}
	sched := &fakeScheduleService{next: testNow.Add(7 * time.Hour)}
	svc := &DefaultPostService{
		Repo:        repo,
		ScheduleSvc: sched,
		Publisher:   pub,
		Enqueuer:    enq,
		Now:         func() time.Time { return testNow },
	}
	return svc, repo, pub, enq, sched
}

func mustDraft(t *testing.T, svc *DefaultPostService) *models.Post {
	t.Helper()
	post, err := svc.CreateDraft(context.Background(), "user-1", models.DraftRequest{
		ProfileID: "prof-1",
		Body:      "Shipping season.",
	})
	require.NoError(t, err)
	return post
}

func TestCreateDraftInitialState(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	post := mustDraft(t, svc)

	assert.NotEmpty(t, post.ID)
	assert.Equal(t, models.PostStatusDraft, post.Status)
	assert.Nil(t, post.ScheduledAt)
	assert.Equal(t, testNow, post.CreatedAt)
}

func TestUpdateDraftRejectsForeignPost(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	post := mustDraft(t, svc)

	_, err := svc.UpdateDraft(context.Background(), "user-2", post.ID, models.DraftRequest{
		ProfileID: "prof-1",
		Body:      "hijacked",
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestPublishNowMarksPublished(t *testing.T) {
	svc, repo, pub, _, _ := newTestService()
	post := mustDraft(t, svc)

	published, err := svc.PublishNow(context.Background(), "user-1", post.ID)

	require.NoError(t, err)
	assert.Equal(t, models.PostStatusPublished, published.Status)
	require.NotNil(t, published.PublishedAt)
	assert.Equal(t, testNow, *published.PublishedAt)
	assert.Equal(t, []string{post.ID}, pub.published)

	stored, err := repo.GetByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusPublished, stored.Status)
}

func TestPublishNowFailureLeavesPostUntouched(t *testing.T) {
	svc, repo, pub, _, _ := newTestService()
	post := mustDraft(t, svc)
	pub.err = errors.New("linkedin returned 500")

	_, err := svc.PublishNow(context.Background(), "user-1", post.ID)
	require.Error(t, err)

	stored, getErr := repo.GetByID(context.Background(), post.ID)
	require.NoError(t, getErr)
	assert.Equal(t, models.PostStatusDraft, stored.Status)
	assert.Nil(t, stored.PublishedAt)
}

func TestSchedulePostRejectsPastInstant(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	post := mustDraft(t, svc)

	_, err := svc.SchedulePost(context.Background(), "user-1", post.ID, testNow.Add(-time.Minute))
	assert.ErrorIs(t, err, ErrPastInstant)

	_, err = svc.SchedulePost(context.Background(), "user-1", post.ID, testNow)
	assert.ErrorIs(t, err, ErrPastInstant)
}

func TestSchedulePostEnqueuesAtInstant(t *testing.T) {
	svc, _, _, enq, _ := newTestService()
	post := mustDraft(t, svc)
	at := testNow.Add(2 * time.Hour)

	scheduled, err := svc.SchedulePost(context.Background(), "user-1", post.ID, at)

	require.NoError(t, err)
	assert.Equal(t, models.PostStatusScheduled, scheduled.Status)
	require.NotNil(t, scheduled.ScheduledAt)
	assert.Equal(t, at, *scheduled.ScheduledAt)
	require.Len(t, enq.tasks, 1)
	assert.Equal(t, post.ID, enq.tasks[0].PostID)
	assert.Equal(t, at, enq.ats[0])
}

func TestQueuePostUsesNextRecurringSlot(t *testing.T) {
	svc, _, _, enq, sched := newTestService()
	post := mustDraft(t, svc)

	queued, err := svc.QueuePost(context.Background(), "user-1", post.ID)

	require.NoError(t, err)
	assert.Equal(t, models.PostStatusQueued, queued.Status)
	require.NotNil(t, queued.ScheduledAt)
	assert.Equal(t, sched.next, *queued.ScheduledAt)
	require.Len(t, enq.ats, 1)
	assert.Equal(t, sched.next, enq.ats[0])
}

func TestQueuePostWithoutScheduleFails(t *testing.T) {
	svc, repo, _, enq, sched := newTestService()
	post := mustDraft(t, svc)
	sched.err = errors.New("no active time slots configured")

	_, err := svc.QueuePost(context.Background(), "user-1", post.ID)
	require.Error(t, err)
	assert.Empty(t, enq.tasks)

	stored, getErr := repo.GetByID(context.Background(), post.ID)
	require.NoError(t, getErr)
	assert.Equal(t, models.PostStatusDraft, stored.Status)
}

func TestEnqueueFailureLeavesPostUntouched(t *testing.T) {
	svc, repo, _, enq, _ := newTestService()
	post := mustDraft(t, svc)
	enq.err = errors.New("redis down")

	_, err := svc.SchedulePost(context.Background(), "user-1", post.ID, testNow.Add(time.Hour))
	require.Error(t, err)

	stored, getErr := repo.GetByID(context.Background(), post.ID)
	require.NoError(t, getErr)
	assert.Equal(t, models.PostStatusDraft, stored.Status)
	assert.Nil(t, stored.ScheduledAt)
}

func TestExecutePublishHappyPath(t *testing.T) {
	svc, repo, pub, _, _ := newTestService()
	post := mustDraft(t, svc)
	_, err := svc.SchedulePost(context.Background(), "user-1", post.ID, testNow.Add(time.Hour))
	require.NoError(t, err)

	require.NoError(t, svc.ExecutePublish(context.Background(), post.ID))

	assert.Equal(t, []string{post.ID}, pub.published)
	stored, err := repo.GetByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusPublished, stored.Status)
	require.NotNil(t, stored.PublishedAt)
}

func TestExecutePublishRecordsFailure(t *testing.T) {
	svc, repo, pub, _, _ := newTestService()
	post := mustDraft(t, svc)
	_, err := svc.SchedulePost(context.Background(), "user-1", post.ID, testNow.Add(time.Hour))
	require.NoError(t, err)
	pub.err = errors.New("token expired")

	err = svc.ExecutePublish(context.Background(), post.ID)
	require.Error(t, err)

	stored, getErr := repo.GetByID(context.Background(), post.ID)
	require.NoError(t, getErr)
	assert.Equal(t, models.PostStatusFailed, stored.Status)
	assert.Equal(t, "token expired", stored.FailReason)
}

func TestExecutePublishSkipsDeletedAndDrafts(t *testing.T) {
	svc, _, pub, _, _ := newTestService()

	// Deleted in the meantime: silently skipped, no retry.
	require.NoError(t, svc.ExecutePublish(context.Background(), "gone"))

	// Still a draft (e.g. schedule was cancelled): skipped too.
	post := mustDraft(t, svc)
	require.NoError(t, svc.ExecutePublish(context.Background(), post.ID))
	assert.Empty(t, pub.published)
}
