package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"postpilot/models"
	scheduleSvc "postpilot/services/schedule"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScheduleService struct {
	groups  map[string][]models.TimeSlotGroup
	saveErr error
}

func (f *fakeScheduleService) GetTimeSlots(ctx context.Context, profileID string) ([]models.TimeSlotGroup, error) {
	groups, ok := f.groups[profileID]
	if !ok {
		return []models.TimeSlotGroup{}, nil
	}
	return groups, nil
}

func (f *fakeScheduleService) SaveTimeSlots(ctx context.Context, profileID string, req models.SaveScheduleRequest) (*models.PostingSchedule, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	if f.groups == nil {
		f.groups = make(map[string][]models.TimeSlotGroup)
	}
	f.groups[profileID] = req.TimeSlots
	return &models.PostingSchedule{
		ProfileID: profileID,
		Timezone:  req.Timezone,
		TimeSlots: req.TimeSlots,
		UpdatedAt: time.Now(),
	}, nil
}

func (f *fakeScheduleService) NextSlotAfter(ctx context.Context, profileID string, after time.Time) (time.Time, error) {
	return time.Time{}, scheduleSvc.ErrNoConfiguredSlots
}

func newScheduleRouter(svc scheduleSvc.ScheduleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewScheduleHandler(svc)
	r := gin.New()
	r.GET("/api/schedule/time-options", h.TimeOptions)
	r.GET("/api/schedule/quick-picks", h.QuickPicks)
	r.GET("/api/schedule/:profileID", h.GetSchedule)
	r.PUT("/api/schedule/:profileID", h.SaveSchedule)
	return r
}

func TestGetScheduleEmptyProfile(t *testing.T) {
	router := newScheduleRouter(&fakeScheduleService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/schedule/p1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		TimeSlots []models.TimeSlotGroup `json:"timeSlots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.TimeSlots)
}

func TestSaveScheduleRoundTrip(t *testing.T) {
	svc := &fakeScheduleService{}
	router := newScheduleRouter(svc)

	payload := `{"timezone":"UTC","timeSlots":[{"time":"09:00","slots":[{"dayOfWeek":1,"isActive":true}]}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/schedule/p1", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, svc.groups["p1"], 1)
	assert.Equal(t, "09:00", svc.groups["p1"][0].Time)
}

func TestSaveScheduleRejectsEmpty(t *testing.T) {
	router := newScheduleRouter(&fakeScheduleService{saveErr: scheduleSvc.ErrEmptySchedule})

	payload := `{"timezone":"UTC","timeSlots":[{"time":"09:00","slots":[]}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/schedule/p1", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveScheduleRejectsMalformedPayload(t *testing.T) {
	router := newScheduleRouter(&fakeScheduleService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/schedule/p1", strings.NewReader(`{"timezone":"UTC"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuickPicksEndpoint(t *testing.T) {
	router := newScheduleRouter(&fakeScheduleService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/schedule/quick-picks", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		QuickPicks []struct {
			Label string `json:"label"`
			At    string `json:"at"`
		} `json:"quickPicks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.QuickPicks, 8)
	assert.Equal(t, "In 1 minute", body.QuickPicks[0].Label)
	for _, p := range body.QuickPicks {
		_, err := time.Parse(time.RFC3339, p.At)
		assert.NoError(t, err, "quick pick %q should carry an RFC3339 instant", p.Label)
	}
}

func TestTimeOptionsEndpoint(t *testing.T) {
	router := newScheduleRouter(&fakeScheduleService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/schedule/time-options", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Options []string `json:"options"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Options, 96)
	assert.Equal(t, "00:00", body.Options[0])
	assert.Equal(t, "23:45", body.Options[95])
}
