package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/service"
	"github.com/eventdesk/eventdesk-api/internal/viewcache"
)

type stubEventService struct {
	createCalls int
	events      map[uint]domain.EventDetail
}

func (s *stubEventService) ListEvents(_ context.Context, _ service.EventListQuery) (domain.Page[domain.EventDetail], error) {
	return domain.Page[domain.EventDetail]{}, nil
}

func (s *stubEventService) GetEvent(_ context.Context, id uint) (domain.EventDetail, error) {
	detail, ok := s.events[id]
	if !ok {
		return domain.EventDetail{}, service.ErrEventNotFound
	}
	return detail, nil
}

func (s *stubEventService) CreateEvent(_ context.Context, event domain.Event) (domain.Event, error) {
	s.createCalls++
	event.ID = 1
	return event, nil
}

func (s *stubEventService) UpdateEvent(_ context.Context, event domain.Event) (domain.Event, error) {
	return event, nil
}

func (s *stubEventService) UpdateStatus(_ context.Context, _ uint, _ domain.EventStatus) (domain.Event, error) {
	return domain.Event{}, nil
}

func (s *stubEventService) DeleteEvent(_ context.Context, _ uint) error {
	return nil
}

func (s *stubEventService) GetStatusCounts(_ context.Context) (map[domain.EventStatus]int64, error) {
	return nil, nil
}

func newEventTestRouter(svc *stubEventService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewEventHandler(svc, viewcache.New())
	router.POST("/api/v1/events", handler.HandleCreateEvent)
	router.GET("/api/v1/events/:eventID", handler.HandleGetEvent)

	return router
}

func TestEventHandler_HandleCreateEvent_ValidationFailure(t *testing.T) {
	svc := &stubEventService{}
	router := newEventTestRouter(svc)

	body := `{
		"title": "ab",
		"description": "A three-day gathering of engineers and founders.",
		"location": "Berlin Congress Center",
		"start_date": "2025-09-01",
		"end_date": "2025-09-03"
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success     bool              `json:"success"`
		Error       string            `json:"error"`
		FieldErrors map[string]string `json:"field_errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.False(t, resp.Success)
	assert.Contains(t, resp.FieldErrors, "title")
	assert.Zero(t, svc.createCalls, "service never invoked on validation failure")
}

func TestEventHandler_HandleCreateEvent(t *testing.T) {
	svc := &stubEventService{}
	router := newEventTestRouter(svc)

	body := `{
		"title": "Tech Summit 2025",
		"description": "A three-day gathering of engineers and founders.",
		"location": "Berlin Congress Center",
		"start_date": "2025-09-01",
		"end_date": "2025-09-03"
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, svc.createCalls)

	var resp struct {
		Success bool         `json:"success"`
		Data    domain.Event `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, uint(1), resp.Data.ID)
	assert.Equal(t, "Tech Summit 2025", resp.Data.Title)
}

func TestEventHandler_HandleGetEvent_NotFound(t *testing.T) {
	router := newEventTestRouter(&stubEventService{events: map[uint]domain.EventDetail{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "not found")
}

func TestEventHandler_HandleGetEvent_BadID(t *testing.T) {
	router := newEventTestRouter(&stubEventService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
