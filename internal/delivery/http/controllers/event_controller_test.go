package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventregistration/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventController_Index(t *testing.T) {
	events := []*domain.Event{
		mustEvent(1, "AI Innovations Summit 2025", "2025-10-05", "AITR Auditorium, Indore"),
		mustEvent(2, "Web Development Workshop", "2025-10-12", "Online (Zoom)"),
	}

	t.Run("seeds then renders catalogue", func(t *testing.T) {
		svc := &fakeEventService{list: events}
		pages := &fakeRenderer{}
		c := NewEventController(testLogger, svc, pages)
		rr := httptest.NewRecorder()

		c.Index(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 1, svc.seedCalls)
		assert.Equal(t, pageIndex, pages.page)
		data, ok := pages.data.(IndexPage)
		require.True(t, ok)
		assert.Len(t, data.Events, 2)
	})

	t.Run("seed failure renders error page", func(t *testing.T) {
		svc := &fakeEventService{seedErr: errStorage}
		pages := &fakeRenderer{}
		c := NewEventController(testLogger, svc, pages)
		rr := httptest.NewRecorder()

		c.Index(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, pageError, pages.page)
	})

	t.Run("list failure renders error page", func(t *testing.T) {
		svc := &fakeEventService{listErr: errStorage}
		pages := &fakeRenderer{}
		c := NewEventController(testLogger, svc, pages)
		rr := httptest.NewRecorder()

		c.Index(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, pageError, pages.page)
	})
}

func TestEventController_EventInfo(t *testing.T) {
	summit := mustEvent(1, "AI Innovations Summit 2025", "2025-10-05", "AITR Auditorium, Indore")

	tests := []struct {
		name       string
		id         string
		svc        *fakeEventService
		wantStatus int
		wantPage   string
	}{
		{"existing event", "1", &fakeEventService{events: map[int64]*domain.Event{1: summit}}, http.StatusOK, pageEventInfo},
		{"missing event", "999", &fakeEventService{}, http.StatusNotFound, pageNotFound},
		{"non numeric id", "abc", &fakeEventService{}, http.StatusNotFound, pageNotFound},
		{"zero id", "0", &fakeEventService{}, http.StatusNotFound, pageNotFound},
		{"storage failure", "1", &fakeEventService{getErr: errStorage}, http.StatusInternalServerError, pageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages := &fakeRenderer{}
			c := NewEventController(testLogger, tt.svc, pages)
			req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/event_info/%s", tt.id), nil)
			req.SetPathValue("id", tt.id)
			rr := httptest.NewRecorder()

			c.EventInfo(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantPage, pages.page)
			if tt.wantPage == pageEventInfo {
				data := pages.data.(EventInfoPage)
				assert.Equal(t, "AI Innovations Summit 2025", data.Event.Title)
				assert.Equal(t, "2025-10-05", data.Event.FormattedDate())
			}
		})
	}
}

func TestEventController_RenderFailure(t *testing.T) {
	svc := &fakeEventService{}
	pages := &fakeRenderer{err: fmt.Errorf("template broken")}
	c := NewEventController(testLogger, svc, pages)
	rr := httptest.NewRecorder()

	c.Index(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "page:")
}
