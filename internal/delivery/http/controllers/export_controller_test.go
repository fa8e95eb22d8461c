package controllers

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventregistration/internal/domain"
	"eventregistration/internal/export"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportFixture() *fakeRegistrationService {
	note := "Vegetarian lunch"
	summit := mustEvent(1, "AI Innovations Summit 2025", "2025-10-05", "AITR Auditorium, Indore")
	return &fakeRegistrationService{list: []*domain.RegistrationWithEvent{
		{
			Registration: &domain.Registration{ID: 1, Name: "Asha Rao", Email: "asha@example.com", Phone: "9876543210", Year: "2", Branch: "CSE", AfterNote: &note, EventID: 1},
			Event:        summit,
		},
		{
			Registration: &domain.Registration{ID: 2, Name: "Ravi Kumar", Email: "ravi@example.com", Phone: "9123456780", Year: "3", Branch: "ECE", EventID: 42},
		},
	}}
}

func TestExportController_DownloadCSV(t *testing.T) {
	c := NewExportController(testLogger, exportFixture())
	rr := httptest.NewRecorder()

	c.DownloadCSV(rr, httptest.NewRequest(http.MethodGet, "/download_csv", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "attachment;filename=registrations.csv", rr.Header().Get("Content-Disposition"))
	rows, err := csv.NewReader(rr.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Name", "Email", "Phone", "Year", "Branch", "Event"}, rows[0])
	assert.Equal(t, []string{"1", "Asha Rao", "asha@example.com", "9876543210", "2", "CSE", "AI Innovations Summit 2025"}, rows[1])
	assert.Equal(t, "Unknown", rows[2][6])
}

func TestExportController_ListRegistrations(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		c := NewExportController(testLogger, exportFixture())
		rr := httptest.NewRecorder()

		c.ListRegistrations(rr, httptest.NewRequest(http.MethodGet, "/api/registrations", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		var got []export.RegistrationRecord
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		require.Len(t, got, 2)
		assert.Equal(t, "AI Innovations Summit 2025", got[0].Event)
		assert.Equal(t, "Vegetarian lunch", got[0].AfterNote)
		assert.Equal(t, "Unknown", got[1].Event)
	})

	t.Run("empty store encodes empty array", func(t *testing.T) {
		c := NewExportController(testLogger, &fakeRegistrationService{})
		rr := httptest.NewRecorder()

		c.ListRegistrations(rr, httptest.NewRequest(http.MethodGet, "/api/registrations", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}

func TestExportController_StorageFailure(t *testing.T) {
	c := NewExportController(testLogger, &fakeRegistrationService{listErr: errStorage})

	for _, handler := range []http.HandlerFunc{c.DownloadCSV, c.ListRegistrations} {
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Empty(t, rr.Header().Get("Content-Disposition"))
	}
}
