package controllers

import (
	"bytes"
	"log/slog"
	"net/http"

	"eventregistration/internal/delivery/http/helpers"
	"eventregistration/internal/domain"
	"eventregistration/internal/export"
)

type ExportController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewExportController(logger *slog.Logger, svc domain.RegistrationService) *ExportController {
	return &ExportController{
		Logger:  logger,
		Service: svc,
	}
}

// DownloadCSV godoc
// @Summary Download registrations as CSV
// @Description Every registration with its event title as a CSV attachment. Requires the admin session cookie; otherwise redirects to /admin/login.
// @Tags registrations
// @Produce text/csv
// @Security AdminSession
// @Success 200 {file} file "registrations.csv"
// @Failure 303 "redirect to /admin/login"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /download_csv [get]
func (c *ExportController) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	items, err := c.Service.ListRegistrations(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, items); err != nil {
		c.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Disposition", "attachment;filename="+export.CSVFilename)
	helpers.WriteBody(w, http.StatusOK, "text/csv; charset=utf-8", &buf)
}

// ListRegistrations godoc
// @Summary List registrations as JSON
// @Description Every registration with its event title as a bare JSON array. Requires the admin session cookie; otherwise redirects to /admin/login.
// @Tags registrations
// @Produce json
// @Security AdminSession
// @Success 200 {array} export.RegistrationRecord
// @Failure 303 "redirect to /admin/login"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/registrations [get]
func (c *ExportController) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	items, err := c.Service.ListRegistrations(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := export.WriteJSON(&buf, items); err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteBody(w, http.StatusOK, "application/json", &buf)
}

func (c *ExportController) fail(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to load registrations")
}
