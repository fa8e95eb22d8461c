package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventregistration/internal/delivery/http/helpers"
	"eventregistration/internal/domain"
)

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
	Pages   domain.PageRenderer
}

func NewEventController(logger *slog.Logger, svc domain.EventService, pages domain.PageRenderer) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
		Pages:   pages,
	}
}

// Index renders the event catalogue, seeding the default events first when the store is empty.
func (c *EventController) Index(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.SeedEventsIfEmpty(r.Context()); err != nil {
		c.fail(w, r, err)
		return
	}
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.RenderPage(w, r, c.Pages, c.Logger, http.StatusOK, pageIndex, IndexPage{Events: events})
}

// EventInfo renders a single event or a 404 page.
func (c *EventController) EventInfo(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(r, "id")
	if !ok {
		notFound(w, r, c.Pages, c.Logger, "Event not found.")
		return
	}
	event, err := c.Service.GetEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrEventNotFound) {
			notFound(w, r, c.Pages, c.Logger, "Event not found.")
			return
		}
		c.fail(w, r, err)
		return
	}
	helpers.RenderPage(w, r, c.Pages, c.Logger, http.StatusOK, pageEventInfo, EventInfoPage{Event: event})
}

func (c *EventController) fail(w http.ResponseWriter, r *http.Request, err error) {
	serverError(w, r, c.Pages, c.Logger, err)
}

func notFound(w http.ResponseWriter, r *http.Request, pages domain.PageRenderer, logger *slog.Logger, message string) {
	helpers.RenderPage(w, r, pages, logger, http.StatusNotFound, pageNotFound, NotFoundPage{Message: message})
}

func serverError(w http.ResponseWriter, r *http.Request, pages domain.PageRenderer, logger *slog.Logger, err error) {
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.RenderPage(w, r, pages, logger, http.StatusInternalServerError, pageError, nil)
}
