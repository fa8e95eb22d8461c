package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventregistration/internal/delivery/http/helpers"
	"eventregistration/internal/domain"
)

// Form-level messages shown above the registration form.
const (
	msgDuplicateEmail = "Registration failed: Email already exists."
	msgChooseEvent    = "Please choose an event to register for."
	msgUnknownEvent   = "The selected event does not exist."
	msgBadForm        = "The form could not be read. Please try again."
	msgTryAgain       = "Registration failed. Please try again."
)

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
	Events  domain.EventService
	Pages   domain.PageRenderer
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService, events domain.EventService, pages domain.PageRenderer) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
		Events:  events,
		Pages:   pages,
	}
}

// RegisterForm renders an empty registration form for the event_id query parameter.
func (c *RegistrationController) RegisterForm(w http.ResponseWriter, r *http.Request) {
	page := RegisterPage{EventID: r.URL.Query().Get("event_id")}
	eventID, ok := helpers.ParseID(page.EventID)
	if !ok {
		page.Error = msgChooseEvent
		c.render(w, r, http.StatusBadRequest, page)
		return
	}
	page.Event = c.lookupEvent(r, eventID)
	c.render(w, r, http.StatusOK, page)
}

// Register handles the form submission. Success redirects to /success; every failure
// re-renders the form with the submitted values.
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	page := RegisterPage{EventID: r.URL.Query().Get("event_id")}
	if err := r.ParseForm(); err != nil {
		page.Error = msgBadForm
		c.render(w, r, http.StatusBadRequest, page)
		return
	}
	page.Form = domain.RegistrationInput{
		Name:      r.PostFormValue("name"),
		Email:     r.PostFormValue("email"),
		Phone:     r.PostFormValue("phone"),
		Year:      r.PostFormValue("year"),
		Branch:    r.PostFormValue("branch"),
		AfterNote: r.PostFormValue("after_note"),
	}
	eventID, ok := helpers.ParseID(page.EventID)
	if !ok {
		page.Error = msgChooseEvent
		c.render(w, r, http.StatusBadRequest, page)
		return
	}
	page.Event = c.lookupEvent(r, eventID)

	_, err := c.Service.Register(r.Context(), eventID, page.Form)
	if err == nil {
		http.Redirect(w, r, "/success", http.StatusSeeOther)
		return
	}

	var fieldErrs domain.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		page.Errors = fieldErrs
		c.render(w, r, http.StatusUnprocessableEntity, page)
	case errors.Is(err, domain.ErrDuplicateEmail):
		page.Error = msgDuplicateEmail
		c.render(w, r, http.StatusConflict, page)
	case errors.Is(err, domain.ErrEventNotFound):
		page.Error = msgUnknownEvent
		c.render(w, r, http.StatusUnprocessableEntity, page)
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		page.Error = msgTryAgain
		c.render(w, r, http.StatusInternalServerError, page)
	}
}

// Success renders the confirmation page.
func (c *RegistrationController) Success(w http.ResponseWriter, r *http.Request) {
	helpers.RenderPage(w, r, c.Pages, c.Logger, http.StatusOK, pageSuccess, nil)
}

// lookupEvent resolves the event for the page heading. A miss is not an error here.
func (c *RegistrationController) lookupEvent(r *http.Request, id int64) *domain.Event {
	event, err := c.Events.GetEvent(r.Context(), id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrEventNotFound) {
			c.Logger.WarnContext(r.Context(), "event lookup failed", "event_id", id, "err", err)
		}
		return nil
	}
	return event
}

func (c *RegistrationController) render(w http.ResponseWriter, r *http.Request, status int, page RegisterPage) {
	helpers.RenderPage(w, r, c.Pages, c.Logger, status, pageRegister, page)
}
