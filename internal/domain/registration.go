package domain

import (
	"context"
	"time"
)

// UnknownEventTitle is shown for registrations whose event cannot be resolved.
const UnknownEventTitle = "Unknown"

// Registration is one person signing up for one event.
// swagger:model Registration
type Registration struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Year      string    `json:"year"`
	Branch    string    `json:"branch"`
	AfterNote *string   `json:"after_note"`
	EventID   int64     `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRegistration builds a Registration for eventID from validated fields. ID is set by the repository on create.
func NewRegistration(f *RegistrationFields, eventID int64, createdAt time.Time) *Registration {
	reg := &Registration{
		Name:      f.Name,
		Email:     f.Email,
		Phone:     f.Phone,
		Year:      f.Year,
		Branch:    f.Branch,
		EventID:   eventID,
		CreatedAt: createdAt,
	}
	if f.AfterNote != "" {
		note := f.AfterNote
		reg.AfterNote = &note
	}
	return reg
}

// Note returns the after-registration note, or "" when none was given.
func (r *Registration) Note() string {
	if r.AfterNote == nil {
		return ""
	}
	return *r.AfterNote
}

// RegistrationInput is the raw registration form as submitted.
type RegistrationInput struct {
	Name      string
	Email     string
	Phone     string
	Year      string
	Branch    string
	AfterNote string
}

// RegistrationFields is a validated and normalised RegistrationInput.
type RegistrationFields struct {
	Name      string
	Email     string
	Phone     string
	Year      string
	Branch    string
	AfterNote string
}

// RegistrationWithEvent bundles a registration with its event, which is nil when the event no longer resolves.
type RegistrationWithEvent struct {
	Registration *Registration
	Event        *Event
}

// EventTitle returns the resolved event title or UnknownEventTitle.
func (r *RegistrationWithEvent) EventTitle() string {
	if r.Event == nil || r.Event.Title == "" {
		return UnknownEventTitle
	}
	return r.Event.Title
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	// Create inserts reg atomically. Returns ErrDuplicateEmail or ErrEventNotFound on constraint violations.
	Create(ctx context.Context, reg *Registration) error
	List(ctx context.Context) ([]*Registration, error)
	// ListWithEvents returns every registration joined to its event, ordered by registration id.
	ListWithEvents(ctx context.Context) ([]*RegistrationWithEvent, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id int64) error
}

// RegistrationService defines the registration workflow.
type RegistrationService interface {
	// Register validates in and stores a registration for eventID.
	// Returns FieldErrors, ErrEventNotFound, ErrDuplicateEmail or a wrapped storage error.
	Register(ctx context.Context, eventID int64, in RegistrationInput) (*Registration, error)
	ListRegistrations(ctx context.Context) ([]*RegistrationWithEvent, error)
	DeleteRegistration(ctx context.Context, id int64) error
}
