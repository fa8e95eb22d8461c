package domain

import (
	"context"
	"time"
)

// DateLayout is the calendar-date format used for event dates.
const DateLayout = "2006-01-02"

// Event is a seeded gathering people can register for.
// swagger:model Event
type Event struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
}

// NewEvent returns a new Event. date must be in DateLayout.
func NewEvent(id int64, title, date, location string) (*Event, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil, err
	}
	return &Event{ID: id, Title: title, Date: d, Location: location}, nil
}

// FormattedDate returns the event date in DateLayout.
func (e *Event) FormattedDate() string {
	return e.Date.Format(DateLayout)
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	List(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id int64) (*Event, error)
	// SeedIfEmpty inserts events only when the events table has no rows. Reports whether rows were inserted.
	SeedIfEmpty(ctx context.Context, events []*Event) (bool, error)
}

// EventService defines the public event catalogue operations.
type EventService interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEvent(ctx context.Context, id int64) (*Event, error)
	SeedEventsIfEmpty(ctx context.Context) error
}
