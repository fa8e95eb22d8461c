package controllers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"eventregistration/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeRenderer records the last rendered page and writes its name as the body.
type fakeRenderer struct {
	page string
	data any
	err  error
}

func (f *fakeRenderer) Render(w io.Writer, page string, data any) error {
	if f.err != nil {
		return f.err
	}
	f.page = page
	f.data = data
	_, err := io.WriteString(w, "page:"+page)
	return err
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	events    map[int64]*domain.Event
	list      []*domain.Event
	listErr   error
	getErr    error
	seedErr   error
	seedCalls int
	lastGetID int64
}

func (f *fakeEventService) ListEvents(_ context.Context) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

func (f *fakeEventService) GetEvent(_ context.Context, id int64) (*domain.Event, error) {
	f.lastGetID = id
	if f.getErr != nil {
		return nil, f.getErr
	}
	if e, ok := f.events[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventService) SeedEventsIfEmpty(_ context.Context) error {
	f.seedCalls++
	return f.seedErr
}

// fakeRegistrationService implements domain.RegistrationService for handler tests.
type fakeRegistrationService struct {
	registerErr   error
	list          []*domain.RegistrationWithEvent
	listErr       error
	deleteErr     error
	lastEventID   int64
	lastInput     domain.RegistrationInput
	registerCalls int
	lastDeleteID  int64
}

func (f *fakeRegistrationService) Register(_ context.Context, eventID int64, in domain.RegistrationInput) (*domain.Registration, error) {
	f.registerCalls++
	f.lastEventID = eventID
	f.lastInput = in
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &domain.Registration{ID: 1, Name: in.Name, Email: in.Email, EventID: eventID}, nil
}

func (f *fakeRegistrationService) ListRegistrations(_ context.Context) ([]*domain.RegistrationWithEvent, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

func (f *fakeRegistrationService) DeleteRegistration(_ context.Context, id int64) error {
	f.lastDeleteID = id
	return f.deleteErr
}

// fakeAdminService implements domain.AdminService for handler tests.
type fakeAdminService struct {
	token        string
	expiresAt    time.Time
	err          error
	lastUsername string
	lastPassword string
}

func (f *fakeAdminService) Login(_ context.Context, username, password string) (string, time.Time, error) {
	f.lastUsername = username
	f.lastPassword = password
	if f.err != nil {
		return "", time.Time{}, f.err
	}
	return f.token, f.expiresAt, nil
}

// fakePinger implements Pinger.
type fakePinger struct {
	err error
}

func (f *fakePinger) PingContext(_ context.Context) error { return f.err }

var errStorage = errors.New("storage unavailable")

func mustEvent(id int64, title, date, location string) *domain.Event {
	e, err := domain.NewEvent(id, title, date, location)
	if err != nil {
		panic(err)
	}
	return e
}
