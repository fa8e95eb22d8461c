package services

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"eventregistration/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventRepo implements domain.EventRepository in memory.
type fakeEventRepo struct {
	mu        sync.Mutex
	events    map[int64]*domain.Event
	err       error
	seedErr   error
	seedCalls int
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[int64]*domain.Event)}
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Event
	for _, e := range f.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (f *fakeEventRepo) SeedIfEmpty(ctx context.Context, events []*domain.Event) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seedCalls++
	if f.seedErr != nil {
		return false, f.seedErr
	}
	if len(f.events) > 0 {
		return false, nil
	}
	for _, e := range events {
		f.events[e.ID] = e
	}
	return true, nil
}

// fakeRegistrationRepo implements domain.RegistrationRepository in memory with a unique email index.
type fakeRegistrationRepo struct {
	mu        sync.Mutex
	regs      []*domain.Registration
	events    *fakeEventRepo
	nextID    int64
	createErr error
	listErr   error
	deleteErr error
}

func newFakeRegistrationRepo(events *fakeEventRepo) *fakeRegistrationRepo {
	return &fakeRegistrationRepo{events: events, nextID: 1}
}

func (f *fakeRegistrationRepo) Create(ctx context.Context, reg *domain.Registration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	for _, r := range f.regs {
		if r.Email == reg.Email {
			return domain.ErrDuplicateEmail
		}
	}
	reg.ID = f.nextID
	f.nextID++
	cp := *reg
	f.regs = append(f.regs, &cp)
	return nil
}

func (f *fakeRegistrationRepo) List(ctx context.Context) ([]*domain.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]*domain.Registration(nil), f.regs...), nil
}

func (f *fakeRegistrationRepo) ListWithEvents(ctx context.Context) ([]*domain.RegistrationWithEvent, error) {
	regs, err := f.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*domain.RegistrationWithEvent
	for _, r := range regs {
		item := &domain.RegistrationWithEvent{Registration: r}
		if f.events != nil {
			if e, err := f.events.GetByID(ctx, r.EventID); err == nil {
				item.Event = e
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeRegistrationRepo) Count(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.regs), nil
}

func (f *fakeRegistrationRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, r := range f.regs {
		if r.ID == id {
			f.regs = append(f.regs[:i], f.regs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeEmailService records confirmation requests.
type fakeEmailService struct {
	sent []*domain.RegistrationConfirmationEmailData
	err  error
}

func (f *fakeEmailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmationEmailData) error {
	f.sent = append(f.sent, data)
	return f.err
}

// fakeCredentials implements domain.CredentialVerifier.
type fakeCredentials struct {
	username, password string
}

func (f *fakeCredentials) Verify(_ context.Context, username, password string) bool {
	return username == f.username && password == f.password
}

// fakeSessionIssuer implements domain.SessionIssuer.
type fakeSessionIssuer struct {
	err error
}

func (f *fakeSessionIssuer) Issue(username string) (string, time.Time, error) {
	if f.err != nil {
		return "", time.Time{}, f.err
	}
	return "session-" + username, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), nil
}

// fakeMailer implements domain.Mailer.
type fakeMailer struct {
	to, subject, html, text string
	err                     error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, html, text string) error {
	f.to, f.subject, f.html, f.text = to, subject, html, text
	return f.err
}

// fakeRenderer implements domain.EmailTemplateRenderer.
type fakeRenderer struct {
	name string
	err  error
}

func (f *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	f.name = templateName
	if f.err != nil {
		return "", "", "", f.err
	}
	return "subject", "<p>html</p>", "text", nil
}
