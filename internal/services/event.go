package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eventregistration/internal/domain"
)

// seedEvents is the fixed catalogue inserted into an empty store.
var seedEvents = []struct {
	id       int64
	title    string
	date     string
	location string
}{
	{1, "AI Innovations Summit 2025", "2025-10-05", "AITR Auditorium, Indore"},
	{2, "Web Development Workshop", "2025-10-12", "Online (Zoom)"},
	{3, "Cloud Computing Crash Course", "2025-10-19", "AITR Lab 101"},
	{4, "Mobile App Hackathon", "2025-11-02", "AITR Open Grounds"},
}

// DefaultEvents returns the predefined events used for seeding.
func DefaultEvents() []*domain.Event {
	events := make([]*domain.Event, 0, len(seedEvents))
	for _, s := range seedEvents {
		e, err := domain.NewEvent(s.id, s.title, s.date, s.location)
		if err != nil {
			panic(fmt.Sprintf("invalid seed event %d: %v", s.id, err))
		}
		events = append(events, e)
	}
	return events
}

type eventService struct {
	eventRepo domain.EventRepository
	seed      []*domain.Event
	logger    *slog.Logger
}

// NewEventService creates an EventService that seeds DefaultEvents into an empty store.
func NewEventService(eventRepo domain.EventRepository, logger *slog.Logger) domain.EventService {
	return &eventService{
		eventRepo: eventRepo,
		seed:      DefaultEvents(),
		logger:    logger,
	}
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	e, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

// SeedEventsIfEmpty is idempotent and cheap once the store holds events.
func (s *eventService) SeedEventsIfEmpty(ctx context.Context) error {
	seeded, err := s.eventRepo.SeedIfEmpty(ctx, s.seed)
	if err != nil {
		return fmt.Errorf("seed events: %w", err)
	}
	if seeded {
		s.logger.InfoContext(ctx, "events seeded", "count", len(s.seed))
	}
	return nil
}
