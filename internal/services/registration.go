package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventregistration/internal/domain"
	"eventregistration/internal/validation"
)

type registrationService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	emailService     domain.EmailService
	logger           *slog.Logger
	now              func() time.Time
}

// NewRegistrationService creates a RegistrationService. emailService may be nil to skip confirmation emails.
func NewRegistrationService(
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.RegistrationService {
	return &registrationService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		emailService:     emailService,
		logger:           logger,
		now:              time.Now,
	}
}

func (s *registrationService) Register(ctx context.Context, eventID int64, in domain.RegistrationInput) (*domain.Registration, error) {
	fields, fieldErrs := validation.ValidateRegistration(in)
	if fieldErrs != nil {
		return nil, fieldErrs
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	reg := domain.NewRegistration(fields, event.ID, s.now().UTC())
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) || errors.Is(err, domain.ErrEventNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.sendConfirmation(ctx, reg, event)
	return reg, nil
}

// sendConfirmation never fails the registration; delivery problems are only logged.
func (s *registrationService) sendConfirmation(ctx context.Context, reg *domain.Registration, event *domain.Event) {
	if s.emailService == nil {
		return
	}
	err := s.emailService.SendRegistrationConfirmation(ctx, &domain.RegistrationConfirmationEmailData{
		Email:         reg.Email,
		Name:          reg.Name,
		EventTitle:    event.Title,
		EventDate:     event.FormattedDate(),
		EventLocation: event.Location,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "confirmation email failed", "registration_id", reg.ID, "err", err)
	}
}

func (s *registrationService) ListRegistrations(ctx context.Context) ([]*domain.RegistrationWithEvent, error) {
	items, err := s.registrationRepo.ListWithEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	if items == nil {
		items = []*domain.RegistrationWithEvent{}
	}
	return items, nil
}

func (s *registrationService) DeleteRegistration(ctx context.Context, id int64) error {
	if err := s.registrationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete registration: %w", err)
	}
	return nil
}
