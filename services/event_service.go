package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/models"
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/repositories"
)

type CreateEventInput struct {
	Name string
	Desc string
	URL  string
}

type EventService interface {
	Create(ctx context.Context, input CreateEventInput) (*models.Event, error)
	List(ctx context.Context) ([]models.Event, error)
	Delete(ctx context.Context, eventID string) error
}

type eventService struct {
	eventRepo repositories.EventRepository
}

func NewEventService(eventRepo repositories.EventRepository) EventService {
	return &eventService{eventRepo: eventRepo}
}

func (s *eventService) Create(ctx context.Context, input CreateEventInput) (*models.Event, error) {
	if input.Name == "" {
		return nil, ErrEventNameRequired
	}

	event := &models.Event{
		Name: input.Name,
		Desc: input.Desc,
		URL:  input.URL,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context) ([]models.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// Delete removes an event by identifier. Deleting an unknown identifier
// reports not-found rather than completing as a no-op.
func (s *eventService) Delete(ctx context.Context, eventID string) error {
	id, err := parseID(eventID)
	if err != nil {
		return err
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
