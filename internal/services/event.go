package services

import (
	"strings"

	"github.com/billfold/backend/internal/models"
	"github.com/billfold/backend/internal/repository"
)

// EventService manages the spending categories bills are tagged with.
type EventService struct {
	events repository.EventRepository
}

func NewEventService(events repository.EventRepository) *EventService {
	return &EventService{events: events}
}

func (s *EventService) QueryByName(name string) (models.Event, bool) {
	if name == "" {
		return models.Event{}, false
	}

	return s.events.FindByName(name)
}

func (s *EventService) QueryByID(id int64) (models.Event, bool) {
	if id <= 0 {
		return models.Event{}, false
	}

	return s.events.FindByID(id)
}

// Create persists a new event. A duplicate name is a hard conflict, not an
// upsert. The status stays Available unless the caller set Frozen.
func (s *EventService) Create(event models.Event) (models.Event, bool) {
	event.Name = strings.TrimSpace(event.Name)
	if event.Name == "" {
		return models.Event{}, false
	}

	if _, ok := s.events.FindByName(event.Name); ok {
		return models.Event{}, false
	}

	event.ID = 0
	if !s.events.Save(&event) {
		return models.Event{}, false
	}

	return event, true
}

// SetStatus flips the availability flag of an existing event. The repository
// update is atomic and re-verifies existence on its own, so a row vanishing
// between the two checks still reports false.
func (s *EventService) SetStatus(id int64, status models.EventStatus) bool {
	if id <= 0 {
		return false
	}

	if _, ok := s.events.FindByID(id); !ok {
		return false
	}

	return s.events.SetStatusByID(id, status)
}
