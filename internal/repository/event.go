package repository

import (
	"errors"

	"github.com/billfold/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type events struct {
	db *gorm.DB
}

// NewEventRepository returns an EventRepository backed by db.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &events{db: db}
}

func (r *events) Save(e *models.Event) bool {
	var err error
	if e.ID == 0 {
		err = r.db.Create(e).Error
	} else {
		err = r.db.Save(e).Error
	}

	if err != nil {
		log.Error().Err(err).Int64("id", e.ID).Msg("saving event failed")
		return false
	}

	return true
}

func (r *events) FindByID(id int64) (models.Event, bool) {
	if id <= 0 {
		return models.Event{}, false
	}

	var event models.Event
	err := r.db.First(&event, id).Error
	if err != nil {
		if !errors.Is(err, models.ErrResourceNotFound) {
			log.Error().Err(err).Int64("id", id).Msg("loading event failed")
		}
		return models.Event{}, false
	}

	return event, true
}

func (r *events) FindByName(name string) (models.Event, bool) {
	if name == "" {
		return models.Event{}, false
	}

	var event models.Event
	err := r.db.Where(&models.Event{Name: name}).First(&event).Error
	if err != nil {
		if !errors.Is(err, models.ErrResourceNotFound) {
			log.Error().Err(err).Str("name", name).Msg("loading event by name failed")
		}
		return models.Event{}, false
	}

	return event, true
}

func (r *events) SetStatusByID(id int64, status models.EventStatus) bool {
	if id <= 0 {
		return false
	}

	// A single UPDATE keyed on the primary key: a row that vanished since
	// the caller's existence check affects zero rows and reports false.
	res := r.db.Model(&models.Event{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		log.Error().Err(res.Error).Int64("id", id).Msg("updating event status failed")
		return false
	}

	return res.RowsAffected > 0
}
