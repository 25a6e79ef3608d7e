package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultModel is the base model for all entities. An ID of zero marks a
// record that has not been persisted yet; the repository assigns the
// surrogate id on first save.
type DefaultModel struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// BeforeSave normalizes the timestamp to UTC. The driver serializes
// timestamps as naive wall-clock text, so they have to be in UTC before
// they hit the table or range queries compare across timezones.
func (m *DefaultModel) BeforeSave(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	return nil
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	return nil
}
