package models

import (
	"strings"

	"gorm.io/gorm"
)

// EventStatus gates whether new bills may reference an event. The policy is
// enforced by the bill service, not by storage.
type EventStatus int

const (
	EventAvailable EventStatus = iota
	EventFrozen
)

// Event represents a spending category that bills are tagged with.
type Event struct {
	DefaultModel
	Name   string      `json:"name" gorm:"uniqueIndex"`
	Status EventStatus `json:"status"`
}

// BeforeSave trims whitespace from the name.
func (e *Event) BeforeSave(tx *gorm.DB) (err error) {
	if err = e.DefaultModel.BeforeSave(tx); err != nil {
		return err
	}

	e.Name = strings.TrimSpace(e.Name)
	return nil
}
