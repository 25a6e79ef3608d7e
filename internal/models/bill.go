package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bill is a single spending record. Event and Annotation are read-time
// snapshots resolved by the repository on lookup, not persisted columns —
// the authoritative rows live in their own tables.
type Bill struct {
	DefaultModel
	OwnerID       int64           `json:"ownerId" gorm:"index"` // Immutable after creation
	EventID       int64           `json:"eventId" gorm:"index"` // 0 when the bill is uncategorized
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"` // Strictly positive
	HasAnnotation bool            `json:"hasAnnotation"`
	Event         Event           `json:"event" gorm:"-"`
	Annotation    Annotation      `json:"annotation" gorm:"-"`
}

// BeforeSave trims whitespace from string fields.
func (b *Bill) BeforeSave(tx *gorm.DB) (err error) {
	if err = b.DefaultModel.BeforeSave(tx); err != nil {
		return err
	}

	b.Description = strings.TrimSpace(b.Description)
	return nil
}
