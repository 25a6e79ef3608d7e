package models

import (
	"strings"

	"gorm.io/gorm"
)

// Annotation is an administrative free-text note attached to a bill. History
// rows may accumulate per bill; the newest one is the live annotation.
type Annotation struct {
	DefaultModel
	BillID   int64  `json:"billId" gorm:"index"`
	Content  string `json:"content"`
	AuthorID int64  `json:"authorId"`
}

func (a *Annotation) BeforeSave(tx *gorm.DB) (err error) {
	if err = a.DefaultModel.BeforeSave(tx); err != nil {
		return err
	}

	a.Content = strings.TrimSpace(a.Content)
	return nil
}
