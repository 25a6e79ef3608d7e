// Package repository is the sole gateway to durable storage. Every method is
// total: storage failures are logged and collapsed into absent or empty
// results, so the service layer never sees a driver error.
package repository

import (
	"time"

	"github.com/billfold/backend/internal/models"
	"github.com/shopspring/decimal"
)

// UserRepository persists User records.
type UserRepository interface {
	// Save inserts when the id is zero, assigning the surrogate id through
	// the pointer, and performs a full-row update otherwise.
	Save(u *models.User) bool
	FindByID(id int64) (models.User, bool)
	QueryByPhone(phone string) (models.User, bool)
	QueryByPhonePartial(partial string) []models.User
	SetBalanceByPhone(phone string, balance decimal.Decimal) bool
}

// EventRepository persists Event records.
type EventRepository interface {
	Save(e *models.Event) bool
	FindByID(id int64) (models.Event, bool)
	FindByName(name string) (models.Event, bool)
	// SetStatusByID issues a single atomic update and reports whether a row
	// was changed, so it holds even when the row vanished after a caller's
	// existence check.
	SetStatusByID(id int64, status models.EventStatus) bool
}

// AnnotationRepository persists Annotation records.
type AnnotationRepository interface {
	Save(a *models.Annotation) bool
	FindByID(id int64) (models.Annotation, bool)
	FindByBillID(billID int64) []models.Annotation
	FindByAuthorID(authorID int64) []models.Annotation
	RemoveByBillID(billID int64) bool
}

// BillRepository persists Bill records and resolves their read-time
// Event and Annotation snapshots.
type BillRepository interface {
	Save(b *models.Bill) bool
	// FindByID embeds the referenced event and, when the bill is flagged,
	// its newest annotation. A missing event leaves the embedded value
	// empty instead of failing the lookup.
	FindByID(id int64) (models.Bill, bool)
	QueryByOwnerAndEvent(ownerID, eventID int64) []models.Bill
	QueryByEventName(name string) []models.Bill
	QueryByTime(ownerID int64, from, to time.Time) []models.Bill
	QueryByTimeRange(from, to time.Time) []models.Bill
	QueryByTimeInOrder(from, to time.Time) []models.Bill
	QueryByTimeAndEventInOrder(from, to time.Time) []models.Bill
	QueryByPhone(phone string) []models.Bill
	SumByTime(from, to time.Time) decimal.Decimal
	// SaveAnnotated persists the annotation and then the bill inside one
	// transaction. The annotation row is durable strictly before the bill
	// row is updated.
	SaveAnnotated(b *models.Bill, a *models.Annotation) bool
	// Remove deletes the bill and its annotations. A missing row counts
	// as success.
	Remove(id int64) bool
}
