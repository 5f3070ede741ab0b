package domain

import (
	"time"

	"github.com/knows-studios/KNS-BookingService/pkg/types"
)

// BookingRecord is the finalized output of the booking wizard.
// It is a flattened, denormalized snapshot: display names instead of ids,
// computed totals, a generated confirmation number. Created once at wizard
// completion and immutable thereafter.
type BookingRecord struct {
	ID                 int64
	UserID             int64
	ConfirmationNumber string

	BookingDate time.Time
	StartTime   types.TimeString

	PackageName     string
	PackageDuration string
	AddOnNames      []string

	TotalPrice int64 // package base price + selected add-on prices
	DepositDue int64 // half-up rounded TotalPrice * deposit rate

	CustomerName       string
	CustomerEmail      string
	CustomerPhone      string
	ProjectDescription *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Remainder returns the part of the total due after the deposit
func (b *BookingRecord) Remainder() int64 {
	return b.TotalPrice - b.DepositDue
}
