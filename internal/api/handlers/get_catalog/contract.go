package get_catalog

import (
	"github.com/knows-studios/KNS-BookingService/internal/domain"
)

type CatalogReader interface {
	Packages() []domain.Package
	AddOns() []domain.AddOn
	TimeSlots() []domain.TimeSlot
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
