package get_availability

import (
	"time"

	"github.com/knows-studios/KNS-BookingService/internal/domain"
)

type CatalogReader interface {
	TimeSlots() []domain.TimeSlot
}

type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальная реализация TimeProvider
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
