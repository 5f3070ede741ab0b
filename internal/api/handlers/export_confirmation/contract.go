package export_confirmation

import (
	"context"

	"github.com/knows-studios/KNS-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	ExportConfirmation(ctx context.Context, userID, bookingID int64) (*models.ExportResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
