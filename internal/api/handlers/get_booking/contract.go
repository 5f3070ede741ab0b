package get_booking

import (
	"context"

	"github.com/knows-studios/KNS-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, userID, bookingID int64) (*models.BookingView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
