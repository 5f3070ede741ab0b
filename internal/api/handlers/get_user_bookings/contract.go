package get_user_bookings

import (
	"context"

	"github.com/knows-studios/KNS-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetUserBookings(ctx context.Context, userID int64) ([]models.BookingView, error)
	GetByConfirmationNumber(ctx context.Context, userID int64, number string) (*models.BookingView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
