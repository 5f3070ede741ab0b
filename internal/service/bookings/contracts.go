package bookings

import (
	"context"

	"github.com/knows-studios/KNS-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingRecord, error)
	GetByConfirmationNumber(ctx context.Context, number string) (*domain.BookingRecord, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.BookingRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
