package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/knows-studios/KNS-BookingService/internal/confirmation"
	bookingRepo "github.com/knows-studios/KNS-BookingService/internal/infra/storage/booking"
	"github.com/knows-studios/KNS-BookingService/internal/service/bookings/models"
)

// Service сервис чтения завершенных бронирований
type Service struct {
	bookingRepo BookingRepository
	studio      confirmation.StudioInfo
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(repo BookingRepository, studio confirmation.StudioInfo, logger Logger) *Service {
	return &Service{
		bookingRepo: repo,
		studio:      studio,
		logger:      logger,
	}
}

// GetByID возвращает бронирование пользователя по идентификатору.
// Чужие бронирования недоступны.
func (s *Service) GetByID(ctx context.Context, userID, bookingID int64) (*models.BookingView, error) {
	record, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if record.UserID != userID {
		s.logger.Warn("GetByID: user=%d tried to read booking=%d owned by user=%d", userID, bookingID, record.UserID)
		return nil, ErrAccessDenied
	}

	return models.FromBookingRecord(record), nil
}

// GetByConfirmationNumber находит бронирование пользователя по номеру
// подтверждения. Чужие бронирования недоступны.
func (s *Service) GetByConfirmationNumber(ctx context.Context, userID int64, number string) (*models.BookingView, error) {
	record, err := s.bookingRepo.GetByConfirmationNumber(ctx, number)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByConfirmationNumber: repository error for number=%s: %v", number, err)
		return nil, fmt.Errorf("%w: GetByConfirmationNumber - repository error: %v", ErrInternal, err)
	}

	if record.UserID != userID {
		s.logger.Warn("GetByConfirmationNumber: user=%d tried to read booking=%d owned by user=%d", userID, record.ID, record.UserID)
		return nil, ErrAccessDenied
	}

	return models.FromBookingRecord(record), nil
}

// GetUserBookings возвращает все бронирования пользователя,
// отсортированные от новых к старым
func (s *Service) GetUserBookings(ctx context.Context, userID int64) ([]models.BookingView, error) {
	records, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	views := make([]models.BookingView, 0, len(records))
	for _, record := range records {
		views = append(views, *models.FromBookingRecord(record))
	}

	return views, nil
}

// ExportConfirmation формирует текстовый файл подтверждения бронирования
func (s *Service) ExportConfirmation(ctx context.Context, userID, bookingID int64) (*models.ExportResult, error) {
	record, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("ExportConfirmation: repository error for booking=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ExportConfirmation - repository error: %v", ErrInternal, err)
	}

	if record.UserID != userID {
		s.logger.Warn("ExportConfirmation: user=%d tried to export booking=%d owned by user=%d", userID, bookingID, record.UserID)
		return nil, ErrAccessDenied
	}

	s.logger.Info("ExportConfirmation: user=%d exported booking=%d (%s)", userID, bookingID, record.ConfirmationNumber)

	return &models.ExportResult{
		Filename: confirmation.ExportFilename(record.ConfirmationNumber),
		Content:  confirmation.RenderText(record, s.studio),
	}, nil
}
