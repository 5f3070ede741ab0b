package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knows-studios/KNS-BookingService/internal/confirmation"
	"github.com/knows-studios/KNS-BookingService/internal/domain"
	bookingRepo "github.com/knows-studios/KNS-BookingService/internal/infra/storage/booking"
	"github.com/knows-studios/KNS-BookingService/pkg/types"
)

type mockRepo struct {
	getByIDFn     func(ctx context.Context, id int64) (*domain.BookingRecord, error)
	getByNumberFn func(ctx context.Context, number string) (*domain.BookingRecord, error)
	getByUserFn   func(ctx context.Context, userID int64) ([]*domain.BookingRecord, error)
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.BookingRecord, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockRepo) GetByConfirmationNumber(ctx context.Context, number string) (*domain.BookingRecord, error) {
	return m.getByNumberFn(ctx, number)
}

func (m *mockRepo) GetByUserID(ctx context.Context, userID int64) ([]*domain.BookingRecord, error) {
	return m.getByUserFn(ctx, userID)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func sampleRecord() *domain.BookingRecord {
	start, _ := types.NewTimeStringFromString("10:00")
	return &domain.BookingRecord{
		ID:                 7,
		UserID:             10,
		ConfirmationNumber: "KS-test1-aaaaa",
		BookingDate:        time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC),
		StartTime:          start,
		PackageName:        "Half-Day Session",
		PackageDuration:    "4 hours",
		AddOnNames:         []string{"Backdrop Pack"},
		TotalPrice:         295,
		DepositDue:         89,
		CustomerName:       "Jordan Avery",
		CustomerEmail:      "jordan@example.com",
		CustomerPhone:      "(404) 555-0101",
		CreatedAt:          time.Date(2026, time.September, 1, 9, 30, 0, 0, time.UTC),
	}
}

func newTestService(repo BookingRepository) *Service {
	studio := confirmation.StudioInfo{
		Name:  "KNOWS STUDIOS",
		Email: "bookings@knowsstudios.com",
	}
	return NewService(repo, studio, nopLogger{})
}

func TestGetByID_Success(t *testing.T) {
	repo := &mockRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.BookingRecord, error) {
			return sampleRecord(), nil
		},
	}

	view, err := newTestService(repo).GetByID(context.Background(), 10, 7)
	require.NoError(t, err)

	assert.Equal(t, "KS-test1-aaaaa", view.ConfirmationNumber)
	assert.Equal(t, "2026-09-14", view.BookingDate)
	assert.Equal(t, "10:00 AM", view.StartTimeLabel)
	assert.Equal(t, int64(206), view.BalanceDue)
}

func TestGetByID_OtherUsersBookingDenied(t *testing.T) {
	repo := &mockRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.BookingRecord, error) {
			return sampleRecord(), nil
		},
	}

	_, err := newTestService(repo).GetByID(context.Background(), 99, 7)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.BookingRecord, error) {
			return nil, bookingRepo.ErrBookingNotFound
		},
	}

	_, err := newTestService(repo).GetByID(context.Background(), 10, 404)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByConfirmationNumber(t *testing.T) {
	repo := &mockRepo{
		getByNumberFn: func(ctx context.Context, number string) (*domain.BookingRecord, error) {
			require.Equal(t, "KS-test1-aaaaa", number)
			return sampleRecord(), nil
		},
	}

	view, err := newTestService(repo).GetByConfirmationNumber(context.Background(), 10, "KS-test1-aaaaa")
	require.NoError(t, err)

	assert.Equal(t, int64(7), view.ID)
}

func TestGetByConfirmationNumber_OtherUsersBookingDenied(t *testing.T) {
	repo := &mockRepo{
		getByNumberFn: func(ctx context.Context, number string) (*domain.BookingRecord, error) {
			return sampleRecord(), nil
		},
	}

	_, err := newTestService(repo).GetByConfirmationNumber(context.Background(), 99, "KS-test1-aaaaa")

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserBookings(t *testing.T) {
	repo := &mockRepo{
		getByUserFn: func(ctx context.Context, userID int64) ([]*domain.BookingRecord, error) {
			return []*domain.BookingRecord{sampleRecord()}, nil
		},
	}

	views, err := newTestService(repo).GetUserBookings(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, views, 1)
	assert.Equal(t, int64(7), views[0].ID)
}

func TestGetUserBookings_RepoError(t *testing.T) {
	repo := &mockRepo{
		getByUserFn: func(ctx context.Context, userID int64) ([]*domain.BookingRecord, error) {
			return nil, errors.New("db connection failed")
		},
	}

	_, err := newTestService(repo).GetUserBookings(context.Background(), 10)

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExportConfirmation(t *testing.T) {
	repo := &mockRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.BookingRecord, error) {
			return sampleRecord(), nil
		},
	}

	result, err := newTestService(repo).ExportConfirmation(context.Background(), 10, 7)
	require.NoError(t, err)

	assert.Equal(t, "KNOWS-STUDIOS-Confirmation-KS-test1-aaaaa.txt", result.Filename)
	assert.Contains(t, result.Content, "BOOKING CONFIRMATION")
	assert.Contains(t, result.Content, "KS-test1-aaaaa")
	assert.Contains(t, result.Content, "Half-Day Session (4 hours)")
}

func TestExportConfirmation_OwnershipEnforced(t *testing.T) {
	repo := &mockRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.BookingRecord, error) {
			return sampleRecord(), nil
		},
	}

	_, err := newTestService(repo).ExportConfirmation(context.Background(), 99, 7)

	assert.ErrorIs(t, err, ErrAccessDenied)
}
