package get_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knows-studios/KNS-BookingService/internal/api/middleware"
	"github.com/knows-studios/KNS-BookingService/internal/service/bookings"
	"github.com/knows-studios/KNS-BookingService/internal/service/bookings/models"
)

type mockBookingService struct {
	getByIDFn func(ctx context.Context, userID, bookingID int64) (*models.BookingView, error)
}

func (m *mockBookingService) GetByID(ctx context.Context, userID, bookingID int64) (*models.BookingView, error) {
	return m.getByIDFn(ctx, userID, bookingID)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newRouter(service BookingService) *mux.Router {
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/bookings/{bookingId}", NewHandler(service, nopLogger{}).Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_Success(t *testing.T) {
	service := &mockBookingService{
		getByIDFn: func(ctx context.Context, userID, bookingID int64) (*models.BookingView, error) {
			assert.Equal(t, int64(10), userID)
			assert.Equal(t, int64(7), bookingID)
			return &models.BookingView{
				ID:                 7,
				ConfirmationNumber: "KS-test1-aaaaa",
				PackageName:        "Full-Day Session",
				TotalPrice:         625,
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/7", nil)
	req.Header.Set(middleware.HeaderUserID, "10")
	rec := httptest.NewRecorder()

	newRouter(service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var view models.BookingView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "KS-test1-aaaaa", view.ConfirmationNumber)
	assert.Equal(t, int64(625), view.TotalPrice)
}

func TestHandle_MissingUserHeader(t *testing.T) {
	service := &mockBookingService{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/7", nil)
	rec := httptest.NewRecorder()

	newRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InvalidBookingID(t *testing.T) {
	service := &mockBookingService{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/abc", nil)
	req.Header.Set(middleware.HeaderUserID, "10")
	rec := httptest.NewRecorder()

	newRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_NotFound(t *testing.T) {
	service := &mockBookingService{
		getByIDFn: func(ctx context.Context, userID, bookingID int64) (*models.BookingView, error) {
			return nil, bookings.ErrBookingNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/7", nil)
	req.Header.Set(middleware.HeaderUserID, "10")
	rec := httptest.NewRecorder()

	newRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_AccessDenied(t *testing.T) {
	service := &mockBookingService{
		getByIDFn: func(ctx context.Context, userID, bookingID int64) (*models.BookingView, error) {
			return nil, bookings.ErrAccessDenied
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/7", nil)
	req.Header.Set(middleware.HeaderUserID, "10")
	rec := httptest.NewRecorder()

	newRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	service := &mockBookingService{
		getByIDFn: func(ctx context.Context, userID, bookingID int64) (*models.BookingView, error) {
			return nil, errors.New("db connection failed")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/7", nil)
	req.Header.Set(middleware.HeaderUserID, "10")
	rec := httptest.NewRecorder()

	newRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
