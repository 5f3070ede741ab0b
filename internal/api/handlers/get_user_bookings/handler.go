package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/knows-studios/KNS-BookingService/internal/api/handlers"
	"github.com/knows-studios/KNS-BookingService/internal/api/middleware"
	"github.com/knows-studios/KNS-BookingService/internal/service/bookings"
	"github.com/knows-studios/KNS-BookingService/internal/service/bookings/models"
)

const (
	msgMissingUserID   = "missing user id"
	msgBookingNotFound = "booking not found"
	msgAccessDenied    = "access denied"
)

type BookingsListResponse struct {
	Bookings []models.BookingView `json:"bookings"`
}

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if number := r.URL.Query().Get("confirmation"); number != "" {
		h.handleByConfirmation(w, r, userID, number)
		return
	}

	bookingsList, err := h.service.GetUserBookings(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Retrieved %d bookings: user_id=%d", len(bookingsList), userID)
	handlers.RespondJSON(w, http.StatusOK, BookingsListResponse{Bookings: bookingsList})
}

func (h *Handler) handleByConfirmation(w http.ResponseWriter, r *http.Request, userID int64, number string) {
	view, err := h.service.GetByConfirmationNumber(r.Context(), userID, number)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings - Booking not found: user_id=%d, confirmation=%s", userID, number)
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings - Access denied: user_id=%d, confirmation=%s", userID, number)
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GET /bookings - Failed to find booking: user_id=%d, confirmation=%s, error=%v", userID, number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Retrieved booking by confirmation: user_id=%d, booking_id=%d", userID, view.ID)
	handlers.RespondJSON(w, http.StatusOK, BookingsListResponse{Bookings: []models.BookingView{*view}})
}
