package continue_wizard

import (
	"errors"
	"net/http"

	"github.com/knows-studios/KNS-BookingService/internal/api/handlers"
	"github.com/knows-studios/KNS-BookingService/internal/api/middleware"
	advanceWizard "github.com/knows-studios/KNS-BookingService/internal/usecase/advance_wizard"
)

const (
	msgMissingUserID    = "missing user id"
	msgDateTimeRequired = "select a date and time to continue"
	msgDateNotAvailable = "the selected date is not available"
	msgSlotNotAvailable = "the selected time slot is not available"
	msgContactsRequired = "name, email and phone are required"
)

type Handler struct {
	useCase AdvanceWizardUseCase
	logger  Logger
}

func NewHandler(useCase AdvanceWizardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/continue
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /wizard/continue - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, advanceWizard.ErrDateTimeRequired):
			h.logger.Warn("POST /wizard/continue - Date and time required: user_id=%d", userID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgDateTimeRequired)

		case errors.Is(err, advanceWizard.ErrDateNotAvailable):
			h.logger.Warn("POST /wizard/continue - Date not available: user_id=%d", userID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgDateNotAvailable)

		case errors.Is(err, advanceWizard.ErrSlotNotAvailable):
			h.logger.Warn("POST /wizard/continue - Slot not available: user_id=%d", userID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgSlotNotAvailable)

		case errors.Is(err, advanceWizard.ErrContactDetailsRequired):
			h.logger.Warn("POST /wizard/continue - Contact details required: user_id=%d", userID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgContactsRequired)

		default:
			h.logger.Error("POST /wizard/continue - Failed to advance wizard: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if result.Completed {
		status = http.StatusCreated
		h.logger.Info("POST /wizard/continue - Booking completed: user_id=%d, confirmation=%s",
			userID, result.Booking.ConfirmationNumber)
	} else {
		h.logger.Info("POST /wizard/continue - Advanced to step=%s: user_id=%d", result.State.CurrentStep, userID)
	}
	handlers.RespondJSON(w, status, result)
}
