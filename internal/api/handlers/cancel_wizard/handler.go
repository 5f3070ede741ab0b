package cancel_wizard

import (
	"net/http"

	"github.com/knows-studios/KNS-BookingService/internal/api/handlers"
	"github.com/knows-studios/KNS-BookingService/internal/api/middleware"
)

const (
	msgMissingUserID = "missing user id"
)

type Handler struct {
	service WizardService
	logger  Logger
}

func NewHandler(service WizardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /wizard/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	state, err := h.service.Cancel(r.Context(), userID)
	if err != nil {
		h.logger.Error("POST /wizard/cancel - Failed to reset wizard: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /wizard/cancel - Wizard reset: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, state)
}
