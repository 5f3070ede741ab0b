package get_wizard

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

// Handle GET /api/v1/wizard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /wizard - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	state, err := h.service.Get(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /wizard - Failed to load wizard state: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /wizard - State retrieved: user_id=%d, step=%s", userID, state.CurrentStep)
	handlers.RespondJSON(w, http.StatusOK, state)
}
