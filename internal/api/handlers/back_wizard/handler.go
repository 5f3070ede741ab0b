package back_wizard

import (
	"errors"
	"net/http"

	"github.com/knows-studios/KNS-BookingService/internal/api/handlers"
	"github.com/knows-studios/KNS-BookingService/internal/api/middleware"
	"github.com/knows-studios/KNS-BookingService/internal/service/wizard"
)

const (
	msgMissingUserID  = "missing user id"
	msgAlreadyAtFirst = "already at the first step"
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

// Handle POST /api/v1/wizard/back
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /wizard/back - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	state, err := h.service.Back(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrAlreadyAtFirstStep):
			h.logger.Warn("POST /wizard/back - Already at first step: user_id=%d", userID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyAtFirst)

		default:
			h.logger.Error("POST /wizard/back - Failed to step back: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/back - Moved to step=%s: user_id=%d", state.CurrentStep, userID)
	handlers.RespondJSON(w, http.StatusOK, state)
}
