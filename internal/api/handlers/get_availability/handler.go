package get_availability

import (
	"net/http"
	"time"

	"github.com/knows-studios/KNS-BookingService/internal/api/handlers"
	"github.com/knows-studios/KNS-BookingService/internal/availability"
	"github.com/knows-studios/KNS-BookingService/internal/domain"
)

const (
	msgMissingDate = "query parameter date is required"
	msgInvalidDate = "date must be in YYYY-MM-DD format"
)

type Handler struct {
	catalog      CatalogReader
	blocklist    availability.Blocklist
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(catalog CatalogReader, blocklist availability.Blocklist, timeProvider TimeProvider, logger Logger) *Handler {
	return &Handler{
		catalog:      catalog,
		blocklist:    blocklist,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Handle GET /api/v1/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		h.logger.Warn("GET /availability - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date %q: %v", raw, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	bookable := availability.IsBookable(date, h.timeProvider.Now(), h.blocklist)
	response := FromSlots(raw, bookable, h.catalog.TimeSlots())

	h.logger.Info("GET /availability - date=%s bookable=%t", raw, bookable)
	handlers.RespondJSON(w, http.StatusOK, response)
}
