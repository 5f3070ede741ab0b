package get_catalog

import (
	"net/http"

	"github.com/knows-studios/KNS-BookingService/internal/api/handlers"
)

type Handler struct {
	catalog CatalogReader
	logger  Logger
}

func NewHandler(catalog CatalogReader, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response := FromCatalog(h.catalog.Packages(), h.catalog.AddOns(), h.catalog.TimeSlots())

	h.logger.Info("GET /catalog - Catalog retrieved: packages=%d, addons=%d, slots=%d",
		len(response.Packages), len(response.AddOns), len(response.TimeSlots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
