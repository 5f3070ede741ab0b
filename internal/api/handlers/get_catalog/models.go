package get_catalog

import (
	"github.com/knows-studios/KNS-BookingService/internal/domain"
)

type PackageView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Duration    string   `json:"duration"`
	BasePrice   int64    `json:"basePrice"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Popular     bool     `json:"popular"`
	Luxury      bool     `json:"luxury"`
}

type AddOnView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       int64   `json:"price"`
	Description *string `json:"description,omitempty"`
}

type TimeSlotView struct {
	StartTime string `json:"startTime"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

type CatalogResponse struct {
	Packages  []PackageView  `json:"packages"`
	AddOns    []AddOnView    `json:"addOns"`
	TimeSlots []TimeSlotView `json:"timeSlots"`
}

// FromCatalog преобразует справочные данные каталога в HTTP представление
func FromCatalog(packages []domain.Package, addOns []domain.AddOn, slots []domain.TimeSlot) *CatalogResponse {
	resp := &CatalogResponse{
		Packages:  make([]PackageView, 0, len(packages)),
		AddOns:    make([]AddOnView, 0, len(addOns)),
		TimeSlots: make([]TimeSlotView, 0, len(slots)),
	}

	for _, pkg := range packages {
		features := pkg.Features
		if features == nil {
			features = []string{}
		}
		resp.Packages = append(resp.Packages, PackageView{
			ID:          pkg.ID,
			Name:        pkg.Name,
			Duration:    pkg.Duration,
			BasePrice:   pkg.BasePrice,
			Description: pkg.Description,
			Features:    features,
			Popular:     pkg.Popular,
			Luxury:      pkg.Luxury,
		})
	}

	for _, addOn := range addOns {
		resp.AddOns = append(resp.AddOns, AddOnView{
			ID:          addOn.ID,
			Name:        addOn.Name,
			Price:       addOn.Price,
			Description: addOn.Description,
		})
	}

	for _, slot := range slots {
		resp.TimeSlots = append(resp.TimeSlots, TimeSlotView{
			StartTime: slot.StartTime.String(),
			Label:     slot.Label(),
			Available: slot.Available,
		})
	}

	return resp
}
