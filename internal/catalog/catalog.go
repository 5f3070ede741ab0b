package catalog

import (
	"github.com/knows-studios/KNS-BookingService/internal/domain"
	"github.com/knows-studios/KNS-BookingService/pkg/types"
)

// Catalog хранит справочные данные студии: пакеты, допуслуги и временные слоты.
// Заполняется один раз при старте процесса и далее только читается,
// поэтому безопасен для конкурентного доступа без блокировок.
type Catalog struct {
	packages  []domain.Package
	addOns    []domain.AddOn
	timeSlots []domain.TimeSlot

	packageByID map[string]domain.Package
	addOnByID   map[string]domain.AddOn
}

// New создает каталог из готовых справочных данных
func New(packages []domain.Package, addOns []domain.AddOn, timeSlots []domain.TimeSlot) *Catalog {
	c := &Catalog{
		packages:    packages,
		addOns:      addOns,
		timeSlots:   timeSlots,
		packageByID: make(map[string]domain.Package, len(packages)),
		addOnByID:   make(map[string]domain.AddOn, len(addOns)),
	}

	for _, p := range packages {
		c.packageByID[p.ID] = p
	}
	for _, a := range addOns {
		c.addOnByID[a.ID] = a
	}

	return c
}

// Packages returns all packages in catalog order
func (c *Catalog) Packages() []domain.Package {
	return c.packages
}

// AddOns returns all add-ons in catalog order
func (c *Catalog) AddOns() []domain.AddOn {
	return c.addOns
}

// TimeSlots returns all time slots in catalog order
func (c *Catalog) TimeSlots() []domain.TimeSlot {
	return c.timeSlots
}

// PackageByID looks up a package by id
func (c *Catalog) PackageByID(id string) (domain.Package, bool) {
	p, ok := c.packageByID[id]
	return p, ok
}

// AddOnByID looks up an add-on by id
func (c *Catalog) AddOnByID(id string) (domain.AddOn, bool) {
	a, ok := c.addOnByID[id]
	return a, ok
}

// SlotByStartTime looks up a time slot by its start time
func (c *Catalog) SlotByStartTime(start types.TimeString) (domain.TimeSlot, bool) {
	for _, slot := range c.timeSlots {
		if slot.StartTime == start {
			return slot, true
		}
	}
	return domain.TimeSlot{}, false
}

// Default возвращает встроенный каталог KNOWS STUDIOS.
// Используется, когда путь к файлу каталога не задан в конфигурации.
func Default() *Catalog {
	return New(defaultPackages(), defaultAddOns(), defaultTimeSlots())
}

func defaultPackages() []domain.Package {
	return []domain.Package{
		{
			ID:          "2-hour",
			Name:        "2-Hour Session",
			Duration:    "2 hours",
			BasePrice:   150,
			Description: "A focused two-hour session for headshots, product shots and quick content.",
			Features: []string{
				"Main studio space",
				"Basic lighting kit",
				"Changing room access",
			},
		},
		{
			ID:          "half-day",
			Name:        "Half-Day Session",
			Duration:    "4 hours",
			BasePrice:   250,
			Description: "Four hours of studio time for editorial shoots and small productions.",
			Features: []string{
				"Main studio space",
				"Full lighting kit",
				"Backdrop selection",
				"Changing room access",
			},
			Popular: true,
		},
		{
			ID:          "full-day",
			Name:        "Full-Day Session",
			Duration:    "8 hours",
			BasePrice:   450,
			Description: "The whole day in the studio for campaigns, lookbooks and video production.",
			Features: []string{
				"Main studio space",
				"Full lighting kit",
				"Backdrop selection",
				"Changing room access",
				"Client lounge",
			},
		},
		{
			ID:          "cinema-pro",
			Name:        "Cinema Pro Production",
			Duration:    "10 hours",
			BasePrice:   900,
			Description: "Full-day cinema package with cyclorama wall and production support.",
			Features: []string{
				"Cyclorama stage",
				"Cinema lighting rig",
				"Production support crew",
				"Client lounge",
				"Secure equipment storage",
			},
			Luxury: true,
		},
	}
}

func defaultAddOns() []domain.AddOn {
	describe := func(s string) *string { return &s }

	return []domain.AddOn{
		{
			ID:          "premium-lighting",
			Name:        "Premium Lighting Package",
			Price:       75,
			Description: describe("Upgraded strobe and continuous lighting package."),
		},
		{
			ID:          "studio-assistant",
			Name:        "Studio Assistant",
			Price:       100,
			Description: describe("A dedicated assistant for the whole booking."),
		},
		{
			ID:          "equipment-rental",
			Name:        "Equipment Rental",
			Price:       120,
			Description: describe("Camera bodies, lenses and grip from the house inventory."),
		},
		{
			ID:    "backdrop-pack",
			Name:  "Backdrop Pack",
			Price: 45,
		},
		{
			ID:          "same-day-editing",
			Name:        "Same-Day Editing",
			Price:       200,
			Description: describe("An editor on site delivering selects by end of day."),
		},
	}
}

func defaultTimeSlots() []domain.TimeSlot {
	return []domain.TimeSlot{
		{StartTime: types.TimeString("08:00"), Available: true},
		{StartTime: types.TimeString("10:00"), Available: true},
		{StartTime: types.TimeString("12:00"), Available: false},
		{StartTime: types.TimeString("14:00"), Available: true},
		{StartTime: types.TimeString("16:00"), Available: true},
		{StartTime: types.TimeString("18:00"), Available: false},
	}
}
