package catalog

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/knows-studios/KNS-BookingService/internal/domain"
	"github.com/knows-studios/KNS-BookingService/pkg/types"
)

var (
	// ErrLoadFile возвращается при ошибке чтения или разбора файла каталога
	ErrLoadFile = errors.New("catalog: failed to load catalog file")

	// ErrInvalidCatalog возвращается при некорректном содержимом каталога
	ErrInvalidCatalog = errors.New("catalog: invalid catalog data")
)

// Файловое представление каталога (catalog.toml)

type filePackage struct {
	ID          string   `toml:"id"`
	Name        string   `toml:"name"`
	Duration    string   `toml:"duration"`
	BasePrice   int64    `toml:"base_price"`
	Description string   `toml:"description"`
	Features    []string `toml:"features"`
	Popular     bool     `toml:"popular"`
	Luxury      bool     `toml:"luxury"`
}

type fileAddOn struct {
	ID          string  `toml:"id"`
	Name        string  `toml:"name"`
	Price       int64   `toml:"price"`
	Description *string `toml:"description"`
}

type fileTimeSlot struct {
	Start     string `toml:"start"`
	Available bool   `toml:"available"`
}

type fileCatalog struct {
	Packages  []filePackage  `toml:"packages"`
	AddOns    []fileAddOn    `toml:"addons"`
	TimeSlots []fileTimeSlot `toml:"timeslots"`
}

// LoadFile загружает каталог из TOML файла
func LoadFile(path string) (*Catalog, error) {
	var raw fileCatalog
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFile, path, err)
	}

	if len(raw.Packages) == 0 {
		return nil, fmt.Errorf("%w: no packages defined", ErrInvalidCatalog)
	}

	packages := make([]domain.Package, 0, len(raw.Packages))
	seenPackages := make(map[string]struct{}, len(raw.Packages))
	for _, p := range raw.Packages {
		if p.ID == "" || p.Name == "" {
			return nil, fmt.Errorf("%w: package id and name are required", ErrInvalidCatalog)
		}
		if p.BasePrice < 0 {
			return nil, fmt.Errorf("%w: package %q has negative base price", ErrInvalidCatalog, p.ID)
		}
		if _, ok := seenPackages[p.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate package id %q", ErrInvalidCatalog, p.ID)
		}
		seenPackages[p.ID] = struct{}{}

		packages = append(packages, domain.Package{
			ID:          p.ID,
			Name:        p.Name,
			Duration:    p.Duration,
			BasePrice:   p.BasePrice,
			Description: p.Description,
			Features:    p.Features,
			Popular:     p.Popular,
			Luxury:      p.Luxury,
		})
	}

	// Пакет по умолчанию обязан существовать: инвариант "всегда есть выбранный пакет"
	if _, ok := seenPackages[domain.DefaultPackageID]; !ok {
		return nil, fmt.Errorf("%w: default package %q is missing", ErrInvalidCatalog, domain.DefaultPackageID)
	}

	addOns := make([]domain.AddOn, 0, len(raw.AddOns))
	seenAddOns := make(map[string]struct{}, len(raw.AddOns))
	for _, a := range raw.AddOns {
		if a.ID == "" || a.Name == "" {
			return nil, fmt.Errorf("%w: addon id and name are required", ErrInvalidCatalog)
		}
		if a.Price < 0 {
			return nil, fmt.Errorf("%w: addon %q has negative price", ErrInvalidCatalog, a.ID)
		}
		if _, ok := seenAddOns[a.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate addon id %q", ErrInvalidCatalog, a.ID)
		}
		seenAddOns[a.ID] = struct{}{}

		addOns = append(addOns, domain.AddOn{
			ID:          a.ID,
			Name:        a.Name,
			Price:       a.Price,
			Description: a.Description,
		})
	}

	timeSlots := make([]domain.TimeSlot, 0, len(raw.TimeSlots))
	for _, s := range raw.TimeSlots {
		start, err := types.NewTimeStringFromString(s.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid slot start %q: %v", ErrInvalidCatalog, s.Start, err)
		}
		timeSlots = append(timeSlots, domain.TimeSlot{
			StartTime: start,
			Available: s.Available,
		})
	}

	return New(packages, addOns, timeSlots), nil
}
