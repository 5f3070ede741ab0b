package domain

// Package represents a bookable studio offering.
// Reference data: created at process start, never mutated.
type Package struct {
	ID          string
	Name        string
	Duration    string // human duration label, e.g. "8 hours"
	BasePrice   int64  // integer currency units
	Description string
	Features    []string
	Popular     bool
	Luxury      bool
}

// AddOn represents an optional paid extra attached to a base package.
// Reference data: created at process start, never mutated.
type AddOn struct {
	ID          string
	Name        string
	Price       int64 // integer currency units
	Description *string
}
