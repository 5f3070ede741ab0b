package domain

import "github.com/knows-studios/KNS-BookingService/pkg/types"

// TimeSlot represents a bookable start time on a given day.
// Availability is static reference data, not computed from reservations.
type TimeSlot struct {
	StartTime types.TimeString
	Available bool
}

// Label returns the human 12-hour label, e.g. "10:00 AM".
func (s TimeSlot) Label() string {
	return s.StartTime.Label12h()
}
