package get_availability

import (
	"github.com/knows-studios/KNS-BookingService/internal/domain"
)

type TimeSlotView struct {
	StartTime string `json:"startTime"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

type AvailabilityResponse struct {
	Date      string         `json:"date"`
	Bookable  bool           `json:"bookable"`
	TimeSlots []TimeSlotView `json:"timeSlots"`
}

// FromSlots собирает ответ о доступности даты.
// Для недоступной даты все слоты отдаются занятыми.
func FromSlots(date string, bookable bool, slots []domain.TimeSlot) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		Date:      date,
		Bookable:  bookable,
		TimeSlots: make([]TimeSlotView, 0, len(slots)),
	}

	for _, slot := range slots {
		resp.TimeSlots = append(resp.TimeSlots, TimeSlotView{
			StartTime: slot.StartTime.String(),
			Label:     slot.Label(),
			Available: bookable && slot.Available,
		})
	}

	return resp
}
