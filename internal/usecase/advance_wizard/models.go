package advance_wizard

import (
	bookingmodels "github.com/knows-studios/KNS-BookingService/internal/service/bookings/models"
	wizardmodels "github.com/knows-studios/KNS-BookingService/internal/service/wizard/models"
)

// Response результат продвижения мастера на следующий шаг.
//
// При Completed=true заполнены Booking и параметры перехода на внешнюю
// платформу, а State описывает уже сброшенный мастер.
type Response struct {
	Completed            bool                         `json:"completed"`
	State                *wizardmodels.WizardResponse `json:"state"`
	Booking              *bookingmodels.BookingView   `json:"booking,omitempty"`
	RedirectURL          string                       `json:"redirectUrl,omitempty"`
	RedirectDelaySeconds int                          `json:"redirectDelaySeconds,omitempty"`
}
