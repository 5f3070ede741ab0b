package models

import (
	"github.com/knows-studios/KNS-BookingService/internal/domain"
	"github.com/knows-studios/KNS-BookingService/internal/pricing"
)

// Request модели

// UpdateWizardRequest запрос на изменение выбора в мастере.
// nil поле - "не менять", непустое значение - установить.
// Пустая строка в selectedDate/selectedTimeSlot очищает выбор.
type UpdateWizardRequest struct {
	SelectedDate     *string             `json:"selectedDate,omitempty"`     // YYYY-MM-DD
	SelectedTimeSlot *string             `json:"selectedTimeSlot,omitempty"` // HH:MM
	SelectedPackage  *string             `json:"selectedPackage,omitempty"`
	SelectedAddOns   *[]string           `json:"selectedAddOns,omitempty"`
	BookingData      *BookingDataRequest `json:"bookingData,omitempty"`
}

// BookingDataRequest контактные данные клиента
type BookingDataRequest struct {
	Name               *string `json:"name,omitempty"`
	Email              *string `json:"email,omitempty"`
	Phone              *string `json:"phone,omitempty"`
	ProjectDescription *string `json:"projectDescription,omitempty"`
}

// Response модели

// WizardResponse текущее состояние мастера бронирования
type WizardResponse struct {
	CurrentStep           string          `json:"currentStep"`
	SelectedDate          *string         `json:"selectedDate,omitempty"`          // "2026-03-14"
	SelectedTimeSlot      *string         `json:"selectedTimeSlot,omitempty"`      // "10:00"
	SelectedTimeSlotLabel *string         `json:"selectedTimeSlotLabel,omitempty"` // "10:00 AM"
	SelectedPackage       string          `json:"selectedPackage"`
	SelectedAddOns        []string        `json:"selectedAddOns"`
	BookingData           BookingDataView `json:"bookingData"`
	Quote                 QuoteView       `json:"quote"`
}

// BookingDataView контактные данные клиента
type BookingDataView struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	ProjectDescription string `json:"projectDescription"`
}

// QuoteView расчет стоимости для текущего выбора
type QuoteView struct {
	Total   int64 `json:"total"`
	Deposit int64 `json:"deposit"`
}

// Методы конвертации

// FromWizardState конвертирует доменное состояние мастера в DTO
func FromWizardState(state *domain.WizardState, quote pricing.Quote) *WizardResponse {
	resp := &WizardResponse{
		CurrentStep:     string(state.CurrentStep),
		SelectedPackage: state.SelectedPackageID,
		SelectedAddOns:  state.SelectedAddOnIDs,
		BookingData: BookingDataView{
			Name:               state.Contact.Name,
			Email:              state.Contact.Email,
			Phone:              state.Contact.Phone,
			ProjectDescription: state.Contact.ProjectDescription,
		},
		Quote: QuoteView{
			Total:   quote.Total,
			Deposit: quote.Deposit,
		},
	}

	if resp.SelectedAddOns == nil {
		resp.SelectedAddOns = []string{}
	}

	if state.SelectedDate != nil {
		date := state.SelectedDate.Format(domain.DateFormat)
		resp.SelectedDate = &date
	}

	if state.SelectedSlot != nil {
		slot := state.SelectedSlot.String()
		label := state.SelectedSlot.Label12h()
		resp.SelectedTimeSlot = &slot
		resp.SelectedTimeSlotLabel = &label
	}

	return resp
}
