package models

import (
	"github.com/knows-studios/KNS-BookingService/internal/domain"
)

// BookingView представление бронирования для клиента
type BookingView struct {
	ID                 int64    `json:"id"`
	ConfirmationNumber string   `json:"confirmationNumber"`
	BookingDate        string   `json:"bookingDate"`
	StartTime          string   `json:"startTime"`
	StartTimeLabel     string   `json:"startTimeLabel"`
	PackageName        string   `json:"packageName"`
	PackageDuration    string   `json:"packageDuration"`
	AddOnNames         []string `json:"addOnNames"`
	TotalPrice         int64    `json:"totalPrice"`
	DepositDue         int64    `json:"depositDue"`
	BalanceDue         int64    `json:"balanceDue"`
	CustomerName       string   `json:"customerName"`
	CustomerEmail      string   `json:"customerEmail"`
	CustomerPhone      string   `json:"customerPhone"`
	ProjectDescription *string  `json:"projectDescription,omitempty"`
	CreatedAt          string   `json:"createdAt"`
}

// ExportResult результат экспорта подтверждения в текстовый файл
type ExportResult struct {
	Filename string
	Content  string
}

// FromBookingRecord преобразует доменную запись в представление
func FromBookingRecord(record *domain.BookingRecord) *BookingView {
	addOns := record.AddOnNames
	if addOns == nil {
		addOns = []string{}
	}

	return &BookingView{
		ID:                 record.ID,
		ConfirmationNumber: record.ConfirmationNumber,
		BookingDate:        record.BookingDate.Format(domain.DateFormat),
		StartTime:          record.StartTime.String(),
		StartTimeLabel:     record.StartTime.Label12h(),
		PackageName:        record.PackageName,
		PackageDuration:    record.PackageDuration,
		AddOnNames:         addOns,
		TotalPrice:         record.TotalPrice,
		DepositDue:         record.DepositDue,
		BalanceDue:         record.Remainder(),
		CustomerName:       record.CustomerName,
		CustomerEmail:      record.CustomerEmail,
		CustomerPhone:      record.CustomerPhone,
		ProjectDescription: record.ProjectDescription,
		CreatedAt:          record.CreatedAt.Format(domain.TimestampFormat),
	}
}
