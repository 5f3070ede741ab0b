package confirmation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/knows-studios/KNS-BookingService/internal/domain"
	"github.com/knows-studios/KNS-BookingService/pkg/ptr"
	"github.com/knows-studios/KNS-BookingService/pkg/types"
)

func sampleStudio() StudioInfo {
	return StudioInfo{
		Name:    "KNOWS STUDIOS",
		Address: "1247 Industrial Blvd, Suite 3, Atlanta, GA 30318",
		Email:   "bookings@knowsstudios.com",
		Phone:   "(404) 555-0147",
	}
}

func sampleRecord() *domain.BookingRecord {
	start, _ := types.NewTimeStringFromString("14:00")
	return &domain.BookingRecord{
		ID:                 1,
		UserID:             10,
		ConfirmationNumber: "KS-abc123-x7f2q",
		BookingDate:        time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
		StartTime:          start,
		PackageName:        "Full-Day Session",
		PackageDuration:    "8 hours",
		AddOnNames:         []string{"Premium Lighting Package", "Studio Assistant"},
		TotalPrice:         625,
		DepositDue:         188,
		CustomerName:       "Jordan Avery",
		CustomerEmail:      "jordan@example.com",
		CustomerPhone:      "(404) 555-0101",
	}
}

func TestRenderText_Template(t *testing.T) {
	text := RenderText(sampleRecord(), sampleStudio())

	assert.True(t, strings.HasPrefix(text, "KNOWS STUDIOS\nBOOKING CONFIRMATION\n"))
	assert.Contains(t, text, strings.Repeat("=", 44))
	assert.Contains(t, text, "Confirmation Number: KS-abc123-x7f2q")
	assert.Contains(t, text, "Date:     Saturday, March 14, 2026")
	assert.Contains(t, text, "Time:     2:00 PM")
	assert.Contains(t, text, "Package:  Full-Day Session (8 hours)")
	assert.Contains(t, text, "Add-Ons:  Premium Lighting Package, Studio Assistant")
	assert.Contains(t, text, "Total:        $625")
	assert.Contains(t, text, "Deposit Due:  $188 (30%)")
	assert.Contains(t, text, "Balance Due:  $437")
	assert.Contains(t, text, "Name:   Jordan Avery")
	assert.Contains(t, text, "bookings@knowsstudios.com | (404) 555-0147")
	assert.Contains(t, text, "Questions about your booking?")
}

func TestRenderText_NoAddOns(t *testing.T) {
	record := sampleRecord()
	record.AddOnNames = nil

	text := RenderText(record, sampleStudio())

	assert.Contains(t, text, "Add-Ons:  None")
}

func TestRenderText_ProjectDescription(t *testing.T) {
	record := sampleRecord()
	record.ProjectDescription = ptr.Ptr("Lookbook shoot for spring collection")

	text := RenderText(record, sampleStudio())

	assert.Contains(t, text, "Project: Lookbook shoot for spring collection")
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t,
		"KNOWS-STUDIOS-Confirmation-KS-abc123-x7f2q.txt",
		ExportFilename("KS-abc123-x7f2q"))
}
