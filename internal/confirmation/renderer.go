package confirmation

import (
	"fmt"
	"strings"

	"github.com/knows-studios/KNS-BookingService/internal/domain"
)

// StudioInfo реквизиты студии для текста подтверждения
type StudioInfo struct {
	Name    string
	Address string
	Email   string
	Phone   string
}

// ExportFilename returns the download filename for a confirmation export,
// pattern KNOWS-STUDIOS-Confirmation-<confirmationNumber>.txt.
func ExportFilename(confirmationNumber string) string {
	return fmt.Sprintf("KNOWS-STUDIOS-Confirmation-%s.txt", confirmationNumber)
}

// RenderText formats a BookingRecord into the fixed plain-text confirmation
// template. Pure formatting: the record is assumed well-formed, no validation
// is performed here.
func RenderText(record *domain.BookingRecord, studio StudioInfo) string {
	var b strings.Builder

	line := strings.Repeat("=", 44)

	b.WriteString(studio.Name + "\n")
	b.WriteString("BOOKING CONFIRMATION\n")
	b.WriteString(line + "\n\n")

	b.WriteString(fmt.Sprintf("Confirmation Number: %s\n\n", record.ConfirmationNumber))

	b.WriteString(fmt.Sprintf("Date:     %s\n", record.BookingDate.Format("Monday, January 2, 2006")))
	b.WriteString(fmt.Sprintf("Time:     %s\n", record.StartTime.Label12h()))

	pkg := record.PackageName
	if record.PackageDuration != "" {
		pkg = fmt.Sprintf("%s (%s)", record.PackageName, record.PackageDuration)
	}
	b.WriteString(fmt.Sprintf("Package:  %s\n", pkg))

	addOns := "None"
	if len(record.AddOnNames) > 0 {
		addOns = strings.Join(record.AddOnNames, ", ")
	}
	b.WriteString(fmt.Sprintf("Add-Ons:  %s\n\n", addOns))

	b.WriteString(fmt.Sprintf("Total:        $%d\n", record.TotalPrice))
	b.WriteString(fmt.Sprintf("Deposit Due:  $%d (%d%%)\n", record.DepositDue, domain.DepositRatePercent))
	b.WriteString(fmt.Sprintf("Balance Due:  $%d\n\n", record.Remainder()))

	b.WriteString("Client\n")
	b.WriteString(fmt.Sprintf("  Name:   %s\n", record.CustomerName))
	b.WriteString(fmt.Sprintf("  Email:  %s\n", record.CustomerEmail))
	b.WriteString(fmt.Sprintf("  Phone:  %s\n", record.CustomerPhone))
	if record.ProjectDescription != nil && *record.ProjectDescription != "" {
		b.WriteString(fmt.Sprintf("  Project: %s\n", *record.ProjectDescription))
	}
	b.WriteString("\n")

	b.WriteString(strings.Repeat("-", 44) + "\n")
	b.WriteString(studio.Name + "\n")
	if studio.Address != "" {
		b.WriteString(studio.Address + "\n")
	}
	var contacts []string
	if studio.Email != "" {
		contacts = append(contacts, studio.Email)
	}
	if studio.Phone != "" {
		contacts = append(contacts, studio.Phone)
	}
	if len(contacts) > 0 {
		b.WriteString(strings.Join(contacts, " | ") + "\n")
	}
	b.WriteString("\nQuestions about your booking? Contact us at the details above.\n")

	return b.String()
}
