package advance_wizard

import (
	"strings"
	"time"

	"github.com/knows-studios/KNS-BookingService/internal/availability"
	"github.com/knows-studios/KNS-BookingService/internal/domain"
)

// validateStep проверяет, что текущий шаг завершен и мастер можно
// продвинуть дальше. Шаги выбора пакета и дополнений проходят всегда:
// пакет имеет значение по умолчанию, дополнения необязательны.
func validateStep(state *domain.WizardState, now time.Time, blocklist availability.Blocklist, catalog CatalogReader) error {
	switch state.CurrentStep {
	case domain.StepSelectDateTime:
		return validateDateTime(state, now, blocklist, catalog)
	case domain.StepEnterDetails:
		// Дата могла быть очищена после прохождения своего шага,
		// поэтому перед завершением проверяется весь выбор
		if err := validateDateTime(state, now, blocklist, catalog); err != nil {
			return err
		}
		return validateContactDetails(state)
	default:
		return nil
	}
}

func validateDateTime(state *domain.WizardState, now time.Time, blocklist availability.Blocklist, catalog CatalogReader) error {
	if !state.HasDateTime() {
		return ErrDateTimeRequired
	}

	if !availability.IsBookable(*state.SelectedDate, now, blocklist) {
		return ErrDateNotAvailable
	}

	slot, ok := catalog.SlotByStartTime(*state.SelectedSlot)
	if !ok || !slot.Available {
		return ErrSlotNotAvailable
	}

	return nil
}

func validateContactDetails(state *domain.WizardState) error {
	contact := state.Contact
	if strings.TrimSpace(contact.Name) == "" ||
		strings.TrimSpace(contact.Email) == "" ||
		strings.TrimSpace(contact.Phone) == "" {
		return ErrContactDetailsRequired
	}
	return nil
}
