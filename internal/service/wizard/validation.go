package wizard

import (
	"fmt"
	"strings"
	"time"

	"github.com/knows-studios/KNS-BookingService/internal/domain"
	"github.com/knows-studios/KNS-BookingService/internal/service/wizard/models"
	"github.com/knows-studios/KNS-BookingService/pkg/types"
)

// validateUpdateRequest проверяет форматы и размеры входных данных.
// Проверки членства в каталоге сюда не входят: неизвестные
// идентификаторы обрабатываются молча на этапе применения.
func validateUpdateRequest(req *models.UpdateWizardRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request body is empty", ErrInvalidInput)
	}

	if req.SelectedDate != nil && *req.SelectedDate != "" {
		if _, err := time.Parse(domain.DateFormat, *req.SelectedDate); err != nil {
			return fmt.Errorf("%w: selectedDate must be in %s format", ErrInvalidInput, domain.DateFormat)
		}
	}

	if req.SelectedTimeSlot != nil && *req.SelectedTimeSlot != "" {
		if _, err := types.NewTimeStringFromString(*req.SelectedTimeSlot); err != nil {
			return fmt.Errorf("%w: selectedTimeSlot must be in HH:MM format", ErrInvalidInput)
		}
	}

	if req.BookingData != nil {
		if err := validateContactField("name", req.BookingData.Name, domain.MaxContactFieldLength); err != nil {
			return err
		}
		if err := validateContactField("email", req.BookingData.Email, domain.MaxContactFieldLength); err != nil {
			return err
		}
		if err := validateContactField("phone", req.BookingData.Phone, domain.MaxContactFieldLength); err != nil {
			return err
		}
		if err := validateContactField("projectDescription", req.BookingData.ProjectDescription, domain.MaxProjectDescriptionLength); err != nil {
			return err
		}
		if req.BookingData.Email != nil && *req.BookingData.Email != "" {
			if !strings.Contains(*req.BookingData.Email, "@") {
				return fmt.Errorf("%w: email must contain @", ErrInvalidInput)
			}
		}
	}

	return nil
}

func validateContactField(name string, value *string, maxLen int) error {
	if value == nil {
		return nil
	}
	if len(*value) > maxLen {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, name, maxLen)
	}
	return nil
}
