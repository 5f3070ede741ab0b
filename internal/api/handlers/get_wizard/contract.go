package get_wizard

import (
	"context"

	"github.com/knows-studios/KNS-BookingService/internal/service/wizard/models"
)

type WizardService interface {
	Get(ctx context.Context, userID int64) (*models.WizardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
