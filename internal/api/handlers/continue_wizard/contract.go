package continue_wizard

import (
	"context"

	advanceWizard "github.com/knows-studios/KNS-BookingService/internal/usecase/advance_wizard"
)

type AdvanceWizardUseCase interface {
	Execute(ctx context.Context, userID int64) (*advanceWizard.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
