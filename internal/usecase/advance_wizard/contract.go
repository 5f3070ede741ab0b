package advance_wizard

import (
	"context"
	"time"

	"github.com/knows-studios/KNS-BookingService/internal/domain"
	"github.com/knows-studios/KNS-BookingService/internal/pricing"
	"github.com/knows-studios/KNS-BookingService/pkg/types"
)

// WizardStateStore доступ к состоянию мастера пользователя
type WizardStateStore interface {
	Load(ctx context.Context, userID int64) (*domain.WizardState, error)
	Save(ctx context.Context, userID int64, state *domain.WizardState) error
	Clear(ctx context.Context, userID int64) error
}

// CatalogReader доступ к каталогу студии
type CatalogReader interface {
	PackageByID(id string) (domain.Package, bool)
	AddOnByID(id string) (domain.AddOn, bool)
	SlotByStartTime(start types.TimeString) (domain.TimeSlot, bool)
}

// PriceQuoter расчет стоимости текущего выбора
type PriceQuoter interface {
	Quote(packageID string, addOnIDs []string) pricing.Quote
}

// BookingRepository запись завершенных бронирований
type BookingRepository interface {
	Create(ctx context.Context, record *domain.BookingRecord) (*domain.BookingRecord, error)
}

// NumberGenerator генерация номеров подтверждения
type NumberGenerator interface {
	Number() string
}

// Redirector отложенный переход на внешнюю платформу бронирования
type Redirector interface {
	Schedule(userID int64, confirmationNumber string)
	URL() string
	Delay() time.Duration
}

// Notifier пользовательские уведомления
type Notifier interface {
	Success(userID int64, message string)
	Error(userID int64, message string)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальная реализация TimeProvider
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
