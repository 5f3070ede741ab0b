package wizard

import (
	"context"
	"time"

	"github.com/knows-studios/KNS-BookingService/internal/domain"
	"github.com/knows-studios/KNS-BookingService/internal/infra/storage/draft"
	"github.com/knows-studios/KNS-BookingService/internal/pricing"
	"github.com/knows-studios/KNS-BookingService/pkg/types"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	Get(ctx context.Context, storageKey string) (*draft.Draft, error)
	Upsert(ctx context.Context, storageKey string, payload []byte, capturedAt time.Time) error
	Delete(ctx context.Context, storageKey string) error
}

// CatalogReader интерфейс каталога справочных данных
type CatalogReader interface {
	PackageByID(id string) (domain.Package, bool)
	AddOnByID(id string) (domain.AddOn, bool)
	SlotByStartTime(start types.TimeString) (domain.TimeSlot, bool)
}

// PriceQuoter интерфейс калькулятора стоимости
type PriceQuoter interface {
	Quote(packageID string, addOnIDs []string) pricing.Quote
}

// RedirectCanceller отменяет запланированный переход на внешнюю платформу
type RedirectCanceller interface {
	Cancel(userID int64) bool
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
