package confirmation

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/knows-studios/KNS-BookingService/internal/domain"
)

// alphabet символы случайного суффикса (base36, нижний регистр)
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

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

// Generator генерирует номера подтверждения вида KS-<base36 millis>-<5 символов>.
//
// Номер не является глобально уникальным: два завершения в одну миллисекунду
// с одинаковым случайным суффиксом дадут одинаковый номер. Это документированное
// ограничение продукта, номер нигде не сверяется с существующими записями.
type Generator struct {
	timeProvider TimeProvider

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator создает генератор с реальными часами и случайным seed
func NewGenerator() *Generator {
	return NewGeneratorWithDeps(&RealTimeProvider{}, time.Now().UnixNano())
}

// NewGeneratorWithDeps создает генератор с заданными часами и seed (для тестов)
func NewGeneratorWithDeps(timeProvider TimeProvider, seed int64) *Generator {
	return &Generator{
		timeProvider: timeProvider,
		rnd:          rand.New(rand.NewSource(seed)),
	}
}

// Number генерирует новый номер подтверждения
func (g *Generator) Number() string {
	now := g.timeProvider.Now()
	timestamp := strconv.FormatInt(now.UnixMilli(), 36)

	suffix := make([]byte, domain.ConfirmationRandomLength)
	g.mu.Lock()
	for i := range suffix {
		suffix[i] = alphabet[g.rnd.Intn(len(alphabet))]
	}
	g.mu.Unlock()

	return fmt.Sprintf("%s-%s-%s", domain.ConfirmationPrefix, timestamp, suffix)
}
