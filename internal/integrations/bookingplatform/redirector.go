package bookingplatform

import (
	"sync"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Redirector управляет отложенным переходом на внешнюю booking-платформу.
//
// После завершения бронирования клиент должен открыть страницу платформы
// через фиксированную задержку. На пользователя активна максимум одна
// задача, сброс мастера ее отменяет.
type Redirector struct {
	url    string
	delay  time.Duration
	logger Logger

	mu      sync.Mutex
	pending map[int64]*time.Timer
}

// NewRedirector создает новый redirector
func NewRedirector(url string, delay time.Duration, logger Logger) *Redirector {
	return &Redirector{
		url:     url,
		delay:   delay,
		logger:  logger,
		pending: make(map[int64]*time.Timer),
	}
}

// URL возвращает адрес внешней booking-платформы
func (r *Redirector) URL() string {
	return r.url
}

// Delay возвращает задержку перед переходом
func (r *Redirector) Delay() time.Duration {
	return r.delay
}

// Schedule планирует объявление перехода для пользователя.
// Уже запланированное объявление для того же пользователя заменяется.
func (r *Redirector) Schedule(userID int64, confirmationNumber string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if timer, ok := r.pending[userID]; ok {
		timer.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(r.delay, func() {
		r.mu.Lock()
		// Пока колбэк ждал мьютекс, Schedule мог заменить таймер.
		// Чужую запись не трогаем.
		if r.pending[userID] == timer {
			delete(r.pending, userID)
		}
		r.mu.Unlock()

		r.logger.Info("Redirect to %s announced for booking %s (user=%d)", r.url, confirmationNumber, userID)
	})
	r.pending[userID] = timer

	r.logger.Info("Redirect scheduled in %s for booking %s (user=%d)", r.delay, confirmationNumber, userID)
}

// Cancel отменяет запланированное объявление пользователя.
// Возвращает true, если объявление было запланировано и еще не сработало.
func (r *Redirector) Cancel(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	timer, ok := r.pending[userID]
	if !ok {
		return false
	}

	timer.Stop()
	delete(r.pending, userID)
	return true
}

// HasPending проверяет, есть ли у пользователя запланированное объявление
func (r *Redirector) HasPending(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.pending[userID]
	return ok
}
