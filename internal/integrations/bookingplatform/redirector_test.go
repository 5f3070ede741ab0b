package bookingplatform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{}) {}
func (nopLogger) Warn(format string, v ...interface{}) {}

func TestScheduleAndCancel(t *testing.T) {
	r := NewRedirector("https://book.example.com/sessions", time.Hour, nopLogger{})

	r.Schedule(1, "KS-test1-aaaaa")
	assert.True(t, r.HasPending(1))
	assert.False(t, r.HasPending(2))

	assert.True(t, r.Cancel(1))
	assert.False(t, r.HasPending(1))
}

func TestCancel_NothingPending(t *testing.T) {
	r := NewRedirector("https://book.example.com/sessions", time.Hour, nopLogger{})

	assert.False(t, r.Cancel(1))
}

func TestSchedule_ReplacesExisting(t *testing.T) {
	r := NewRedirector("https://book.example.com/sessions", time.Hour, nopLogger{})

	r.Schedule(1, "KS-first-aaaaa")
	r.Schedule(1, "KS-second-bbbbb")

	// Активна только одна задача, первая отмена снимает ее целиком
	assert.True(t, r.Cancel(1))
	assert.False(t, r.Cancel(1))
}

func TestSchedule_FiresAndClearsPending(t *testing.T) {
	r := NewRedirector("https://book.example.com/sessions", 10*time.Millisecond, nopLogger{})

	r.Schedule(1, "KS-test1-aaaaa")

	assert.Eventually(t, func() bool {
		return !r.HasPending(1)
	}, time.Second, 5*time.Millisecond)
}

func TestSchedule_LateFireKeepsReplacementTimer(t *testing.T) {
	r := NewRedirector("https://book.example.com/sessions", 10*time.Millisecond, nopLogger{})

	r.Schedule(1, "KS-first-aaaaa")

	// Держим мьютекс, пока первый таймер срабатывает, и подменяем запись.
	// Сработавший колбэк ждет мьютекс и не должен удалить чужой таймер.
	r.mu.Lock()
	time.Sleep(50 * time.Millisecond)
	replacement := time.NewTimer(time.Hour)
	defer replacement.Stop()
	r.pending[1] = replacement
	r.mu.Unlock()

	time.Sleep(50 * time.Millisecond)
	assert.True(t, r.HasPending(1))
	assert.True(t, r.Cancel(1))
}

func TestAccessors(t *testing.T) {
	r := NewRedirector("https://book.example.com/sessions", 5*time.Second, nopLogger{})

	assert.Equal(t, "https://book.example.com/sessions", r.URL())
	assert.Equal(t, 5*time.Second, r.Delay())
}
