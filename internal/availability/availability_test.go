package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsBookable_FutureDate(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

	assert.True(t, IsBookable(day(2026, time.March, 11), now, nil))
	assert.True(t, IsBookable(day(2026, time.June, 1), now, nil))
}

func TestIsBookable_TodayIsBookable(t *testing.T) {
	now := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC)

	assert.True(t, IsBookable(day(2026, time.March, 10), now, nil))
}

func TestIsBookable_PastDate(t *testing.T) {
	now := time.Date(2026, time.March, 10, 0, 0, 1, 0, time.UTC)

	assert.False(t, IsBookable(day(2026, time.March, 9), now, nil))
	assert.False(t, IsBookable(day(2025, time.December, 31), now, nil))
}

func TestIsBookable_TodayInWesternTimezone(t *testing.T) {
	// Дата запроса в UTC, часы сервера в зоне западнее UTC
	atlanta := time.FixedZone("EST", -5*60*60)
	now := time.Date(2026, time.August, 31, 10, 0, 0, 0, atlanta)

	assert.True(t, IsBookable(day(2026, time.August, 31), now, nil))
	assert.False(t, IsBookable(day(2026, time.August, 30), now, nil))
}

func TestIsBookable_PastDateInEasternTimezone(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	now := time.Date(2026, time.September, 1, 1, 0, 0, 0, tokyo)

	assert.False(t, IsBookable(day(2026, time.August, 31), now, nil))
	assert.True(t, IsBookable(day(2026, time.September, 1), now, nil))
}

func TestIsBookable_BlockedDate(t *testing.T) {
	now := day(2026, time.March, 10)
	blocklist := Blocklist{day(2026, time.December, 25)}

	assert.False(t, IsBookable(day(2026, time.December, 25), now, blocklist))
	assert.True(t, IsBookable(day(2026, time.December, 26), now, blocklist))
}

func TestBlocklist_ContainsComparesCalendarDay(t *testing.T) {
	blocklist := Blocklist{day(2026, time.December, 25)}

	// Время суток не влияет на совпадение
	withTime := time.Date(2026, time.December, 25, 18, 45, 12, 0, time.UTC)
	assert.True(t, blocklist.Contains(withTime))

	assert.False(t, blocklist.Contains(day(2026, time.November, 25)))
}
