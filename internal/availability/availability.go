package availability

import "time"

// Blocklist список дат, закрытых для бронирования
type Blocklist []time.Time

// Contains reports whether the blocklist has an entry on the same calendar day as date
func (b Blocklist) Contains(date time.Time) bool {
	for _, blocked := range b {
		if isSameDay(blocked, date) {
			return true
		}
	}
	return false
}

// IsBookable reports whether a calendar date can be booked.
//
// A date is not bookable when it is strictly before the start of the current
// day or matches a blocklist entry by calendar day. Comparison is by calendar
// day tuple, so the locations of date and now do not matter.
func IsBookable(date time.Time, now time.Time, blocklist Blocklist) bool {
	if isDateInPast(date, now) {
		return false
	}
	return !blocklist.Contains(date)
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня).
// Сравниваем кортежи (год, месяц, день), а не моменты времени:
// date приходит в UTC, now может быть в локальной зоне сервера.
func isDateInPast(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}
