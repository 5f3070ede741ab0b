package bookings

import "errors"

var (
	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied бронирование принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal error")
)
