package advance_wizard

import "errors"

var (
	// ErrDateTimeRequired дата и время сессии не выбраны
	ErrDateTimeRequired = errors.New("date and time are required")

	// ErrDateNotAvailable выбранная дата недоступна для бронирования
	ErrDateNotAvailable = errors.New("selected date is not available")

	// ErrSlotNotAvailable выбранный слот отсутствует или занят
	ErrSlotNotAvailable = errors.New("selected time slot is not available")

	// ErrContactDetailsRequired контактные данные заполнены не полностью
	ErrContactDetailsRequired = errors.New("contact details are required")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)
