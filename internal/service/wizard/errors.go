package wizard

import "errors"

var (
	// ErrAlreadyAtFirstStep возвращается при попытке шага назад с первого шага
	ErrAlreadyAtFirstStep = errors.New("wizard: already at the first step")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("wizard: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("wizard: internal error")
)
