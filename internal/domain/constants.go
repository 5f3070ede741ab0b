package domain

// Default selections
const (
	// DefaultPackageID пакет, выбранный по умолчанию при открытии мастера.
	// Выбор пакета всегда имеет значение по умолчанию, в отличие от даты и времени.
	DefaultPackageID = "full-day"
)

// Pricing constants
const (
	// DepositRatePercent процент предоплаты от полной стоимости
	DepositRatePercent = 30
)

// Draft persistence constants
const (
	// DraftKeyPrefix префикс ключа черновика в хранилище.
	// Полный ключ: <prefix>:<userID>
	DraftKeyPrefix = "knows-studios:booking-draft"

	// DefaultDraftTTLHours окно свежести черновика в часах
	DefaultDraftTTLHours = 24
)

// Confirmation number constants
const (
	// ConfirmationPrefix префикс номера подтверждения
	ConfirmationPrefix = "KS"

	// ConfirmationRandomLength длина случайного суффикса номера подтверждения
	ConfirmationRandomLength = 5
)

// Time format constants
const (
	TimeFormat      = "15:04"      // HH:MM
	DateFormat      = "2006-01-02" // YYYY-MM-DD
	TimestampFormat = "2006-01-02 15:04:05"
)

// Business validation constants
const (
	MaxProjectDescriptionLength = 2000
	MaxContactFieldLength       = 200
)
