package notify

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Notifier пользовательские уведомления о событиях бронирования.
// Доставка идет в журнал; внешние каналы (почта, пуши) подключаются
// заменой реализации на стороне вызывающего.
type Notifier struct {
	logger Logger
}

// New создает новый экземпляр нотификатора
func New(logger Logger) *Notifier {
	return &Notifier{logger: logger}
}

// Success уведомляет пользователя об успешном событии
func (n *Notifier) Success(userID int64, message string) {
	n.logger.Info("notify: user=%d success: %s", userID, message)
}

// Error уведомляет пользователя об ошибке
func (n *Notifier) Error(userID int64, message string) {
	n.logger.Error("notify: user=%d error: %s", userID, message)
}
