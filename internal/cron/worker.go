package cron

import (
	"context"
	"time"

	cronv3 "github.com/robfig/cron/v3"
)

// DraftRepository доступ к черновикам мастера
type DraftRepository interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Worker периодическая чистка устаревших черновиков мастера.
//
// Протухшие черновики и так игнорируются при чтении, воркер лишь
// не дает таблице расти бесконечно.
type Worker struct {
	scheduler *cronv3.Cron
	drafts    DraftRepository
	ttl       time.Duration
	schedule  string
	logger    Logger
}

// NewWorker создает воркер чистки черновиков.
// schedule задается в стандартном cron формате, например "0 3 * * *".
func NewWorker(drafts DraftRepository, ttl time.Duration, schedule string, logger Logger) *Worker {
	return &Worker{
		scheduler: cronv3.New(),
		drafts:    drafts,
		ttl:       ttl,
		schedule:  schedule,
		logger:    logger,
	}
}

// Start регистрирует задачу и запускает планировщик
func (w *Worker) Start() error {
	if _, err := w.scheduler.AddFunc(w.schedule, w.run); err != nil {
		return err
	}

	w.scheduler.Start()
	w.logger.Info("cron: draft cleanup scheduled (%s, ttl=%s)", w.schedule, w.ttl)
	return nil
}

// Stop останавливает планировщик и дожидается текущей задачи
func (w *Worker) Stop() {
	ctx := w.scheduler.Stop()
	<-ctx.Done()
	w.logger.Info("cron: draft cleanup stopped")
}

func (w *Worker) run() {
	cutoff := time.Now().Add(-w.ttl)

	deleted, err := w.drafts.DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		w.logger.Error("cron: draft cleanup failed: %v", err)
		return
	}

	if deleted > 0 {
		w.logger.Info("cron: removed %d stale drafts (older than %s)", deleted, cutoff.Format(time.RFC3339))
	}
}
