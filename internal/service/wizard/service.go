package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/knows-studios/KNS-BookingService/internal/domain"
	draftRepo "github.com/knows-studios/KNS-BookingService/internal/infra/storage/draft"
	"github.com/knows-studios/KNS-BookingService/internal/service/wizard/models"
	"github.com/knows-studios/KNS-BookingService/pkg/types"
)

// Service сервис мастера бронирования.
//
// Состояние мастера живет в хранилище черновиков: каждый запрос
// восстанавливает его по ключу пользователя, каждая мутация перезаписывает
// черновик целиком (auto-save). Конкурентные запросы одного пользователя -
// last-write-wins, без блокировок.
type Service struct {
	draftRepo    DraftRepository
	catalog      CatalogReader
	quoter       PriceQuoter
	redirect     RedirectCanceller
	timeProvider TimeProvider
	draftTTL     time.Duration
	logger       Logger
}

// NewService создает новый экземпляр сервиса мастера бронирования
func NewService(
	draftRepo DraftRepository,
	catalog CatalogReader,
	quoter PriceQuoter,
	redirect RedirectCanceller,
	draftTTL time.Duration,
	logger Logger,
) *Service {
	return &Service{
		draftRepo:    draftRepo,
		catalog:      catalog,
		quoter:       quoter,
		redirect:     redirect,
		timeProvider: &RealTimeProvider{},
		draftTTL:     draftTTL,
		logger:       logger,
	}
}

// Get возвращает текущее состояние мастера пользователя,
// восстановленное из черновика либо состояние по умолчанию
func (s *Service) Get(ctx context.Context, userID int64) (*models.WizardResponse, error) {
	state, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.respond(state), nil
}

// Update применяет изменения выбора и сохраняет черновик.
// Неизвестные идентификаторы каталога отбрасываются молча (политика
// default-to-zero: устаревший id не ошибка, а нулевой вклад).
func (s *Service) Update(ctx context.Context, userID int64, req *models.UpdateWizardRequest) (*models.WizardResponse, error) {
	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for user=%d: %v", userID, err)
		return nil, err
	}

	state, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.apply(state, req, userID)

	if err := s.Save(ctx, userID, state); err != nil {
		return nil, err
	}

	s.logger.Info("Update: draft saved for user=%d (step=%s)", userID, state.CurrentStep)
	return s.respond(state), nil
}

// Back возвращает мастер на предыдущий шаг, не очищая введенные данные.
// С первого шага назад вернуться нельзя.
func (s *Service) Back(ctx context.Context, userID int64) (*models.WizardResponse, error) {
	state, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if state.CurrentStep.IsFirst() {
		s.logger.Warn("Back: user=%d is already at the first step", userID)
		return nil, ErrAlreadyAtFirstStep
	}

	state.CurrentStep = state.CurrentStep.Prev()

	if err := s.Save(ctx, userID, state); err != nil {
		return nil, err
	}

	s.logger.Info("Back: user=%d moved to step=%s", userID, state.CurrentStep)
	return s.respond(state), nil
}

// Cancel сбрасывает мастер к значениям по умолчанию: удаляет черновик
// и отменяет запланированный переход на внешнюю платформу
func (s *Service) Cancel(ctx context.Context, userID int64) (*models.WizardResponse, error) {
	if err := s.Clear(ctx, userID); err != nil {
		return nil, err
	}

	if s.redirect.Cancel(userID) {
		s.logger.Info("Cancel: pending redirect cancelled for user=%d", userID)
	}

	s.logger.Info("Cancel: wizard reset for user=%d", userID)
	return s.respond(domain.NewWizardState()), nil
}

// Load восстанавливает состояние мастера из черновика.
//
// Черновик старше окна свежести игнорируется (но не удаляется).
// Битый payload логируется и игнорируется - мастер продолжает
// с состояния по умолчанию, это никогда не фатально.
func (s *Service) Load(ctx context.Context, userID int64) (*domain.WizardState, error) {
	stored, err := s.draftRepo.Get(ctx, s.storageKey(userID))
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			return domain.NewWizardState(), nil
		}
		s.logger.Error("Load: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Load - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	if now.Sub(stored.CapturedAt) > s.draftTTL {
		s.logger.Info("Load: draft for user=%d is stale (captured at %s), using defaults",
			userID, stored.CapturedAt.Format(time.RFC3339))
		return domain.NewWizardState(), nil
	}

	state, err := decodeSnapshot(stored.Payload, s.catalog)
	if err != nil {
		s.logger.Warn("Load: malformed draft for user=%d, using defaults: %v", userID, err)
		return domain.NewWizardState(), nil
	}

	return state, nil
}

// Save сериализует состояние и перезаписывает черновик пользователя
func (s *Service) Save(ctx context.Context, userID int64, state *domain.WizardState) error {
	now := s.timeProvider.Now()

	payload, err := encodeSnapshot(state, now)
	if err != nil {
		s.logger.Error("Save: failed to encode draft for user=%d: %v", userID, err)
		return fmt.Errorf("%w: Save - encode draft: %v", ErrInternal, err)
	}

	if err := s.draftRepo.Upsert(ctx, s.storageKey(userID), payload, now); err != nil {
		s.logger.Error("Save: repository error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	return nil
}

// Clear удаляет черновик пользователя
func (s *Service) Clear(ctx context.Context, userID int64) error {
	if err := s.draftRepo.Delete(ctx, s.storageKey(userID)); err != nil {
		s.logger.Error("Clear: repository error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: Clear - repository error: %v", ErrInternal, err)
	}
	return nil
}

// Вспомогательные методы

// apply накатывает изменения запроса на состояние
func (s *Service) apply(state *domain.WizardState, req *models.UpdateWizardRequest, userID int64) {
	if req.SelectedDate != nil {
		if *req.SelectedDate == "" {
			state.SelectedDate = nil
		} else {
			// Формат уже проверен в validateUpdateRequest
			date, _ := time.Parse(domain.DateFormat, *req.SelectedDate)
			state.SelectedDate = &date
		}
	}

	if req.SelectedTimeSlot != nil {
		if *req.SelectedTimeSlot == "" {
			state.SelectedSlot = nil
		} else {
			slot, _ := types.NewTimeStringFromString(*req.SelectedTimeSlot)
			state.SelectedSlot = &slot
		}
	}

	if req.SelectedPackage != nil {
		if _, ok := s.catalog.PackageByID(*req.SelectedPackage); ok {
			state.SelectedPackageID = *req.SelectedPackage
		} else {
			// Неизвестный пакет не затирает текущий выбор:
			// пакет всегда должен оставаться выбранным
			s.logger.Warn("apply: unknown package id %q from user=%d ignored", *req.SelectedPackage, userID)
		}
	}

	if req.SelectedAddOns != nil {
		addOns := make([]string, 0, len(*req.SelectedAddOns))
		for _, id := range *req.SelectedAddOns {
			if _, ok := s.catalog.AddOnByID(id); !ok {
				s.logger.Warn("apply: unknown addon id %q from user=%d dropped", id, userID)
				continue
			}
			if !contains(addOns, id) {
				addOns = append(addOns, id)
			}
		}
		state.SelectedAddOnIDs = addOns
	}

	if req.BookingData != nil {
		if req.BookingData.Name != nil {
			state.Contact.Name = *req.BookingData.Name
		}
		if req.BookingData.Email != nil {
			state.Contact.Email = *req.BookingData.Email
		}
		if req.BookingData.Phone != nil {
			state.Contact.Phone = *req.BookingData.Phone
		}
		if req.BookingData.ProjectDescription != nil {
			state.Contact.ProjectDescription = *req.BookingData.ProjectDescription
		}
	}
}

func (s *Service) respond(state *domain.WizardState) *models.WizardResponse {
	quote := s.quoter.Quote(state.SelectedPackageID, state.SelectedAddOnIDs)
	return models.FromWizardState(state, quote)
}

// storageKey возвращает ключ черновика пользователя
func (s *Service) storageKey(userID int64) string {
	return fmt.Sprintf("%s:%d", domain.DraftKeyPrefix, userID)
}
