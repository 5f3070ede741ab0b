package advance_wizard

import (
	"context"
	"fmt"

	"github.com/knows-studios/KNS-BookingService/internal/availability"
	"github.com/knows-studios/KNS-BookingService/internal/domain"
	bookingmodels "github.com/knows-studios/KNS-BookingService/internal/service/bookings/models"
	wizardmodels "github.com/knows-studios/KNS-BookingService/internal/service/wizard/models"
)

// UseCase продвижение мастера бронирования на следующий шаг.
//
// Переход с последнего шага данных завершает бронирование: запись
// создается и черновик удаляется в одной транзакции, после фиксации
// планируется отложенный переход на внешнюю платформу.
type UseCase struct {
	store        WizardStateStore
	catalog      CatalogReader
	quoter       PriceQuoter
	bookingRepo  BookingRepository
	generator    NumberGenerator
	redirector   Redirector
	notifier     Notifier
	txManager    TxManager
	timeProvider TimeProvider
	blocklist    availability.Blocklist
	logger       Logger
}

// New создает новый экземпляр usecase продвижения мастера
func New(
	store WizardStateStore,
	catalog CatalogReader,
	quoter PriceQuoter,
	bookingRepo BookingRepository,
	generator NumberGenerator,
	redirector Redirector,
	notifier Notifier,
	txManager TxManager,
	blocklist availability.Blocklist,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		catalog:      catalog,
		quoter:       quoter,
		bookingRepo:  bookingRepo,
		generator:    generator,
		redirector:   redirector,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		blocklist:    blocklist,
		logger:       logger,
	}
}

// Execute продвигает мастер пользователя на следующий шаг.
// При незавершенном текущем шаге состояние не меняется.
func (uc *UseCase) Execute(ctx context.Context, userID int64) (*Response, error) {
	state, err := uc.store.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - load state: %v", ErrInternal, err)
	}

	if err := validateStep(state, uc.timeProvider.Now(), uc.blocklist, uc.catalog); err != nil {
		uc.logger.Warn("Execute: step %s blocked for user=%d: %v", state.CurrentStep, userID, err)
		return nil, err
	}

	if state.CurrentStep == domain.StepEnterDetails {
		return uc.complete(ctx, userID, state)
	}

	state.CurrentStep = state.CurrentStep.Next()

	if err := uc.store.Save(ctx, userID, state); err != nil {
		return nil, fmt.Errorf("%w: Execute - save state: %v", ErrInternal, err)
	}

	uc.logger.Info("Execute: user=%d advanced to step=%s", userID, state.CurrentStep)
	return &Response{
		Completed: false,
		State:     wizardmodels.FromWizardState(state, uc.quoter.Quote(state.SelectedPackageID, state.SelectedAddOnIDs)),
	}, nil
}

// complete завершает бронирование: создает запись и очищает черновик
// в одной транзакции, затем планирует переход на внешнюю платформу
func (uc *UseCase) complete(ctx context.Context, userID int64, state *domain.WizardState) (*Response, error) {
	record, err := uc.buildRecord(userID, state)
	if err != nil {
		return nil, err
	}

	var created *domain.BookingRecord
	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = uc.bookingRepo.Create(ctx, record)
		if txErr != nil {
			return txErr
		}
		return uc.store.Clear(ctx, userID)
	})
	if err != nil {
		uc.logger.Error("complete: transaction failed for user=%d: %v", userID, err)
		uc.notifier.Error(userID, "We could not complete your booking. Please try again.")
		return nil, fmt.Errorf("%w: complete - transaction: %v", ErrInternal, err)
	}

	uc.redirector.Schedule(userID, created.ConfirmationNumber)
	uc.notifier.Success(userID, fmt.Sprintf("Booking confirmed! Your confirmation number is %s.", created.ConfirmationNumber))
	uc.logger.Info("complete: user=%d booked %s (%s)", userID, created.PackageName, created.ConfirmationNumber)

	fresh := domain.NewWizardState()
	return &Response{
		Completed:            true,
		State:                wizardmodels.FromWizardState(fresh, uc.quoter.Quote(fresh.SelectedPackageID, fresh.SelectedAddOnIDs)),
		Booking:              bookingmodels.FromBookingRecord(created),
		RedirectURL:          uc.redirector.URL(),
		RedirectDelaySeconds: int(uc.redirector.Delay().Seconds()),
	}, nil
}

// buildRecord собирает денормализованную запись бронирования.
// Названия пакета и дополнений фиксируются на момент бронирования,
// чтобы последующие правки каталога не меняли историю.
func (uc *UseCase) buildRecord(userID int64, state *domain.WizardState) (*domain.BookingRecord, error) {
	pkg, ok := uc.catalog.PackageByID(state.SelectedPackageID)
	if !ok {
		// Выбор пакета всегда валидируется при сохранении черновика
		return nil, fmt.Errorf("%w: buildRecord - package %q missing from catalog", ErrInternal, state.SelectedPackageID)
	}

	addOnNames := make([]string, 0, len(state.SelectedAddOnIDs))
	for _, id := range state.SelectedAddOnIDs {
		if addOn, ok := uc.catalog.AddOnByID(id); ok {
			addOnNames = append(addOnNames, addOn.Name)
		}
	}

	quote := uc.quoter.Quote(state.SelectedPackageID, state.SelectedAddOnIDs)

	var projectDescription *string
	if state.Contact.ProjectDescription != "" {
		description := state.Contact.ProjectDescription
		projectDescription = &description
	}

	return &domain.BookingRecord{
		UserID:             userID,
		ConfirmationNumber: uc.generator.Number(),
		BookingDate:        *state.SelectedDate,
		StartTime:          *state.SelectedSlot,
		PackageName:        pkg.Name,
		PackageDuration:    pkg.Duration,
		AddOnNames:         addOnNames,
		TotalPrice:         quote.Total,
		DepositDue:         quote.Deposit,
		CustomerName:       state.Contact.Name,
		CustomerEmail:      state.Contact.Email,
		CustomerPhone:      state.Contact.Phone,
		ProjectDescription: projectDescription,
	}, nil
}
