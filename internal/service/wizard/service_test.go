package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knows-studios/KNS-BookingService/internal/catalog"
	"github.com/knows-studios/KNS-BookingService/internal/domain"
	draftRepo "github.com/knows-studios/KNS-BookingService/internal/infra/storage/draft"
	"github.com/knows-studios/KNS-BookingService/internal/pricing"
	"github.com/knows-studios/KNS-BookingService/internal/service/wizard/models"
	"github.com/knows-studios/KNS-BookingService/pkg/ptr"
)

// --- Mocks ---

type memDraftRepo struct {
	drafts map[string]*draftRepo.Draft
}

func newMemDraftRepo() *memDraftRepo {
	return &memDraftRepo{drafts: make(map[string]*draftRepo.Draft)}
}

func (m *memDraftRepo) Get(ctx context.Context, storageKey string) (*draftRepo.Draft, error) {
	stored, ok := m.drafts[storageKey]
	if !ok {
		return nil, draftRepo.ErrDraftNotFound
	}
	return stored, nil
}

func (m *memDraftRepo) Upsert(ctx context.Context, storageKey string, payload []byte, capturedAt time.Time) error {
	m.drafts[storageKey] = &draftRepo.Draft{
		StorageKey: storageKey,
		Payload:    payload,
		CapturedAt: capturedAt,
	}
	return nil
}

func (m *memDraftRepo) Delete(ctx context.Context, storageKey string) error {
	delete(m.drafts, storageKey)
	return nil
}

type mockCanceller struct {
	cancelled []int64
}

func (m *mockCanceller) Cancel(userID int64) bool {
	m.cancelled = append(m.cancelled, userID)
	return true
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService(repo DraftRepository, redirect RedirectCanceller) *Service {
	c := catalog.Default()
	return NewService(repo, c, pricing.NewCalculator(c), redirect, 24*time.Hour, nopLogger{})
}

// --- Tests ---

func TestGet_NoDraftReturnsDefaults(t *testing.T) {
	svc := newTestService(newMemDraftRepo(), &mockCanceller{})

	state, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StepSelectPackage), state.CurrentStep)
	assert.Equal(t, domain.DefaultPackageID, state.SelectedPackage)
	assert.Nil(t, state.SelectedDate)
	assert.Nil(t, state.SelectedTimeSlot)
	assert.Empty(t, state.SelectedAddOns)
	assert.Equal(t, int64(450), state.Quote.Total)
	assert.Equal(t, int64(135), state.Quote.Deposit)
}

func TestUpdate_RoundTripThroughDraft(t *testing.T) {
	repo := newMemDraftRepo()
	svc := newTestService(repo, &mockCanceller{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateWizardRequest{
		SelectedDate:     ptr.Ptr("2026-09-14"),
		SelectedTimeSlot: ptr.Ptr("14:00"),
		SelectedPackage:  ptr.Ptr("half-day"),
		SelectedAddOns:   &[]string{"backdrop-pack"},
		BookingData: &models.BookingDataRequest{
			Name:  ptr.Ptr("Jordan Avery"),
			Email: ptr.Ptr("jordan@example.com"),
			Phone: ptr.Ptr("(404) 555-0101"),
		},
	})
	require.NoError(t, err)

	// Черновик переживает новый запрос
	state, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)

	require.NotNil(t, state.SelectedDate)
	assert.Equal(t, "2026-09-14", *state.SelectedDate)
	require.NotNil(t, state.SelectedTimeSlot)
	assert.Equal(t, "14:00", *state.SelectedTimeSlot)
	assert.Equal(t, "2:00 PM", *state.SelectedTimeSlotLabel)
	assert.Equal(t, "half-day", state.SelectedPackage)
	assert.Equal(t, []string{"backdrop-pack"}, state.SelectedAddOns)
	assert.Equal(t, "Jordan Avery", state.BookingData.Name)
	assert.Equal(t, int64(295), state.Quote.Total)
}

func TestUpdate_DraftsAreIsolatedPerUser(t *testing.T) {
	repo := newMemDraftRepo()
	svc := newTestService(repo, &mockCanceller{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateWizardRequest{
		SelectedPackage: ptr.Ptr("cinema-pro"),
	})
	require.NoError(t, err)

	other, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPackageID, other.SelectedPackage)
}

func TestUpdate_UnknownPackageKeepsSelection(t *testing.T) {
	repo := newMemDraftRepo()
	svc := newTestService(repo, &mockCanceller{})

	state, err := svc.Update(context.Background(), 1, &models.UpdateWizardRequest{
		SelectedPackage: ptr.Ptr("retired-package"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultPackageID, state.SelectedPackage)
}

func TestUpdate_UnknownAddOnsDropped(t *testing.T) {
	repo := newMemDraftRepo()
	svc := newTestService(repo, &mockCanceller{})

	state, err := svc.Update(context.Background(), 1, &models.UpdateWizardRequest{
		SelectedAddOns: &[]string{"premium-lighting", "no-such-addon", "premium-lighting"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"premium-lighting"}, state.SelectedAddOns)
}

func TestUpdate_EmptyStringClearsDate(t *testing.T) {
	repo := newMemDraftRepo()
	svc := newTestService(repo, &mockCanceller{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateWizardRequest{
		SelectedDate:     ptr.Ptr("2026-09-14"),
		SelectedTimeSlot: ptr.Ptr("10:00"),
	})
	require.NoError(t, err)

	state, err := svc.Update(context.Background(), 1, &models.UpdateWizardRequest{
		SelectedDate: ptr.Ptr(""),
	})
	require.NoError(t, err)

	assert.Nil(t, state.SelectedDate)
	require.NotNil(t, state.SelectedTimeSlot)
	assert.Equal(t, "10:00", *state.SelectedTimeSlot)
}

func TestUpdate_InvalidDateRejected(t *testing.T) {
	repo := newMemDraftRepo()
	svc := newTestService(repo, &mockCanceller{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateWizardRequest{
		SelectedDate: ptr.Ptr("14-09-2026"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, repo.drafts)
}

func TestLoad_StaleDraftIgnored(t *testing.T) {
	repo := newMemDraftRepo()
	svc := newTestService(repo, &mockCanceller{})

	state := domain.NewWizardState()
	state.SelectedPackageID = "cinema-pro"
	require.NoError(t, svc.Save(context.Background(), 1, state))

	// Состарим черновик за пределы окна свежести
	key := svc.storageKey(1)
	repo.drafts[key].CapturedAt = time.Now().Add(-25 * time.Hour)

	loaded, err := svc.Load(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPackageID, loaded.SelectedPackageID)
}

func TestLoad_MalformedDraftIgnored(t *testing.T) {
	repo := newMemDraftRepo()
	svc := newTestService(repo, &mockCanceller{})

	require.NoError(t, repo.Upsert(context.Background(), svc.storageKey(1), []byte("{not json"), time.Now()))

	loaded, err := svc.Load(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectPackage, loaded.CurrentStep)
	assert.Equal(t, domain.DefaultPackageID, loaded.SelectedPackageID)
}

func TestLoad_CompletedStepNotRestored(t *testing.T) {
	repo := newMemDraftRepo()
	svc := newTestService(repo, &mockCanceller{})

	payload := []byte(`{"currentStep":"completed","selectedPackage":"half-day","selectedAddOns":[],"bookingData":{},"timestamp":0}`)
	require.NoError(t, repo.Upsert(context.Background(), svc.storageKey(1), payload, time.Now()))

	loaded, err := svc.Load(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectPackage, loaded.CurrentStep)
	assert.Equal(t, "half-day", loaded.SelectedPackageID)
}

func TestBack_FromFirstStep(t *testing.T) {
	svc := newTestService(newMemDraftRepo(), &mockCanceller{})

	_, err := svc.Back(context.Background(), 1)

	assert.ErrorIs(t, err, ErrAlreadyAtFirstStep)
}

func TestBack_MovesToPreviousStep(t *testing.T) {
	repo := newMemDraftRepo()
	svc := newTestService(repo, &mockCanceller{})

	state := domain.NewWizardState()
	state.CurrentStep = domain.StepSelectAddOns
	require.NoError(t, svc.Save(context.Background(), 1, state))

	resp, err := svc.Back(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StepSelectDateTime), resp.CurrentStep)
}

func TestCancel_ResetsAndCancelsRedirect(t *testing.T) {
	repo := newMemDraftRepo()
	canceller := &mockCanceller{}
	svc := newTestService(repo, canceller)

	_, err := svc.Update(context.Background(), 1, &models.UpdateWizardRequest{
		SelectedPackage: ptr.Ptr("cinema-pro"),
	})
	require.NoError(t, err)

	resp, err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StepSelectPackage), resp.CurrentStep)
	assert.Equal(t, domain.DefaultPackageID, resp.SelectedPackage)
	assert.Empty(t, repo.drafts)
	assert.Equal(t, []int64{1}, canceller.cancelled)
}
