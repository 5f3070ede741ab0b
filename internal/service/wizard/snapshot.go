package wizard

import (
	"encoding/json"
	"time"

	"github.com/knows-studios/KNS-BookingService/internal/domain"
	"github.com/knows-studios/KNS-BookingService/pkg/types"
)

// draftSnapshot сериализованная форма черновика мастера.
//
// Форма повторяет исторический контракт черновика фронтенда
// (selectedDate/selectedTimeSlot/selectedPackage/selectedAddOns/bookingData/timestamp).
// Поле currentStep добавлено на сервере: между stateless HTTP запросами
// позицию мастера больше негде хранить.
type draftSnapshot struct {
	CurrentStep      string       `json:"currentStep"`
	SelectedDate     *string      `json:"selectedDate,omitempty"`     // YYYY-MM-DD
	SelectedTimeSlot *string      `json:"selectedTimeSlot,omitempty"` // HH:MM
	SelectedPackage  string       `json:"selectedPackage"`
	SelectedAddOns   []string     `json:"selectedAddOns"`
	BookingData      snapshotData `json:"bookingData"`
	Timestamp        int64        `json:"timestamp"` // unix millis
}

type snapshotData struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	ProjectDescription string `json:"projectDescription"`
}

// encodeSnapshot сериализует состояние мастера с отметкой времени снятия
func encodeSnapshot(state *domain.WizardState, now time.Time) ([]byte, error) {
	snapshot := draftSnapshot{
		CurrentStep:     string(state.CurrentStep),
		SelectedPackage: state.SelectedPackageID,
		SelectedAddOns:  state.SelectedAddOnIDs,
		BookingData: snapshotData{
			Name:               state.Contact.Name,
			Email:              state.Contact.Email,
			Phone:              state.Contact.Phone,
			ProjectDescription: state.Contact.ProjectDescription,
		},
		Timestamp: now.UnixMilli(),
	}

	if state.SelectedDate != nil {
		date := state.SelectedDate.Format(domain.DateFormat)
		snapshot.SelectedDate = &date
	}
	if state.SelectedSlot != nil {
		slot := state.SelectedSlot.String()
		snapshot.SelectedTimeSlot = &slot
	}

	return json.Marshal(snapshot)
}

// decodeSnapshot восстанавливает состояние мастера из сохраненного черновика.
//
// Неразбираемые или неожиданные значения не являются ошибкой уровня сервиса:
// вызывающая сторона при err != nil откатывается к состоянию по умолчанию.
// Неизвестные идентификаторы каталога отбрасываются молча, чтобы устаревший
// черновик после обновления каталога не ломал мастер.
func decodeSnapshot(payload []byte, catalog CatalogReader) (*domain.WizardState, error) {
	var snapshot draftSnapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, err
	}

	state := domain.NewWizardState()

	if step := domain.WizardStep(snapshot.CurrentStep); step.IsValid() && step != domain.StepCompleted {
		state.CurrentStep = step
	}

	if snapshot.SelectedDate != nil {
		if date, err := time.Parse(domain.DateFormat, *snapshot.SelectedDate); err == nil {
			state.SelectedDate = &date
		}
	}

	if snapshot.SelectedTimeSlot != nil {
		if slot, err := types.NewTimeStringFromString(*snapshot.SelectedTimeSlot); err == nil {
			state.SelectedSlot = &slot
		}
	}

	// Неизвестный пакет не затирает выбор по умолчанию
	if _, ok := catalog.PackageByID(snapshot.SelectedPackage); ok {
		state.SelectedPackageID = snapshot.SelectedPackage
	}

	// Инвариант: выбранные допуслуги - подмножество известных
	addOns := make([]string, 0, len(snapshot.SelectedAddOns))
	for _, id := range snapshot.SelectedAddOns {
		if _, ok := catalog.AddOnByID(id); ok && !contains(addOns, id) {
			addOns = append(addOns, id)
		}
	}
	state.SelectedAddOnIDs = addOns

	state.Contact = domain.ContactDetails{
		Name:               snapshot.BookingData.Name,
		Email:              snapshot.BookingData.Email,
		Phone:              snapshot.BookingData.Phone,
		ProjectDescription: snapshot.BookingData.ProjectDescription,
	}

	return state, nil
}

func contains(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
