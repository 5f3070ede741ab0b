package domain

import (
	"time"

	"github.com/knows-studios/KNS-BookingService/pkg/types"
)

// WizardStep represents a step of the booking wizard
type WizardStep string

const (
	StepSelectPackage  WizardStep = "select_package"
	StepSelectDateTime WizardStep = "select_datetime"
	StepSelectAddOns   WizardStep = "select_addons"
	StepEnterDetails   WizardStep = "enter_details"
	StepCompleted      WizardStep = "completed"
)

// StepOrder фиксированный порядок шагов мастера бронирования
var StepOrder = []WizardStep{
	StepSelectPackage,
	StepSelectDateTime,
	StepSelectAddOns,
	StepEnterDetails,
	StepCompleted,
}

// IsValid returns true if the step is one of the known wizard steps
func (s WizardStep) IsValid() bool {
	for _, step := range StepOrder {
		if s == step {
			return true
		}
	}
	return false
}

// Next returns the step following s, or s itself if s is the last step.
func (s WizardStep) Next() WizardStep {
	for i, step := range StepOrder {
		if s == step && i < len(StepOrder)-1 {
			return StepOrder[i+1]
		}
	}
	return s
}

// Prev returns the step preceding s, or s itself if s is the first step.
func (s WizardStep) Prev() WizardStep {
	for i, step := range StepOrder {
		if s == step && i > 0 {
			return StepOrder[i-1]
		}
	}
	return s
}

// IsFirst returns true for the initial wizard step
func (s WizardStep) IsFirst() bool {
	return s == StepOrder[0]
}

// ContactDetails holds the customer contact fields collected on the details step
type ContactDetails struct {
	Name               string
	Email              string
	Phone              string
	ProjectDescription string
}

// WizardState is the mutable, in-progress booking selection.
// It is mirrored to the draft store on every change and discarded
// when the flow completes or is cancelled.
//
// Invariants:
//   - SelectedPackageID always holds a known package id (defaults to DefaultPackageID);
//   - SelectedAddOnIDs is a subset of the known add-on ids;
//   - CurrentStep advances only via a successful Continue and regresses only via Back.
type WizardState struct {
	CurrentStep       WizardStep
	SelectedDate      *time.Time
	SelectedSlot      *types.TimeString
	SelectedPackageID string
	SelectedAddOnIDs  []string
	Contact           ContactDetails
}

// NewWizardState returns the default wizard state.
// Package selection has a default; date and time have none.
func NewWizardState() *WizardState {
	return &WizardState{
		CurrentStep:       StepSelectPackage,
		SelectedPackageID: DefaultPackageID,
		SelectedAddOnIDs:  []string{},
	}
}

// HasDateTime returns true when both a date and a time slot are selected
func (s *WizardState) HasDateTime() bool {
	return s.SelectedDate != nil && s.SelectedSlot != nil && !s.SelectedSlot.IsZero()
}

// HasContactDetails returns true when all required contact fields are non-empty
func (s *WizardState) HasContactDetails() bool {
	return s.Contact.Name != "" && s.Contact.Email != "" && s.Contact.Phone != ""
}

// HasAddOn returns true if the add-on id is already selected
func (s *WizardState) HasAddOn(id string) bool {
	for _, selected := range s.SelectedAddOnIDs {
		if selected == id {
			return true
		}
	}
	return false
}

// Reset returns the state to defaults in place
func (s *WizardState) Reset() {
	*s = *NewWizardState()
}
