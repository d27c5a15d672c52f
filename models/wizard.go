package models

import "time"

// WizardStep identifies where a visitor is in the reservation flow.
type WizardStep string

const (
	StepDateAndExperience WizardStep = "DATE_EXPERIENCE"
	StepRoomSelection     WizardStep = "ROOM_SELECTION"
	StepContactDetails    WizardStep = "CONTACT_DETAILS"
	StepAlternateChannel  WizardStep = "ALTERNATE_CHANNEL"
	StepSubmitted         WizardStep = "SUBMITTED"
)

// CustomerDetails are the fields the visitor fills in on the final step.
type CustomerDetails struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email,omitempty"`
	Pax     int    `json:"pax"`
	Message string `json:"message,omitempty"`
}

// BookingDraft is the in-progress, not-yet-submitted reservation state held
// across wizard steps.
type BookingDraft struct {
	Date           string          `json:"date"` // YYYY-MM-DD
	Session        ServiceSession  `json:"session"`
	BookingType    AreaType        `json:"bookingType"`
	SelectedRoomID int             `json:"selectedRoomId,omitempty"`
	SelectedTime   string          `json:"selectedTime,omitempty"`
	Customer       CustomerDetails `json:"customer"`
}

// WizardSession holds a visitor's wizard state between requests.
//
// Rooms is the availability snapshot last committed for FetchKey; a room
// selection is only meaningful for the date/session pair the snapshot was
// fetched under. FetchSeq orders fetches so a slow response can never
// overwrite a newer one.
type WizardSession struct {
	ID    string       `json:"id"`
	Step  WizardStep   `json:"step"`
	Draft BookingDraft `json:"draft"`

	Rooms    []DiningArea `json:"rooms,omitempty"`
	FetchKey string       `json:"fetchKey,omitempty"`
	FetchSeq uint64       `json:"fetchSeq"`
	Fetching bool         `json:"fetching"`

	SubmitError string    `json:"submitError,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AvailabilityKey builds the request key for an availability fetch.
func AvailabilityKey(date string, session ServiceSession) string {
	return date + "|" + string(session)
}
