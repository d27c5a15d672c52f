package models

// Reservation status values as understood by the upstream backend.
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusSeated    = "SEATED"
	StatusCompleted = "COMPLETED"
	StatusNoShow    = "NO_SHOW"
	StatusCancelled = "CANCELLED"
)

// Booking source values. Customer self-service is always WEB; staff manual
// entry records how the booking actually arrived.
const (
	SourceWeb    = "WEB"
	SourceWalkIn = "WALK_IN"
	SourcePhone  = "PHONE"
	SourceSocial = "SOCIAL"
)

// ManualSources are the sources staff may tag on a manual entry.
var ManualSources = []string{SourcePhone, SourceSocial, SourceWalkIn}

// ReservationPayload is the create-booking request body, using the upstream's
// field names. Date must be zero-padded YYYY-MM-DD.
type ReservationPayload struct {
	CustomerName    string         `json:"customer_name"`
	CustomerContact string         `json:"customer_contact"`
	CustomerEmail   string         `json:"customer_email,omitempty"`
	Date            string         `json:"date"`
	Session         ServiceSession `json:"session"`
	Time            string         `json:"time"`
	Pax             int            `json:"pax"`
	DiningArea      int            `json:"dining_area"`
	SpecialRequest  string         `json:"special_request,omitempty"`
	Status          string         `json:"status"`
	Source          string         `json:"source"`
}

// Reservation is a booking record as returned by the manage endpoints.
type Reservation struct {
	ID              int            `json:"id"`
	CustomerName    string         `json:"customer_name"`
	CustomerContact string         `json:"customer_contact"`
	CustomerEmail   string         `json:"customer_email,omitempty"`
	Date            string         `json:"date"`
	Session         ServiceSession `json:"session"`
	Time            string         `json:"time"`
	Pax             int            `json:"pax"`
	DiningArea      int            `json:"dining_area"`
	RoomName        string         `json:"room_name,omitempty"`
	SpecialRequest  string         `json:"special_request,omitempty"`
	Status          string         `json:"status"`
	Source          string         `json:"source,omitempty"`
	CreatedAt       string         `json:"created_at,omitempty"`
	UpdatedAt       string         `json:"updated_at,omitempty"`
}

// ReservationPatch carries the fields staff may change on an existing booking.
// Nil fields are omitted from the upstream PATCH.
type ReservationPatch struct {
	Status     *string         `json:"status,omitempty"`
	Date       *string         `json:"date,omitempty"`
	Session    *ServiceSession `json:"session,omitempty"`
	Time       *string         `json:"time,omitempty"`
	Pax        *int            `json:"pax,omitempty"`
	DiningArea *int            `json:"dining_area,omitempty"`
}

// TimeSlot is one bookable arrival time: a machine value ("17:30:00") and a
// 12-hour display label ("5:30 PM").
type TimeSlot struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
