package wizard

import (
	"time"

	"goldenbay/models"
)

// ManualEntry is the staff-privileged booking creation path: it skips the
// step flow, records how the booking arrived, and goes straight to CONFIRMED.
type ManualEntry struct {
	Customer models.CustomerDetails
	Date     string
	Session  models.ServiceSession
	Time     string
	RoomID   int
	Source   string
}

// BuildManualPayload validates a manual entry and assembles the upstream
// payload. The same slot windows as the customer wizard apply.
func BuildManualPayload(windows SlotWindows, entry ManualEntry) (models.ReservationPayload, error) {
	if err := validateCustomer(entry.Customer); err != nil {
		return models.ReservationPayload{}, err
	}
	parsed, err := time.Parse(dateLayout, entry.Date)
	if err != nil {
		return models.ReservationPayload{}, NewValidationError("date must be formatted YYYY-MM-DD")
	}
	if !entry.Session.Valid() {
		return models.ReservationPayload{}, NewValidationError("session must be LUNCH or DINNER")
	}
	if !windows.Contains(entry.Session, entry.Time) {
		return models.ReservationPayload{}, NewValidationError("please select a valid arrival time")
	}
	if entry.RoomID == 0 {
		return models.ReservationPayload{}, NewValidationError("please select a room or dining area")
	}
	if !validManualSource(entry.Source) {
		return models.ReservationPayload{}, NewValidationError("booking source must be PHONE, SOCIAL or WALK_IN")
	}

	return models.ReservationPayload{
		CustomerName:    entry.Customer.Name,
		CustomerContact: entry.Customer.Contact,
		CustomerEmail:   entry.Customer.Email,
		Date:            parsed.Format(dateLayout),
		Session:         entry.Session,
		Time:            entry.Time,
		Pax:             entry.Customer.Pax,
		DiningArea:      entry.RoomID,
		SpecialRequest:  entry.Customer.Message,
		Status:          models.StatusConfirmed,
		Source:          entry.Source,
	}, nil
}

func validManualSource(source string) bool {
	for _, s := range models.ManualSources {
		if source == s {
			return true
		}
	}
	return false
}
