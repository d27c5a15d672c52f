package wizard

import (
	"fmt"

	"goldenbay/config"
	"goldenbay/models"
)

// SlotWindows are the service-hour windows time slots are generated from.
// There is exactly one generator: the customer wizard and staff manual entry
// share it, so the two can never drift apart.
type SlotWindows struct {
	LunchStart  int
	LunchEnd    int
	DinnerStart int
	DinnerEnd   int
}

// WindowsFromConfig reads the configured service hours.
func WindowsFromConfig() SlotWindows {
	return SlotWindows{
		LunchStart:  config.AppConfig.LunchStartHour,
		LunchEnd:    config.AppConfig.LunchEndHour,
		DinnerStart: config.AppConfig.DinnerStartHour,
		DinnerEnd:   config.AppConfig.DinnerEndHour,
	}
}

// Generate produces the ordered bookable arrival times for a service session
// at 30-minute granularity. The final slot lands exactly on the end hour.
func (w SlotWindows) Generate(session models.ServiceSession) []models.TimeSlot {
	start, end := w.LunchStart, w.LunchEnd
	if session == models.SessionDinner {
		start, end = w.DinnerStart, w.DinnerEnd
	}

	var slots []models.TimeSlot
	for hour := start; hour <= end; hour++ {
		displayHour := hour
		if hour > 12 {
			displayHour = hour - 12
		}
		ampm := "AM"
		if hour >= 12 {
			ampm = "PM"
		}
		slots = append(slots, models.TimeSlot{
			Value: fmt.Sprintf("%d:00:00", hour),
			Label: fmt.Sprintf("%d:00 %s", displayHour, ampm),
		})
		if hour != end {
			slots = append(slots, models.TimeSlot{
				Value: fmt.Sprintf("%d:30:00", hour),
				Label: fmt.Sprintf("%d:30 %s", displayHour, ampm),
			})
		}
	}
	return slots
}

// Contains reports whether value is a bookable slot for the session.
func (w SlotWindows) Contains(session models.ServiceSession, value string) bool {
	for _, slot := range w.Generate(session) {
		if slot.Value == value {
			return true
		}
	}
	return false
}
