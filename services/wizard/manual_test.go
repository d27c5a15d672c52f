package wizard

import (
	"testing"

	"goldenbay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validManualEntry() ManualEntry {
	return ManualEntry{
		Customer: models.CustomerDetails{Name: "Mr Tan", Contact: "+65 8111 2222", Pax: 6},
		Date:     "2026-09-05",
		Session:  models.SessionDinner,
		Time:     "19:00:00",
		RoomID:   4,
		Source:   models.SourcePhone,
	}
}

func TestBuildManualPayload(t *testing.T) {
	payload, err := BuildManualPayload(testWindows, validManualEntry())
	require.NoError(t, err)

	assert.Equal(t, "Mr Tan", payload.CustomerName)
	assert.Equal(t, "2026-09-05", payload.Date)
	assert.Equal(t, 4, payload.DiningArea)
	// Staff entries are confirmed on creation, not pending.
	assert.Equal(t, models.StatusConfirmed, payload.Status)
	assert.Equal(t, models.SourcePhone, payload.Source)
}

func TestBuildManualPayloadValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ManualEntry)
	}{
		{"missing name", func(e *ManualEntry) { e.Customer.Name = "" }},
		{"missing contact", func(e *ManualEntry) { e.Customer.Contact = "" }},
		{"zero guests", func(e *ManualEntry) { e.Customer.Pax = 0 }},
		{"bad date", func(e *ManualEntry) { e.Date = "05/09/2026" }},
		{"unknown session", func(e *ManualEntry) { e.Session = "SUPPER" }},
		{"time outside window", func(e *ManualEntry) { e.Time = "23:00:00" }},
		{"lunch slot on dinner entry", func(e *ManualEntry) { e.Time = "12:00:00" }},
		{"no room", func(e *ManualEntry) { e.RoomID = 0 }},
		{"web is not a manual source", func(e *ManualEntry) { e.Source = models.SourceWeb }},
		{"unknown source", func(e *ManualEntry) { e.Source = "CARRIER_PIGEON" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := validManualEntry()
			tc.mutate(&entry)
			_, err := BuildManualPayload(testWindows, entry)
			assert.True(t, IsFlowError(err))
		})
	}
}
