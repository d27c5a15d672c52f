package wizard

import (
	"testing"

	"goldenbay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWindows = SlotWindows{LunchStart: 11, LunchEnd: 14, DinnerStart: 17, DinnerEnd: 21}

func TestGenerateDinnerSlots(t *testing.T) {
	slots := testWindows.Generate(models.SessionDinner)

	require.Len(t, slots, 9)
	assert.Equal(t, models.TimeSlot{Value: "17:00:00", Label: "5:00 PM"}, slots[0])
	assert.Equal(t, models.TimeSlot{Value: "17:30:00", Label: "5:30 PM"}, slots[1])
	assert.Equal(t, models.TimeSlot{Value: "18:00:00", Label: "6:00 PM"}, slots[2])
	assert.Equal(t, models.TimeSlot{Value: "20:30:00", Label: "8:30 PM"}, slots[7])

	// The last slot lands exactly on the end hour, no half-hour past it.
	assert.Equal(t, models.TimeSlot{Value: "21:00:00", Label: "9:00 PM"}, slots[8])
}

func TestGenerateLunchSlots(t *testing.T) {
	slots := testWindows.Generate(models.SessionLunch)

	require.Len(t, slots, 7)
	assert.Equal(t, models.TimeSlot{Value: "11:00:00", Label: "11:00 AM"}, slots[0])
	assert.Equal(t, models.TimeSlot{Value: "11:30:00", Label: "11:30 AM"}, slots[1])
	// Noon flips to PM without shifting the displayed hour.
	assert.Equal(t, models.TimeSlot{Value: "12:00:00", Label: "12:00 PM"}, slots[2])
	assert.Equal(t, models.TimeSlot{Value: "13:00:00", Label: "1:00 PM"}, slots[4])
	assert.Equal(t, models.TimeSlot{Value: "14:00:00", Label: "2:00 PM"}, slots[6])
}

func TestGenerateSlotsAreOrdered(t *testing.T) {
	for _, session := range []models.ServiceSession{models.SessionLunch, models.SessionDinner} {
		slots := testWindows.Generate(session)
		for i := 1; i < len(slots); i++ {
			assert.Less(t, slots[i-1].Value, slots[i].Value,
				"slots must be chronological")
		}
	}
}

func TestContains(t *testing.T) {
	assert.True(t, testWindows.Contains(models.SessionDinner, "19:30:00"))
	assert.True(t, testWindows.Contains(models.SessionDinner, "21:00:00"))
	assert.False(t, testWindows.Contains(models.SessionDinner, "21:30:00"))
	assert.False(t, testWindows.Contains(models.SessionDinner, "11:00:00"))
	assert.True(t, testWindows.Contains(models.SessionLunch, "11:00:00"))
	assert.False(t, testWindows.Contains(models.SessionLunch, "7:00 PM"))
	assert.False(t, testWindows.Contains(models.SessionLunch, ""))
}
