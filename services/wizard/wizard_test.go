package wizard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"goldenbay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBackend struct {
	mu          sync.Mutex
	rooms       []models.DiningArea
	availErr    error
	availCalls  int
	createErr   error
	createCalls int
	lastPayload models.ReservationPayload

	// onAvailability, when set, overrides rooms/availErr per call number.
	onAvailability func(call int) ([]models.DiningArea, error)
}

func (f *fakeBackend) CheckAvailability(ctx context.Context, date string, session models.ServiceSession) ([]models.DiningArea, error) {
	f.mu.Lock()
	f.availCalls++
	call := f.availCalls
	hook := f.onAvailability
	rooms, err := f.rooms, f.availErr
	f.mu.Unlock()

	if hook != nil {
		return hook(call)
	}
	return rooms, err
}

func (f *fakeBackend) CreateReservation(ctx context.Context, payload models.ReservationPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	f.lastPayload = payload
	return f.createErr
}

func sampleRooms() []models.DiningArea {
	return []models.DiningArea{
		{ID: 1, Name: "VIP Room 1", AreaType: models.AreaVIP, Capacity: 10, IsAvailable: true},
		{ID: 2, Name: "VIP Room 2", AreaType: models.AreaVIP, Capacity: 12, IsAvailable: false},
		{ID: 3, Name: "Main Hall", AreaType: models.AreaHall, Capacity: 40, IsAvailable: true},
	}
}

func newTestService(backend *fakeBackend) *DefaultService {
	return &DefaultService{
		Backend: backend,
		Store:   NewMemorySessionStore(),
		Windows: testWindows,
		Logger:  zap.NewNop(),
	}
}

func TestStartDefaults(t *testing.T) {
	svc := newTestService(&fakeBackend{})

	session, err := svc.Start(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, models.StepDateAndExperience, session.Step)
	assert.Equal(t, time.Now().Format("2006-01-02"), session.Draft.Date)
	assert.Equal(t, models.SessionLunch, session.Draft.Session)
	assert.Equal(t, models.AreaVIP, session.Draft.BookingType)
	assert.Equal(t, 2, session.Draft.Customer.Pax)
}

func TestGetMissingSession(t *testing.T) {
	svc := newTestService(&fakeBackend{})

	_, err := svc.Get(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSetPreferencesValidation(t *testing.T) {
	svc := newTestService(&fakeBackend{})
	session, err := svc.Start(context.Background())
	require.NoError(t, err)

	_, err = svc.SetPreferences(context.Background(), session.ID, "31/08/2026", models.SessionLunch, models.AreaVIP)
	assert.True(t, IsFlowError(err))

	_, err = svc.SetPreferences(context.Background(), session.ID, "2026-09-01", "BRUNCH", models.AreaVIP)
	assert.True(t, IsFlowError(err))

	_, err = svc.SetPreferences(context.Background(), session.ID, "2026-09-01", models.SessionLunch, "PATIO")
	assert.True(t, IsFlowError(err))
}

func TestSetPreferencesOnlyOnFirstStep(t *testing.T) {
	backend := &fakeBackend{rooms: sampleRooms()}
	svc := newTestService(backend)
	session, err := svc.Start(context.Background())
	require.NoError(t, err)

	_, err = svc.Next(context.Background(), session.ID)
	require.NoError(t, err)

	_, err = svc.SetPreferences(context.Background(), session.ID, "2026-09-01", models.SessionDinner, models.AreaVIP)
	assert.True(t, IsFlowError(err))
}

func TestNextFetchesAvailability(t *testing.T) {
	backend := &fakeBackend{rooms: sampleRooms()}
	svc := newTestService(backend)
	session, err := svc.Start(context.Background())
	require.NoError(t, err)

	session, err = svc.Next(context.Background(), session.ID)
	require.NoError(t, err)

	assert.Equal(t, models.StepRoomSelection, session.Step)
	assert.Len(t, session.Rooms, 3)
	assert.Equal(t, models.AvailabilityKey(session.Draft.Date, session.Draft.Session), session.FetchKey)
	assert.False(t, session.Fetching)
	assert.Equal(t, 1, backend.availCalls)
}

func TestNextFetchFailureStillAdvances(t *testing.T) {
	backend := &fakeBackend{availErr: errors.New("connection refused")}
	svc := newTestService(backend)
	session, err := svc.Start(context.Background())
	require.NoError(t, err)

	session, err = svc.Next(context.Background(), session.ID)
	require.Error(t, err)
	require.NotNil(t, session)

	assert.Equal(t, models.StepRoomSelection, session.Step)
	assert.Empty(t, session.Rooms)
	assert.Empty(t, session.FetchKey)
	assert.False(t, session.Fetching)
}

func TestSelectRoom(t *testing.T) {
	backend := &fakeBackend{rooms: sampleRooms()}
	svc := newTestService(backend)
	session, err := svc.Start(context.Background())
	require.NoError(t, err)
	_, err = svc.Next(context.Background(), session.ID)
	require.NoError(t, err)

	// Unavailable room.
	_, err = svc.SelectRoom(context.Background(), session.ID, 2)
	assert.True(t, IsFlowError(err))

	// Available but wrong booking type for a VIP draft.
	_, err = svc.SelectRoom(context.Background(), session.ID, 3)
	assert.True(t, IsFlowError(err))

	// Not in the snapshot at all.
	_, err = svc.SelectRoom(context.Background(), session.ID, 99)
	assert.True(t, IsFlowError(err))

	updated, err := svc.SelectRoom(context.Background(), session.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Draft.SelectedRoomID)
}

func TestSelectRoomRejectsStaleSnapshot(t *testing.T) {
	svc := newTestService(&fakeBackend{})
	session := &models.WizardSession{
		ID:   "stale",
		Step: models.StepRoomSelection,
		Draft: models.BookingDraft{
			Date:        "2026-09-02",
			Session:     models.SessionDinner,
			BookingType: models.AreaVIP,
		},
		Rooms:    sampleRooms(),
		FetchKey: models.AvailabilityKey("2026-09-01", models.SessionDinner),
	}
	require.NoError(t, svc.Store.Save(context.Background(), session))

	_, err := svc.SelectRoom(context.Background(), "stale", 1)
	assert.True(t, IsFlowError(err))
}

func TestChangingDateInvalidatesSelection(t *testing.T) {
	backend := &fakeBackend{rooms: sampleRooms()}
	svc := newTestService(backend)
	session, err := svc.Start(context.Background())
	require.NoError(t, err)
	_, err = svc.Next(context.Background(), session.ID)
	require.NoError(t, err)
	_, err = svc.SelectRoom(context.Background(), session.ID, 1)
	require.NoError(t, err)
	_, err = svc.Back(context.Background(), session.ID)
	require.NoError(t, err)

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	updated, err := svc.SetPreferences(context.Background(), session.ID, tomorrow, session.Draft.Session, session.Draft.BookingType)
	require.NoError(t, err)

	assert.Zero(t, updated.Draft.SelectedRoomID)
	assert.Empty(t, updated.Rooms)
	assert.Empty(t, updated.FetchKey)
}

func TestChangingServiceSessionClearsTime(t *testing.T) {
	backend := &fakeBackend{rooms: sampleRooms()}
	svc := newTestService(backend)
	session, err := svc.Start(context.Background())
	require.NoError(t, err)
	_, err = svc.Next(context.Background(), session.ID)
	require.NoError(t, err)
	_, err = svc.SelectTime(context.Background(), session.ID, "12:00:00")
	require.NoError(t, err)
	_, err = svc.Back(context.Background(), session.ID)
	require.NoError(t, err)

	updated, err := svc.SetPreferences(context.Background(), session.ID, session.Draft.Date, models.SessionDinner, session.Draft.BookingType)
	require.NoError(t, err)

	// A lunch slot makes no sense for dinner.
	assert.Empty(t, updated.Draft.SelectedTime)
	assert.Zero(t, updated.Draft.SelectedRoomID)
}

func TestChangingBookingTypeKeepsSnapshot(t *testing.T) {
	backend := &fakeBackend{rooms: sampleRooms()}
	svc := newTestService(backend)
	session, err := svc.Start(context.Background())
	require.NoError(t, err)
	_, err = svc.Next(context.Background(), session.ID)
	require.NoError(t, err)
	_, err = svc.SelectRoom(context.Background(), session.ID, 1)
	require.NoError(t, err)
	_, err = svc.Back(context.Background(), session.ID)
	require.NoError(t, err)

	updated, err := svc.SetPreferences(context.Background(), session.ID, session.Draft.Date, session.Draft.Session, models.AreaHall)
	require.NoError(t, err)

	// Same date and session, so the snapshot is still valid; only the room
	// choice is gone.
	assert.Zero(t, updated.Draft.SelectedRoomID)
	assert.Len(t, updated.Rooms, 3)
	assert.NotEmpty(t, updated.FetchKey)
}

func TestSelectTimeValidation(t *testing.T) {
	backend := &fakeBackend{rooms: sampleRooms()}
	svc := newTestService(backend)
	session, err := svc.Start(context.Background())
	require.NoError(t, err)

	// Not reachable on step 1.
	_, err = svc.SelectTime(context.Background(), session.ID, "12:00:00")
	assert.True(t, IsFlowError(err))

	_, err = svc.Next(context.Background(), session.ID)
	require.NoError(t, err)

	_, err = svc.SelectTime(context.Background(), session.ID, "19:00:00")
	assert.True(t, IsFlowError(err), "dinner slot on a lunch draft")

	updated, err := svc.SelectTime(context.Background(), session.ID, "12:30:00")
	require.NoError(t, err)
	assert.Equal(t, "12:30:00", updated.Draft.SelectedTime)
}

func TestToContactRequiresRoom(t *testing.T) {
	backend := &fakeBackend{rooms: sampleRooms()}
	svc := newTestService(backend)
	session, err := svc.Start(context.Background())
	require.NoError(t, err)
	_, err = svc.Next(context.Background(), session.ID)
	require.NoError(t, err)

	_, err = svc.ToContact(context.Background(), session.ID)
	assert.True(t, IsFlowError(err))

	_, err = svc.SelectRoom(context.Background(), session.ID, 1)
	require.NoError(t, err)
	updated, err := svc.ToContact(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepContactDetails, updated.Step)
}

func driveToContact(t *testing.T, svc *DefaultService) string {
	t.Helper()
	ctx := context.Background()
	session, err := svc.Start(ctx)
	require.NoError(t, err)
	_, err = svc.Next(ctx, session.ID)
	require.NoError(t, err)
	_, err = svc.SelectRoom(ctx, session.ID, 1)
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, session.ID, "12:00:00")
	require.NoError(t, err)
	_, err = svc.ToContact(ctx, session.ID)
	require.NoError(t, err)
	return session.ID
}

func TestSubmitValidationBlocksBackend(t *testing.T) {
	backend := &fakeBackend{rooms: sampleRooms()}
	svc := newTestService(backend)
	id := driveToContact(t, svc)

	_, err := svc.Submit(context.Background(), id, models.CustomerDetails{Contact: "+65 9000 0000", Pax: 2})
	assert.True(t, IsFlowError(err), "missing name")

	_, err = svc.Submit(context.Background(), id, models.CustomerDetails{Name: "Mei Lin", Pax: 2})
	assert.True(t, IsFlowError(err), "missing contact")

	_, err = svc.Submit(context.Background(), id, models.CustomerDetails{Name: "Mei Lin", Contact: "+65 9000 0000", Pax: 0})
	assert.True(t, IsFlowError(err), "zero guests")

	assert.Zero(t, backend.createCalls, "validation failures must not reach the backend")
}

func TestSubmitBuildsPayload(t *testing.T) {
	backend := &fakeBackend{rooms: sampleRooms()}
	svc := newTestService(backend)
	id := driveToContact(t, svc)

	customer := models.CustomerDetails{
		Name:    "Mei Lin",
		Contact: "+65 9000 0000",
		Email:   "mei@example.com",
		Pax:     4,
		Message: "window seat please",
	}
	session, err := svc.Submit(context.Background(), id, customer)
	require.NoError(t, err)

	assert.Equal(t, models.StepSubmitted, session.Step)
	assert.Equal(t, 1, backend.createCalls)

	payload := backend.lastPayload
	assert.Equal(t, "Mei Lin", payload.CustomerName)
	assert.Equal(t, "+65 9000 0000", payload.CustomerContact)
	assert.Equal(t, 4, payload.Pax)
	assert.Equal(t, 1, payload.DiningArea)
	assert.Equal(t, "12:00:00", payload.Time)
	assert.Equal(t, "window seat please", payload.SpecialRequest)
	assert.Equal(t, models.StatusPending, payload.Status)
	assert.Equal(t, models.SourceWeb, payload.Source)
}

func TestSubmitUpstreamFailureIsResubmittable(t *testing.T) {
	backend := &fakeBackend{rooms: sampleRooms(), createErr: errors.New("This room was just booked for that session")}
	svc := newTestService(backend)
	id := driveToContact(t, svc)

	customer := models.CustomerDetails{Name: "Mei Lin", Contact: "+65 9000 0000", Pax: 2}
	session, err := svc.Submit(context.Background(), id, customer)
	require.Error(t, err)
	require.NotNil(t, session)
	assert.Equal(t, models.StepContactDetails, session.Step)
	assert.Contains(t, session.SubmitError, "just booked")

	backend.mu.Lock()
	backend.createErr = nil
	backend.mu.Unlock()

	session, err = svc.Submit(context.Background(), id, customer)
	require.NoError(t, err)
	assert.Equal(t, models.StepSubmitted, session.Step)
	assert.Empty(t, session.SubmitError)
	assert.Equal(t, 2, backend.createCalls)
}

func TestRefreshClearsUnavailableSelection(t *testing.T) {
	backend := &fakeBackend{rooms: sampleRooms()}
	svc := newTestService(backend)
	session, err := svc.Start(context.Background())
	require.NoError(t, err)
	_, err = svc.Next(context.Background(), session.ID)
	require.NoError(t, err)
	_, err = svc.SelectRoom(context.Background(), session.ID, 1)
	require.NoError(t, err)

	taken := sampleRooms()
	taken[0].IsAvailable = false
	backend.mu.Lock()
	backend.rooms = taken
	backend.mu.Unlock()

	updated, err := svc.RefreshAvailability(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Zero(t, updated.Draft.SelectedRoomID, "room taken in the meantime must be deselected")
}

func TestStaleFetchNeverOverwritesNewer(t *testing.T) {
	oldRooms := []models.DiningArea{{ID: 1, Name: "VIP Room 1", AreaType: models.AreaVIP, IsAvailable: true}}
	newRooms := []models.DiningArea{
		{ID: 1, Name: "VIP Room 1", AreaType: models.AreaVIP, IsAvailable: false},
		{ID: 2, Name: "VIP Room 2", AreaType: models.AreaVIP, IsAvailable: true},
	}

	started := make(chan struct{})
	release := make(chan struct{})
	backend := &fakeBackend{}
	backend.onAvailability = func(call int) ([]models.DiningArea, error) {
		if call == 1 {
			close(started)
			<-release
			return oldRooms, nil
		}
		return newRooms, nil
	}

	svc := newTestService(backend)
	session, err := svc.Start(context.Background())
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	var slow *models.WizardSession
	go func() {
		defer wg.Done()
		slow, _ = svc.RefreshAvailability(context.Background(), session.ID)
	}()
	<-started

	fast, err := svc.RefreshAvailability(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Len(t, fast.Rooms, 2)

	close(release)
	wg.Wait()

	// The slow response arrived after a newer fetch committed; its result is
	// dropped and the caller sees the current snapshot.
	require.NotNil(t, slow)
	assert.Len(t, slow.Rooms, 2)

	final, err := svc.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Len(t, final.Rooms, 2)
}

func TestInFlightFetchDroppedWhenDraftMoves(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	backend := &fakeBackend{}
	backend.onAvailability = func(call int) ([]models.DiningArea, error) {
		close(started)
		<-release
		return sampleRooms(), nil
	}

	svc := newTestService(backend)
	session, err := svc.Start(context.Background())
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = svc.RefreshAvailability(context.Background(), session.ID)
	}()
	<-started

	// Date changes while the fetch is in flight: the response is for a
	// date/session pair the visitor no longer wants.
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	_, err = svc.SetPreferences(context.Background(), session.ID, tomorrow, models.SessionDinner, models.AreaVIP)
	require.NoError(t, err)

	close(release)
	wg.Wait()

	final, err := svc.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Empty(t, final.Rooms)
	assert.Empty(t, final.FetchKey)
}

func TestAlternateChannelDetour(t *testing.T) {
	svc := newTestService(&fakeBackend{})
	session, err := svc.Start(context.Background())
	require.NoError(t, err)

	updated, err := svc.OpenAlternateChannel(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepAlternateChannel, updated.Step)

	// No form actions from the messaging view.
	_, err = svc.OpenAlternateChannel(context.Background(), session.ID)
	assert.True(t, IsFlowError(err))

	updated, err = svc.ReturnToForm(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepDateAndExperience, updated.Step)
}

func TestBackTransitions(t *testing.T) {
	backend := &fakeBackend{rooms: sampleRooms()}
	svc := newTestService(backend)
	session, err := svc.Start(context.Background())
	require.NoError(t, err)

	_, err = svc.Back(context.Background(), session.ID)
	assert.True(t, IsFlowError(err), "nothing before step 1")

	_, err = svc.Next(context.Background(), session.ID)
	require.NoError(t, err)
	updated, err := svc.Back(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepDateAndExperience, updated.Step)
}

func TestVisibleRoomsFilterByType(t *testing.T) {
	ws := &models.WizardSession{
		Draft: models.BookingDraft{BookingType: models.AreaVIP},
		Rooms: sampleRooms(),
	}
	visible := VisibleRooms(ws)
	require.Len(t, visible, 2)
	assert.Equal(t, "VIP Room 1", visible[0].Name)
	assert.False(t, visible[1].IsAvailable, "booked rooms stay listed, rendered disabled")

	ws.Draft.BookingType = models.AreaHall
	visible = VisibleRooms(ws)
	require.Len(t, visible, 1)
	assert.Equal(t, "Main Hall", visible[0].Name)
}
