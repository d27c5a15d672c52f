// Package wizard implements the customer reservation flow as an explicit
// state machine: three form steps, an alternate messaging-channel detour, and
// a final submission against the upstream booking endpoint. Session state
// lives in Redis between requests; a room selection is only honoured for the
// date/session pair its availability snapshot was fetched under.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"goldenbay/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Start creates a new wizard session with the flow defaults: today's date,
// lunch service, VIP experience, two guests.
func (s *DefaultService) Start(ctx context.Context) (*models.WizardSession, error) {
	session := &models.WizardSession{
		ID:   uuid.New().String(),
		Step: models.StepDateAndExperience,
		Draft: models.BookingDraft{
			Date:        time.Now().Format(dateLayout),
			Session:     models.SessionLunch,
			BookingType: models.AreaVIP,
			Customer:    models.CustomerDetails{Pax: 2},
		},
		CreatedAt: time.Now(),
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create wizard session: %w", err)
	}
	return session, nil
}

func (s *DefaultService) Get(ctx context.Context, id string) (*models.WizardSession, error) {
	return s.Store.Get(ctx, id)
}

// SetPreferences updates date, service session and booking type on step 1.
// Changing date or service session invalidates the availability snapshot and
// any room selected from it; changing the service session also clears the
// chosen arrival time, since slots differ between lunch and dinner.
func (s *DefaultService) SetPreferences(ctx context.Context, id, date string, serviceSession models.ServiceSession, bookingType models.AreaType) (*models.WizardSession, error) {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, NewValidationError("date must be formatted YYYY-MM-DD")
	}
	normalized := parsed.Format(dateLayout)
	if !serviceSession.Valid() {
		return nil, NewValidationError("session must be LUNCH or DINNER")
	}
	if !bookingType.Valid() {
		return nil, NewValidationError("booking type must be VIP or HALL")
	}

	return s.Store.Update(ctx, id, func(ws *models.WizardSession) error {
		if ws.Step != models.StepDateAndExperience {
			return NewTransitionError("date and experience can only change on the first step")
		}

		dateChanged := ws.Draft.Date != normalized
		sessionChanged := ws.Draft.Session != serviceSession
		typeChanged := ws.Draft.BookingType != bookingType

		ws.Draft.Date = normalized
		ws.Draft.Session = serviceSession
		ws.Draft.BookingType = bookingType

		if dateChanged || sessionChanged {
			ws.Rooms = nil
			ws.FetchKey = ""
			ws.Draft.SelectedRoomID = 0
		}
		if sessionChanged {
			ws.Draft.SelectedTime = ""
		}
		if typeChanged {
			ws.Draft.SelectedRoomID = 0
		}
		return nil
	})
}

// Next advances from step 1 to room selection and triggers the availability
// fetch for the draft's date and service session.
func (s *DefaultService) Next(ctx context.Context, id string) (*models.WizardSession, error) {
	_, err := s.Store.Update(ctx, id, func(ws *models.WizardSession) error {
		if ws.Step != models.StepDateAndExperience {
			return NewTransitionError("already past the first step")
		}
		ws.Step = models.StepRoomSelection
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.RefreshAvailability(ctx, id)
}

// Back returns to the previous step. Room selection survives a step 3 -> 2
// return; returning from step 2 to step 1 preserves it too, until the visitor
// changes date or session.
func (s *DefaultService) Back(ctx context.Context, id string) (*models.WizardSession, error) {
	return s.Store.Update(ctx, id, func(ws *models.WizardSession) error {
		switch ws.Step {
		case models.StepRoomSelection:
			ws.Step = models.StepDateAndExperience
		case models.StepContactDetails:
			ws.Step = models.StepRoomSelection
		default:
			return NewTransitionError("nothing to go back to")
		}
		return nil
	})
}

// RefreshAvailability fetches the availability snapshot for the current
// draft. Responses commit last-request-wins: each fetch takes a sequence
// number, and a result is dropped if a newer fetch was issued or the draft's
// date/session moved on while the request was in flight.
func (s *DefaultService) RefreshAvailability(ctx context.Context, id string) (*models.WizardSession, error) {
	var (
		seq            uint64
		key            string
		date           string
		serviceSession models.ServiceSession
	)
	_, err := s.Store.Update(ctx, id, func(ws *models.WizardSession) error {
		ws.FetchSeq++
		ws.Fetching = true
		seq = ws.FetchSeq
		date = ws.Draft.Date
		serviceSession = ws.Draft.Session
		key = models.AvailabilityKey(date, serviceSession)
		return nil
	})
	if err != nil {
		return nil, err
	}

	rooms, fetchErr := s.Backend.CheckAvailability(ctx, date, serviceSession)
	if fetchErr != nil {
		session, err := s.Store.Update(ctx, id, func(ws *models.WizardSession) error {
			if ws.FetchSeq != seq {
				return ErrNoChange
			}
			ws.Fetching = false
			return nil
		})
		if err != nil {
			return nil, err
		}
		s.Logger.Warn("availability fetch failed",
			zap.String("wizardID", id), zap.String("key", key), zap.Error(fetchErr))
		return session, fmt.Errorf("failed to fetch availability: %w", fetchErr)
	}

	return s.Store.Update(ctx, id, func(ws *models.WizardSession) error {
		if ws.FetchSeq != seq {
			// A newer fetch owns the snapshot now.
			return ErrNoChange
		}
		if models.AvailabilityKey(ws.Draft.Date, ws.Draft.Session) != key {
			return ErrNoChange
		}
		ws.Rooms = rooms
		ws.FetchKey = key
		ws.Fetching = false
		if ws.Draft.SelectedRoomID != 0 && !selectable(rooms, ws.Draft.SelectedRoomID) {
			ws.Draft.SelectedRoomID = 0
		}
		return nil
	})
}

// SelectRoom records the visitor's room choice. The room must come from the
// current snapshot, be available, and match the chosen booking type.
func (s *DefaultService) SelectRoom(ctx context.Context, id string, roomID int) (*models.WizardSession, error) {
	return s.Store.Update(ctx, id, func(ws *models.WizardSession) error {
		if ws.Step != models.StepRoomSelection {
			return NewTransitionError("room selection happens on step 2")
		}
		if ws.FetchKey != models.AvailabilityKey(ws.Draft.Date, ws.Draft.Session) {
			return NewValidationError("availability is out of date, please re-check")
		}
		for _, room := range ws.Rooms {
			if room.ID != roomID {
				continue
			}
			if !room.IsAvailable {
				return NewValidationError(fmt.Sprintf("%s is already booked for this session", room.Name))
			}
			if room.AreaType != ws.Draft.BookingType {
				return NewValidationError(fmt.Sprintf("%s is not a %s area", room.Name, ws.Draft.BookingType))
			}
			ws.Draft.SelectedRoomID = roomID
			return nil
		}
		return NewValidationError("please select a room or dining area from the list")
	})
}

// SelectTime records the arrival time; it must be one of the generated slots
// for the draft's service session.
func (s *DefaultService) SelectTime(ctx context.Context, id, value string) (*models.WizardSession, error) {
	return s.Store.Update(ctx, id, func(ws *models.WizardSession) error {
		if ws.Step != models.StepRoomSelection && ws.Step != models.StepContactDetails {
			return NewTransitionError("arrival time is chosen after the first step")
		}
		if !s.Windows.Contains(ws.Draft.Session, value) {
			return NewValidationError("please select a valid arrival time")
		}
		ws.Draft.SelectedTime = value
		return nil
	})
}

// ToContact advances to the contact-details step. Unreachable without an
// available room selected from the most recent snapshot.
func (s *DefaultService) ToContact(ctx context.Context, id string) (*models.WizardSession, error) {
	return s.Store.Update(ctx, id, func(ws *models.WizardSession) error {
		if ws.Step != models.StepRoomSelection {
			return NewTransitionError("select a room first")
		}
		if ws.Draft.SelectedRoomID == 0 {
			return NewValidationError("please select a room or dining area")
		}
		ws.Step = models.StepContactDetails
		return nil
	})
}

// Submit validates the customer details and creates the booking upstream.
// Validation failures block before any network call. On upstream failure the
// session stays on the contact step and remains resubmittable; on success
// the draft is discarded.
func (s *DefaultService) Submit(ctx context.Context, id string, customer models.CustomerDetails) (*models.WizardSession, error) {
	session, err := s.Store.Update(ctx, id, func(ws *models.WizardSession) error {
		if ws.Step != models.StepContactDetails {
			return NewTransitionError("complete the previous steps first")
		}
		if err := validateCustomer(customer); err != nil {
			return err
		}
		if ws.Draft.SelectedRoomID == 0 {
			return NewValidationError("please select a room or dining area")
		}
		if ws.Draft.SelectedTime == "" {
			return NewValidationError("please select an arrival time")
		}
		ws.Draft.Customer = customer
		ws.SubmitError = ""
		return nil
	})
	if err != nil {
		return nil, err
	}

	payload := models.ReservationPayload{
		CustomerName:    customer.Name,
		CustomerContact: customer.Contact,
		CustomerEmail:   customer.Email,
		Date:            session.Draft.Date,
		Session:         session.Draft.Session,
		Time:            session.Draft.SelectedTime,
		Pax:             customer.Pax,
		DiningArea:      session.Draft.SelectedRoomID,
		SpecialRequest:  customer.Message,
		Status:          models.StatusPending,
		Source:          models.SourceWeb,
	}

	if submitErr := s.Backend.CreateReservation(ctx, payload); submitErr != nil {
		session, err = s.Store.Update(ctx, id, func(ws *models.WizardSession) error {
			ws.SubmitError = submitErr.Error()
			return nil
		})
		if err != nil {
			return nil, err
		}
		return session, submitErr
	}

	session.Step = models.StepSubmitted
	session.SubmitError = ""
	// The draft's job is done; the session record only persists long enough
	// for the success page to render.
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// OpenAlternateChannel switches to the WeChat/WhatsApp booking view.
// Reachable from step 1 only.
func (s *DefaultService) OpenAlternateChannel(ctx context.Context, id string) (*models.WizardSession, error) {
	return s.Store.Update(ctx, id, func(ws *models.WizardSession) error {
		if ws.Step != models.StepDateAndExperience {
			return NewTransitionError("messaging-channel booking opens from the first step")
		}
		ws.Step = models.StepAlternateChannel
		return nil
	})
}

// ReturnToForm returns from the messaging-channel view to step 1.
func (s *DefaultService) ReturnToForm(ctx context.Context, id string) (*models.WizardSession, error) {
	return s.Store.Update(ctx, id, func(ws *models.WizardSession) error {
		if ws.Step != models.StepAlternateChannel {
			return NewTransitionError("not on the messaging-channel view")
		}
		ws.Step = models.StepDateAndExperience
		return nil
	})
}

// TimeSlots exposes the canonical slot list for a service session.
func (s *DefaultService) TimeSlots(session models.ServiceSession) []models.TimeSlot {
	return s.Windows.Generate(session)
}

func validateCustomer(customer models.CustomerDetails) error {
	if customer.Name == "" || customer.Contact == "" {
		return NewValidationError("please fill in name and contact")
	}
	if customer.Pax < 1 {
		return NewValidationError("number of guests must be at least 1")
	}
	return nil
}

func selectable(rooms []models.DiningArea, roomID int) bool {
	for _, room := range rooms {
		if room.ID == roomID {
			return room.IsAvailable
		}
	}
	return false
}

// VisibleRooms filters the snapshot by the chosen booking type. Unavailable
// records stay in the list so the UI can render them disabled.
func VisibleRooms(ws *models.WizardSession) []models.DiningArea {
	var visible []models.DiningArea
	for _, room := range ws.Rooms {
		if room.AreaType == ws.Draft.BookingType {
			visible = append(visible, room)
		}
	}
	return visible
}

// IsFlowError reports whether err is user-correctable (vs. infrastructure).
func IsFlowError(err error) bool {
	var flowErr *FlowError
	return errors.As(err, &flowErr)
}
