package wizard

import (
	"context"

	"goldenbay/models"

	"go.uber.org/zap"
)

// Backend is the slice of the upstream client the wizard needs.
// *api.Client satisfies it; tests use fakes.
type Backend interface {
	CheckAvailability(ctx context.Context, date string, session models.ServiceSession) ([]models.DiningArea, error)
	CreateReservation(ctx context.Context, payload models.ReservationPayload) error
}

// Service manages a visitor's stateful reservation flow.
type Service interface {
	Start(ctx context.Context) (*models.WizardSession, error)
	Get(ctx context.Context, id string) (*models.WizardSession, error)
	SetPreferences(ctx context.Context, id, date string, session models.ServiceSession, bookingType models.AreaType) (*models.WizardSession, error)
	Next(ctx context.Context, id string) (*models.WizardSession, error)
	RefreshAvailability(ctx context.Context, id string) (*models.WizardSession, error)
	Back(ctx context.Context, id string) (*models.WizardSession, error)
	SelectRoom(ctx context.Context, id string, roomID int) (*models.WizardSession, error)
	SelectTime(ctx context.Context, id, value string) (*models.WizardSession, error)
	ToContact(ctx context.Context, id string) (*models.WizardSession, error)
	Submit(ctx context.Context, id string, customer models.CustomerDetails) (*models.WizardSession, error)
	OpenAlternateChannel(ctx context.Context, id string) (*models.WizardSession, error)
	ReturnToForm(ctx context.Context, id string) (*models.WizardSession, error)
	TimeSlots(session models.ServiceSession) []models.TimeSlot
}

// DefaultService implements Service over a SessionStore and the upstream
// backend client.
type DefaultService struct {
	Backend Backend
	Store   SessionStore
	Windows SlotWindows
	Logger  *zap.Logger
}
