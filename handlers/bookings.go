package handlers

import (
	"net/http"

	"goldenbay/models"
	"goldenbay/services/wizard"
	"goldenbay/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler backs the staff booking manager.
type BookingHandler struct {
	Windows wizard.SlotWindows
	Logger  *zap.Logger
}

func NewBookingHandler(windows wizard.SlotWindows, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Windows: windows, Logger: logger}
}

// ListBookingsHandler returns every booking, newest first (upstream order).
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	client := apiClientFrom(c)
	reservations, err := client.ListReservations(c.Request.Context())
	if err != nil {
		handleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// UpdateBookingHandler patches a booking. Status changes are high-impact and
// require confirmation; cancelling is limited to supervisors and admins (the
// backend enforces the same rule authoritatively).
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	var input struct {
		models.ReservationPatch
		confirmable
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if input.Status != nil {
		if !requireConfirm(c, input.Confirm) {
			return
		}
		if *input.Status == models.StatusCancelled {
			session := staffSessionFrom(c)
			if session == nil || !utils.RoleAllows(session.Role, "Supervisor", "Admin") {
				c.JSON(http.StatusForbidden, gin.H{"error": "Only Supervisors and Admins can cancel bookings"})
				return
			}
		}
	}

	client := apiClientFrom(c)
	updated, err := client.UpdateReservation(c.Request.Context(), id, input.ReservationPatch)
	if err != nil {
		handleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// CreateManualBookingHandler is the staff manual-entry path: straight to
// CONFIRMED, tagged with how the booking arrived.
func (h *BookingHandler) CreateManualBookingHandler(c *gin.Context) {
	var input struct {
		Name    string                `json:"name"`
		Contact string                `json:"contact"`
		Email   string                `json:"email"`
		Pax     int                   `json:"pax"`
		Message string                `json:"message"`
		Date    string                `json:"date"`
		Session models.ServiceSession `json:"session"`
		Time    string                `json:"time"`
		RoomID  int                   `json:"roomId"`
		Source  string                `json:"source"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	payload, err := wizard.BuildManualPayload(h.Windows, wizard.ManualEntry{
		Customer: models.CustomerDetails{
			Name:    input.Name,
			Contact: input.Contact,
			Email:   input.Email,
			Pax:     input.Pax,
			Message: input.Message,
		},
		Date:    input.Date,
		Session: input.Session,
		Time:    input.Time,
		RoomID:  input.RoomID,
		Source:  input.Source,
	})
	if err != nil {
		if wizard.IsFlowError(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	client := apiClientFrom(c)
	if err := client.CreateReservation(c.Request.Context(), payload); err != nil {
		handleAPIError(c, err)
		return
	}
	h.Logger.Info("manual booking created",
		zap.String("date", payload.Date), zap.String("session", string(payload.Session)),
		zap.Int("room", payload.DiningArea), zap.String("source", payload.Source))
	c.JSON(http.StatusCreated, gin.H{"status": "created"})
}
