package handlers

import (
	"errors"
	"net/http"

	"goldenbay/models"
	"goldenbay/services/api"
	"goldenbay/services/wizard"
	"goldenbay/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WizardHandler exposes the reservation wizard over HTTP. Each visitor gets
// one session; every mutation returns the full session view so the UI never
// has to derive state locally.
type WizardHandler struct {
	Service wizard.Service
	Logger  *zap.Logger
}

func NewWizardHandler(service wizard.Service, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{Service: service, Logger: logger}
}

func (h *WizardHandler) view(session *models.WizardSession) gin.H {
	return gin.H{
		"id":          session.ID,
		"step":        session.Step,
		"draft":       session.Draft,
		"rooms":       wizard.VisibleRooms(session),
		"timeSlots":   h.Service.TimeSlots(session.Draft.Session),
		"checking":    session.Fetching,
		"submitError": session.SubmitError,
	}
}

func (h *WizardHandler) respond(c *gin.Context, session *models.WizardSession) {
	c.JSON(http.StatusOK, h.view(session))
}

func (h *WizardHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, wizard.ErrSessionNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Reservation session expired, please start again", "")
		return
	}
	var flowErr *wizard.FlowError
	if errors.As(err, &flowErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": flowErr.Message, "code": flowErr.Code})
		return
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		utils.JSONError(c, apiErr.StatusCode, apiErr.Message, apiErr.Details)
		return
	}
	utils.JSONError(c, http.StatusBadGateway, "The reservation system is temporarily unavailable", err.Error())
}

// StartSession opens a fresh wizard session with the flow defaults.
func (h *WizardHandler) StartSession(c *gin.Context) {
	session, err := h.Service.Start(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, session)
}

// GetSession returns the current state of a session.
func (h *WizardHandler) GetSession(c *gin.Context) {
	session, err := h.Service.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, session)
}

// SetPreferences updates date, service session and booking type on step 1.
func (h *WizardHandler) SetPreferences(c *gin.Context) {
	var input struct {
		Date        string                `json:"date" binding:"required"`
		Session     models.ServiceSession `json:"session" binding:"required"`
		BookingType models.AreaType       `json:"bookingType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Service.SetPreferences(c.Request.Context(), c.Param("sessionID"), input.Date, input.Session, input.BookingType)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, session)
}

// Next advances to room selection and fetches availability. A fetch failure
// still moves the step; the UI shows the error and can retry.
func (h *WizardHandler) Next(c *gin.Context) {
	session, err := h.Service.Next(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		if session == nil {
			h.fail(c, err)
			return
		}
		h.Logger.Warn("availability fetch failed on step change", zap.Error(err))
		view := h.view(session)
		view["error"] = "Checking availability failed, please retry"
		c.JSON(http.StatusOK, view)
		return
	}
	h.respond(c, session)
}

// Back returns to the previous step.
func (h *WizardHandler) Back(c *gin.Context) {
	session, err := h.Service.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, session)
}

// RefreshAvailability re-runs the availability fetch for the current draft.
func (h *WizardHandler) RefreshAvailability(c *gin.Context) {
	session, err := h.Service.RefreshAvailability(c.Request.Context(), c.Param("sessionID"))
	if err != nil && session == nil {
		h.fail(c, err)
		return
	}
	h.respond(c, session)
}

// SelectRoom records the room choice.
func (h *WizardHandler) SelectRoom(c *gin.Context) {
	var input struct {
		RoomID int `json:"roomId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Service.SelectRoom(c.Request.Context(), c.Param("sessionID"), input.RoomID)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, session)
}

// SelectTime records the arrival time.
func (h *WizardHandler) SelectTime(c *gin.Context) {
	var input struct {
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Service.SelectTime(c.Request.Context(), c.Param("sessionID"), input.Time)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, session)
}

// ToContact advances to the contact-details step.
func (h *WizardHandler) ToContact(c *gin.Context) {
	session, err := h.Service.ToContact(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, session)
}

// Submit creates the booking. Validation failures come back 422 with no
// upstream call; upstream rejections surface the backend's message.
func (h *WizardHandler) Submit(c *gin.Context) {
	var customer models.CustomerDetails
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Service.Submit(c.Request.Context(), c.Param("sessionID"), customer)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, session)
}

// OpenAlternateChannel switches to the WeChat/WhatsApp view.
func (h *WizardHandler) OpenAlternateChannel(c *gin.Context) {
	session, err := h.Service.OpenAlternateChannel(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, session)
}

// ReturnToForm returns from the messaging-channel view to step 1.
func (h *WizardHandler) ReturnToForm(c *gin.Context) {
	session, err := h.Service.ReturnToForm(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, session)
}
