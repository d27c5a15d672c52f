package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"goldenbay/middleware"
	"goldenbay/models"
	"goldenbay/services/api"
	"goldenbay/services/wizard"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var bookingWindows = wizard.SlotWindows{LunchStart: 11, LunchEnd: 14, DinnerStart: 17, DinnerEnd: 21}

// bookingRouter wires the handler behind a stand-in for the session
// middleware: a fixed staff session and a client pointed at upstream.
func bookingRouter(upstream string, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(bookingWindows, zap.NewNop())
	client := api.New(upstream, zap.NewNop())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxAPIClient, client)
		c.Set(middleware.CtxStaffSession, &models.StaffSession{Username: "staff", Role: role})
	})
	r.PATCH("/bookings/:id", h.UpdateBookingHandler)
	r.POST("/bookings/manual", h.CreateManualBookingHandler)
	return r
}

func patchBooking(t *testing.T, r *gin.Engine, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, "/bookings/"+id, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStatusChangeRequiresConfirmation(t *testing.T) {
	var upstreamCalls int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&upstreamCalls, 1)
	}))
	defer upstream.Close()

	r := bookingRouter(upstream.URL, "Receptionist")
	w := patchBooking(t, r, "7", `{"status": "SEATED"}`)

	assert.Equal(t, http.StatusPreconditionRequired, w.Code)
	assert.Contains(t, w.Body.String(), "CONFIRM_REQUIRED")
	assert.Zero(t, atomic.LoadInt32(&upstreamCalls), "unconfirmed changes never reach the backend")
}

func TestCancellationRoleGate(t *testing.T) {
	var upstreamCalls int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&upstreamCalls, 1)
		json.NewEncoder(w).Encode(models.Reservation{ID: 7, Status: models.StatusCancelled})
	}))
	defer upstream.Close()

	r := bookingRouter(upstream.URL, "Receptionist")
	w := patchBooking(t, r, "7", `{"status": "CANCELLED", "confirm": true}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Zero(t, atomic.LoadInt32(&upstreamCalls))

	r = bookingRouter(upstream.URL, "Supervisor")
	w = patchBooking(t, r, "7", `{"status": "CANCELLED", "confirm": true}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, atomic.LoadInt32(&upstreamCalls))
}

func TestNonStatusPatchNeedsNoConfirmation(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		var patch map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		assert.NotContains(t, patch, "status")
		json.NewEncoder(w).Encode(models.Reservation{ID: 7, Pax: 8})
	}))
	defer upstream.Close()

	r := bookingRouter(upstream.URL, "Receptionist")
	w := patchBooking(t, r, "7", `{"pax": 8}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateBookingRejectsBadID(t *testing.T) {
	r := bookingRouter("http://unused.invalid", "Admin")
	w := patchBooking(t, r, "seven", `{"pax": 8}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestManualBookingValidation(t *testing.T) {
	var upstreamCalls int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&upstreamCalls, 1)
		w.WriteHeader(http.StatusCreated)
	}))
	defer upstream.Close()

	r := bookingRouter(upstream.URL, "Receptionist")

	body := `{"name": "Mr Tan", "contact": "+65 8111 2222", "pax": 6,
		"date": "2026-09-05", "session": "DINNER", "time": "23:00:00", "roomId": 4, "source": "PHONE"}`
	req := httptest.NewRequest(http.MethodPost, "/bookings/manual", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Zero(t, atomic.LoadInt32(&upstreamCalls))
}

func TestManualBookingCreated(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload models.ReservationPayload
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, models.StatusConfirmed, payload.Status)
		assert.Equal(t, models.SourcePhone, payload.Source)
		w.WriteHeader(http.StatusCreated)
	}))
	defer upstream.Close()

	r := bookingRouter(upstream.URL, "Receptionist")

	body := `{"name": "Mr Tan", "contact": "+65 8111 2222", "pax": 6,
		"date": "2026-09-05", "session": "DINNER", "time": "19:00:00", "roomId": 4, "source": "PHONE"}`
	req := httptest.NewRequest(http.MethodPost, "/bookings/manual", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
}
