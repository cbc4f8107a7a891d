package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smarttour/models"
	booking "smarttour/services/booking"

	"github.com/gin-gonic/gin"
)

// stubBookingService returns canned results per method.
type stubBookingService struct {
	transitionErr error
	booking       *models.Booking
}

func (s *stubBookingService) CreateBooking(userID string, req booking.CreateBookingRequest) (*models.Booking, error) {
	return s.booking, nil
}
func (s *stubBookingService) Estimate(req booking.EstimateRequest) (*booking.EstimateResponse, error) {
	return &booking.EstimateResponse{QuoteID: "q1"}, nil
}
func (s *stubBookingService) GetBooking(actor booking.Actor, id string) (*models.Booking, error) {
	if s.booking == nil {
		return nil, booking.NewNotFoundError("booking " + id + " not found")
	}
	return s.booking, nil
}
func (s *stubBookingService) ListUserBookings(userID string) ([]models.Booking, error) {
	return nil, nil
}
func (s *stubBookingService) ListDriverBookings(driverID string) ([]models.Booking, error) {
	return nil, nil
}
func (s *stubBookingService) ListAllBookings(actor booking.Actor) ([]models.Booking, error) {
	return nil, nil
}
func (s *stubBookingService) AssignDriver(actor booking.Actor, bookingID, driverID string) (*models.Booking, error) {
	return s.booking, nil
}
func (s *stubBookingService) Transition(actor booking.Actor, bookingID string, target booking.Status, reason string) (*models.Booking, error) {
	if s.transitionErr != nil {
		return nil, s.transitionErr
	}
	b := *s.booking
	b.BookingStatus = string(target)
	return &b, nil
}

func newBookingRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &BookingHandler{BookingService: svc}
	r.Use(func(c *gin.Context) {
		c.Set("userID", "u1")
		c.Set("actor", booking.CustomerActor("u1"))
	})
	r.GET("/api/bookings/:id", h.GetBookingHandler)
	r.PATCH("/api/bookings/:id/status", h.TransitionHandler)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTransitionHandlerStatusMapping(t *testing.T) {
	b := &models.Booking{ID: "b1", UserID: "u1", BookingStatus: "confirmed"}

	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{"success", nil, http.StatusOK, ""},
		{"invalid transition conflicts", booking.NewInvalidTransitionError("cannot move booking from completed to in-progress"), http.StatusConflict, "invalidTransition"},
		{"forbidden", booking.NewForbiddenError("only the booking owner may cancel this booking"), http.StatusForbidden, "forbidden"},
		{"not found", booking.NewNotFoundError("booking b1 not found"), http.StatusNotFound, "entityNotFound"},
		{"validation", booking.NewValidationError("a cancellation reason is required"), http.StatusBadRequest, "validationError"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newBookingRouter(&stubBookingService{booking: b, transitionErr: tt.svcErr})
			w := doRequest(t, r, http.MethodPatch, "/api/bookings/b1/status", `{"status":"cancelled","reason":"x"}`)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantCode != "" {
				var resp map[string]any
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("bad response body: %v", err)
				}
				if resp["code"] != tt.wantCode {
					t.Errorf("code = %v, want %q", resp["code"], tt.wantCode)
				}
			}
		})
	}
}

func TestTransitionHandlerRejectsBadJSON(t *testing.T) {
	r := newBookingRouter(&stubBookingService{booking: &models.Booking{ID: "b1"}})
	w := doRequest(t, r, http.MethodPatch, "/api/bookings/b1/status", `{"status":`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetBookingHandlerNotFound(t *testing.T) {
	r := newBookingRouter(&stubBookingService{})
	w := doRequest(t, r, http.MethodGet, "/api/bookings/missing", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
