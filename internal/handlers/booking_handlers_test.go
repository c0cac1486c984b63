package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel_backend/internal/models"
	"hotel_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingService struct {
	createFn  func(req services.CreateBookingRequest) (int64, error)
	getByIDFn func(bookingID int64) (*models.Booking, error)
	getAllFn  func() ([]models.Booking, error)
	updateFn  func(bookingID int64, req services.UpdateBookingRequest) error
	deleteFn  func(bookingID int64) error
}

func (s *stubBookingService) CreateBooking(req services.CreateBookingRequest) (int64, error) {
	return s.createFn(req)
}
func (s *stubBookingService) GetBookingByID(bookingID int64) (*models.Booking, error) {
	return s.getByIDFn(bookingID)
}
func (s *stubBookingService) GetBookings() ([]models.Booking, error) { return s.getAllFn() }
func (s *stubBookingService) UpdateBooking(bookingID int64, req services.UpdateBookingRequest) error {
	return s.updateFn(bookingID, req)
}
func (s *stubBookingService) DeleteBooking(bookingID int64) error { return s.deleteFn(bookingID) }

func newBookingRouter(svc services.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler := NewBookingHandler(svc)
	engine.POST("/bookings", handler.CreateBooking)
	engine.PUT("/bookings/:id", handler.UpdateBooking)
	engine.DELETE("/bookings/:id", handler.DeleteBooking)
	return engine
}

func TestCreateBooking_ReturnsID(t *testing.T) {
	svc := &stubBookingService{
		createFn: func(req services.CreateBookingRequest) (int64, error) { return 21, nil },
	}
	router := newBookingRouter(svc)

	body := `{"room_id":2,"main_guest_id":3,"check_in_date":"2026-09-01","check_out_date":"2026-09-05"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":21}`, w.Body.String())
}

func TestCreateBooking_BadDateIs400(t *testing.T) {
	svc := &stubBookingService{
		createFn: func(req services.CreateBookingRequest) (int64, error) {
			return 0, services.ErrDateFormat
		},
	}
	router := newBookingRouter(svc)

	body := `{"room_id":2,"main_guest_id":3,"check_in_date":"01.09.2026","check_out_date":"2026-09-05"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
}

func TestCreateBooking_MissingRoomIs400BadRequest(t *testing.T) {
	svc := &stubBookingService{
		createFn: func(req services.CreateBookingRequest) (int64, error) {
			return 0, services.ErrBookingReference
		},
	}
	router := newBookingRouter(svc)

	body := `{"room_id":999,"main_guest_id":3,"check_in_date":"2026-09-01","check_out_date":"2026-09-05"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "BAD_REQUEST")
}

func TestUpdateBooking_OmittedPriceStaysOmittedInRequest(t *testing.T) {
	var gotReq services.UpdateBookingRequest
	svc := &stubBookingService{
		updateFn: func(bookingID int64, req services.UpdateBookingRequest) error {
			gotReq = req
			return nil
		},
	}
	router := newBookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/bookings/21", bytes.NewBufferString(`{"status":"cancelled"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotReq.Status)
	assert.Equal(t, "cancelled", *gotReq.Status)
	assert.Nil(t, gotReq.Price, "an absent price field must reach the service as nil")
}

func TestDeleteBooking_ReferencedBookingIs409(t *testing.T) {
	svc := &stubBookingService{
		deleteFn: func(bookingID int64) error { return services.ErrBookingInUse },
	}
	router := newBookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/bookings/21", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
