package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel_backend/internal/models"
	"hotel_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGuestService struct {
	createFn  func(req services.CreateGuestRequest) (*models.Guest, error)
	getByIDFn func(guestID int64) (*models.Guest, error)
	getAllFn  func() ([]models.Guest, error)
	updateFn  func(guestID int64, req services.UpdateGuestRequest) error
	deleteFn  func(guestID int64) error
}

func (s *stubGuestService) CreateGuest(req services.CreateGuestRequest) (*models.Guest, error) {
	return s.createFn(req)
}
func (s *stubGuestService) GetGuestByID(guestID int64) (*models.Guest, error) {
	return s.getByIDFn(guestID)
}
func (s *stubGuestService) GetGuests() ([]models.Guest, error) { return s.getAllFn() }
func (s *stubGuestService) UpdateGuest(guestID int64, req services.UpdateGuestRequest) error {
	return s.updateFn(guestID, req)
}
func (s *stubGuestService) DeleteGuest(guestID int64) error { return s.deleteFn(guestID) }

func newGuestRouter(svc services.GuestService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler := NewGuestHandler(svc)
	engine.POST("/guests", handler.CreateGuest)
	engine.GET("/guests/:id", handler.GetGuestByID)
	engine.PUT("/guests/:id", handler.UpdateGuest)
	engine.DELETE("/guests/:id", handler.DeleteGuest)
	return engine
}

func strPtr(s string) *string { return &s }

func TestCreateGuest_ReturnsCreatedRecord(t *testing.T) {
	svc := &stubGuestService{
		createFn: func(req services.CreateGuestRequest) (*models.Guest, error) {
			return &models.Guest{ID: 7, Name: req.Name, Phone: req.Phone, PassportSeries: req.PassportSeries, PassportNumber: req.PassportNumber}, nil
		},
	}
	router := newGuestRouter(svc)

	body := `{"name":"Ivan Petrov","phone":"+79990001122","passport_series":"4512","passport_number":"123456"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/guests", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var got models.Guest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "Ivan Petrov", got.Name)
	require.NotNil(t, got.PassportNumber)
	assert.Equal(t, "123456", *got.PassportNumber)
}

func TestCreateGuest_MissingRequiredFieldIs400(t *testing.T) {
	svc := &stubGuestService{
		createFn: func(req services.CreateGuestRequest) (*models.Guest, error) {
			t.Fatal("service must not be called when binding fails")
			return nil, nil
		},
	}
	router := newGuestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/guests", bytes.NewBufferString(`{"name":"Ivan"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "VALIDATION_FAILED", envelope.Error.Code)
}

func TestCreateGuest_DuplicatePassportIs409(t *testing.T) {
	svc := &stubGuestService{
		createFn: func(req services.CreateGuestRequest) (*models.Guest, error) {
			return nil, services.ErrPassportExists
		},
	}
	router := newGuestRouter(svc)

	body := `{"name":"Ivan Petrov","phone":"+79990001122","passport_series":"4512","passport_number":"123456"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/guests", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "CONFLICT", envelope.Error.Code)
}

func TestGetGuestByID_NotFoundEnvelope(t *testing.T) {
	svc := &stubGuestService{
		getByIDFn: func(guestID int64) (*models.Guest, error) {
			return nil, services.ErrGuestNotFound
		},
	}
	router := newGuestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guests/404", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "NOT_FOUND", envelope.Error.Code)
}

func TestGetGuestByID_NonNumericIDIs400(t *testing.T) {
	svc := &stubGuestService{
		getByIDFn: func(guestID int64) (*models.Guest, error) {
			t.Fatal("service must not be called with an unparsable id")
			return nil, nil
		},
	}
	router := newGuestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guests/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateGuest_Success(t *testing.T) {
	var gotID int64
	var gotReq services.UpdateGuestRequest
	svc := &stubGuestService{
		updateFn: func(guestID int64, req services.UpdateGuestRequest) error {
			gotID = guestID
			gotReq = req
			return nil
		},
	}
	router := newGuestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/guests/5", bytes.NewBufferString(`{"phone":"+71112223344"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(5), gotID)
	require.NotNil(t, gotReq.Phone)
	assert.Equal(t, "+71112223344", *gotReq.Phone)
	assert.Nil(t, gotReq.Name)
	assert.JSONEq(t, `{"message":"Guest updated"}`, w.Body.String())
}

func TestDeleteGuest_ReferencedGuestIs409(t *testing.T) {
	svc := &stubGuestService{
		deleteFn: func(guestID int64) error { return services.ErrGuestInUse },
	}
	router := newGuestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/guests/5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
