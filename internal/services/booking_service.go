package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel_backend/internal/models"
	"hotel_backend/internal/repositories"
)

// --- Custom Service Errors for Booking ---
var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingValidation = errors.New("booking data validation error")
	ErrBookingReference  = errors.New("booking references a missing room or guest")
	ErrBookingInUse      = errors.New("booking cannot be deleted as it is referenced by payments or booking guests")
	ErrDateFormat        = errors.New("invalid date format, please use YYYY-MM-DD")
)

// --- Booking DTOs ---
type CreateBookingRequest struct {
	RoomID       int64    `json:"room_id" binding:"required"`
	MainGuestID  int64    `json:"main_guest_id" binding:"required"`
	CheckInDate  string   `json:"check_in_date" binding:"required"`
	CheckOutDate string   `json:"check_out_date" binding:"required"`
	Status       *string  `json:"status"`
	Discount     *float64 `json:"discount"`
	Price        *float64 `json:"price"`
}

type UpdateBookingRequest struct {
	RoomID       *int64   `json:"room_id"`
	MainGuestID  *int64   `json:"main_guest_id"`
	CheckInDate  *string  `json:"check_in_date"`
	CheckOutDate *string  `json:"check_out_date"`
	Status       *string  `json:"status"`
	Discount     *float64 `json:"discount"`
	Price        *float64 `json:"price"`
}

// --- BookingService Interface ---
type BookingService interface {
	CreateBooking(req CreateBookingRequest) (int64, error)
	GetBookingByID(bookingID int64) (*models.Booking, error)
	GetBookings() ([]models.Booking, error)
	UpdateBooking(bookingID int64, req UpdateBookingRequest) error
	DeleteBooking(bookingID int64) error
}

// --- bookingService Implementation ---
type bookingService struct {
	bookingRepo repositories.BookingRepository
	db          *sql.DB
}

// NewBookingService creates a new instance of BookingService.
func NewBookingService(br repositories.BookingRepository, db *sql.DB) BookingService {
	return &bookingService{
		bookingRepo: br,
		db:          db,
	}
}

// parseDate validates an ISO YYYY-MM-DD date string.
func parseDate(dateStr string) (string, error) {
	trimmed := strings.TrimSpace(dateStr)
	if _, err := time.Parse("2006-01-02", trimmed); err != nil {
		return "", ErrDateFormat
	}
	return trimmed, nil
}

func (s *bookingService) CreateBooking(req CreateBookingRequest) (int64, error) {
	checkIn, err := parseDate(req.CheckInDate)
	if err != nil {
		return 0, fmt.Errorf("check_in_date: %w", err)
	}
	checkOut, err := parseDate(req.CheckOutDate)
	if err != nil {
		return 0, fmt.Errorf("check_out_date: %w", err)
	}

	status := string(models.BookingStatusPending)
	if req.Status != nil && strings.TrimSpace(*req.Status) != "" {
		status = *req.Status
	}

	// Price defaults to 0.00 when the payload omits it.
	price := 0.0
	if req.Price != nil {
		price = *req.Price
	}
	discount := 0.0
	if req.Discount != nil {
		discount = *req.Discount
	}

	booking := &models.Booking{
		RoomID:       req.RoomID,
		MainGuestID:  req.MainGuestID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       status,
		Discount:     discount,
		Price:        price,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction for booking creation: %w", err)
	}
	defer tx.Rollback()

	id, err := s.bookingRepo.CreateBooking(tx, booking)
	if err != nil {
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return 0, ErrBookingReference
		}
		return 0, fmt.Errorf("failed to create booking in repository: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit booking creation: %w", err)
	}
	return id, nil
}

func (s *bookingService) GetBookingByID(bookingID int64) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetBookingByID(bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking by ID: %w", err)
	}
	return booking, nil
}

func (s *bookingService) GetBookings() ([]models.Booking, error) {
	bookings, err := s.bookingRepo.GetBookings()
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) UpdateBooking(bookingID int64, req UpdateBookingRequest) error {
	booking, err := s.bookingRepo.GetBookingByID(bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to find booking for update: %w", err)
	}

	if req.RoomID != nil {
		booking.RoomID = *req.RoomID
	}
	if req.MainGuestID != nil {
		booking.MainGuestID = *req.MainGuestID
	}
	if req.CheckInDate != nil {
		checkIn, parseErr := parseDate(*req.CheckInDate)
		if parseErr != nil {
			return fmt.Errorf("check_in_date: %w", parseErr)
		}
		booking.CheckInDate = checkIn
	}
	if req.CheckOutDate != nil {
		checkOut, parseErr := parseDate(*req.CheckOutDate)
		if parseErr != nil {
			return fmt.Errorf("check_out_date: %w", parseErr)
		}
		booking.CheckOutDate = checkOut
	}
	if req.Status != nil {
		booking.Status = *req.Status
	}
	if req.Discount != nil {
		booking.Discount = *req.Discount
	}
	// Price is kept as stored unless the payload supplies a new one.
	if req.Price != nil {
		booking.Price = *req.Price
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for booking update: %w", err)
	}
	defer tx.Rollback()

	if err = s.bookingRepo.UpdateBooking(tx, booking); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBookingNotFound
		}
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return ErrBookingReference
		}
		return fmt.Errorf("failed to update booking in repository: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking update: %w", err)
	}
	return nil
}

func (s *bookingService) DeleteBooking(bookingID int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for booking deletion: %w", err)
	}
	defer tx.Rollback()

	if err = s.bookingRepo.DeleteBooking(tx, bookingID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBookingNotFound
		}
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return ErrBookingInUse
		}
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking deletion: %w", err)
	}
	return nil
}
