package services

import (
	"database/sql"
	"errors"
	"fmt"

	"hotel_backend/internal/models"
	"hotel_backend/internal/repositories"
)

// --- Custom Service Errors for BookingGuest ---
var (
	ErrBookingGuestNotFound  = errors.New("booking guest record not found")
	ErrBookingGuestReference = errors.New("booking guest references a missing booking or guest")
)

// --- BookingGuest DTOs ---
type CreateBookingGuestRequest struct {
	BookingID int64 `json:"booking_id" binding:"required"`
	GuestID   int64 `json:"guest_id" binding:"required"`
}

type UpdateBookingGuestRequest struct {
	BookingID *int64 `json:"booking_id"`
	GuestID   *int64 `json:"guest_id"`
}

// --- BookingGuestService Interface ---
type BookingGuestService interface {
	CreateBookingGuest(req CreateBookingGuestRequest) (int64, error)
	GetBookingGuestByID(id int64) (*models.BookingGuest, error)
	GetBookingGuests() ([]models.BookingGuest, error)
	UpdateBookingGuest(id int64, req UpdateBookingGuestRequest) error
	DeleteBookingGuest(id int64) error
}

type bookingGuestService struct {
	bookingGuestRepo repositories.BookingGuestRepository
	db               *sql.DB
}

// NewBookingGuestService creates a new instance of BookingGuestService.
func NewBookingGuestService(repo repositories.BookingGuestRepository, db *sql.DB) BookingGuestService {
	return &bookingGuestService{
		bookingGuestRepo: repo,
		db:               db,
	}
}

func (s *bookingGuestService) CreateBookingGuest(req CreateBookingGuestRequest) (int64, error) {
	record := &models.BookingGuest{
		BookingID: req.BookingID,
		GuestID:   req.GuestID,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction for booking guest creation: %w", err)
	}
	defer tx.Rollback()

	id, err := s.bookingGuestRepo.CreateBookingGuest(tx, record)
	if err != nil {
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return 0, ErrBookingGuestReference
		}
		return 0, fmt.Errorf("failed to create booking guest in repository: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit booking guest creation: %w", err)
	}
	return id, nil
}

func (s *bookingGuestService) GetBookingGuestByID(id int64) (*models.BookingGuest, error) {
	record, err := s.bookingGuestRepo.GetBookingGuestByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookingGuestNotFound
		}
		return nil, fmt.Errorf("failed to get booking guest by ID: %w", err)
	}
	return record, nil
}

func (s *bookingGuestService) GetBookingGuests() ([]models.BookingGuest, error) {
	records, err := s.bookingGuestRepo.GetBookingGuests()
	if err != nil {
		return nil, fmt.Errorf("failed to get booking guests: %w", err)
	}
	return records, nil
}

func (s *bookingGuestService) UpdateBookingGuest(id int64, req UpdateBookingGuestRequest) error {
	record, err := s.bookingGuestRepo.GetBookingGuestByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBookingGuestNotFound
		}
		return fmt.Errorf("failed to find booking guest for update: %w", err)
	}

	if req.BookingID != nil {
		record.BookingID = *req.BookingID
	}
	if req.GuestID != nil {
		record.GuestID = *req.GuestID
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for booking guest update: %w", err)
	}
	defer tx.Rollback()

	if err = s.bookingGuestRepo.UpdateBookingGuest(tx, record); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBookingGuestNotFound
		}
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return ErrBookingGuestReference
		}
		return fmt.Errorf("failed to update booking guest in repository: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking guest update: %w", err)
	}
	return nil
}

func (s *bookingGuestService) DeleteBookingGuest(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for booking guest deletion: %w", err)
	}
	defer tx.Rollback()

	if err = s.bookingGuestRepo.DeleteBookingGuest(tx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBookingGuestNotFound
		}
		return fmt.Errorf("failed to delete booking guest: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking guest deletion: %w", err)
	}
	return nil
}
