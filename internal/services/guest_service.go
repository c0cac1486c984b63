package services

import (
	"database/sql"
	"errors"
	"fmt"

	"hotel_backend/internal/models"
	"hotel_backend/internal/repositories"
	"hotel_backend/pkg/utils"
)

// --- Custom Service Errors for Guest ---
var (
	ErrGuestNotFound   = errors.New("guest not found")
	ErrPassportExists  = errors.New("guest with these passport details already exists")
	ErrGuestValidation = errors.New("guest data validation error")
	ErrGuestInUse      = errors.New("guest cannot be deleted as they are referenced by bookings")
)

// --- Guest DTOs ---
type CreateGuestRequest struct {
	Name           string  `json:"name" binding:"required"`
	Phone          string  `json:"phone" binding:"required"`
	Email          *string `json:"email"`
	PassportSeries *string `json:"passport_series"`
	PassportNumber *string `json:"passport_number"`
}

type UpdateGuestRequest struct {
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
	PassportSeries *string `json:"passport_series"`
	PassportNumber *string `json:"passport_number"`
}

// --- GuestService Interface ---
type GuestService interface {
	CreateGuest(req CreateGuestRequest) (*models.Guest, error)
	GetGuestByID(guestID int64) (*models.Guest, error)
	GetGuests() ([]models.Guest, error)
	UpdateGuest(guestID int64, req UpdateGuestRequest) error
	DeleteGuest(guestID int64) error
}

// --- guestService Implementation ---
type guestService struct {
	guestRepo repositories.GuestRepository
	db        *sql.DB
}

// NewGuestService creates a new instance of GuestService.
func NewGuestService(repo repositories.GuestRepository, db *sql.DB) GuestService {
	return &guestService{
		guestRepo: repo,
		db:        db,
	}
}

func (s *guestService) validateGuestData(name, phone string, email *string) error {
	if utils.IsEmpty(name) {
		return fmt.Errorf("%w: name cannot be empty", ErrGuestValidation)
	}
	if utils.IsEmpty(phone) {
		return fmt.Errorf("%w: phone cannot be empty", ErrGuestValidation)
	}
	if email != nil && *email != "" && !utils.IsValidEmail(*email) {
		return fmt.Errorf("%w: email format is invalid", ErrGuestValidation)
	}
	return nil
}

// checkPassportUniqueness is the friendly pre-check before a write. The DB
// unique constraints remain the authoritative guard; two concurrent creates
// can both pass here, and the second is caught as ErrDuplicateKey on insert.
func (s *guestService) checkPassportUniqueness(series, number *string, excludeID int64) error {
	if series == nil || number == nil {
		return nil
	}
	existing, err := s.guestRepo.FindGuestByPassport(series, number, excludeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check passport uniqueness: %w", err)
	}
	if existing != nil {
		return ErrPassportExists
	}
	return nil
}

func (s *guestService) CreateGuest(req CreateGuestRequest) (*models.Guest, error) {
	if err := s.validateGuestData(req.Name, req.Phone, req.Email); err != nil {
		return nil, err
	}
	if err := s.checkPassportUniqueness(req.PassportSeries, req.PassportNumber, 0); err != nil {
		return nil, err
	}

	guest := &models.Guest{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		PassportSeries: req.PassportSeries,
		PassportNumber: req.PassportNumber,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction for guest creation: %w", err)
	}
	defer tx.Rollback()

	id, err := s.guestRepo.CreateGuest(tx, guest)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrPassportExists
		}
		return nil, fmt.Errorf("failed to create guest in repository: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit guest creation: %w", err)
	}

	return s.guestRepo.GetGuestByID(id)
}

func (s *guestService) GetGuestByID(guestID int64) (*models.Guest, error) {
	guest, err := s.guestRepo.GetGuestByID(guestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("failed to get guest by ID: %w", err)
	}
	return guest, nil
}

func (s *guestService) GetGuests() ([]models.Guest, error) {
	guests, err := s.guestRepo.GetGuests()
	if err != nil {
		return nil, fmt.Errorf("failed to get guests: %w", err)
	}
	return guests, nil
}

func (s *guestService) UpdateGuest(guestID int64, req UpdateGuestRequest) error {
	guest, err := s.guestRepo.GetGuestByID(guestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrGuestNotFound
		}
		return fmt.Errorf("failed to find guest for update: %w", err)
	}

	// Apply only the supplied fields onto the stored row.
	if req.Name != nil {
		guest.Name = *req.Name
	}
	if req.Phone != nil {
		guest.Phone = *req.Phone
	}
	if req.Email != nil {
		guest.Email = req.Email
	}
	if req.PassportSeries != nil {
		guest.PassportSeries = req.PassportSeries
	}
	if req.PassportNumber != nil {
		guest.PassportNumber = req.PassportNumber
	}

	if err := s.validateGuestData(guest.Name, guest.Phone, guest.Email); err != nil {
		return err
	}
	if req.PassportSeries != nil || req.PassportNumber != nil {
		if err := s.checkPassportUniqueness(guest.PassportSeries, guest.PassportNumber, guestID); err != nil {
			return err
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for guest update: %w", err)
	}
	defer tx.Rollback()

	if err = s.guestRepo.UpdateGuest(tx, guest); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return ErrPassportExists
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrGuestNotFound
		}
		return fmt.Errorf("failed to update guest in repository: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit guest update: %w", err)
	}
	return nil
}

func (s *guestService) DeleteGuest(guestID int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for guest deletion: %w", err)
	}
	defer tx.Rollback()

	if err = s.guestRepo.DeleteGuest(tx, guestID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrGuestNotFound
		}
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return ErrGuestInUse
		}
		return fmt.Errorf("failed to delete guest: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit guest deletion: %w", err)
	}
	return nil
}
