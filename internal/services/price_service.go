package services

import (
	"database/sql"
	"errors"
	"fmt"

	"hotel_backend/internal/models"
	"hotel_backend/internal/repositories"
)

// --- Custom Service Errors for Price ---
var (
	ErrPriceNotFound  = errors.New("price not found")
	ErrPriceReference = errors.New("price references a missing room")
)

// --- Price DTOs ---
// Duplicate (room_id, day_of_week) rows are intentionally allowed, so
// creation performs no uniqueness check.
type CreatePriceRequest struct {
	RoomID    int64   `json:"room_id" binding:"required"`
	DayOfWeek string  `json:"day_of_week" binding:"required"`
	Price     float64 `json:"price" binding:"required"`
}

type UpdatePriceRequest struct {
	RoomID    *int64   `json:"room_id"`
	DayOfWeek *string  `json:"day_of_week"`
	Price     *float64 `json:"price"`
}

// --- PriceService Interface ---
type PriceService interface {
	CreatePrice(req CreatePriceRequest) (int64, error)
	GetPriceByID(id int64) (*models.Price, error)
	GetPrices() ([]models.Price, error)
	UpdatePrice(id int64, req UpdatePriceRequest) error
	DeletePrice(id int64) error
}

type priceService struct {
	priceRepo repositories.PriceRepository
	db        *sql.DB
}

// NewPriceService creates a new instance of PriceService.
func NewPriceService(repo repositories.PriceRepository, db *sql.DB) PriceService {
	return &priceService{
		priceRepo: repo,
		db:        db,
	}
}

func (s *priceService) CreatePrice(req CreatePriceRequest) (int64, error) {
	price := &models.Price{
		RoomID:    req.RoomID,
		DayOfWeek: req.DayOfWeek,
		Price:     req.Price,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction for price creation: %w", err)
	}
	defer tx.Rollback()

	id, err := s.priceRepo.CreatePrice(tx, price)
	if err != nil {
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return 0, ErrPriceReference
		}
		return 0, fmt.Errorf("failed to create price in repository: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit price creation: %w", err)
	}
	return id, nil
}

func (s *priceService) GetPriceByID(id int64) (*models.Price, error) {
	price, err := s.priceRepo.GetPriceByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPriceNotFound
		}
		return nil, fmt.Errorf("failed to get price by ID: %w", err)
	}
	return price, nil
}

func (s *priceService) GetPrices() ([]models.Price, error) {
	prices, err := s.priceRepo.GetPrices()
	if err != nil {
		return nil, fmt.Errorf("failed to get prices: %w", err)
	}
	return prices, nil
}

func (s *priceService) UpdatePrice(id int64, req UpdatePriceRequest) error {
	price, err := s.priceRepo.GetPriceByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPriceNotFound
		}
		return fmt.Errorf("failed to find price for update: %w", err)
	}

	if req.RoomID != nil {
		price.RoomID = *req.RoomID
	}
	if req.DayOfWeek != nil {
		price.DayOfWeek = *req.DayOfWeek
	}
	if req.Price != nil {
		price.Price = *req.Price
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for price update: %w", err)
	}
	defer tx.Rollback()

	if err = s.priceRepo.UpdatePrice(tx, price); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPriceNotFound
		}
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return ErrPriceReference
		}
		return fmt.Errorf("failed to update price in repository: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit price update: %w", err)
	}
	return nil
}

func (s *priceService) DeletePrice(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for price deletion: %w", err)
	}
	defer tx.Rollback()

	if err = s.priceRepo.DeletePrice(tx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPriceNotFound
		}
		return fmt.Errorf("failed to delete price: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit price deletion: %w", err)
	}
	return nil
}
