package services

import (
	"database/sql"
	"errors"
	"fmt"

	"hotel_backend/internal/models"
	"hotel_backend/internal/repositories"
)

// --- Custom Service Errors for Discount ---
var (
	ErrDiscountNotFound = errors.New("discount not found")
)

// --- Discount DTOs ---
// Discount ranges may overlap; no non-overlap check is performed.
type CreateDiscountRequest struct {
	MinDays         int     `json:"min_days" binding:"required"`
	MaxDays         int     `json:"max_days" binding:"required"`
	DiscountPercent float64 `json:"discount_percent" binding:"required"`
}

type UpdateDiscountRequest struct {
	MinDays         *int     `json:"min_days"`
	MaxDays         *int     `json:"max_days"`
	DiscountPercent *float64 `json:"discount_percent"`
}

// --- DiscountService Interface ---
type DiscountService interface {
	CreateDiscount(req CreateDiscountRequest) (int64, error)
	GetDiscountByID(id int64) (*models.Discount, error)
	GetDiscounts() ([]models.Discount, error)
	UpdateDiscount(id int64, req UpdateDiscountRequest) error
	DeleteDiscount(id int64) error
}

type discountService struct {
	discountRepo repositories.DiscountRepository
	db           *sql.DB
}

// NewDiscountService creates a new instance of DiscountService.
func NewDiscountService(repo repositories.DiscountRepository, db *sql.DB) DiscountService {
	return &discountService{
		discountRepo: repo,
		db:           db,
	}
}

func (s *discountService) CreateDiscount(req CreateDiscountRequest) (int64, error) {
	discount := &models.Discount{
		MinDays:         req.MinDays,
		MaxDays:         req.MaxDays,
		DiscountPercent: req.DiscountPercent,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction for discount creation: %w", err)
	}
	defer tx.Rollback()

	id, err := s.discountRepo.CreateDiscount(tx, discount)
	if err != nil {
		return 0, fmt.Errorf("failed to create discount in repository: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit discount creation: %w", err)
	}
	return id, nil
}

func (s *discountService) GetDiscountByID(id int64) (*models.Discount, error) {
	discount, err := s.discountRepo.GetDiscountByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDiscountNotFound
		}
		return nil, fmt.Errorf("failed to get discount by ID: %w", err)
	}
	return discount, nil
}

func (s *discountService) GetDiscounts() ([]models.Discount, error) {
	discounts, err := s.discountRepo.GetDiscounts()
	if err != nil {
		return nil, fmt.Errorf("failed to get discounts: %w", err)
	}
	return discounts, nil
}

func (s *discountService) UpdateDiscount(id int64, req UpdateDiscountRequest) error {
	discount, err := s.discountRepo.GetDiscountByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrDiscountNotFound
		}
		return fmt.Errorf("failed to find discount for update: %w", err)
	}

	if req.MinDays != nil {
		discount.MinDays = *req.MinDays
	}
	if req.MaxDays != nil {
		discount.MaxDays = *req.MaxDays
	}
	if req.DiscountPercent != nil {
		discount.DiscountPercent = *req.DiscountPercent
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for discount update: %w", err)
	}
	defer tx.Rollback()

	if err = s.discountRepo.UpdateDiscount(tx, discount); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrDiscountNotFound
		}
		return fmt.Errorf("failed to update discount in repository: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit discount update: %w", err)
	}
	return nil
}

func (s *discountService) DeleteDiscount(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for discount deletion: %w", err)
	}
	defer tx.Rollback()

	if err = s.discountRepo.DeleteDiscount(tx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrDiscountNotFound
		}
		return fmt.Errorf("failed to delete discount: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit discount deletion: %w", err)
	}
	return nil
}
