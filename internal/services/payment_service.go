package services

import (
	"database/sql"
	"errors"
	"fmt"

	"hotel_backend/internal/models"
	"hotel_backend/internal/repositories"
)

// --- Custom Service Errors for Payment ---
var (
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrPaymentReference = errors.New("payment references a missing booking")
)

// --- Payment DTOs ---
type CreatePaymentRequest struct {
	BookingID   int64   `json:"booking_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	PaymentDate string  `json:"payment_date" binding:"required"`
	Status      string  `json:"status" binding:"required"`
}

type UpdatePaymentRequest struct {
	BookingID   *int64   `json:"booking_id"`
	Amount      *float64 `json:"amount"`
	PaymentDate *string  `json:"payment_date"`
	Status      *string  `json:"status"`
}

// --- PaymentService Interface ---
type PaymentService interface {
	CreatePayment(req CreatePaymentRequest) (int64, error)
	GetPaymentByID(id int64) (*models.Payment, error)
	GetPayments() ([]models.Payment, error)
	UpdatePayment(id int64, req UpdatePaymentRequest) error
	DeletePayment(id int64) error
}

type paymentService struct {
	paymentRepo repositories.PaymentRepository
	db          *sql.DB
}

// NewPaymentService creates a new instance of PaymentService.
func NewPaymentService(repo repositories.PaymentRepository, db *sql.DB) PaymentService {
	return &paymentService{
		paymentRepo: repo,
		db:          db,
	}
}

func (s *paymentService) CreatePayment(req CreatePaymentRequest) (int64, error) {
	paymentDate, err := parseDate(req.PaymentDate)
	if err != nil {
		return 0, fmt.Errorf("payment_date: %w", err)
	}

	payment := &models.Payment{
		BookingID:   req.BookingID,
		Amount:      req.Amount,
		PaymentDate: paymentDate,
		Status:      req.Status,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction for payment creation: %w", err)
	}
	defer tx.Rollback()

	id, err := s.paymentRepo.CreatePayment(tx, payment)
	if err != nil {
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return 0, ErrPaymentReference
		}
		return 0, fmt.Errorf("failed to create payment in repository: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit payment creation: %w", err)
	}
	return id, nil
}

func (s *paymentService) GetPaymentByID(id int64) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetPaymentByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment by ID: %w", err)
	}
	return payment, nil
}

func (s *paymentService) GetPayments() ([]models.Payment, error) {
	payments, err := s.paymentRepo.GetPayments()
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}
	return payments, nil
}

func (s *paymentService) UpdatePayment(id int64, req UpdatePaymentRequest) error {
	payment, err := s.paymentRepo.GetPaymentByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPaymentNotFound
		}
		return fmt.Errorf("failed to find payment for update: %w", err)
	}

	if req.BookingID != nil {
		payment.BookingID = *req.BookingID
	}
	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.PaymentDate != nil {
		paymentDate, parseErr := parseDate(*req.PaymentDate)
		if parseErr != nil {
			return fmt.Errorf("payment_date: %w", parseErr)
		}
		payment.PaymentDate = paymentDate
	}
	if req.Status != nil {
		payment.Status = *req.Status
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for payment update: %w", err)
	}
	defer tx.Rollback()

	if err = s.paymentRepo.UpdatePayment(tx, payment); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPaymentNotFound
		}
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return ErrPaymentReference
		}
		return fmt.Errorf("failed to update payment in repository: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit payment update: %w", err)
	}
	return nil
}

func (s *paymentService) DeletePayment(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for payment deletion: %w", err)
	}
	defer tx.Rollback()

	if err = s.paymentRepo.DeletePayment(tx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPaymentNotFound
		}
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit payment deletion: %w", err)
	}
	return nil
}
