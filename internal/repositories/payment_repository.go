package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hotel_backend/internal/models"
)

// PaymentRepository defines the interface for payment-related database operations.
type PaymentRepository interface {
	CreatePayment(executor SQLExecutor, payment *models.Payment) (int64, error)
	GetPaymentByID(id int64) (*models.Payment, error)
	GetPayments() ([]models.Payment, error)
	UpdatePayment(executor SQLExecutor, payment *models.Payment) error
	DeletePayment(executor SQLExecutor, id int64) error
}

type paymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository creates a new instance of PaymentRepository.
func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func scanPayment(row scanner) (*models.Payment, error) {
	payment := &models.Payment{}
	var paymentDate time.Time
	if err := row.Scan(&payment.ID, &payment.BookingID, &payment.Amount, &paymentDate, &payment.Status); err != nil {
		return nil, err
	}
	payment.PaymentDate = paymentDate.Format(dateLayout)
	return payment, nil
}

// CreatePayment inserts a new payment into the database.
func (r *paymentRepository) CreatePayment(executor SQLExecutor, payment *models.Payment) (int64, error) {
	query := `INSERT INTO payments (booking_id, amount, payment_date, status)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`

	err := executor.QueryRow(query,
		payment.BookingID, payment.Amount, payment.PaymentDate, payment.Status,
	).Scan(&payment.ID)
	if err != nil {
		return 0, mapPQError(err, "creating payment")
	}
	return payment.ID, nil
}

// GetPaymentByID retrieves a payment by its ID.
func (r *paymentRepository) GetPaymentByID(id int64) (*models.Payment, error) {
	query := `SELECT id, booking_id, amount, payment_date, status FROM payments WHERE id = $1`

	payment, err := scanPayment(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting payment by ID %d: %v", ErrDatabaseError, id, err)
	}
	return payment, nil
}

// GetPayments retrieves all payments ordered by ID.
func (r *paymentRepository) GetPayments() ([]models.Payment, error) {
	query := `SELECT id, booking_id, amount, payment_date, status FROM payments ORDER BY id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying payments: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning payment: %v", ErrDatabaseError, err)
		}
		payments = append(payments, *payment)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating payment rows: %v", ErrDatabaseError, err)
	}
	return payments, nil
}

// UpdatePayment updates an existing payment in the database.
func (r *paymentRepository) UpdatePayment(executor SQLExecutor, payment *models.Payment) error {
	query := `UPDATE payments SET booking_id = $1, amount = $2, payment_date = $3, status = $4 WHERE id = $5`

	result, err := executor.Exec(query,
		payment.BookingID, payment.Amount, payment.PaymentDate, payment.Status, payment.ID,
	)
	if err != nil {
		return mapPQError(err, fmt.Sprintf("updating payment ID %d", payment.ID))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating payment ID %d: %v", ErrDatabaseError, payment.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePayment removes a payment from the database.
func (r *paymentRepository) DeletePayment(executor SQLExecutor, id int64) error {
	query := `DELETE FROM payments WHERE id = $1`

	result, err := executor.Exec(query, id)
	if err != nil {
		return mapPQError(err, fmt.Sprintf("deleting payment ID %d", id))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting payment ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
