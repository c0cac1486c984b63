package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"hotel_backend/internal/models"
)

// DiscountRepository defines the interface for tenure discount rule operations.
type DiscountRepository interface {
	CreateDiscount(executor SQLExecutor, discount *models.Discount) (int64, error)
	GetDiscountByID(id int64) (*models.Discount, error)
	GetDiscounts() ([]models.Discount, error)
	UpdateDiscount(executor SQLExecutor, discount *models.Discount) error
	DeleteDiscount(executor SQLExecutor, id int64) error
}

type discountRepository struct {
	db *sql.DB
}

// NewDiscountRepository creates a new instance of DiscountRepository.
func NewDiscountRepository(db *sql.DB) DiscountRepository {
	return &discountRepository{db: db}
}

// CreateDiscount inserts a new discount rule into the database.
func (r *discountRepository) CreateDiscount(executor SQLExecutor, discount *models.Discount) (int64, error) {
	query := `INSERT INTO discounts (min_days, max_days, discount_percent)
	          VALUES ($1, $2, $3)
	          RETURNING id`

	err := executor.QueryRow(query, discount.MinDays, discount.MaxDays, discount.DiscountPercent).Scan(&discount.ID)
	if err != nil {
		return 0, mapPQError(err, "creating discount")
	}
	return discount.ID, nil
}

// GetDiscountByID retrieves a discount rule by its ID.
func (r *discountRepository) GetDiscountByID(id int64) (*models.Discount, error) {
	discount := &models.Discount{}
	query := `SELECT id, min_days, max_days, discount_percent FROM discounts WHERE id = $1`

	err := r.db.QueryRow(query, id).Scan(&discount.ID, &discount.MinDays, &discount.MaxDays, &discount.DiscountPercent)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting discount by ID %d: %v", ErrDatabaseError, id, err)
	}
	return discount, nil
}

// GetDiscounts retrieves all discount rules ordered by ID.
func (r *discountRepository) GetDiscounts() ([]models.Discount, error) {
	query := `SELECT id, min_days, max_days, discount_percent FROM discounts ORDER BY id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying discounts: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	discounts := []models.Discount{}
	for rows.Next() {
		var discount models.Discount
		if err := rows.Scan(&discount.ID, &discount.MinDays, &discount.MaxDays, &discount.DiscountPercent); err != nil {
			return nil, fmt.Errorf("%w: scanning discount: %v", ErrDatabaseError, err)
		}
		discounts = append(discounts, discount)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating discount rows: %v", ErrDatabaseError, err)
	}
	return discounts, nil
}

// UpdateDiscount updates an existing discount rule in the database.
func (r *discountRepository) UpdateDiscount(executor SQLExecutor, discount *models.Discount) error {
	query := `UPDATE discounts SET min_days = $1, max_days = $2, discount_percent = $3 WHERE id = $4`

	result, err := executor.Exec(query, discount.MinDays, discount.MaxDays, discount.DiscountPercent, discount.ID)
	if err != nil {
		return mapPQError(err, fmt.Sprintf("updating discount ID %d", discount.ID))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating discount ID %d: %v", ErrDatabaseError, discount.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteDiscount removes a discount rule from the database.
func (r *discountRepository) DeleteDiscount(executor SQLExecutor, id int64) error {
	query := `DELETE FROM discounts WHERE id = $1`

	result, err := executor.Exec(query, id)
	if err != nil {
		return mapPQError(err, fmt.Sprintf("deleting discount ID %d", id))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting discount ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
