package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"hotel_backend/internal/models"
)

// PriceRepository defines the interface for per-room weekday rate operations.
type PriceRepository interface {
	CreatePrice(executor SQLExecutor, price *models.Price) (int64, error)
	GetPriceByID(id int64) (*models.Price, error)
	GetPrices() ([]models.Price, error)
	UpdatePrice(executor SQLExecutor, price *models.Price) error
	DeletePrice(executor SQLExecutor, id int64) error
}

type priceRepository struct {
	db *sql.DB
}

// NewPriceRepository creates a new instance of PriceRepository.
func NewPriceRepository(db *sql.DB) PriceRepository {
	return &priceRepository{db: db}
}

// CreatePrice inserts a new price row into the database.
func (r *priceRepository) CreatePrice(executor SQLExecutor, price *models.Price) (int64, error) {
	query := `INSERT INTO prices (room_id, day_of_week, price)
	          VALUES ($1, $2, $3)
	          RETURNING id`

	err := executor.QueryRow(query, price.RoomID, price.DayOfWeek, price.Price).Scan(&price.ID)
	if err != nil {
		return 0, mapPQError(err, "creating price")
	}
	return price.ID, nil
}

// GetPriceByID retrieves a price row by its ID.
func (r *priceRepository) GetPriceByID(id int64) (*models.Price, error) {
	price := &models.Price{}
	query := `SELECT id, room_id, day_of_week, price FROM prices WHERE id = $1`

	err := r.db.QueryRow(query, id).Scan(&price.ID, &price.RoomID, &price.DayOfWeek, &price.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting price by ID %d: %v", ErrDatabaseError, id, err)
	}
	return price, nil
}

// GetPrices retrieves all price rows ordered by ID.
func (r *priceRepository) GetPrices() ([]models.Price, error) {
	query := `SELECT id, room_id, day_of_week, price FROM prices ORDER BY id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying prices: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	prices := []models.Price{}
	for rows.Next() {
		var price models.Price
		if err := rows.Scan(&price.ID, &price.RoomID, &price.DayOfWeek, &price.Price); err != nil {
			return nil, fmt.Errorf("%w: scanning price: %v", ErrDatabaseError, err)
		}
		prices = append(prices, price)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating price rows: %v", ErrDatabaseError, err)
	}
	return prices, nil
}

// UpdatePrice updates an existing price row in the database.
func (r *priceRepository) UpdatePrice(executor SQLExecutor, price *models.Price) error {
	query := `UPDATE prices SET room_id = $1, day_of_week = $2, price = $3 WHERE id = $4`

	result, err := executor.Exec(query, price.RoomID, price.DayOfWeek, price.Price, price.ID)
	if err != nil {
		return mapPQError(err, fmt.Sprintf("updating price ID %d", price.ID))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating price ID %d: %v", ErrDatabaseError, price.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePrice removes a price row from the database.
func (r *priceRepository) DeletePrice(executor SQLExecutor, id int64) error {
	query := `DELETE FROM prices WHERE id = $1`

	result, err := executor.Exec(query, id)
	if err != nil {
		return mapPQError(err, fmt.Sprintf("deleting price ID %d", id))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting price ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
