package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"hotel_backend/internal/models"
)

// GuestRepository defines the interface for guest-related database operations.
type GuestRepository interface {
	CreateGuest(executor SQLExecutor, guest *models.Guest) (int64, error)
	GetGuestByID(id int64) (*models.Guest, error)
	GetGuests() ([]models.Guest, error)
	// FindGuestByPassport looks up another guest holding the same passport
	// series/number pair, excluding excludeID (0 to exclude nobody).
	FindGuestByPassport(series, number *string, excludeID int64) (*models.Guest, error)
	UpdateGuest(executor SQLExecutor, guest *models.Guest) error
	DeleteGuest(executor SQLExecutor, id int64) error
}

type guestRepository struct {
	db *sql.DB
}

// NewGuestRepository creates a new instance of GuestRepository.
func NewGuestRepository(db *sql.DB) GuestRepository {
	return &guestRepository{db: db}
}

func scanGuest(row scanner) (*models.Guest, error) {
	guest := &models.Guest{}
	var email, series, number sql.NullString
	if err := row.Scan(&guest.ID, &guest.Name, &guest.Phone, &email, &series, &number); err != nil {
		return nil, err
	}
	if email.Valid {
		guest.Email = &email.String
	}
	if series.Valid {
		guest.PassportSeries = &series.String
	}
	if number.Valid {
		guest.PassportNumber = &number.String
	}
	return guest, nil
}

// CreateGuest inserts a new guest into the database.
func (r *guestRepository) CreateGuest(executor SQLExecutor, guest *models.Guest) (int64, error) {
	query := `INSERT INTO guests (name, phone, email, passport_series, passport_number)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	err := executor.QueryRow(query,
		guest.Name, guest.Phone, guest.Email, guest.PassportSeries, guest.PassportNumber,
	).Scan(&guest.ID)
	if err != nil {
		return 0, mapPQError(err, "creating guest")
	}
	return guest.ID, nil
}

// GetGuestByID retrieves a guest by their ID.
func (r *guestRepository) GetGuestByID(id int64) (*models.Guest, error) {
	query := `SELECT id, name, phone, email, passport_series, passport_number
	          FROM guests WHERE id = $1`

	guest, err := scanGuest(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting guest by ID %d: %v", ErrDatabaseError, id, err)
	}
	return guest, nil
}

// GetGuests retrieves all guests ordered by ID.
func (r *guestRepository) GetGuests() ([]models.Guest, error) {
	query := `SELECT id, name, phone, email, passport_series, passport_number
	          FROM guests ORDER BY id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying guests: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	guests := []models.Guest{}
	for rows.Next() {
		guest, err := scanGuest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning guest: %v", ErrDatabaseError, err)
		}
		guests = append(guests, *guest)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating guest rows: %v", ErrDatabaseError, err)
	}
	return guests, nil
}

// FindGuestByPassport retrieves a guest matching the passport pair, excluding
// the given guest ID. Returns ErrNotFound when no conflicting guest exists.
func (r *guestRepository) FindGuestByPassport(series, number *string, excludeID int64) (*models.Guest, error) {
	query := `SELECT id, name, phone, email, passport_series, passport_number
	          FROM guests
	          WHERE passport_series = $1 AND passport_number = $2 AND id <> $3`

	guest, err := scanGuest(r.db.QueryRow(query, series, number, excludeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding guest by passport: %v", ErrDatabaseError, err)
	}
	return guest, nil
}

// UpdateGuest updates an existing guest in the database.
func (r *guestRepository) UpdateGuest(executor SQLExecutor, guest *models.Guest) error {
	query := `UPDATE guests SET
	            name = $1, phone = $2, email = $3, passport_series = $4, passport_number = $5
	          WHERE id = $6`

	result, err := executor.Exec(query,
		guest.Name, guest.Phone, guest.Email, guest.PassportSeries, guest.PassportNumber, guest.ID,
	)
	if err != nil {
		return mapPQError(err, fmt.Sprintf("updating guest ID %d", guest.ID))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating guest ID %d: %v", ErrDatabaseError, guest.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteGuest removes a guest from the database.
func (r *guestRepository) DeleteGuest(executor SQLExecutor, id int64) error {
	query := `DELETE FROM guests WHERE id = $1`

	result, err := executor.Exec(query, id)
	if err != nil {
		return mapPQError(err, fmt.Sprintf("deleting guest ID %d", id))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting guest ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
