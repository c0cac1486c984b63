package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"hotel_backend/internal/models"
)

// BookingGuestRepository defines the interface for booking-guest association operations.
type BookingGuestRepository interface {
	CreateBookingGuest(executor SQLExecutor, record *models.BookingGuest) (int64, error)
	GetBookingGuestByID(id int64) (*models.BookingGuest, error)
	GetBookingGuests() ([]models.BookingGuest, error)
	UpdateBookingGuest(executor SQLExecutor, record *models.BookingGuest) error
	DeleteBookingGuest(executor SQLExecutor, id int64) error
}

type bookingGuestRepository struct {
	db *sql.DB
}

// NewBookingGuestRepository creates a new instance of BookingGuestRepository.
func NewBookingGuestRepository(db *sql.DB) BookingGuestRepository {
	return &bookingGuestRepository{db: db}
}

// CreateBookingGuest inserts a new booking-guest association.
func (r *bookingGuestRepository) CreateBookingGuest(executor SQLExecutor, record *models.BookingGuest) (int64, error) {
	query := `INSERT INTO booking_guests (booking_id, guest_id)
	          VALUES ($1, $2)
	          RETURNING id`

	err := executor.QueryRow(query, record.BookingID, record.GuestID).Scan(&record.ID)
	if err != nil {
		return 0, mapPQError(err, "creating booking guest")
	}
	return record.ID, nil
}

// GetBookingGuestByID retrieves a booking-guest association by its ID.
func (r *bookingGuestRepository) GetBookingGuestByID(id int64) (*models.BookingGuest, error) {
	record := &models.BookingGuest{}
	query := `SELECT id, booking_id, guest_id FROM booking_guests WHERE id = $1`

	err := r.db.QueryRow(query, id).Scan(&record.ID, &record.BookingID, &record.GuestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting booking guest by ID %d: %v", ErrDatabaseError, id, err)
	}
	return record, nil
}

// GetBookingGuests retrieves all booking-guest associations ordered by ID.
func (r *bookingGuestRepository) GetBookingGuests() ([]models.BookingGuest, error) {
	query := `SELECT id, booking_id, guest_id FROM booking_guests ORDER BY id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying booking guests: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	records := []models.BookingGuest{}
	for rows.Next() {
		var record models.BookingGuest
		if err := rows.Scan(&record.ID, &record.BookingID, &record.GuestID); err != nil {
			return nil, fmt.Errorf("%w: scanning booking guest: %v", ErrDatabaseError, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating booking guest rows: %v", ErrDatabaseError, err)
	}
	return records, nil
}

// UpdateBookingGuest updates an existing booking-guest association.
func (r *bookingGuestRepository) UpdateBookingGuest(executor SQLExecutor, record *models.BookingGuest) error {
	query := `UPDATE booking_guests SET booking_id = $1, guest_id = $2 WHERE id = $3`

	result, err := executor.Exec(query, record.BookingID, record.GuestID, record.ID)
	if err != nil {
		return mapPQError(err, fmt.Sprintf("updating booking guest ID %d", record.ID))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating booking guest ID %d: %v", ErrDatabaseError, record.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBookingGuest removes a booking-guest association.
func (r *bookingGuestRepository) DeleteBookingGuest(executor SQLExecutor, id int64) error {
	query := `DELETE FROM booking_guests WHERE id = $1`

	result, err := executor.Exec(query, id)
	if err != nil {
		return mapPQError(err, fmt.Sprintf("deleting booking guest ID %d", id))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting booking guest ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
