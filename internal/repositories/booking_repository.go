package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hotel_backend/internal/models"
)

const dateLayout = "2006-01-02"

// BookingRepository defines the interface for booking-related database operations.
type BookingRepository interface {
	CreateBooking(executor SQLExecutor, booking *models.Booking) (int64, error)
	GetBookingByID(id int64) (*models.Booking, error)
	GetBookings() ([]models.Booking, error)
	UpdateBooking(executor SQLExecutor, booking *models.Booking) error
	DeleteBooking(executor SQLExecutor, id int64) error
	// DeleteBookingsByRoomID removes every booking referencing the room.
	// Runs on the same executor as the room delete so the cascade is atomic.
	DeleteBookingsByRoomID(executor SQLExecutor, roomID int64) (int64, error)
}

type bookingRepository struct {
	db *sql.DB
}

// NewBookingRepository creates a new instance of BookingRepository.
func NewBookingRepository(db *sql.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func scanBooking(row scanner) (*models.Booking, error) {
	booking := &models.Booking{}
	var checkIn, checkOut time.Time
	if err := row.Scan(
		&booking.ID, &booking.RoomID, &booking.MainGuestID,
		&checkIn, &checkOut, &booking.Status, &booking.Discount, &booking.Price,
	); err != nil {
		return nil, err
	}
	booking.CheckInDate = checkIn.Format(dateLayout)
	booking.CheckOutDate = checkOut.Format(dateLayout)
	return booking, nil
}

// CreateBooking inserts a new booking into the database.
func (r *bookingRepository) CreateBooking(executor SQLExecutor, booking *models.Booking) (int64, error) {
	query := `INSERT INTO bookings (room_id, main_guest_id, check_in_date, check_out_date, status, discount, price)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id`

	err := executor.QueryRow(query,
		booking.RoomID, booking.MainGuestID, booking.CheckInDate, booking.CheckOutDate,
		booking.Status, booking.Discount, booking.Price,
	).Scan(&booking.ID)
	if err != nil {
		return 0, mapPQError(err, "creating booking")
	}
	return booking.ID, nil
}

// GetBookingByID retrieves a booking by its ID.
func (r *bookingRepository) GetBookingByID(id int64) (*models.Booking, error) {
	query := `SELECT id, room_id, main_guest_id, check_in_date, check_out_date, status, discount, price
	          FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting booking by ID %d: %v", ErrDatabaseError, id, err)
	}
	return booking, nil
}

// GetBookings retrieves all bookings ordered by ID.
func (r *bookingRepository) GetBookings() ([]models.Booking, error) {
	query := `SELECT id, room_id, main_guest_id, check_in_date, check_out_date, status, discount, price
	          FROM bookings ORDER BY id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying bookings: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning booking: %v", ErrDatabaseError, err)
		}
		bookings = append(bookings, *booking)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating booking rows: %v", ErrDatabaseError, err)
	}
	return bookings, nil
}

// UpdateBooking updates an existing booking in the database.
func (r *bookingRepository) UpdateBooking(executor SQLExecutor, booking *models.Booking) error {
	query := `UPDATE bookings SET
	            room_id = $1, main_guest_id = $2, check_in_date = $3, check_out_date = $4,
	            status = $5, discount = $6, price = $7
	          WHERE id = $8`

	result, err := executor.Exec(query,
		booking.RoomID, booking.MainGuestID, booking.CheckInDate, booking.CheckOutDate,
		booking.Status, booking.Discount, booking.Price, booking.ID,
	)
	if err != nil {
		return mapPQError(err, fmt.Sprintf("updating booking ID %d", booking.ID))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating booking ID %d: %v", ErrDatabaseError, booking.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBooking removes a booking from the database.
func (r *bookingRepository) DeleteBooking(executor SQLExecutor, id int64) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := executor.Exec(query, id)
	if err != nil {
		return mapPQError(err, fmt.Sprintf("deleting booking ID %d", id))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting booking ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBookingsByRoomID removes all bookings for a room and reports how
// many rows were removed. Zero rows is not an error.
func (r *bookingRepository) DeleteBookingsByRoomID(executor SQLExecutor, roomID int64) (int64, error) {
	query := `DELETE FROM bookings WHERE room_id = $1`

	result, err := executor.Exec(query, roomID)
	if err != nil {
		return 0, mapPQError(err, fmt.Sprintf("deleting bookings for room ID %d", roomID))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: getting rows affected for deleting bookings of room ID %d: %v", ErrDatabaseError, roomID, err)
	}
	return rowsAffected, nil
}
