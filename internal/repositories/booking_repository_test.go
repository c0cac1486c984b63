package repositories

import (
	"errors"
	"testing"
	"time"

	"hotel_backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

func TestCreateBooking_PassesAllFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(int64(2), int64(3), "2026-09-01", "2026-09-05", "pending", 0.0, 150.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	repo := NewBookingRepository(db)
	booking := &models.Booking{
		RoomID:       2,
		MainGuestID:  3,
		CheckInDate:  "2026-09-01",
		CheckOutDate: "2026-09-05",
		Status:       "pending",
		Price:        150.0,
	}

	id, err := repo.CreateBooking(db, booking)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != 11 {
		t.Fatalf("expected id 11, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBooking_ForeignKeyViolationMapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: "23503", Constraint: "bookings_room_id_fkey"})

	repo := NewBookingRepository(db)
	_, err = repo.CreateBooking(db, &models.Booking{RoomID: 999, MainGuestID: 1, CheckInDate: "2026-09-01", CheckOutDate: "2026-09-02", Status: "pending"})
	if !errors.Is(err, ErrForeignKeyViolation) {
		t.Fatalf("expected ErrForeignKeyViolation, got %v", err)
	}
}

func TestGetBookingByID_FormatsDates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	checkIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "room_id", "main_guest_id", "check_in_date", "check_out_date", "status", "discount", "price"}).
		AddRow(11, 2, 3, checkIn, checkOut, "confirmed", 5.0, 480.0)

	mock.ExpectQuery("SELECT id, room_id, main_guest_id, check_in_date, check_out_date, status, discount, price").
		WithArgs(int64(11)).
		WillReturnRows(rows)

	repo := NewBookingRepository(db)
	booking, err := repo.GetBookingByID(11)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if booking.CheckInDate != "2026-09-01" || booking.CheckOutDate != "2026-09-05" {
		t.Fatalf("dates not formatted as ISO strings: %q / %q", booking.CheckInDate, booking.CheckOutDate)
	}
	if booking.Price != 480.0 {
		t.Fatalf("expected price 480.0, got %v", booking.Price)
	}
}

func TestDeleteBookingsByRoomID_ReportsRemovedCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM bookings WHERE room_id").
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	repo := NewBookingRepository(db)
	removed, err := repo.DeleteBookingsByRoomID(db, 4)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if removed != 3 {
		t.Fatalf("expected 3 removed bookings, got %d", removed)
	}
}

func TestDeleteBookingsByRoomID_ZeroRowsIsNotAnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM bookings WHERE room_id").
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewBookingRepository(db)
	removed, err := repo.DeleteBookingsByRoomID(db, 4)
	if err != nil {
		t.Fatalf("expected no error for a room without bookings, got %v", err)
	}
	if removed != 0 {
		t.Fatalf("expected 0 removed bookings, got %d", removed)
	}
}
