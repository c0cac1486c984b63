package repositories

import (
	"errors"
	"testing"

	"hotel_backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

func strPtr(s string) *string { return &s }

func TestCreateGuest_ReturnsAssignedID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO guests").
		WithArgs("Ivan Petrov", "+79990001122", nil, "4512", "123456").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	repo := NewGuestRepository(db)
	guest := &models.Guest{
		Name:           "Ivan Petrov",
		Phone:          "+79990001122",
		PassportSeries: strPtr("4512"),
		PassportNumber: strPtr("123456"),
	}

	id, err := repo.CreateGuest(db, guest)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != 7 || guest.ID != 7 {
		t.Fatalf("expected assigned id 7, got %d (model %d)", id, guest.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateGuest_UniqueViolationMapsToDuplicateKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO guests").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "guests_passport_number_key"})

	repo := NewGuestRepository(db)
	_, err = repo.CreateGuest(db, &models.Guest{Name: "A", Phone: "1", PassportNumber: strPtr("123456")})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestGetGuestByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, phone, email, passport_series, passport_number").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "email", "passport_series", "passport_number"}))

	repo := NewGuestRepository(db)
	_, err = repo.GetGuestByID(99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindGuestByPassport_ExcludesSelf(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, phone, email, passport_series, passport_number").
		WithArgs("4512", "123456", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "email", "passport_series", "passport_number"}))

	repo := NewGuestRepository(db)
	_, err = repo.FindGuestByPassport(strPtr("4512"), strPtr("123456"), 3)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound when only self holds the passport, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateGuest_ZeroRowsAffectedIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE guests SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewGuestRepository(db)
	err = repo.UpdateGuest(db, &models.Guest{ID: 42, Name: "A", Phone: "1"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteGuest_ForeignKeyViolationMapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM guests").
		WillReturnError(&pq.Error{Code: "23503", Constraint: "bookings_main_guest_id_fkey"})

	repo := NewGuestRepository(db)
	err = repo.DeleteGuest(db, 5)
	if !errors.Is(err, ErrForeignKeyViolation) {
		t.Fatalf("expected ErrForeignKeyViolation, got %v", err)
	}
}
