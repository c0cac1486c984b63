package services

import (
	"testing"

	"hotel_backend/internal/models"
	"hotel_backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGuestRepo lets each test swap in just the calls it cares about.
type stubGuestRepo struct {
	createFn       func(executor repositories.SQLExecutor, guest *models.Guest) (int64, error)
	getByIDFn      func(id int64) (*models.Guest, error)
	getAllFn       func() ([]models.Guest, error)
	findPassportFn func(series, number *string, excludeID int64) (*models.Guest, error)
	updateFn       func(executor repositories.SQLExecutor, guest *models.Guest) error
	deleteFn       func(executor repositories.SQLExecutor, id int64) error
}

func (r *stubGuestRepo) CreateGuest(executor repositories.SQLExecutor, guest *models.Guest) (int64, error) {
	return r.createFn(executor, guest)
}
func (r *stubGuestRepo) GetGuestByID(id int64) (*models.Guest, error) { return r.getByIDFn(id) }
func (r *stubGuestRepo) GetGuests() ([]models.Guest, error)           { return r.getAllFn() }
func (r *stubGuestRepo) FindGuestByPassport(series, number *string, excludeID int64) (*models.Guest, error) {
	return r.findPassportFn(series, number, excludeID)
}
func (r *stubGuestRepo) UpdateGuest(executor repositories.SQLExecutor, guest *models.Guest) error {
	return r.updateFn(executor, guest)
}
func (r *stubGuestRepo) DeleteGuest(executor repositories.SQLExecutor, id int64) error {
	return r.deleteFn(executor, id)
}

func ptr[T any](v T) *T { return &v }

func TestCreateGuest_RejectsDuplicatePassport(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &stubGuestRepo{
		findPassportFn: func(series, number *string, excludeID int64) (*models.Guest, error) {
			return &models.Guest{ID: 2, Name: "Existing"}, nil
		},
	}
	svc := NewGuestService(repo, db)

	_, err = svc.CreateGuest(CreateGuestRequest{
		Name:           "Ivan Petrov",
		Phone:          "+79990001122",
		PassportSeries: ptr("4512"),
		PassportNumber: ptr("123456"),
	})
	assert.ErrorIs(t, err, ErrPassportExists)
}

func TestCreateGuest_SkipsPassportCheckWhenFieldsOmitted(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	created := &models.Guest{ID: 9, Name: "Anna", Phone: "+70000000000"}
	repo := &stubGuestRepo{
		findPassportFn: func(series, number *string, excludeID int64) (*models.Guest, error) {
			t.Fatal("passport lookup must not run when passport fields are absent")
			return nil, nil
		},
		createFn: func(executor repositories.SQLExecutor, guest *models.Guest) (int64, error) {
			return 9, nil
		},
		getByIDFn: func(id int64) (*models.Guest, error) {
			return created, nil
		},
	}
	svc := NewGuestService(repo, db)

	guest, err := svc.CreateGuest(CreateGuestRequest{Name: "Anna", Phone: "+70000000000"})
	require.NoError(t, err)
	assert.Equal(t, created, guest)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGuest_ValidatesEmailFormat(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	svc := NewGuestService(&stubGuestRepo{}, db)
	_, err = svc.CreateGuest(CreateGuestRequest{
		Name:  "Anna",
		Phone: "+70000000000",
		Email: ptr("not-an-email"),
	})
	assert.ErrorIs(t, err, ErrGuestValidation)
}

func TestUpdateGuest_SelfPassportIsNotAConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	stored := &models.Guest{
		ID:             3,
		Name:           "Ivan Petrov",
		Phone:          "+79990001122",
		PassportSeries: ptr("4512"),
		PassportNumber: ptr("123456"),
	}
	var lookupExclude int64
	repo := &stubGuestRepo{
		getByIDFn: func(id int64) (*models.Guest, error) { return stored, nil },
		findPassportFn: func(series, number *string, excludeID int64) (*models.Guest, error) {
			lookupExclude = excludeID
			return nil, repositories.ErrNotFound
		},
		updateFn: func(executor repositories.SQLExecutor, guest *models.Guest) error { return nil },
	}
	svc := NewGuestService(repo, db)

	err = svc.UpdateGuest(3, UpdateGuestRequest{
		PassportSeries: ptr("4512"),
		PassportNumber: ptr("123456"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), lookupExclude, "uniqueness lookup must exclude the guest being updated")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateGuest_MergesOnlySuppliedFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	stored := &models.Guest{
		ID:    5,
		Name:  "Ivan Petrov",
		Phone: "+79990001122",
		Email: ptr("ivan@example.com"),
	}
	var saved *models.Guest
	repo := &stubGuestRepo{
		getByIDFn: func(id int64) (*models.Guest, error) { return stored, nil },
		updateFn: func(executor repositories.SQLExecutor, guest *models.Guest) error {
			saved = guest
			return nil
		},
	}
	svc := NewGuestService(repo, db)

	err = svc.UpdateGuest(5, UpdateGuestRequest{Phone: ptr("+71112223344")})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Ivan Petrov", saved.Name)
	assert.Equal(t, "+71112223344", saved.Phone)
	require.NotNil(t, saved.Email)
	assert.Equal(t, "ivan@example.com", *saved.Email)
}

func TestUpdateGuest_NotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &stubGuestRepo{
		getByIDFn: func(id int64) (*models.Guest, error) { return nil, repositories.ErrNotFound },
	}
	svc := NewGuestService(repo, db)

	err = svc.UpdateGuest(404, UpdateGuestRequest{Name: ptr("X")})
	assert.ErrorIs(t, err, ErrGuestNotFound)
}

func TestDeleteGuest_ReferencedByBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &stubGuestRepo{
		deleteFn: func(executor repositories.SQLExecutor, id int64) error {
			return repositories.ErrForeignKeyViolation
		},
	}
	svc := NewGuestService(repo, db)

	err = svc.DeleteGuest(5)
	assert.ErrorIs(t, err, ErrGuestInUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}
