package services

import (
	"testing"

	"hotel_backend/internal/models"
	"hotel_backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRoomRepo struct {
	createFn  func(executor repositories.SQLExecutor, room *models.Room) (int64, error)
	getByIDFn func(id int64) (*models.Room, error)
	getAllFn  func() ([]models.Room, error)
	updateFn  func(executor repositories.SQLExecutor, room *models.Room) error
	deleteFn  func(executor repositories.SQLExecutor, id int64) error
}

func (r *stubRoomRepo) CreateRoom(executor repositories.SQLExecutor, room *models.Room) (int64, error) {
	return r.createFn(executor, room)
}
func (r *stubRoomRepo) GetRoomByID(id int64) (*models.Room, error) { return r.getByIDFn(id) }
func (r *stubRoomRepo) GetRooms() ([]models.Room, error)           { return r.getAllFn() }
func (r *stubRoomRepo) UpdateRoom(executor repositories.SQLExecutor, room *models.Room) error {
	return r.updateFn(executor, room)
}
func (r *stubRoomRepo) DeleteRoom(executor repositories.SQLExecutor, id int64) error {
	return r.deleteFn(executor, id)
}

func TestCreateRoom_ChildBedDefaultsToFalse(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	var created *models.Room
	roomRepo := &stubRoomRepo{
		createFn: func(executor repositories.SQLExecutor, room *models.Room) (int64, error) {
			created = room
			return 4, nil
		},
		getByIDFn: func(id int64) (*models.Room, error) {
			return &models.Room{ID: 4, RoomNumber: "101", Category: "standard", Capacity: 2}, nil
		},
	}
	svc := NewRoomService(roomRepo, &stubBookingRepo{}, db)

	room, err := svc.CreateRoom(CreateRoomRequest{RoomNumber: "101", Category: "standard", Capacity: 2})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.False(t, created.HasChildBed)
	assert.Equal(t, int64(4), room.ID)
}

func TestCreateRoom_RejectsNonPositiveCapacity(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	svc := NewRoomService(&stubRoomRepo{}, &stubBookingRepo{}, db)
	_, err = svc.CreateRoom(CreateRoomRequest{RoomNumber: "101", Category: "standard", Capacity: 0})
	assert.ErrorIs(t, err, ErrRoomValidation)
}

func TestDeleteRoom_CascadesBookingsInOneTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	var calls []string
	roomRepo := &stubRoomRepo{
		getByIDFn: func(id int64) (*models.Room, error) {
			return &models.Room{ID: 4, RoomNumber: "101", Category: "standard", Capacity: 2}, nil
		},
		deleteFn: func(executor repositories.SQLExecutor, id int64) error {
			calls = append(calls, "room")
			return nil
		},
	}
	bookingRepo := &stubBookingRepo{
		deleteByRoomFn: func(executor repositories.SQLExecutor, roomID int64) (int64, error) {
			calls = append(calls, "bookings")
			return 3, nil
		},
	}
	svc := NewRoomService(roomRepo, bookingRepo, db)

	removed, err := svc.DeleteRoom(4)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	assert.Equal(t, []string{"bookings", "room"}, calls, "bookings must be removed before the room")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRoom_RollsBackWhenBookingsAreReferenced(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	roomDeleted := false
	roomRepo := &stubRoomRepo{
		getByIDFn: func(id int64) (*models.Room, error) {
			return &models.Room{ID: 4, RoomNumber: "101", Category: "standard", Capacity: 2}, nil
		},
		deleteFn: func(executor repositories.SQLExecutor, id int64) error {
			roomDeleted = true
			return nil
		},
	}
	bookingRepo := &stubBookingRepo{
		deleteByRoomFn: func(executor repositories.SQLExecutor, roomID int64) (int64, error) {
			return 0, repositories.ErrForeignKeyViolation
		},
	}
	svc := NewRoomService(roomRepo, bookingRepo, db)

	_, err = svc.DeleteRoom(4)
	assert.ErrorIs(t, err, ErrRoomInUse)
	assert.False(t, roomDeleted, "room delete must not run after the cascade fails")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRoom_UnknownRoom(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	roomRepo := &stubRoomRepo{
		getByIDFn: func(id int64) (*models.Room, error) { return nil, repositories.ErrNotFound },
	}
	svc := NewRoomService(roomRepo, &stubBookingRepo{}, db)

	_, err = svc.DeleteRoom(404)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
