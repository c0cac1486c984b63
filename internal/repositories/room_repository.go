package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"hotel_backend/internal/models"
)

// RoomRepository defines the interface for room-related database operations.
type RoomRepository interface {
	CreateRoom(executor SQLExecutor, room *models.Room) (int64, error)
	GetRoomByID(id int64) (*models.Room, error)
	GetRooms() ([]models.Room, error)
	UpdateRoom(executor SQLExecutor, room *models.Room) error
	DeleteRoom(executor SQLExecutor, id int64) error
}

type roomRepository struct {
	db *sql.DB
}

// NewRoomRepository creates a new instance of RoomRepository.
func NewRoomRepository(db *sql.DB) RoomRepository {
	return &roomRepository{db: db}
}

// CreateRoom inserts a new room into the database.
func (r *roomRepository) CreateRoom(executor SQLExecutor, room *models.Room) (int64, error) {
	query := `INSERT INTO rooms (room_number, category, capacity, has_child_bed)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`

	err := executor.QueryRow(query,
		room.RoomNumber, room.Category, room.Capacity, room.HasChildBed,
	).Scan(&room.ID)
	if err != nil {
		return 0, mapPQError(err, "creating room")
	}
	return room.ID, nil
}

// GetRoomByID retrieves a room by its ID.
func (r *roomRepository) GetRoomByID(id int64) (*models.Room, error) {
	room := &models.Room{}
	query := `SELECT id, room_number, category, capacity, has_child_bed
	          FROM rooms WHERE id = $1`

	err := r.db.QueryRow(query, id).Scan(
		&room.ID, &room.RoomNumber, &room.Category, &room.Capacity, &room.HasChildBed,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting room by ID %d: %v", ErrDatabaseError, id, err)
	}
	return room, nil
}

// GetRooms retrieves all rooms ordered by ID.
func (r *roomRepository) GetRooms() ([]models.Room, error) {
	query := `SELECT id, room_number, category, capacity, has_child_bed
	          FROM rooms ORDER BY id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying rooms: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	rooms := []models.Room{}
	for rows.Next() {
		var room models.Room
		if err := rows.Scan(&room.ID, &room.RoomNumber, &room.Category, &room.Capacity, &room.HasChildBed); err != nil {
			return nil, fmt.Errorf("%w: scanning room: %v", ErrDatabaseError, err)
		}
		rooms = append(rooms, room)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating room rows: %v", ErrDatabaseError, err)
	}
	return rooms, nil
}

// UpdateRoom updates an existing room in the database.
func (r *roomRepository) UpdateRoom(executor SQLExecutor, room *models.Room) error {
	query := `UPDATE rooms SET
	            room_number = $1, category = $2, capacity = $3, has_child_bed = $4
	          WHERE id = $5`

	result, err := executor.Exec(query,
		room.RoomNumber, room.Category, room.Capacity, room.HasChildBed, room.ID,
	)
	if err != nil {
		return mapPQError(err, fmt.Sprintf("updating room ID %d", room.ID))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating room ID %d: %v", ErrDatabaseError, room.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteRoom removes a room from the database. Bookings referencing the
// room must be deleted first within the same transaction.
func (r *roomRepository) DeleteRoom(executor SQLExecutor, id int64) error {
	query := `DELETE FROM rooms WHERE id = $1`

	result, err := executor.Exec(query, id)
	if err != nil {
		return mapPQError(err, fmt.Sprintf("deleting room ID %d", id))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting room ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
