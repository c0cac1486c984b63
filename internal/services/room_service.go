package services

import (
	"database/sql"
	"errors"
	"fmt"

	"hotel_backend/internal/models"
	"hotel_backend/internal/repositories"
	"hotel_backend/pkg/utils"
)

// --- Custom Service Errors for Room ---
var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomValidation = errors.New("room data validation error")
	ErrRoomInUse      = errors.New("room cannot be deleted as its bookings are referenced by other records")
)

// --- Room DTOs ---
type CreateRoomRequest struct {
	RoomNumber  string `json:"room_number" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Capacity    int    `json:"capacity" binding:"required"`
	HasChildBed *bool  `json:"has_child_bed"`
}

type UpdateRoomRequest struct {
	RoomNumber  *string `json:"room_number"`
	Category    *string `json:"category"`
	Capacity    *int    `json:"capacity"`
	HasChildBed *bool   `json:"has_child_bed"`
}

// --- RoomService Interface ---
type RoomService interface {
	CreateRoom(req CreateRoomRequest) (*models.Room, error)
	GetRoomByID(roomID int64) (*models.Room, error)
	GetRooms() ([]models.Room, error)
	UpdateRoom(roomID int64, req UpdateRoomRequest) error
	// DeleteRoom removes the room and every booking referencing it in one
	// transaction. Returns the number of cascaded bookings.
	DeleteRoom(roomID int64) (int64, error)
}

// --- roomService Implementation ---
type roomService struct {
	roomRepo    repositories.RoomRepository
	bookingRepo repositories.BookingRepository
	db          *sql.DB
}

// NewRoomService creates a new instance of RoomService.
func NewRoomService(rr repositories.RoomRepository, br repositories.BookingRepository, db *sql.DB) RoomService {
	return &roomService{
		roomRepo:    rr,
		bookingRepo: br,
		db:          db,
	}
}

func (s *roomService) CreateRoom(req CreateRoomRequest) (*models.Room, error) {
	if utils.IsEmpty(req.RoomNumber) {
		return nil, fmt.Errorf("%w: room number cannot be empty", ErrRoomValidation)
	}
	if utils.IsEmpty(req.Category) {
		return nil, fmt.Errorf("%w: category cannot be empty", ErrRoomValidation)
	}
	if req.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", ErrRoomValidation)
	}

	hasChildBed := false
	if req.HasChildBed != nil {
		hasChildBed = *req.HasChildBed
	}

	room := &models.Room{
		RoomNumber:  req.RoomNumber,
		Category:    req.Category,
		Capacity:    req.Capacity,
		HasChildBed: hasChildBed,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction for room creation: %w", err)
	}
	defer tx.Rollback()

	id, err := s.roomRepo.CreateRoom(tx, room)
	if err != nil {
		return nil, fmt.Errorf("failed to create room in repository: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit room creation: %w", err)
	}

	return s.roomRepo.GetRoomByID(id)
}

func (s *roomService) GetRoomByID(roomID int64) (*models.Room, error) {
	room, err := s.roomRepo.GetRoomByID(roomID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room by ID: %w", err)
	}
	return room, nil
}

func (s *roomService) GetRooms() ([]models.Room, error) {
	rooms, err := s.roomRepo.GetRooms()
	if err != nil {
		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}
	return rooms, nil
}

func (s *roomService) UpdateRoom(roomID int64, req UpdateRoomRequest) error {
	room, err := s.roomRepo.GetRoomByID(roomID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("failed to find room for update: %w", err)
	}

	if req.RoomNumber != nil {
		if utils.IsEmpty(*req.RoomNumber) {
			return fmt.Errorf("%w: room number cannot be empty if provided", ErrRoomValidation)
		}
		room.RoomNumber = *req.RoomNumber
	}
	if req.Category != nil {
		if utils.IsEmpty(*req.Category) {
			return fmt.Errorf("%w: category cannot be empty if provided", ErrRoomValidation)
		}
		room.Category = *req.Category
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return fmt.Errorf("%w: capacity must be positive", ErrRoomValidation)
		}
		room.Capacity = *req.Capacity
	}
	if req.HasChildBed != nil {
		room.HasChildBed = *req.HasChildBed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for room update: %w", err)
	}
	defer tx.Rollback()

	if err = s.roomRepo.UpdateRoom(tx, room); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("failed to update room in repository: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit room update: %w", err)
	}
	return nil
}

// DeleteRoom cascades: bookings for the room go first, then the room itself,
// all inside one transaction. If a cascaded booking is still referenced by a
// payment or booking-guest row the whole transaction rolls back.
func (s *roomService) DeleteRoom(roomID int64) (int64, error) {
	if _, err := s.roomRepo.GetRoomByID(roomID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, ErrRoomNotFound
		}
		return 0, fmt.Errorf("failed to find room for deletion: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction for room deletion: %w", err)
	}
	defer tx.Rollback()

	removed, err := s.bookingRepo.DeleteBookingsByRoomID(tx, roomID)
	if err != nil {
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return 0, ErrRoomInUse
		}
		return 0, fmt.Errorf("failed to delete bookings for room: %w", err)
	}

	if err = s.roomRepo.DeleteRoom(tx, roomID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, ErrRoomNotFound
		}
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return 0, ErrRoomInUse
		}
		return 0, fmt.Errorf("failed to delete room: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit room deletion: %w", err)
	}
	return removed, nil
}
