package models

// Room represents a hotel room.
type Room struct {
	ID          int64  `json:"id" db:"id"`
	RoomNumber  string `json:"room_number" db:"room_number" binding:"required"`
	Category    string `json:"category" db:"category" binding:"required"`
	Capacity    int    `json:"capacity" db:"capacity" binding:"required"`
	HasChildBed bool   `json:"has_child_bed" db:"has_child_bed"`
}
