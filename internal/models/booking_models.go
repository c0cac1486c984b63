package models

// BookingStatus defines the type for booking statuses
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking represents a room reservation for a main guest. Dates are
// carried as ISO YYYY-MM-DD strings, decimals as plain numbers.
type Booking struct {
	ID           int64   `json:"id" db:"id"`
	RoomID       int64   `json:"room_id" db:"room_id" binding:"required"`
	MainGuestID  int64   `json:"main_guest_id" db:"main_guest_id" binding:"required"`
	CheckInDate  string  `json:"check_in_date" db:"check_in_date" binding:"required"`
	CheckOutDate string  `json:"check_out_date" db:"check_out_date" binding:"required"`
	Status       string  `json:"status" db:"status"`
	Discount     float64 `json:"discount" db:"discount"`
	Price        float64 `json:"price" db:"price"`
}

// BookingGuest links one booking to one additional guest beyond the
// main guest.
type BookingGuest struct {
	ID        int64 `json:"id" db:"id"`
	BookingID int64 `json:"booking_id" db:"booking_id" binding:"required"`
	GuestID   int64 `json:"guest_id" db:"guest_id" binding:"required"`
}
