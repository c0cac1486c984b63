package models

// Payment represents a payment recorded against a booking.
type Payment struct {
	ID          int64   `json:"id" db:"id"`
	BookingID   int64   `json:"booking_id" db:"booking_id" binding:"required"`
	Amount      float64 `json:"amount" db:"amount" binding:"required"`
	PaymentDate string  `json:"payment_date" db:"payment_date" binding:"required"`
	Status      string  `json:"status" db:"status" binding:"required"`
}
