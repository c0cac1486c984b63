package models

// Price is a per-room, per-weekday rate. Duplicate (room_id, day_of_week)
// rows are allowed; no uniqueness is enforced.
type Price struct {
	ID        int64   `json:"id" db:"id"`
	RoomID    int64   `json:"room_id" db:"room_id" binding:"required"`
	DayOfWeek string  `json:"day_of_week" db:"day_of_week" binding:"required"`
	Price     float64 `json:"price" db:"price" binding:"required"`
}

// Discount is a tenure-based discount rule mapping a stay-length range
// to a percentage. Ranges may overlap; no constraint is enforced.
type Discount struct {
	ID              int64   `json:"id" db:"id"`
	MinDays         int     `json:"min_days" db:"min_days" binding:"required"`
	MaxDays         int     `json:"max_days" db:"max_days" binding:"required"`
	DiscountPercent float64 `json:"discount_percent" db:"discount_percent" binding:"required"`
}
