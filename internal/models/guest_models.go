package models

// Guest represents a registered hotel guest. Passport series and number
// are each globally unique among non-null values.
type Guest struct {
	ID             int64   `json:"id" db:"id"`
	Name           string  `json:"name" db:"name" binding:"required"`
	Phone          string  `json:"phone" db:"phone" binding:"required"`
	Email          *string `json:"email,omitempty" db:"email"`
	PassportSeries *string `json:"passport_series,omitempty" db:"passport_series"`
	PassportNumber *string `json:"passport_number,omitempty" db:"passport_number"`
}
