package model

import "time"

// Booking status values. The only transition is pending -> cancelled,
// performed by an explicit cancel.
const (
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Booking belongs to the user who created it (UserID). Name and Email are
// contact details for the visit, not the owning relation.
type Booking struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// HealthRecord is an append-only metric entry. Date is assigned by the
// server at insert time; all measurement fields are optional.
type HealthRecord struct {
	ID            string    `json:"id"`
	UserID        string    `json:"-"`
	Date          time.Time `json:"date"`
	Weight        *float64  `json:"weight"`
	BloodPressure *string   `json:"bloodPressure"`
	Steps         *int      `json:"steps"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
}
