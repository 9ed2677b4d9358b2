package domain

import "time"

// School and Class are read-only reference data resolved from the directory
// database; the workflow consults them to route inbox items and label
// notifications and exports.
type School struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	City       string    `json:"city" db:"city"`
	DirectorID *string   `json:"director_id,omitempty" db:"director_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type Class struct {
	ID        string    `json:"id" db:"id"`
	SchoolID  string    `json:"school_id" db:"school_id"`
	Name      string    `json:"name" db:"name"`
	Level     string    `json:"level" db:"level"`
	Capacity  int       `json:"capacity" db:"capacity"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
