package models

// User is the current-session user descriptor held by the state store.
// Account management lives outside the sync engine.
type User struct {
	ID    string  `json:"id" db:"id"`
	Name  *string `json:"name,omitempty" db:"name"`
	Email string  `json:"email" db:"email"`
	Image *string `json:"image,omitempty" db:"image"`
}
