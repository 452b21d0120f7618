package model

import "time"

// User is an account known to the mock authentication directory.
// PasswordHash is empty for demo-mode users who logged in without
// registering first.
type User struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone,omitempty"`
	Address      string          `json:"address,omitempty"`
	Preferences  UserPreferences `json:"preferences"`
	PasswordHash string          `json:"-"`
	CreatedAt    time.Time       `json:"created_at"`
}

// UserPreferences holds profile toggles shown on the profile page.
type UserPreferences struct {
	Notifications   bool   `json:"notifications"`
	Newsletter      bool   `json:"newsletter"`
	SeatPreferences string `json:"seat_preferences,omitempty"`
}
