package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                       // Primary key
	Username     string    `json:"username" db:"username"`           // Unique username
	Email        string    `json:"email" db:"email"`                 // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`             // bcrypt hash, never serialized
	CityID       int64     `json:"city_id" db:"city_id"`             // Home city
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`       // Last update timestamp
}

// Profile is a user row joined with its city and country
type Profile struct {
	UserID      int64  `json:"id" db:"id"`
	Username    string `json:"username" db:"username"`
	Email       string `json:"email" db:"email"`
	CityID      int64  `json:"city_id" db:"city_id"`
	City        string `json:"city" db:"city"`
	CountryID   int64  `json:"country_id" db:"country_id"`
	Country     string `json:"country" db:"country"`
	CountryCode string `json:"country_code" db:"country_code"`
}

// Location is the city/country pair a user belongs to
type Location struct {
	CityID    int64 `db:"city_id"`
	CountryID int64 `db:"country_id"`
}
