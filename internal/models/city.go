package models

// CityDB represents a city row in the database.
// City names are unique per country, not globally.
type CityDB struct {
	ID        int64  `json:"id" db:"id"`                 // Primary key
	Name      string `json:"name" db:"name"`             // City name
	CountryID int64  `json:"country_id" db:"country_id"` // Owning country
}
