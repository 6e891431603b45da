package models

// CountryDB represents a country row in the database
type CountryDB struct {
	ID   int64  `json:"id" db:"id"`     // Primary key
	Name string `json:"name" db:"name"` // Unique country name
	Code string `json:"code" db:"code"` // ISO 3166-1 alpha-2 code, unique
}

// CatalogCountry is one entry of the remote catalog's full country list
type CatalogCountry struct {
	Name string `json:"country"`
	Code string `json:"isocode"`
}
