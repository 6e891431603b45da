package models

// Conservation category codes as published by the remote catalog.
const (
	CategoryLeastConcern         = "LC"
	CategoryNearThreatened       = "NT"
	CategoryVulnerable           = "VU"
	CategoryEndangered           = "EN"
	CategoryCriticallyEndangered = "CR"
	CategoryExtinctInWild        = "EW"
	CategoryExtinct              = "EX"
)

// SpeciesDB represents a species row in the database
type SpeciesDB struct {
	ID         int64  `json:"id" db:"id"`                 // Primary key
	Name       string `json:"name" db:"name"`             // Scientific name, stored case-folded, unique
	Threatened string `json:"threatened" db:"threatened"` // Conservation category code
}

// CatalogSpecies is the remote catalog payload cached between lookups
type CatalogSpecies struct {
	Category     string   `json:"category"`      // Conservation category code
	CountryCodes []string `json:"country_codes"` // ISO codes of countries the species occurs in
}
