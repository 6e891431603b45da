package models

// MatchEvent is published when a species reaches critical mass in a city
type MatchEvent struct {
	EventID     string   `json:"event_id"`     // Unique event identifier
	SpeciesID   int64    `json:"species_id"`   // Matched species
	SpeciesName string   `json:"species_name"` // Scientific name
	CityID      int64    `json:"city_id"`      // City where the match fired
	CityName    string   `json:"city_name"`
	CountryName string   `json:"country_name"`
	Usernames   []string `json:"usernames"` // Every same-city user holding the species
	Timestamp   int64    `json:"timestamp"` // Unix seconds
}
