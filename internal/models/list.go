package models

// ListedSpecies is one entry of a user's personal species list
type ListedSpecies struct {
	SpeciesID  int64  `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	Threatened string `json:"threatened" db:"threatened"`
}

// Recipient identifies a user to be notified about a match
type Recipient struct {
	UserID   int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
}
