package domain

import "time"

// Coordinates is a geographic point resolved from a free-text location.
type Coordinates struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// Entry is a journal record owned by a single user.
//
// LocationName, Coordinates and Author are fixed at creation; only Headline
// and JournalText change afterwards.
type Entry struct {
	ID           string      `json:"id" bson:"_id"`
	Headline     string      `json:"headline" bson:"headline"`
	JournalText  string      `json:"journalText" bson:"journal_text"`
	Photo        string      `json:"photo" bson:"photo"`
	LocationName string      `json:"locationName" bson:"location_name"`
	Coordinates  Coordinates `json:"coordinates" bson:"coordinates"`
	Author       string      `json:"author" bson:"author"`
	CreatedAt    time.Time   `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time   `json:"updatedAt" bson:"updated_at"`
}

// IsOwnedBy reports whether userID authored the entry.
func (e *Entry) IsOwnedBy(userID string) bool {
	return userID != "" && e.Author == userID
}
