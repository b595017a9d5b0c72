package models

// Coordinates is a geographic point in decimal degrees
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Place is the best geocoding match for a free-text query
type Place struct {
	Query       string      `json:"query"`       // text the user typed
	DisplayName string      `json:"displayName"` // provider's full name for the match
	Coordinates Coordinates `json:"coordinates"`
}
