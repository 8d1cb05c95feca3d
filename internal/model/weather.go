package model

// WeatherObservation is the current conditions for one saved location.
// It is built fresh per request and never persisted.
type WeatherObservation struct {
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"` // Celsius
	Condition   string  `json:"condition"`
	Icon        string  `json:"icon"` // provider icon code, passed through unmodified
}
