package model

// Location represents a saved location row owned by a user.
type Location struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

// AddLocationRequest represents an add-location request body.
type AddLocationRequest struct {
	Location string `json:"location"`
}

// AddLocationResponse is returned after a location is saved.
type AddLocationResponse struct {
	Success  bool            `json:"success"`
	Location LocationSummary `json:"location"`
}

// LocationSummary is the id/name pair echoed back to the client.
type LocationSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
