package models

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Password string `json:"password"`
}

// RevealRequest carries the current viewport geometry of the page plus the
// indices the client has already revealed. Offsets are in CSS pixels
// relative to the top of the viewport.
type RevealRequest struct {
	ViewportHeight float64   `json:"viewport_height"`
	Tops           []float64 `json:"tops"`
	Revealed       []int     `json:"revealed,omitempty"`
}
