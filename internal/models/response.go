package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type ProjectListResponse struct {
	Projects []Project `json:"projects"`
}

// DraftResponse is returned by the draft endpoints so the admin form can be
// rendered from the controller's state. Mode is "create" or "edit".
type DraftResponse struct {
	Mode   string       `json:"mode"`
	EditID int64        `json:"edit_id,omitempty"`
	Draft  ProjectDraft `json:"draft"`
}

type RevealResponse struct {
	Revealed []int `json:"revealed"`
}

type UploadResponse struct {
	ImageURL string `json:"image_url"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
