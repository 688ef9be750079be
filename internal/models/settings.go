package models

// Setting is a key/value configuration entry kept by the backend.
// Values travel as strings whatever their original type.
type Setting struct {
	Key         string  `json:"key"`
	Value       string  `json:"value"`
	Description *string `json:"description"`
}

// SaveSettingRequest represents the request body for POST /settings/
type SaveSettingRequest struct {
	Key         string  `json:"key"`
	Value       string  `json:"value"`
	Description *string `json:"description"`
}
