package models

// Metadata of an uploaded file
type FileMetadata struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}
