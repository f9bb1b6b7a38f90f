package models

// Shortened URL record
type ShortURL struct {
	ID          string `json:"_id"`
	OriginalURL string `json:"original_url"`
}
