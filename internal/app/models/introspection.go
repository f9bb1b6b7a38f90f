package models

// Timestamp of a date in Unix milliseconds and as an HTTP date
type Timestamp struct {
	Unix int64  `json:"unix"`
	UTC  string `json:"utc"`
}

// Identity of a request's client
type Identity struct {
	IPAddress string `json:"ipaddress"`
	Language  string `json:"language"`
	Software  string `json:"software"`
}
