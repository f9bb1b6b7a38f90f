package models

import "time"

// DateLayout is the human readable calendar date used in API responses.
const DateLayout = "Mon Jan 02 2006"

// User with its exercise log
type User struct {
	ID        string     `json:"_id"`
	Username  string     `json:"username"`
	Exercises []Exercise `json:"exercises"`
}

// Exercise entry owned by a user. Date is a calendar date at UTC midnight.
type Exercise struct {
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Date        time.Time `json:"date"`
}

// ExerciseInput is a raw exercise as submitted by a client
type ExerciseInput struct {
	Description string
	Duration    string
	Date        string
}

// ExerciseSummary is returned after an exercise was appended
type ExerciseSummary struct {
	UserID      string `json:"_id"`
	Username    string `json:"username"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

// LogQuery filters a user's exercise log. Nil fields are not applied.
type LogQuery struct {
	From  *time.Time
	To    *time.Time
	Limit *int
}

// LogEntry is a formatted exercise in an ExerciseLog
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// ExerciseLog is the filtered exercise log of a user
type ExerciseLog struct {
	UserID   string     `json:"_id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}
