package services

import (
	"context"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ilya-burinskiy/utilapi/internal/app/logger"
	"github.com/ilya-burinskiy/utilapi/internal/app/models"
	"github.com/ilya-burinskiy/utilapi/internal/app/storage"
)

// ExerciseTracker manages users and their exercise logs
type ExerciseTracker struct {
	store storage.Storage
	now   func() time.Time
}

// NewExerciseTracker
func NewExerciseTracker(store storage.Storage) ExerciseTracker {
	return ExerciseTracker{store: store, now: time.Now}
}

// WithClock returns a copy of the tracker that takes the current date from now
func (t ExerciseTracker) WithClock(now func() time.Time) ExerciseTracker {
	t.now = now
	return t
}

// Create user with unique username
func (t ExerciseTracker) CreateUser(ctx context.Context, username string) (models.User, error) {
	if strings.TrimSpace(username) == "" {
		return models.User{}, NewValidationError("username", "is required")
	}

	user, err := t.store.CreateUser(ctx, username)
	if err != nil {
		var notUniqErr *storage.ErrNotUnique
		if errors.As(err, &notUniqErr) {
			return models.User{}, ErrDuplicateUsername
		}

		logger.Log.Info("failed to create user", zap.String("username", username), zap.Error(err))
		return models.User{}, storageFailure(err)
	}

	return user, nil
}

// List users in creation order
func (t ExerciseTracker) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := t.store.ListUsers(ctx)
	if err != nil {
		logger.Log.Info("failed to list users", zap.Error(err))
		return nil, storageFailure(err)
	}

	return users, nil
}

// Append exercise to the user's log
func (t ExerciseTracker) AddExercise(
	ctx context.Context,
	userID string,
	in models.ExerciseInput) (models.ExerciseSummary, error) {

	user, err := t.findUser(ctx, userID)
	if err != nil {
		return models.ExerciseSummary{}, err
	}

	exercise, err := t.parseExercise(in)
	if err != nil {
		return models.ExerciseSummary{}, err
	}

	err = t.store.AppendExercise(ctx, userID, exercise)
	if errors.Is(err, storage.ErrNotFound) {
		return models.ExerciseSummary{}, ErrNotFound
	}
	if err != nil {
		logger.Log.Info("failed to append exercise", zap.String("user_id", userID), zap.Error(err))
		return models.ExerciseSummary{}, storageFailure(err)
	}

	return models.ExerciseSummary{
		UserID:      user.ID,
		Username:    user.Username,
		Date:        exercise.Date.Format(models.DateLayout),
		Duration:    exercise.Duration,
		Description: exercise.Description,
	}, nil
}

// Get filtered user's exercise log
func (t ExerciseTracker) GetLog(ctx context.Context, userID string, q models.LogQuery) (models.ExerciseLog, error) {
	user, err := t.findUser(ctx, userID)
	if err != nil {
		return models.ExerciseLog{}, err
	}

	exercises := FilterExercises(user.Exercises, q)
	log := make([]models.LogEntry, len(exercises))
	for i, exercise := range exercises {
		log[i] = models.LogEntry{
			Description: exercise.Description,
			Duration:    exercise.Duration,
			Date:        exercise.Date.Format(models.DateLayout),
		}
	}

	return models.ExerciseLog{
		UserID:   user.ID,
		Username: user.Username,
		Count:    len(log),
		Log:      log,
	}, nil
}

// FilterExercises applies from, to and limit in that order keeping stored order.
// Dates are compared as calendar dates and both bounds are inclusive.
func FilterExercises(exercises []models.Exercise, q models.LogQuery) []models.Exercise {
	result := make([]models.Exercise, 0, len(exercises))
	for _, exercise := range exercises {
		date := truncateToDate(exercise.Date)
		if q.From != nil && date.Before(truncateToDate(*q.From)) {
			continue
		}
		if q.To != nil && date.After(truncateToDate(*q.To)) {
			continue
		}
		result = append(result, exercise)
	}

	if q.Limit != nil && *q.Limit < len(result) {
		result = result[:max(*q.Limit, 0)]
	}

	return result
}

func (t ExerciseTracker) findUser(ctx context.Context, userID string) (models.User, error) {
	user, err := t.store.FindUser(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		logger.Log.Info("failed to find user", zap.String("user_id", userID), zap.Error(err))
		return models.User{}, storageFailure(err)
	}

	return user, nil
}

func (t ExerciseTracker) parseExercise(in models.ExerciseInput) (models.Exercise, error) {
	if strings.TrimSpace(in.Description) == "" {
		return models.Exercise{}, NewValidationError("description", "is required")
	}

	duration, err := parseDuration(in.Duration)
	if err != nil {
		return models.Exercise{}, err
	}

	date := truncateToDate(t.now())
	if raw := strings.TrimSpace(in.Date); raw != "" {
		date, err = ParseDate(raw)
		if err != nil {
			return models.Exercise{}, NewValidationError("date", "must be a date in YYYY-MM-DD format")
		}
	}

	return models.Exercise{
		Description: in.Description,
		Duration:    duration,
		Date:        date,
	}, nil
}

// plain decimal notation, no exponent or hex forms
var decimalPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

func parseDuration(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, NewValidationError("duration", "is required")
	}

	if !decimalPattern.MatchString(raw) {
		return 0, NewValidationError("duration", "must be a number")
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, NewValidationError("duration", "must be a number")
	}
	if value < 0 {
		return 0, NewValidationError("duration", "must not be negative")
	}
	if value > math.MaxInt32 {
		return 0, NewValidationError("duration", "is too large")
	}

	return int(value), nil
}
