package storage

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ilya-burinskiy/utilapi/internal/app/models"
)

type DBStorage struct {
	pool    *pgxpool.Pool
	randGen RandHexStringGenerator
}

func NewDBStorage(dsn string, randGen RandHexStringGenerator) (*DBStorage, error) {
	if err := runMigrations(dsn); err != nil {
		return nil, fmt.Errorf("failed to run DB migrations: %w", err)
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create a connection pool: %w", err)
	}

	return &DBStorage{
		pool:    pool,
		randGen: randGen,
	}, nil
}

func (db *DBStorage) InsertShortURL(ctx context.Context, originalURL string) (models.ShortURL, bool, error) {
	for i := 0; i < idGenAttempts; i++ {
		id, err := db.randGen.Call(idBytes)
		if err != nil {
			return models.ShortURL{}, false, fmt.Errorf("failed to generate id: %w", err)
		}

		tag, err := db.pool.Exec(
			ctx,
			`INSERT INTO "short_urls" ("id", "original_url") VALUES (@id, @originalURL)
			 ON CONFLICT ("original_url") DO NOTHING`,
			pgx.NamedArgs{"id": id, "originalURL": originalURL},
		)
		if isUniqueViolation(err) {
			continue
		}
		if err != nil {
			return models.ShortURL{}, false, fmt.Errorf("failed to save short url: %w", err)
		}
		if tag.RowsAffected() == 1 {
			return models.ShortURL{ID: id, OriginalURL: originalURL}, true, nil
		}

		record, err := db.findShortURLByOriginalURL(ctx, originalURL)
		return record, false, err
	}

	return models.ShortURL{}, false, fmt.Errorf("failed to generate unique id in %d attempts", idGenAttempts)
}

func (db *DBStorage) FindShortURL(ctx context.Context, id string) (models.ShortURL, error) {
	row := db.pool.QueryRow(
		ctx,
		`SELECT "id", "original_url" FROM "short_urls" WHERE "id" = @id`,
		pgx.NamedArgs{"id": id},
	)
	var record models.ShortURL
	if err := row.Scan(&record.ID, &record.OriginalURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ShortURL{}, ErrNotFound
		}

		return models.ShortURL{}, fmt.Errorf("failed to get short url: %w", err)
	}

	return record, nil
}

func (db *DBStorage) CreateUser(ctx context.Context, username string) (models.User, error) {
	for i := 0; i < idGenAttempts; i++ {
		id, err := db.randGen.Call(idBytes)
		if err != nil {
			return models.User{}, fmt.Errorf("failed to generate id: %w", err)
		}

		_, err = db.pool.Exec(
			ctx,
			`INSERT INTO "users" ("id", "username") VALUES (@id, @username)`,
			pgx.NamedArgs{"id": id, "username": username},
		)
		if err == nil {
			return models.User{ID: id, Username: username, Exercises: make([]models.Exercise, 0)}, nil
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			if pgErr.ConstraintName == "users_username_key" {
				return models.User{}, NewErrNotUnique(UsersCollection, username)
			}
			continue
		}

		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return models.User{}, fmt.Errorf("failed to generate unique id in %d attempts", idGenAttempts)
}

func (db *DBStorage) FindUser(ctx context.Context, id string) (models.User, error) {
	row := db.pool.QueryRow(
		ctx,
		`SELECT "id", "username" FROM "users" WHERE "id" = @id`,
		pgx.NamedArgs{"id": id},
	)
	var user models.User
	if err := row.Scan(&user.ID, &user.Username); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, ErrNotFound
		}

		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	rows, err := db.pool.Query(
		ctx,
		`SELECT "description", "duration", "date" FROM "exercises"
		 WHERE "user_id" = @userID ORDER BY "position"`,
		pgx.NamedArgs{"userID": id},
	)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to get exercises: %w", err)
	}
	defer rows.Close()

	user.Exercises = make([]models.Exercise, 0)
	for rows.Next() {
		var exercise models.Exercise
		if err := rows.Scan(&exercise.Description, &exercise.Duration, &exercise.Date); err != nil {
			return models.User{}, fmt.Errorf("failed to scan exercise: %w", err)
		}
		user.Exercises = append(user.Exercises, exercise)
	}
	if err := rows.Err(); err != nil {
		return models.User{}, fmt.Errorf("failed to get exercises: %w", err)
	}

	return user, nil
}

func (db *DBStorage) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := db.pool.Query(
		ctx,
		`SELECT u."id", u."username", e."description", e."duration", e."date"
		 FROM "users" u LEFT JOIN "exercises" e ON e."user_id" = u."id"
		 ORDER BY u."seq", e."position"`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	result := make([]models.User, 0)
	for rows.Next() {
		var (
			id, username string
			description  *string
			duration     *int
			date         *time.Time
		)
		if err := rows.Scan(&id, &username, &description, &duration, &date); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}

		if len(result) == 0 || result[len(result)-1].ID != id {
			result = append(result, models.User{ID: id, Username: username, Exercises: make([]models.Exercise, 0)})
		}
		if description != nil {
			last := &result[len(result)-1]
			last.Exercises = append(last.Exercises, models.Exercise{
				Description: *description,
				Duration:    *duration,
				Date:        *date,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return result, nil
}

func (db *DBStorage) AppendExercise(ctx context.Context, userID string, exercise models.Exercise) error {
	_, err := db.pool.Exec(
		ctx,
		`INSERT INTO "exercises" ("user_id", "description", "duration", "date")
		 VALUES (@userID, @description, @duration, @date)`,
		pgx.NamedArgs{
			"userID":      userID,
			"description": exercise.Description,
			"duration":    exercise.Duration,
			"date":        exercise.Date,
		},
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrNotFound
		}

		return fmt.Errorf("failed to append exercise: %w", err)
	}

	return nil
}

func (db *DBStorage) SaveFile(ctx context.Context, file models.FileMetadata) (models.FileMetadata, error) {
	for i := 0; i < idGenAttempts; i++ {
		id, err := db.randGen.Call(idBytes)
		if err != nil {
			return models.FileMetadata{}, fmt.Errorf("failed to generate id: %w", err)
		}

		_, err = db.pool.Exec(
			ctx,
			`INSERT INTO "files" ("id", "name", "type", "size") VALUES (@id, @name, @type, @size)`,
			pgx.NamedArgs{"id": id, "name": file.Name, "type": file.Type, "size": file.Size},
		)
		if isUniqueViolation(err) {
			continue
		}
		if err != nil {
			return models.FileMetadata{}, fmt.Errorf("failed to save file metadata: %w", err)
		}

		file.ID = id
		return file, nil
	}

	return models.FileMetadata{}, fmt.Errorf("failed to generate unique id in %d attempts", idGenAttempts)
}

func (db *DBStorage) Close() error {
	db.pool.Close()
	return nil
}

func (db *DBStorage) findShortURLByOriginalURL(ctx context.Context, originalURL string) (models.ShortURL, error) {
	row := db.pool.QueryRow(
		ctx,
		`SELECT "id" FROM "short_urls" WHERE "original_url" = @originalURL`,
		pgx.NamedArgs{"originalURL": originalURL},
	)
	record := models.ShortURL{OriginalURL: originalURL}
	if err := row.Scan(&record.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ShortURL{}, ErrNotFound
		}

		return models.ShortURL{}, fmt.Errorf("failed to get short url: %w", err)
	}

	return record, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

//go:embed db/migrations/*.sql
var migrationsDir embed.FS

func runMigrations(dsn string) error {
	d, err := iofs.New(migrationsDir, "db/migrations")
	if err != nil {
		return fmt.Errorf("failed to return an iofs driver: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", d, dsn)
	if err != nil {
		return fmt.Errorf("failed to get a new migrate instance: %w", err)
	}

	if err := m.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	return nil
}
