package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Curstantine/unnamed-weeb-music-database/internal/apperr"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/model"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/query"
)

// UserRepo reads and writes the `users` table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

func scanUser(row interface{ Scan(...any) error }) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.AccessLevel, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetOne fetches a single user matching the options.
func (r *UserRepo) GetOne(ctx context.Context, o query.UserOptions) (model.User, error) {
	stmt, args := query.BuildUser(o)
	u, err := scanUser(r.DB.QueryRowContext(ctx, stmt, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, apperr.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, apperr.ErrInternal
	}
	return u, nil
}

// GetMany fetches every user matching the options.
func (r *UserRepo) GetMany(ctx context.Context, o query.UserOptions) ([]model.User, error) {
	stmt, args := query.BuildUser(o)
	rows, err := r.DB.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, apperr.ErrInternal
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, apperr.ErrInternal
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.ErrInternal
	}
	return out, nil
}

// GetByLogin fetches a user by email when given, else by username. The auth
// service translates any failure here into a plain Unauthorized so a login
// attempt can't probe which accounts exist.
func (r *UserRepo) GetByLogin(ctx context.Context, email, username *string) (model.User, error) {
	var (
		column string
		value  string
	)
	switch {
	case email != nil:
		column, value = "email", normalize(*email)
	case username != nil:
		column, value = "username", strings.TrimSpace(*username)
	default:
		return model.User{}, apperr.ErrUnauthorized
	}
	u, err := scanUser(r.DB.QueryRowContext(ctx,
		"SELECT id, username, email, password_hash, access_level, created_at, updated_at FROM users WHERE "+column+" = $1",
		value))
	if err != nil {
		return model.User{}, apperr.ErrUnauthorized
	}
	return u, nil
}

// Exists reports whether a user already holds the email or the username.
// One combined OR check, so a collision on either field reads the same.
func (r *UserRepo) Exists(ctx context.Context, email, username string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 OR username = $2)",
		normalize(email), strings.TrimSpace(username)).Scan(&exists)
	if err != nil {
		return false, apperr.ErrInternal
	}
	return exists, nil
}

// Create inserts a user and returns the persisted row, round-tripped through
// RETURNING so server-assigned defaults are authoritative. A unique-constraint
// violation maps to ErrUserAlreadyExists; see isUniqueViolation.
func (r *UserRepo) Create(ctx context.Context, username, email, passwordHash string, level model.AccessLevel) (model.User, error) {
	now := time.Now().UTC()
	id := uuid.Must(uuid.NewV7()).String()

	u, err := scanUser(r.DB.QueryRowContext(ctx,
		`INSERT INTO users (id, username, email, password_hash, access_level, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, username, email, password_hash, access_level, created_at, updated_at`,
		id, strings.TrimSpace(username), normalize(email), passwordHash, level, now, now))
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, apperr.ErrUserAlreadyExists
		}
		return model.User{}, apperr.ErrInternal
	}
	return u, nil
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
