package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// AccessLevel is the closed set of roles a user can hold. It is stored in
// Postgres as the `access_level` enum type, so the string forms here must
// stay in sync with the migration that defines it.
type AccessLevel string

const (
	LevelAdmin       AccessLevel = "Admin"
	LevelModerator   AccessLevel = "Moderator"
	LevelContributor AccessLevel = "Contributor"
	LevelUser        AccessLevel = "User"
)

// ParseAccessLevel maps a string onto a level, rejecting anything outside
// the closed set.
func ParseAccessLevel(s string) (AccessLevel, error) {
	switch AccessLevel(s) {
	case LevelAdmin, LevelModerator, LevelContributor, LevelUser:
		return AccessLevel(s), nil
	}
	return "", fmt.Errorf("model: unknown access level %q", s)
}

func (l AccessLevel) Value() (driver.Value, error) {
	if _, err := ParseAccessLevel(string(l)); err != nil {
		return nil, err
	}
	return string(l), nil
}

func (l *AccessLevel) Scan(value any) error {
	var s string
	switch v := value.(type) {
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("model: cannot scan %T into AccessLevel", value)
	}
	parsed, err := ParseAccessLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// User represents an application user record as stored in the `users` table.
// Each field corresponds to a column. The password hash never leaves the
// server; handlers define separate response types that omit it.
//
// Fields:
//
//	ID           – sortable opaque identifier (UUIDv7 string).
//	Username     – unique username.
//	Email        – unique email address.
//	PasswordHash – bcrypt hashed password.
//	AccessLevel  – role of the user (Admin, Moderator, Contributor, User).
//	CreatedAt    – timestamp of creation.
//	UpdatedAt    – timestamp of last update.
type User struct {
	ID           string      // users.id
	Username     string      // users.username
	Email        string      // users.email
	PasswordHash string      // users.password_hash
	AccessLevel  AccessLevel // users.access_level
	CreatedAt    time.Time   // users.created_at
	UpdatedAt    time.Time   // users.updated_at
}
