// Package queue defines message payloads exchanged over the message broker.
package queue

// UserRegisteredEvent is published after a registration commits. It carries
// enough for downstream consumers (welcome mail, moderation tooling,
// analytics) to act without querying the primary database. The password hash
// is deliberately absent.
type UserRegisteredEvent struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	AccessLevel  string `json:"access_level"`
	RegisteredAt string `json:"registered_at"`
}
