package model

import "time"

// Tag is a row of the `tags` table. Unlike the other catalog entities, tags
// use a plain serial id. They attach to songs and releases through the
// song_tags and release_tags join tables.
type Tag struct {
	ID          int32     `json:"id"`          // tags.id
	Name        string    `json:"name"`        // tags.name
	Description *string   `json:"description"` // tags.description
	CreatedAt   time.Time `json:"created_at"`  // tags.created_at
	UpdatedAt   time.Time `json:"updated_at"`  // tags.updated_at
}
