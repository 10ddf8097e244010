package model

import "time"

// Song is a row of the `songs` table. Artist credits and release membership
// live in the songs_artists and songs_releases join tables and are resolved
// by the repositories on demand.
type Song struct {
	ID            string           `json:"id"`             // songs.id
	Name          Name             `json:"name"`           // songs.name_* columns
	ExternalSites ExternalSiteList `json:"external_sites"` // songs.external_sites
	TrackLength   *int32           `json:"track_length"`   // songs.track_length, seconds
	ReleaseDate   *time.Time       `json:"release_date"`   // songs.release_date
}
