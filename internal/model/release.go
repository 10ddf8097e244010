package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// ReleaseType classifies a release. Stored as the `release_type` enum.
type ReleaseType string

const (
	ReleaseAlbum  ReleaseType = "Album"
	ReleaseSingle ReleaseType = "Single"
	ReleaseEP     ReleaseType = "EP"
)

func ParseReleaseType(s string) (ReleaseType, error) {
	switch ReleaseType(s) {
	case ReleaseAlbum, ReleaseSingle, ReleaseEP:
		return ReleaseType(s), nil
	}
	return "", fmt.Errorf("model: unknown release type %q", s)
}

func (t ReleaseType) Value() (driver.Value, error) {
	if _, err := ParseReleaseType(string(t)); err != nil {
		return nil, err
	}
	return string(t), nil
}

func (t *ReleaseType) Scan(value any) error {
	var s string
	switch v := value.(type) {
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("model: cannot scan %T into ReleaseType", value)
	}
	parsed, err := ParseReleaseType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Release is done by one or multiple artists. This structure simply
// represents an album but has a fancy name to not confuse it with
// ReleaseAlbum, which is one of its possible types.
//
// Fields:
//
//	ID             – sortable opaque identifier.
//	Name           – localized name of the release.
//	ReleaseType    – Album, Single or EP.
//	TotalTracks    – number of tracks on the release.
//	ReleaseDate    – when the release came out.
//	ExternalSites  – links to the release on other platforms.
//	Label          – publishing label(s).
//	Length         – total length in seconds, aggregated from the track
//	                 lengths of the songs on the release at query time.
//	ScriptLanguage – language(s) the release includes.
type Release struct {
	ID             string           `json:"id"`              // releases.id
	Name           Name             `json:"name"`            // releases.name_* columns
	ReleaseType    ReleaseType      `json:"release_type"`    // releases.release_type
	TotalTracks    int32            `json:"total_tracks"`    // releases.total_tracks
	ReleaseDate    time.Time        `json:"release_date"`    // releases.release_date
	ExternalSites  ExternalSiteList `json:"external_sites"`  // releases.external_sites
	Label          StringList       `json:"label"`           // releases.label
	Length         *int64           `json:"length"`          // computed total_length
	ScriptLanguage StringList       `json:"script_language"` // releases.script_language
}
