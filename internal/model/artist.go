package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// ArtistType determines how an artist is displayed. A group of people is
// rendered differently than a single person. Stored as the `artist_type`
// Postgres enum.
type ArtistType string

const (
	// ArtistSolo indicates that the artist is a single person.
	ArtistSolo ArtistType = "Solo"
	// ArtistCharacter indicates that the artist is a fictional character.
	ArtistCharacter ArtistType = "Character"
	// ArtistGroup indicates that the artist is a group of people.
	ArtistGroup ArtistType = "Group"
	// ArtistOrchestra indicates that the artist is an orchestra.
	ArtistOrchestra ArtistType = "Orchestra"
	// ArtistChoir indicates that the artist is a choir.
	ArtistChoir ArtistType = "Choir"
	// ArtistOther covers anything not covered by the other types.
	ArtistOther ArtistType = "Other"
)

func ParseArtistType(s string) (ArtistType, error) {
	switch ArtistType(s) {
	case ArtistSolo, ArtistCharacter, ArtistGroup, ArtistOrchestra, ArtistChoir, ArtistOther:
		return ArtistType(s), nil
	}
	return "", fmt.Errorf("model: unknown artist type %q", s)
}

func (t ArtistType) Value() (driver.Value, error) {
	if _, err := ParseArtistType(string(t)); err != nil {
		return nil, err
	}
	return string(t), nil
}

func (t *ArtistType) Scan(value any) error {
	var s string
	switch v := value.(type) {
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("model: cannot scan %T into ArtistType", value)
	}
	parsed, err := ParseArtistType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Artist is a row of the `artists` table.
//
// Fields:
//
//	ID            – sortable opaque identifier.
//	Name          – localized name of the artist.
//	AltNames      – alternative names, if any.
//	ExternalSites – links to the artist on other platforms.
//	Description   – free-form description.
//	BasedIn       – where the artist is based.
//	FoundedIn     – when the artist was founded.
//	ArtistType    – what kind of act this is.
//	JoinPhrase    – only populated when the artist was reached through a
//	                song credit; it is the connective text between credited
//	                artists ("feat.", "×", ...).
type Artist struct {
	ID            string           `json:"id"`             // artists.id
	Name          Name             `json:"name"`           // artists.name_* columns
	AltNames      NameList         `json:"alt_names"`      // artists.alt_names
	ExternalSites ExternalSiteList `json:"external_sites"` // artists.external_sites
	Description   *string          `json:"description"`    // artists.description
	BasedIn       *string          `json:"based_in"`       // artists.based_in
	FoundedIn     *time.Time       `json:"founded_in"`     // artists.founded_in
	ArtistType    ArtistType       `json:"artist_type"`    // artists.artist_type
	JoinPhrase    *string          `json:"join_phrase,omitempty"` // songs_artists.join_phrase (projection only)
}
