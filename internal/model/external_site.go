package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ExternalSiteType names the platform an external link points at.
type ExternalSiteType string

const (
	SiteAppleMusic ExternalSiteType = "AppleMusic"
	SiteYouTube    ExternalSiteType = "YouTube"
	SiteSpotify    ExternalSiteType = "Spotify"
	SiteSoundCloud ExternalSiteType = "SoundCloud"
	SiteTwitter    ExternalSiteType = "Twitter"
	SiteInstagram  ExternalSiteType = "Instagram"
)

// ExternalType tells which kind of catalog entity the link belongs to. The
// same platform uses different URL shapes for albums, songs and artists.
type ExternalType string

const (
	ExternalAlbum  ExternalType = "Album"
	ExternalSong   ExternalType = "Song"
	ExternalArtist ExternalType = "Artist"
)

// ExternalSite is a link to an entity on an external platform. Only the
// platform-local identifier is stored; the full URL is derived on the way out.
type ExternalSite struct {
	Site         ExternalSiteType `json:"site"`
	ID           string           `json:"id"`
	ExternalType ExternalType     `json:"external_type"`
}

// URL renders the canonical URL for the link based on the platform and the
// entity kind.
func (e ExternalSite) URL() string {
	switch e.Site {
	case SiteAppleMusic:
		switch e.ExternalType {
		case ExternalAlbum:
			return fmt.Sprintf("https://music.apple.com/us/album/%s", e.ID)
		case ExternalSong:
			return fmt.Sprintf("https://music.apple.com/us/song/%s", e.ID)
		default:
			return fmt.Sprintf("https://music.apple.com/us/artist/%s", e.ID)
		}
	case SiteYouTube:
		switch e.ExternalType {
		case ExternalAlbum:
			return fmt.Sprintf("https://www.youtube.com/playlist?list=%s", e.ID)
		case ExternalSong:
			return fmt.Sprintf("https://www.youtube.com/watch?v=%s", e.ID)
		default:
			return fmt.Sprintf("https://www.youtube.com/channel/%s", e.ID)
		}
	case SiteSpotify:
		switch e.ExternalType {
		case ExternalAlbum:
			return fmt.Sprintf("https://open.spotify.com/album/%s", e.ID)
		case ExternalSong:
			return fmt.Sprintf("https://open.spotify.com/track/%s", e.ID)
		default:
			return fmt.Sprintf("https://open.spotify.com/artist/%s", e.ID)
		}
	case SiteSoundCloud:
		return fmt.Sprintf("https://soundcloud.com/%s", e.ID)
	case SiteTwitter:
		return fmt.Sprintf("https://twitter.com/%s", e.ID)
	case SiteInstagram:
		return fmt.Sprintf("https://instagram.com/%s", e.ID)
	}
	return ""
}

// externalSiteRecord is the stored shape. The derived url never lands in
// the database; it is attached only when marshalling for a response.
type externalSiteRecord struct {
	Site         ExternalSiteType `json:"site"`
	ID           string           `json:"id"`
	ExternalType ExternalType     `json:"external_type"`
}

// MarshalJSON attaches the derived url so clients never have to rebuild
// platform URL shapes themselves.
func (e ExternalSite) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		externalSiteRecord
		URL string `json:"url"`
	}{externalSiteRecord(e), e.URL()})
}

// ExternalSiteList is a JSONB column holding external links.
type ExternalSiteList []ExternalSite

func (l ExternalSiteList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	records := make([]externalSiteRecord, 0, len(l))
	for _, e := range l {
		records = append(records, externalSiteRecord(e))
	}
	return json.Marshal(records)
}

func (l *ExternalSiteList) Scan(value any) error {
	return scanJSON(value, l)
}
