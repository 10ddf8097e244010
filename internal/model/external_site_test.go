package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExternalSiteURL(t *testing.T) {
	cases := []struct {
		site ExternalSiteType
		kind ExternalType
		want string
	}{
		{SiteAppleMusic, ExternalAlbum, "https://music.apple.com/us/album/123"},
		{SiteAppleMusic, ExternalSong, "https://music.apple.com/us/song/123"},
		{SiteAppleMusic, ExternalArtist, "https://music.apple.com/us/artist/123"},
		{SiteYouTube, ExternalAlbum, "https://www.youtube.com/playlist?list=123"},
		{SiteYouTube, ExternalSong, "https://www.youtube.com/watch?v=123"},
		{SiteYouTube, ExternalArtist, "https://www.youtube.com/channel/123"},
		{SiteSpotify, ExternalAlbum, "https://open.spotify.com/album/123"},
		{SiteSpotify, ExternalSong, "https://open.spotify.com/track/123"},
		{SiteSpotify, ExternalArtist, "https://open.spotify.com/artist/123"},
		// Social platforms link to the account regardless of entity kind.
		{SiteSoundCloud, ExternalArtist, "https://soundcloud.com/123"},
		{SiteSoundCloud, ExternalSong, "https://soundcloud.com/123"},
		{SiteTwitter, ExternalArtist, "https://twitter.com/123"},
		{SiteInstagram, ExternalArtist, "https://instagram.com/123"},
	}
	for _, c := range cases {
		e := ExternalSite{Site: c.site, ID: "123", ExternalType: c.kind}
		assert.Equal(t, c.want, e.URL(), "%s/%s", c.site, c.kind)
	}
}

func TestExternalSiteMarshalCarriesURL(t *testing.T) {
	e := ExternalSite{Site: SiteSpotify, ID: "4aawyAB9", ExternalType: ExternalSong}

	raw, err := json.Marshal(e)
	require.NoError(t, err)

	var out map[string]string
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "Spotify", out["site"])
	assert.Equal(t, "4aawyAB9", out["id"])
	assert.Equal(t, "Song", out["external_type"])
	assert.Equal(t, "https://open.spotify.com/track/4aawyAB9", out["url"])
}

// The stored JSONB shape keeps only the identifier triple; the url is
// derived on every read, so a platform changing its URL scheme needs no
// data migration.
func TestExternalSiteListValueOmitsURL(t *testing.T) {
	l := ExternalSiteList{{Site: SiteYouTube, ID: "abc", ExternalType: ExternalSong}}

	v, err := l.Value()
	require.NoError(t, err)

	var out []map[string]string
	require.NoError(t, json.Unmarshal(v.([]byte), &out))
	require.Len(t, out, 1)
	assert.NotContains(t, out[0], "url")
	assert.Equal(t, "abc", out[0]["id"])

	// And the stored form scans back into the same list.
	var back ExternalSiteList
	require.NoError(t, back.Scan(v))
	assert.Equal(t, l, back)
}
