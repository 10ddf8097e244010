package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Curstantine/unnamed-weeb-music-database/internal/query"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/repository"
)

// CatalogHandler serves the read side of the catalog: artists, songs,
// releases, tags and users, each as a get-one/get-many pair over the same
// filter options the repositories understand.
type CatalogHandler struct {
	Artists  *repository.ArtistRepo
	Songs    *repository.SongRepo
	Releases *repository.ReleaseRepo
	Tags     *repository.TagRepo
	Users    *repository.UserRepo
}

func NewCatalogHandler(a *repository.ArtistRepo, s *repository.SongRepo, r *repository.ReleaseRepo, t *repository.TagRepo, u *repository.UserRepo) *CatalogHandler {
	return &CatalogHandler{Artists: a, Songs: s, Releases: r, Tags: t, Users: u}
}

// qstr returns a pointer to the named query parameter, or nil when absent.
// Absence and empty string are distinct on purpose.
func qstr(c echo.Context, name string) *string {
	params := c.QueryParams()
	if _, ok := params[name]; !ok {
		return nil
	}
	v := params.Get(name)
	return &v
}

func qint(c echo.Context, name string) *int {
	s := qstr(c, name)
	if s == nil {
		return nil
	}
	n, err := strconv.Atoi(*s)
	if err != nil {
		return nil
	}
	return &n
}

func qint32(c echo.Context, name string) *int32 {
	n := qint(c, name)
	if n == nil {
		return nil
	}
	v := int32(*n)
	return &v
}

// qlist collects every occurrence of a repeated query parameter
// (?genre=a&genre=b). A missing parameter yields nil, not an empty slice.
func qlist(c echo.Context, name string) []string {
	vals := c.QueryParams()[name]
	if len(vals) == 0 {
		return nil
	}
	return vals
}

func artistOptions(c echo.Context) query.ArtistOptions {
	return query.ArtistOptions{
		Search:    qstr(c, "search"),
		SongID:    qstr(c, "song_id"),
		ReleaseID: qstr(c, "release_id"),
		Page:      qint(c, "page"),
		PerPage:   qint(c, "per_page"),
	}
}

func songOptions(c echo.Context) query.SongOptions {
	return query.SongOptions{
		Search:    qstr(c, "search"),
		ArtistID:  qstr(c, "artist_id"),
		ReleaseID: qstr(c, "release_id"),
		Genres:    qlist(c, "genre"),
		Page:      qint(c, "page"),
		PerPage:   qint(c, "per_page"),
	}
}

func releaseOptions(c echo.Context) query.ReleaseOptions {
	return query.ReleaseOptions{
		Search:   qstr(c, "search"),
		ArtistID: qstr(c, "artist_id"),
		SongID:   qstr(c, "song_id"),
		Genres:   qlist(c, "genre"),
		Page:     qint(c, "page"),
		PerPage:  qint(c, "per_page"),
	}
}

func (h *CatalogHandler) GetArtist(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	id := c.Param("id")
	a, err := h.Artists.GetOne(ctx, query.ArtistOptions{ID: &id})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *CatalogHandler) GetArtists(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	list, err := h.Artists.GetMany(ctx, artistOptions(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *CatalogHandler) GetSong(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	id := c.Param("id")
	s, err := h.Songs.GetOne(ctx, query.SongOptions{ID: &id})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *CatalogHandler) GetSongs(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	list, err := h.Songs.GetMany(ctx, songOptions(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *CatalogHandler) GetRelease(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	id := c.Param("id")
	r, err := h.Releases.GetOne(ctx, query.ReleaseOptions{ID: &id})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *CatalogHandler) GetReleases(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	list, err := h.Releases.GetMany(ctx, releaseOptions(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// GetTag resolves a single tag by its serial id.
func (h *CatalogHandler) GetTag(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid tag id"})
	}
	id32 := int32(id)
	t, err := h.Tags.GetOne(ctx, query.TagOptions{ID: &id32})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// GetTags lists tags. Tag filters are exclusive, so the first one present
// out of id, name, song_id and release_id wins.
func (h *CatalogHandler) GetTags(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	o := query.TagOptions{
		ID:        qint32(c, "id"),
		Name:      qstr(c, "name"),
		SongID:    qstr(c, "song_id"),
		ReleaseID: qstr(c, "release_id"),
	}
	list, err := h.Tags.GetMany(ctx, o)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *CatalogHandler) GetUser(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	id := c.Param("id")
	u, err := h.Users.GetOne(ctx, query.UserOptions{ID: &id})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, toUserResp(u))
}

func (h *CatalogHandler) GetUsers(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	o := query.UserOptions{
		ID:      qstr(c, "id"),
		Email:   qstr(c, "email"),
		Page:    qint(c, "page"),
		PerPage: qint(c, "per_page"),
	}
	list, err := h.Users.GetMany(ctx, o)
	if err != nil {
		return fail(c, err)
	}
	out := make([]userResp, 0, len(list))
	for _, u := range list {
		out = append(out, toUserResp(u))
	}
	return c.JSON(http.StatusOK, out)
}
