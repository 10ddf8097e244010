package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Curstantine/unnamed-weeb-music-database/internal/apperr"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/auth"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/middleware"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/model"
)

// AuthHandler exposes the credential lifecycle over HTTP.
type AuthHandler struct {
	Svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    *string `json:"email"`
	Username *string `json:"username"`
	Password string  `json:"password"`
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

type accessResp struct {
	Token string `json:"token"`
}

// userResp mirrors model.User minus the password hash.
type userResp struct {
	ID          string            `json:"id"`
	Username    string            `json:"username"`
	Email       string            `json:"email"`
	AccessLevel model.AccessLevel `json:"access_level"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func toUserResp(u model.User) userResp {
	return userResp{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		AccessLevel: u.AccessLevel,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

// fail renders any error as the uniform {status_code, message} body.
func fail(c echo.Context, err error) error {
	ae := apperr.From(err)
	return c.JSON(ae.Status, ae)
}

// Register creates an account and returns the persisted user. Self-service
// registrations always start at the lowest access level; promotions are an
// admin action.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/email/password required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Svc.Register(ctx, req.Email, req.Username, req.Password, model.LevelUser)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, toUserResp(u))
}

// Login exchanges email-or-username plus password for a token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	pair, err := h.Svc.Login(ctx, req.Email, req.Username, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, pair)
}

// Refresh trades a live refresh token for a new access token. The refresh
// token string itself stays valid; only its expiry moves forward.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	access, err := h.Svc.Refresh(ctx, strings.TrimSpace(req.RefreshToken))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, accessResp{Token: access})
}

// Logout revokes the supplied refresh token, ending the session's refresh
// path. Returns 204 on success.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Svc.Logout(ctx, strings.TrimSpace(req.RefreshToken)); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Me echoes the verified claims of the caller.
func (h *AuthHandler) Me(c echo.Context) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return c.JSON(apperr.ErrUnauthorized.Status, apperr.ErrUnauthorized)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"user_id":      claims.Subject,
		"access_level": claims.AccessLevel,
	})
}
