// Package auth implements the credential lifecycle: password hashing,
// stateless access tokens, rotating refresh tokens and the service that
// composes them into register/login/refresh.
package auth

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Curstantine/unnamed-weeb-music-database/internal/apperr"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/model"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/query"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/queue"
)

// UserStore is the slice of the user repository the service needs.
type UserStore interface {
	Exists(ctx context.Context, email, username string) (bool, error)
	Create(ctx context.Context, username, email, passwordHash string, level model.AccessLevel) (model.User, error)
	GetByLogin(ctx context.Context, email, username *string) (model.User, error)
	GetOne(ctx context.Context, o query.UserOptions) (model.User, error)
}

// TokenStore is the slice of the refresh token repository the service needs.
type TokenStore interface {
	Issue(ctx context.Context, userID string) (string, error)
	Rotate(ctx context.Context, token string) (model.RefreshToken, error)
	Revoke(ctx context.Context, token string) error
}

// EventPublisher pushes a registration event to the broker. It may be nil,
// in which case no events are published.
type EventPublisher func(ctx context.Context, event queue.UserRegisteredEvent) error

func userByID(id string) query.UserOptions {
	return query.UserOptions{ID: &id}
}

// LoginToken is the pair handed out by a successful login: a short-lived
// signed access token and the opaque refresh token that outlives it.
type LoginToken struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// Service walks an identity through Anonymous -> Authenticated(access,
// refresh) -> re-Authenticated(new access) via refresh, and back to
// Anonymous once both tokens have lapsed. Every method is request-scoped and
// stateless between calls.
type Service struct {
	users   UserStore
	tokens  TokenStore
	codec   *TokenCodec
	cost    int
	log     *zap.SugaredLogger
	publish EventPublisher
}

func NewService(users UserStore, tokens TokenStore, codec *TokenCodec, bcryptCost int, log *zap.SugaredLogger, publish EventPublisher) *Service {
	return &Service{users: users, tokens: tokens, codec: codec, cost: bcryptCost, log: log, publish: publish}
}

// Register creates a user after checking that neither the email nor the
// username is taken. The check and the insert are not wrapped in a
// transaction; two concurrent registrations can both pass the check, and the
// loser's unique-constraint violation surfaces as the same UserAlreadyExists.
// The returned user is the persisted row, not a locally constructed copy.
func (s *Service) Register(ctx context.Context, email, username, password string, level model.AccessLevel) (model.User, error) {
	taken, err := s.users.Exists(ctx, email, username)
	if err != nil {
		return model.User{}, err
	}
	if taken {
		return model.User{}, apperr.ErrUserAlreadyExists
	}

	hash, err := HashPassword(password, s.cost)
	if err != nil {
		s.log.Errorw("password hashing failed", "error", err)
		return model.User{}, apperr.ErrInternal
	}

	u, err := s.users.Create(ctx, username, email, hash, level)
	if err != nil {
		return model.User{}, err
	}

	// Best effort. The account exists either way.
	if s.publish != nil {
		if err := s.publish(ctx, queue.UserRegisteredEvent{
			UserID:       u.ID,
			Username:     u.Username,
			Email:        u.Email,
			AccessLevel:  string(u.AccessLevel),
			RegisteredAt: u.CreatedAt.Format(time.RFC3339),
		}); err != nil {
			s.log.Warnw("user.registered publish failed", "user_id", u.ID, "error", err)
		}
	}

	return u, nil
}

// Login verifies credentials and issues a fresh access/refresh pair. Exactly
// one of email or username must be supplied; a missing identifier, an
// unknown account and a wrong password all read as the same Unauthorized so
// nothing leaks about which accounts exist.
func (s *Service) Login(ctx context.Context, email, username *string, password string) (LoginToken, error) {
	if email == nil && username == nil {
		return LoginToken{}, apperr.ErrUnauthorized
	}

	u, err := s.users.GetByLogin(ctx, email, username)
	if err != nil {
		return LoginToken{}, apperr.ErrUnauthorized
	}
	if !VerifyPassword(u.PasswordHash, password) {
		return LoginToken{}, apperr.ErrUnauthorized
	}

	access, err := s.codec.Issue(u)
	if err != nil {
		s.log.Errorw("access token signing failed", "user_id", u.ID, "error", err)
		return LoginToken{}, apperr.ErrInternal
	}

	// Each login stores a new refresh token row; rotation of an existing
	// token never lands here.
	refresh, err := s.tokens.Issue(ctx, u.ID)
	if err != nil {
		return LoginToken{}, err
	}

	return LoginToken{Token: access, RefreshToken: refresh}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// refresh token's expiry is pushed forward in place; the token string the
// client holds stays the credential and no new refresh token is returned.
func (s *Service) Refresh(ctx context.Context, token string) (string, error) {
	rt, err := s.tokens.Rotate(ctx, token)
	if err != nil {
		return "", err
	}

	u, err := s.users.GetOne(ctx, userByID(rt.UserID))
	if err != nil {
		return "", err
	}

	access, err := s.codec.Issue(u)
	if err != nil {
		s.log.Errorw("access token signing failed", "user_id", u.ID, "error", err)
		return "", apperr.ErrInternal
	}
	return access, nil
}

// Logout revokes the refresh token so it can never rotate again. An unknown
// token reads as TokenNotFound. Any access token already issued stays valid
// until its own expiry; revocation only closes the refresh path.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}
