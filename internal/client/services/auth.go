package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/resumerag/internal/client/client"
	"github.com/dmitrijs2005/resumerag/internal/client/models"
	"github.com/dmitrijs2005/resumerag/internal/logging"
)

// AuthMode selects the endpoint used by Authenticate.
type AuthMode string

const (
	ModeLogin  AuthMode = "login"
	ModeSignup AuthMode = "signup"
)

// Other returns the opposite mode.
func (m AuthMode) Other() AuthMode {
	if m == ModeSignup {
		return ModeLogin
	}
	return ModeSignup
}

// AuthService authenticates against the backend and records the resulting
// session in a SessionStore.
type AuthService struct {
	client client.Client
	store  *SessionStore
	logger logging.Logger
}

func NewAuthService(c client.Client, store *SessionStore, logger logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &AuthService{client: c, store: store, logger: logger}
}

// Authenticate logs in or signs up depending on mode. On success the
// session is persisted and returned; on failure the store is untouched.
func (a *AuthService) Authenticate(ctx context.Context, mode AuthMode, creds client.Credentials) (*models.Session, error) {
	var (
		res *client.AuthResult
		err error
	)
	switch mode {
	case ModeLogin:
		res, err = a.client.Login(ctx, creds)
	case ModeSignup:
		res, err = a.client.Signup(ctx, creds)
	default:
		return nil, fmt.Errorf("unknown auth mode %q", mode)
	}
	if err != nil {
		a.logger.Info(ctx, "authentication failed", "mode", string(mode), "error", err.Error())
		return nil, err
	}

	return a.store.Login(ctx, res.Token, res.User)
}
