package ui

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/resumerag/internal/client/client"
	"github.com/dmitrijs2005/resumerag/internal/client/models"
	"github.com/dmitrijs2005/resumerag/internal/client/services"
	"github.com/dmitrijs2005/resumerag/internal/common"
	"github.com/dmitrijs2005/resumerag/internal/logging"
)

// Authenticator turns credentials into a stored session.
type Authenticator interface {
	Authenticate(ctx context.Context, mode services.AuthMode, creds client.Credentials) (*models.Session, error)
}

// AuthScreen is the login/signup form.
type AuthScreen struct {
	auth   Authenticator
	logger logging.Logger

	mu       sync.Mutex
	mode     services.AuthMode
	email    string
	password []byte
	message  string
	state    ActionState
}

func NewAuthScreen(auth Authenticator, logger logging.Logger) *AuthScreen {
	if logger == nil {
		logger = logging.Discard()
	}
	return &AuthScreen{auth: auth, logger: logger, mode: services.ModeLogin}
}

func (s *AuthScreen) Mode() services.AuthMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *AuthScreen) Email() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.email
}

// HasPassword reports whether a password is currently typed in.
func (s *AuthScreen) HasPassword() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.password) > 0
}

func (s *AuthScreen) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

func (s *AuthScreen) State() ActionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetEmail replaces the typed email.
func (s *AuthScreen) SetEmail(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.email = email
}

// SetPassword takes ownership of password; the previous value is wiped.
func (s *AuthScreen) SetPassword(password []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	common.WipeByteArray(s.password)
	s.password = password
}

// Toggle switches between login and signup. Typed credentials are kept.
func (s *AuthScreen) Toggle() services.AuthMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = s.mode.Other()
	s.message = ""
	return s.mode
}

// SetMode switches to mode, behaving like Toggle when it differs.
func (s *AuthScreen) SetMode(mode services.AuthMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != mode {
		s.mode = mode
		s.message = ""
	}
}

// Submit sends the typed credentials for the current mode. On success the
// password is wiped and the new session returned; on failure Message holds
// the text to show.
func (s *AuthScreen) Submit(ctx context.Context) (*models.Session, error) {
	s.mu.Lock()
	if s.state.Pending() {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.state = StatePending
	s.message = ""
	mode := s.mode
	creds := client.Credentials{Email: s.email, Password: append([]byte(nil), s.password...)}
	s.mu.Unlock()

	defer common.WipeByteArray(creds.Password)

	sess, err := s.auth.Authenticate(ctx, mode, creds)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateFailed
		s.message = authErrorMessage(err)
		s.logger.Error(ctx, "authentication error", "mode", string(mode), "error", err.Error())
		return nil, err
	}

	s.state = StateSucceeded
	common.WipeByteArray(s.password)
	s.password = nil
	return sess, nil
}

// Close wipes any typed password.
func (s *AuthScreen) Close() {
	s.SetPassword(nil)
}
