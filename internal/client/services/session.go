package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/resumerag/internal/client/models"
	"github.com/dmitrijs2005/resumerag/internal/client/repositories/session"
	"github.com/dmitrijs2005/resumerag/internal/dbx"
	"github.com/dmitrijs2005/resumerag/internal/logging"
)

// ErrIncompleteSession is returned by Login when the token or user is missing.
var ErrIncompleteSession = errors.New("token and user are both required")

// SessionStore holds the current session in memory and mirrors it to the
// local database. Token and user are always written and cleared together.
type SessionStore struct {
	db     *sql.DB
	logger logging.Logger

	mu      sync.RWMutex
	current *models.Session
}

func NewSessionStore(db *sql.DB, logger logging.Logger) *SessionStore {
	if logger == nil {
		logger = logging.Discard()
	}
	return &SessionStore{db: db, logger: logger}
}

func (s *SessionStore) repo(tx dbx.DBTX) session.Repository {
	return session.NewSQLiteRepository(tx)
}

// Load initializes the in-memory session from the database. A missing or
// malformed value leaves the session absent; only storage failures are
// returned as errors.
func (s *SessionStore) Load(ctx context.Context) (*models.Session, error) {
	token, rawUser, err := s.repo(s.db).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var loaded *models.Session
	switch {
	case token == "" || rawUser == "":
		s.logger.Debug(ctx, "no stored session")
	default:
		user, err := models.ParseUser([]byte(rawUser))
		if err != nil {
			s.logger.Warn(ctx, "stored user record is unreadable, ignoring session", "error", err.Error())
			break
		}
		loaded = &models.Session{Token: token, User: user}
	}

	s.mu.Lock()
	s.current = loaded
	s.mu.Unlock()

	return loaded, nil
}

// Login persists token and user in one transaction and then makes them the
// current session.
func (s *SessionStore) Login(ctx context.Context, token string, user models.User) (*models.Session, error) {
	if token == "" {
		return nil, ErrIncompleteSession
	}
	rawUser, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}
	if string(rawUser) == "null" {
		return nil, ErrIncompleteSession
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repo(tx).Save(ctx, token, string(rawUser))
	})
	if err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	sess := &models.Session{Token: token, User: user}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	s.logger.Info(ctx, "session started", "user_id", user.ID)
	return sess, nil
}

// Logout clears the in-memory session and both stored values. It is safe to
// call with no session. The in-memory session is cleared even if the
// database write fails.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.repo(s.db).Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.logger.Info(ctx, "session cleared")
	return nil
}

// Current returns the active session, or nil when logged out.
func (s *SessionStore) Current() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
