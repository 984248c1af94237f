package users

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/resumerag/internal/common"
	"github.com/dmitrijs2005/resumerag/internal/server/auth"
	"github.com/dmitrijs2005/resumerag/internal/server/config"
)

type AuthResult struct {
	Token string
	User  *User
}

type Service struct {
	repo          Repository
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidity,
	}
}

func (s *Service) issue(user *User) (*AuthResult, error) {
	token, err := auth.GenerateToken(strconv.FormatInt(user.ID, 10), s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &AuthResult{Token: token, User: user}, nil
}

// Signup creates an account and returns a token for it. Empty input yields
// common.ErrorValidation, a taken email common.ErrorAlreadyExists.
func (s *Service) Signup(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user, err := s.repo.Create(ctx, &User{Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}

	return s.issue(user)
}

// Login checks the credentials and returns a fresh token. Unknown emails
// and wrong passwords both yield common.ErrorUnauthorized.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, common.ErrorValidation
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return nil, common.ErrorUnauthorized
	}

	return s.issue(user)
}

// Authenticate resolves a bearer token to a user ID.
func (s *Service) Authenticate(token string) (int64, error) {
	id, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return 0, err
	}
	userID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, common.ErrInvalidToken
	}
	return userID, nil
}
