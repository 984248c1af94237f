package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/resumerag/internal/client/models"
)

// Endpoint paths on the backend.
const (
	PathLogin  = "/api/login"
	PathSignup = "/api/signup"
	PathUpload = "/api/upload"
	PathSearch = "/api/search"

	// UploadField is the multipart field carrying the resume.
	UploadField = "resume"
)

// Credentials are sent as {email, password}. Password is the raw bytes read
// from the terminal; callers wipe it after the call.
type Credentials struct {
	Email    string
	Password []byte
}

// AuthResult is a successful login or signup.
type AuthResult struct {
	Token string
	User  models.User
}

// Client is the transport-agnostic contract with the ResumeRAG backend.
// Authenticated calls take the bearer token explicitly; the client itself
// keeps no session.
type Client interface {
	Login(ctx context.Context, creds Credentials) (*AuthResult, error)
	Signup(ctx context.Context, creds Credentials) (*AuthResult, error)
	Upload(ctx context.Context, token, filename string, r io.Reader) (string, error)
	Search(ctx context.Context, token, query string) ([]models.Result, error)
}
