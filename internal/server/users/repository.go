package users

import (
	"context"
)

// Repository stores user accounts. Emails are compared case-insensitively.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}
