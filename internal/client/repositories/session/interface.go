package session

import "context"

type Repository interface {
	Load(ctx context.Context) (token string, user string, err error)
	Save(ctx context.Context, token string, user string) error
	Clear(ctx context.Context) error
}
