package users

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/resumerag/internal/common"
)

// MemoryRepository keeps users in process memory with sequential IDs.
type MemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*User
	nextID  int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byEmail: make(map[string]*User), nextID: 1}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create stores a copy of user and returns it with ID and CreatedAt set.
// A taken email yields common.ErrorAlreadyExists.
func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := emailKey(user.Email)
	if _, ok := r.byEmail[key]; ok {
		return nil, common.ErrorAlreadyExists
	}

	u := *user
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	r.nextID++
	r.byEmail[key] = &u

	out := u
	return &out, nil
}

func (r *MemoryRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[emailKey(email)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *u
	return &out, nil
}
