// Package resumes is the stub backend's resume store: it accepts PDF
// uploads per user and answers searches from fixtures. It does not parse
// resumes or score them.
package resumes

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/resumerag/internal/common"
	"github.com/dmitrijs2005/resumerag/internal/pdfx"
)

// ErrNoResume is returned by Search for a user who has not uploaded yet.
var ErrNoResume = errors.New("no resume uploaded")

// Upload is a stored resume.
type Upload struct {
	ID         string
	Filename   string
	Size       int
	Pages      int
	UploadedAt time.Time
}

type Service struct {
	fixtures *Fixtures

	mu      sync.RWMutex
	uploads map[int64][]Upload
}

func NewService(fixtures *Fixtures) *Service {
	return &Service{fixtures: fixtures, uploads: make(map[int64][]Upload)}
}

// Store checks that data is a PDF with at least one page and records it
// for userID. Invalid files yield common.ErrorValidation.
func (s *Service) Store(ctx context.Context, userID int64, filename string, data []byte) (*Upload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !strings.EqualFold(filepath.Ext(filename), pdfx.Extension) {
		return nil, fmt.Errorf("%w: only PDF files are allowed", common.ErrorValidation)
	}
	pages, err := pdfx.CountPagesBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	u := Upload{
		ID:         uuid.NewString(),
		Filename:   filepath.Base(filename),
		Size:       len(data),
		Pages:      pages,
		UploadedAt: time.Now(),
	}

	s.mu.Lock()
	s.uploads[userID] = append(s.uploads[userID], u)
	s.mu.Unlock()

	return &u, nil
}

// Uploads returns the resumes stored for userID, oldest first.
func (s *Service) Uploads(userID int64) []Upload {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Upload(nil), s.uploads[userID]...)
}

// Search returns the fixture results for query, or none. Results without a
// filename are attributed to the user's latest upload.
func (s *Service) Search(ctx context.Context, userID int64, query string) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query is required", common.ErrorValidation)
	}

	uploads := s.Uploads(userID)
	if len(uploads) == 0 {
		return nil, ErrNoResume
	}
	latest := uploads[len(uploads)-1]

	results, ok := s.fixtures.Lookup(query)
	if !ok {
		return []Result{}, nil
	}
	for i := range results {
		if results[i].Filename == "" {
			results[i].Filename = latest.Filename
		}
	}
	return results, nil
}
