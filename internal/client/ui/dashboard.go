package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dmitrijs2005/resumerag/internal/client/models"
	"github.com/dmitrijs2005/resumerag/internal/logging"
	"github.com/dmitrijs2005/resumerag/internal/pdfx"
)

// ResumeAPI is the part of client.Client the dashboard needs.
type ResumeAPI interface {
	Upload(ctx context.Context, token, filename string, r io.Reader) (string, error)
	Search(ctx context.Context, token, query string) ([]models.Result, error)
}

// Dashboard is the logged-in screen of one session. Create a new one for
// every session; nothing carries over between users.
type Dashboard struct {
	api     ResumeAPI
	session models.Session
	logger  logging.Logger

	inspect func(path string) (*pdfx.Info, error)
	open    func(path string) (io.ReadCloser, error)

	mu          sync.Mutex
	selected    *pdfx.Info
	query       string
	upload      ActionState
	search      ActionState
	message     models.StatusMessage
	retained    *models.SearchSession
	hasUploaded bool
}

func NewDashboard(api ResumeAPI, session models.Session, logger logging.Logger) *Dashboard {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Dashboard{
		api:     api,
		session: session,
		logger:  logger.With("user_id", session.User.ID),
		inspect: pdfx.Inspect,
		open: func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}

func (d *Dashboard) User() models.User { return d.session.User }

func (d *Dashboard) busyLocked() bool {
	return d.upload.Pending() || d.search.Pending()
}

// Select checks that path is a readable PDF and makes it the file for the
// next upload. A rejected file leaves no selection.
func (d *Dashboard) Select(path string) (*pdfx.Info, error) {
	info, err := d.inspect(path)

	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.selected = nil
		d.message = models.Failure(selectErrorMessage(filepath.Base(path), err))
		return nil, err
	}
	d.selected = info
	return info, nil
}

// Upload sends the selected file. Any retained search session is dropped
// before the request goes out. Whatever the outcome, the selection is
// cleared afterwards.
func (d *Dashboard) Upload(ctx context.Context) error {
	d.mu.Lock()
	if d.selected == nil {
		d.mu.Unlock()
		return ErrNoFileSelected
	}
	if d.busyLocked() {
		d.mu.Unlock()
		return ErrBusy
	}
	file := *d.selected
	d.retained = nil
	d.message = models.StatusMessage{}
	d.upload = StatePending
	d.mu.Unlock()

	msg, err := d.send(ctx, file)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.selected = nil
	if err != nil {
		d.upload = StateFailed
		d.message = models.Failure(serverMessageOr(err, MsgUploadFailed))
		d.logger.Error(ctx, "upload error", "file", file.Name, "error", err.Error())
		return err
	}

	d.upload = StateSucceeded
	d.hasUploaded = true
	d.message = models.Success(msg)
	d.logger.Info(ctx, "resume uploaded", "file", file.Name, "size", file.Size)
	return nil
}

func (d *Dashboard) send(ctx context.Context, file pdfx.Info) (string, error) {
	f, err := d.open(file.Path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", file.Name, err)
	}
	defer f.Close()

	return d.api.Upload(ctx, d.session.Token, file.Name, f)
}

// Search issues query against the uploaded resumes and retains the result
// as the only search session. The query is sent as typed; only its
// emptiness is judged on the trimmed text.
func (d *Dashboard) Search(ctx context.Context, query string) error {
	d.mu.Lock()
	d.query = query
	if !d.hasUploaded {
		d.message = models.Failure(MsgUploadFirst)
		d.mu.Unlock()
		return ErrNotUploaded
	}
	if strings.TrimSpace(query) == "" {
		d.mu.Unlock()
		return ErrEmptyQuery
	}
	if d.busyLocked() {
		d.mu.Unlock()
		return ErrBusy
	}
	d.search = StatePending
	d.message = models.StatusMessage{}
	d.mu.Unlock()

	results, err := d.api.Search(ctx, d.session.Token, query)

	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.search = StateFailed
		d.message = models.Failure(serverMessageOr(err, MsgSearchFailed))
		d.logger.Error(ctx, "search error", "error", err.Error())
		return err
	}

	d.search = StateSucceeded
	d.retained = &models.SearchSession{Query: query, Results: results}
	if len(results) == 0 {
		d.message = models.Info(noResultsMessage(query))
	}
	d.logger.Debug(ctx, "search finished", "results", len(results))
	return nil
}

// Results returns a copy of the retained search session, or nil.
func (d *Dashboard) Results() *models.SearchSession {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.retained == nil {
		return nil
	}
	out := &models.SearchSession{Query: d.retained.Query}
	out.Results = append([]models.Result{}, d.retained.Results...)
	return out
}

func (d *Dashboard) Message() models.StatusMessage {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.message
}

func (d *Dashboard) HasUploaded() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hasUploaded
}

// Selected returns the file chosen for the next upload, or nil.
func (d *Dashboard) Selected() *pdfx.Info {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.selected == nil {
		return nil
	}
	info := *d.selected
	return &info
}

func (d *Dashboard) Query() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.query
}

func (d *Dashboard) UploadState() ActionState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.upload
}

func (d *Dashboard) SearchState() ActionState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.search
}
