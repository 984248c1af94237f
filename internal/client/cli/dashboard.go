package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/resumerag/internal/client/render"
	"github.com/dmitrijs2005/resumerag/internal/client/ui"
)

// Select chooses the resume for the next upload, prompting for a path when
// none was given.
func (a *App) Select(ctx context.Context, path string) error {
	if path == "" {
		var err error
		path, err = getSimpleText(a.reader, "Enter path to a PDF resume", a.out)
		if err != nil {
			return err
		}
	}

	info, err := a.dashboard.Select(path)
	if err != nil {
		render.Status(a.out, a.dashboard.Message())
		return err
	}

	fmt.Fprintf(a.out, "Selected %s (%d page(s), %d bytes).\n", info.Name, info.Pages, info.Size)
	return nil
}

// Upload sends the selected resume and reports the server's answer.
func (a *App) Upload(ctx context.Context) error {
	sel := a.dashboard.Selected()
	if sel == nil {
		fmt.Fprintln(a.out, "No file selected. Use: select <path>")
		return ui.ErrNoFileSelected
	}

	fmt.Fprintf(a.out, "Uploading %s...\n", sel.Name)
	err := a.dashboard.Upload(ctx)
	if errors.Is(err, ui.ErrBusy) {
		fmt.Fprintln(a.out, "Another request is in progress.")
		return err
	}
	render.Status(a.out, a.dashboard.Message())
	return err
}

// Search runs query, prompting for one when none was given, and prints
// the results.
func (a *App) Search(ctx context.Context, query string) error {
	if query == "" && a.dashboard.HasUploaded() {
		var err error
		query, err = getSimpleText(a.reader, "Enter search query (e.g., Python developer)", a.out)
		if err != nil {
			return err
		}
	}

	err := a.dashboard.Search(ctx, query)
	switch {
	case errors.Is(err, ui.ErrEmptyQuery):
		fmt.Fprintln(a.out, "Enter a search query.")
		return err
	case errors.Is(err, ui.ErrBusy):
		fmt.Fprintln(a.out, "Another request is in progress.")
		return err
	}

	render.Status(a.out, a.dashboard.Message())
	if err == nil {
		render.SearchSession(a.out, a.dashboard.Results())
	}
	return err
}

// Results prints the retained search session again.
func (a *App) Results(ctx context.Context) error {
	s := a.dashboard.Results()
	if s == nil {
		fmt.Fprintln(a.out, "No search yet.")
		return nil
	}
	if len(s.Results) == 0 {
		fmt.Fprintf(a.out, "No results found for \"%s\"\n", s.Query)
		return nil
	}
	render.SearchSession(a.out, s)
	return nil
}

// WhoAmI prints the logged-in user.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.dashboard.User()
	fmt.Fprintf(a.out, "Logged in as %s (id %s)\n", displayName(u), u.ID)
	return nil
}
