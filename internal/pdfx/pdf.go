// Package pdfx performs a local preflight on resume files before upload:
// the file must carry a .pdf extension and open as a PDF with at least one
// page. Text extraction is left to the backend.
package pdfx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

const Extension = ".pdf"

var (
	ErrNotPDF  = errors.New("not a PDF file")
	ErrNoPages = errors.New("PDF has no pages")
)

// Info describes a file that passed the preflight.
type Info struct {
	Path  string
	Name  string
	Size  int64
	Pages int
}

// Inspect checks the file at path and returns its Info.
func Inspect(path string) (*Info, error) {
	if !strings.EqualFold(filepath.Ext(path), Extension) {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrNotPDF)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", path, ErrNotPDF)
	}

	pages, err := CountPages(f, fi.Size())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return &Info{Path: path, Name: filepath.Base(path), Size: fi.Size(), Pages: pages}, nil
}

// CountPages parses the PDF structure in r and returns its page count.
// Malformed input yields ErrNotPDF, a page-less document ErrNoPages.
func CountPages(r io.ReaderAt, size int64) (pages int, err error) {
	// The parser panics on some malformed inputs.
	defer func() {
		if p := recover(); p != nil {
			pages, err = 0, fmt.Errorf("%w: %v", ErrNotPDF, p)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotPDF, err)
	}

	pages = reader.NumPage()
	if pages < 1 {
		return 0, ErrNoPages
	}
	return pages, nil
}

// CountPagesBytes is CountPages over an in-memory document.
func CountPagesBytes(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, ErrNotPDF
	}
	return CountPages(bytes.NewReader(b), int64(len(b)))
}
