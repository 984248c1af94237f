package ui

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/resumerag/internal/client/client"
	"github.com/dmitrijs2005/resumerag/internal/pdfx"
)

const (
	MsgNetworkError    = "Network Error: Could not connect to the backend server."
	MsgUnexpectedError = "An error occurred. Please check the log for details."
	MsgUploadFailed    = "Upload failed."
	MsgSearchFailed    = "Search failed."
	MsgUploadFirst     = "Please upload a resume before searching."
	MsgPDFOnly         = "Only PDF files can be uploaded."
)

var (
	ErrNoFileSelected = errors.New("no file selected")
	ErrEmptyQuery     = errors.New("search query is empty")
	ErrBusy           = errors.New("another request is in progress")
	ErrNotUploaded    = errors.New("no resume uploaded in this session")
)

// authErrorMessage distinguishes server-reported, network and unexpected
// failures.
func authErrorMessage(err error) string {
	if msg, ok := client.ServerMessage(err); ok {
		return msg
	}
	if errors.Is(err, client.ErrUnavailable) {
		return MsgNetworkError
	}
	return MsgUnexpectedError
}

// serverMessageOr returns the server's error text or fallback.
func serverMessageOr(err error, fallback string) string {
	if msg, ok := client.ServerMessage(err); ok {
		return msg
	}
	return fallback
}

func noResultsMessage(query string) string {
	return fmt.Sprintf("No results found for \"%s\"", query)
}

func selectErrorMessage(name string, err error) string {
	switch {
	case errors.Is(err, pdfx.ErrNoPages):
		return fmt.Sprintf("%s has no pages.", name)
	case errors.Is(err, pdfx.ErrNotPDF):
		return MsgPDFOnly
	default:
		return fmt.Sprintf("Cannot open %s.", name)
	}
}
