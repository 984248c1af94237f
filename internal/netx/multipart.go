// Package netx holds HTTP body helpers.
package netx

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// MultipartFile encodes r as a single file part named field and returns the
// body together with its Content-Type (including the boundary).
// contentType is the part's own type, e.g. "application/pdf"; empty means
// application/octet-stream.
func MultipartFile(field, filename, contentType string, r io.Reader) (*bytes.Buffer, string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(filename)))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("create part: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, "", fmt.Errorf("copy %s: %w", filename, err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}

	return body, w.FormDataContentType(), nil
}
