package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// FilePart is one file attachment in a multipart request.
type FilePart struct {
	Field    string // form field name, e.g. "cv", "cover_photo", "media_files[0]"
	Path     string // local file path; Reader wins when both are set
	Reader   io.Reader
	FileName string // optional; defaults to base of Path
}

// doMultipart sends files plus a JSON-serialized "payload" sibling field in a
// single request. The backend expects file parts and structured data
// together rather than two round-trips.
func (c *Client) doMultipart(method, path string, payload any, files []FilePart, result any, requiresAuth bool) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range files {
		if err := writeFilePart(w, f); err != nil {
			return err
		}
	}

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		if err := w.WriteField("payload", string(data)); err != nil {
			return fmt.Errorf("write payload field: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	token := c.Session.Token()
	if requiresAuth && token == "" {
		return fmt.Errorf("%w: not logged in", ErrSessionExpired)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.send(req, result)
}

func writeFilePart(w *multipart.Writer, f FilePart) error {
	name := f.FileName
	r := f.Reader
	if r == nil {
		file, err := os.Open(f.Path)
		if err != nil {
			return fmt.Errorf("open %s: %w", f.Path, err)
		}
		defer file.Close()
		r = file
		if name == "" {
			name = filepath.Base(f.Path)
		}
	}
	if name == "" {
		name = f.Field
	}

	part, err := w.CreateFormFile(f.Field, name)
	if err != nil {
		return fmt.Errorf("create form file %s: %w", f.Field, err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("copy %s: %w", f.Field, err)
	}
	return nil
}
