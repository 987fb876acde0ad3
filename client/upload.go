package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
)

// MaxUploadSize caps a single attachment at 10MB, matching the server.
const MaxUploadSize = 10 << 20

type AttachStatus string

const (
	AttachUploading AttachStatus = "uploading"
	AttachDone      AttachStatus = "done"
)

// Attachment is one file in a form's attachment list. Until the upload
// settles the URL is empty and the attachment must not be submitted.
type Attachment struct {
	UID    string       `json:"uid"`
	Name   string       `json:"name"`
	Status AttachStatus `json:"status"`
	URL    string       `json:"url"`
}

// Uploaded reports whether the attachment has settled with a usable URL.
func (a Attachment) Uploaded() bool {
	return a.Status == AttachDone && a.URL != ""
}

type attachmentPayload struct {
	FileName string `json:"fileName"`
	URL      string `json:"url"`
}

// Upload sends one file as multipart form data and returns the stored URL.
// Oversized files are rejected locally without touching the network.
func (c *Client) Upload(ctx context.Context, name string, content io.Reader) (string, Status, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	if err != nil {
		return "", StatusException, err
	}
	n, err := io.Copy(part, io.LimitReader(content, MaxUploadSize+1))
	if err != nil {
		return "", StatusException, err
	}
	if n > MaxUploadSize {
		return "", StatusArgumentNotValid, nil
	}
	if err := w.Close(); err != nil {
		return "", StatusException, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/attachments", &buf)
	if err != nil {
		return "", StatusException, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", StatusException, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", StatusException, err
	}
	if env.Status != StatusOK {
		return "", env.Status, nil
	}

	var stored []attachmentPayload
	if err := json.Unmarshal(env.Payload, &stored); err != nil {
		return "", StatusException, err
	}
	if len(stored) == 0 {
		return "", StatusException, nil
	}
	return stored[0].URL, StatusOK, nil
}
