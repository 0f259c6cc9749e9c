package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"devevents/internal/domain"
)

const defaultUploadTimeout = 30 * time.Second

// Config holds the media store endpoint and credentials.
type Config struct {
	UploadURL string
	APIKey    string
	Folder    string
}

type httpUploader struct {
	client *http.Client
	cfg    Config
}

// NewHTTPUploader returns a MediaStore that posts images to the hosted media
// store's upload endpoint and returns the durable URL from its response.
func NewHTTPUploader(client *http.Client, cfg Config) domain.MediaStore {
	if client == nil {
		client = &http.Client{Timeout: defaultUploadTimeout}
	}
	return &httpUploader{client: client, cfg: cfg}
}

// uploadResult is the subset of the provider response we consume.
type uploadResult struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

func (u *httpUploader) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("failed to build upload body: %w", err)
	}
	if err := writer.WriteField("folder", u.cfg.Folder); err != nil {
		return "", fmt.Errorf("failed to build upload body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.cfg.UploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if u.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+u.cfg.APIKey)
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload to media store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("media store returned status %d: %s", resp.StatusCode, detail)
	}

	var result uploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode media store response: %w", err)
	}
	url := result.SecureURL
	if url == "" {
		url = result.URL
	}
	if url == "" {
		return "", fmt.Errorf("media store returned no url")
	}
	return url, nil
}
