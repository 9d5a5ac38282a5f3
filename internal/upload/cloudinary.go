package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Client posts unsigned multipart uploads to a Cloudinary-style image host.
// The request carries the file, an upload preset and a folder name; the
// response's secure URL becomes the stored image reference.
type Client struct {
	httpClient *http.Client
	uploadURL  string
	preset     string
	folder     string
}

// NewClient creates an upload client for the given Cloudinary cloud name.
func NewClient(cloudName, preset, folder string) *Client {
	return NewClientWithURL(
		fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cloudName),
		preset, folder,
	)
}

// NewClientWithURL creates an upload client against an explicit endpoint.
func NewClientWithURL(uploadURL, preset, folder string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		uploadURL:  uploadURL,
		preset:     preset,
		folder:     folder,
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
}

// Upload sends the file to the image host and returns the hosted secure URL.
func (c *Client) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to read upload file: %w", err)
	}
	if err := writer.WriteField("upload_preset", c.preset); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := writer.WriteField("folder", c.folder); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, body)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("image upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("image host returned status %d: %s", resp.StatusCode, string(snippet))
	}

	var decoded uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if decoded.SecureURL == "" {
		return "", fmt.Errorf("image host response did not include a secure URL")
	}
	return decoded.SecureURL, nil
}
