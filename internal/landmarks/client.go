package landmarks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const defaultLandmarkURL = "http://localhost:8000"

// Client talks to the face mesh sidecar over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a sidecar client. An empty baseURL uses the local default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultLandmarkURL
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// faceMesh is a single face in the sidecar response
type faceMesh struct {
	Landmarks []Point `json:"landmarks"`
	Score     float64 `json:"score"`
}

// meshResponse represents the response from the face mesh endpoint
type meshResponse struct {
	FacesCount int        `json:"faces_count"`
	Faces      []faceMesh `json:"faces"`
	Model      string     `json:"model"`
}

// BaseURL returns the sidecar address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Detect encodes the frame as JPEG, posts it to the sidecar and returns the
// first face. Only one face is ever analyzed.
func (c *Client) Detect(ctx context.Context, img image.Image) (*Set, error) {
	var frame bytes.Buffer
	if err := jpeg.Encode(&frame, img, &jpeg.Options{Quality: 92}); err != nil {
		return nil, fmt.Errorf("failed to encode frame: %w", err)
	}

	body, err := c.postMultipartImage(ctx, "/landmarks/face", frame.Bytes())
	if err != nil {
		return nil, err
	}

	var resp meshResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(resp.Faces) == 0 {
		return nil, nil
	}

	set, err := NewSet(resp.Faces[0].Landmarks)
	if err != nil {
		return nil, fmt.Errorf("sidecar returned bad mesh: %w", err)
	}
	return set, nil
}

// postMultipartImage posts the image as form field "file" and returns the body.
func (c *Client) postMultipartImage(ctx context.Context, endpoint string, imageData []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "frame.jpg")
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(imageData); err != nil {
		return nil, fmt.Errorf("failed to write image data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}
