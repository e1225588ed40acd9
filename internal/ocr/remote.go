package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RemoteRecognizer posts images to a cloud recognition service. It is the
// alternate backend selected by configuration.
type RemoteRecognizer struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewRemoteRecognizer creates a client for the given recognition endpoint.
func NewRemoteRecognizer(baseURL, token string) *RemoteRecognizer {
	return &RemoteRecognizer{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type remoteResponse struct {
	Text string `json:"text"`
}

// RecognizeText sends the image for recognition and returns the raw text.
func (r *RemoteRecognizer) RecognizeText(ctx context.Context, image []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/v1/recognize", bytes.NewReader(image))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("recognition service: %d %s", resp.StatusCode, string(body))
	}

	var out remoteResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode recognition response: %w", err)
	}
	return out.Text, nil
}
