package images

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// FalClient calls the fal.ai synchronous image endpoint.
type FalClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

func NewFalClient(baseURL, apiKey string, logger *slog.Logger) *FalClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &FalClient{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logger,
	}
}

type generateRequest struct {
	Prompt       string `json:"prompt"`
	ImageSize    string `json:"image_size"`
	NumImages    int    `json:"num_images"`
	OutputFormat string `json:"output_format"`
}

type generateResponse struct {
	Images []struct {
		URL string `json:"url"`
	} `json:"images"`
}

// GenerateImage renders one image for the prompt and returns its JPEG bytes.
func (c *FalClient) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	requestID := uuid.NewString()

	body, err := json.Marshal(generateRequest{
		Prompt:       prompt,
		ImageSize:    "square",
		NumImages:    1,
		OutputFormat: "jpeg",
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Key "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("image generation request", "request_id", requestID)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image request %s: %w", requestID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("image request %s: status %d: %s", requestID, resp.StatusCode, payload)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode image response %s: %w", requestID, err)
	}
	if len(result.Images) == 0 {
		return nil, fmt.Errorf("image request %s: empty image list", requestID)
	}

	return c.download(ctx, result.Images[0].URL)
}

func (c *FalClient) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build download request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download image: status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read image body: %w", err)
	}
	return data, nil
}
