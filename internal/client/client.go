// Package client provides functions for interacting with the analysis server.
package client

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/config"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/utils"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/model"
)

// Client submits analysis requests to the server.
type Client struct {
	config     *config.ClientConfig
	httpClient *http.Client
}

// NewClient creates a new client instance with the given configuration.
func NewClient(cfg *config.ClientConfig) *Client {
	return &Client{
		config:     cfg,
		httpClient: &http.Client{Timeout: time.Duration(cfg.ClientTimeout) * time.Second},
	}
}

// NewClientWithHTTP injects a ready http.Client, for tests.
func NewClientWithHTTP(cfg *config.ClientConfig, hc *http.Client) *Client {
	return &Client{config: cfg, httpClient: hc}
}

// Analyze posts one analysis request with a gzip body and returns the stored
// analysis. Validation failures (HTTP 422) come back as a normal Analysis
// with a nil ID and the structured result attached.
func (clnt *Client) Analyze(ctx context.Context, req *model.AnalyzeRequest) (*model.Analysis, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var compressed bytes.Buffer
	gz := gzip.NewWriter(&compressed)
	if _, err := gz.Write(body); err != nil {
		return nil, fmt.Errorf("failed to compress request: %w", err)
	}
	if err := gz.Close(); err != nil {
		return nil, fmt.Errorf("failed to compress request: %w", err)
	}

	url := clnt.config.ServerAddr + "/api/v1/analyze"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &compressed)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Content-Encoding", "gzip")
	if clnt.config.Key != "" {
		httpReq.Header.Set("HashSHA256", utils.CalculateHash(compressed.Bytes(), clnt.config.Key))
	}

	resp, err := clnt.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var analysis model.Analysis
		if err := json.NewDecoder(resp.Body).Decode(&analysis); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return &analysis, nil

	case http.StatusUnprocessableEntity, http.StatusNotFound, http.StatusBadRequest:
		var result model.AnalysisResult
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return nil, fmt.Errorf("server rejected request with status %d", resp.StatusCode)
		}
		return &model.Analysis{
			PackageID:    req.PackageID,
			PropertyType: req.PropertyType,
			Property:     req.Property,
			Result:       &result,
		}, nil

	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
}
