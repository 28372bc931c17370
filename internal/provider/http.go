package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/claude/healthdash/internal/models"
)

// HTTPSource reads records from a Health Connect bridge running on the
// device, which exposes the provider's read API over HTTP.
type HTTPSource struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPSource satisfies Source.
var _ Source = (*HTTPSource)(nil)

// NewHTTPSource creates an HTTPSource targeting baseURL. A zero timeout
// means 30 seconds.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPSource{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ReadRecords posts req to {base}/records/read.
func (s *HTTPSource) ReadRecords(ctx context.Context, req models.ReadRequest) (*models.ReadResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("httpsource: encode request: %w", err)
	}
	data, err := s.do(ctx, http.MethodPost, "/records/read", body)
	if err != nil {
		return nil, err
	}

	var resp models.ReadResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("httpsource: decode %s records: %w", req.RecordType, err)
	}
	return &resp, nil
}

// Ping checks {base}/status.
func (s *HTTPSource) Ping(ctx context.Context) error {
	_, err := s.do(ctx, http.MethodGet, "/status", nil)
	return err
}

func (s *HTTPSource) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, rd)
	if err != nil {
		return nil, fmt.Errorf("httpsource: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("httpsource: %s: %w: %v", path, ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpsource: read body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return data, nil
	case resp.StatusCode == http.StatusServiceUnavailable,
		resp.StatusCode == http.StatusNotImplemented,
		resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("httpsource: %s returned %d: %w", path, resp.StatusCode, ErrUnavailable)
	default:
		return nil, fmt.Errorf("httpsource: %s returned %d: %s", path, resp.StatusCode, bytes.TrimSpace(data))
	}
}
