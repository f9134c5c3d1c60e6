package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type httpClient struct {
	endpoint string
	httpc    *http.Client
}

// NewHTTP returns a Client for a model server exposing POST /predict and GET /labels.
func NewHTTP(endpoint string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &httpClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpc:    &http.Client{Timeout: timeout},
	}
}

func (c *httpClient) Predict(ctx context.Context, f Features) (int, error) {
	body, err := json.Marshal(map[string]any{"features": [][]float64{f[:]}})
	if err != nil {
		return 0, fmt.Errorf("encode features: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/predict", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	var out struct {
		Prediction []int `json:"prediction"`
	}
	if err := c.do(req, &out); err != nil {
		return 0, fmt.Errorf("predict: %w", err)
	}
	if len(out.Prediction) == 0 {
		return 0, fmt.Errorf("predict: %w: empty prediction", ErrUnavailable)
	}
	return out.Prediction[0], nil
}

func (c *httpClient) Labels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/labels", nil)
	if err != nil {
		return nil, err
	}
	var out struct {
		Classes []string `json:"classes"`
	}
	if err := c.do(req, &out); err != nil {
		return nil, fmt.Errorf("labels: %w", err)
	}
	return out.Classes, nil
}

func (c *httpClient) do(req *http.Request, v any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	return nil
}
