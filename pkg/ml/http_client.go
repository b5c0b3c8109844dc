// pkg/ml/http_client.go

package ml

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type httpClient struct {
	endpoint string
	key      string
}

// NewHTTP talks to the external model server's /predict endpoint.
func NewHTTP(endpoint, key string) Client {
	return &httpClient{endpoint: endpoint, key: key}
}

func (c *httpClient) Predict(f Features) (*Prediction, error) {
	b, _ := json.Marshal(f)
	httpc := &http.Client{Timeout: 15 * time.Second}
	req, _ := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/predict", bytes.NewReader(b))
	if c.key != "" {
		req.Header.Set("Authorization", "Bearer "+c.key)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var out Prediction
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	if strings.TrimSpace(out.Fertilizer) == "" {
		return nil, fmt.Errorf("%w: empty fertilizer label", ErrUnavailable)
	}
	return &out, nil
}
