package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	xerrors "workshop-service/internal/pkg/errors"

	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

// Client calls an HTTP recognition gateway (a thin proxy in front of the
// vision model). Responses are JSON; a 2xx body that fails to parse is
// reported as ErrMalformedResponse so callers can degrade per operation.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  logger,
	}
}

func (c *Client) RecognizePlate(ctx context.Context, image []byte) (string, error) {
	var out struct {
		Plate string `json:"plate"`
	}
	req := map[string]string{"image": base64.StdEncoding.EncodeToString(image)}
	if err := c.post(ctx, "/v1/recognize-plate", req, &out); err != nil {
		return "", err
	}
	return out.Plate, nil
}

func (c *Client) IdentifyPart(ctx context.Context, image []byte) (PartIdentification, error) {
	var out PartIdentification
	req := map[string]string{"image": base64.StdEncoding.EncodeToString(image)}
	if err := c.post(ctx, "/v1/identify-part", req, &out); err != nil {
		return PartIdentification{}, err
	}
	return out, nil
}

func (c *Client) SimulateQuotes(ctx context.Context, partName string) ([]DistributorQuote, error) {
	var out []DistributorQuote
	req := map[string]string{"part_name": partName}
	if err := c.post(ctx, "/v1/simulate-quotes", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SummarizeJob(ctx context.Context, transcript string) (string, error) {
	var out struct {
		Summary string `json:"summary"`
	}
	req := map[string]string{"transcript": transcript}
	if err := c.post(ctx, "/v1/summarize-job", req, &out); err != nil {
		return "", err
	}
	return out.Summary, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode collaborator request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build collaborator request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("collaborator call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("collaborator returned non-success status",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("collaborator returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read collaborator response: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.Warn("collaborator response did not parse",
			zap.String("path", path),
			zap.Error(err),
		)
		return xerrors.ErrMalformedResponse
	}
	return nil
}
