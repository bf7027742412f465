package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	pkgLog "calendar-clipper/pkg/log"
)

const sendTimeout = 5 * time.Second

// Client ships save outcomes to the backend tracing endpoint.
// Delivery is strictly best-effort: a failed send must never affect the
// user-visible result, so Notify returns nothing and swallows errors.
type Client struct {
	url        string
	l          pkgLog.Logger
	httpClient *http.Client
}

// NewClient creates a telemetry client. An empty URL disables sending.
func NewClient(url string, l pkgLog.Logger) *Client {
	return &Client{
		url:        url,
		l:          l,
		httpClient: &http.Client{Timeout: sendTimeout},
	}
}

// Notify dispatches the record on a detached goroutine with its own
// timeout, independent of the caller's context.
func (c *Client) Notify(outcome SaveOutcome) {
	if c.url == "" {
		return
	}
	if outcome.RecordID == "" {
		outcome.RecordID = uuid.NewString()
	}
	go c.send(outcome)
}

func (c *Client) send(outcome SaveOutcome) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	body, err := json.Marshal(outcome)
	if err != nil {
		c.l.Debugf(ctx, "telemetry: marshal failed: %v", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(body))
	if err != nil {
		c.l.Debugf(ctx, "telemetry: request build failed: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.l.Debugf(ctx, "telemetry: send failed: %v", err)
		return
	}
	resp.Body.Close()
}
