// Package client talks to a running fittracker service over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/fittracker/internal/ledger"
	"github.com/2beens/fittracker/internal/tracker"
	"github.com/2beens/fittracker/pkg"
)

const (
	DefaultBaseURL = "http://localhost:9100"
	UserAgent      = "fitctl/1"
)

type HTTPClient struct {
	base string
	http *http.Client
}

func New(base string) *HTTPClient {
	return NewWithHTTPClient(base, &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   10 * time.Second,
	})
}

func NewWithHTTPClient(base string, httpClient *http.Client) *HTTPClient {
	return &HTTPClient{
		base: strings.TrimRight(base, "/"),
		http: httpClient,
	}
}

func (c *HTTPClient) Snapshot(ctx context.Context) (ledger.Snapshot, error) {
	var out ledger.Snapshot
	err := c.do(ctx, http.MethodGet, "/ledger", nil, &out)
	return out, err
}

func (c *HTTPClient) Workouts(ctx context.Context) (tracker.WorkoutsResponse, error) {
	var out tracker.WorkoutsResponse
	err := c.do(ctx, http.MethodGet, "/workouts", nil, &out)
	return out, err
}

func (c *HTTPClient) AddWorkout(ctx context.Context, draft ledger.Draft) (tracker.AddWorkoutResponse, error) {
	var out tracker.AddWorkoutResponse
	err := c.do(ctx, http.MethodPost, "/workouts", draft, &out)
	return out, err
}

func (c *HTTPClient) ToggleWorkout(ctx context.Context, id int64) (tracker.ChangeResponse, error) {
	var out tracker.ChangeResponse
	err := c.do(ctx, http.MethodPut, "/workouts/"+strconv.FormatInt(id, 10)+"/toggle", nil, &out)
	return out, err
}

func (c *HTTPClient) RemoveWorkout(ctx context.Context, id int64) (tracker.ChangeResponse, error) {
	var out tracker.ChangeResponse
	err := c.do(ctx, http.MethodDelete, "/workouts/"+strconv.FormatInt(id, 10), nil, &out)
	return out, err
}

func (c *HTTPClient) SetSteps(ctx context.Context, raw string) (tracker.ChangeResponse, error) {
	return c.setValue(ctx, "/stats/steps", raw)
}

func (c *HTTPClient) SetCaloriesConsumed(ctx context.Context, raw string) (tracker.ChangeResponse, error) {
	return c.setValue(ctx, "/stats/calories-consumed", raw)
}

func (c *HTTPClient) SetGoal(ctx context.Context, field ledger.GoalField, raw string) (tracker.ChangeResponse, error) {
	if !field.IsValid() {
		return tracker.ChangeResponse{}, fmt.Errorf("unknown goal: %s", field)
	}
	return c.setValue(ctx, "/goals/"+field.String(), raw)
}

func (c *HTTPClient) SetCurrentWeight(ctx context.Context, raw string) (tracker.ChangeResponse, error) {
	return c.setValue(ctx, "/weight/current", raw)
}

func (c *HTTPClient) setValue(ctx context.Context, path, raw string) (tracker.ChangeResponse, error) {
	var out tracker.ChangeResponse
	err := c.do(ctx, http.MethodPut, path, tracker.ValueRequest{Value: ledger.RawValue(raw)}, &out)
	return out, err
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reqBody)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	if body != nil {
		req.Header.Set("Content-Type", pkg.ContentType.JSON)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s failed: %s: %s", method, path, resp.Status, strings.TrimSpace(string(msg)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
