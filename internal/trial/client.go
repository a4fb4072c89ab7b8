package trial

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"h2hgym/pkg/types"
)

const (
	SuccessMessage  = "Request received! We will contact you shortly."
	FallbackMessage = "Something went wrong"
)

// RejectedError is returned when the backend answers with a non-2xx status.
type RejectedError struct {
	StatusCode int
	Detail     string
}

func (e *RejectedError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("trial request rejected with status %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("trial request rejected with status %d", e.StatusCode)
}

// Client posts trial requests to the leads backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for baseURL. A nil httpClient uses a default client
// without a timeout; a submission runs until the backend answers or the transport fails.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) Endpoint() string {
	return c.baseURL + "/trial"
}

// Send performs exactly one POST of req to {baseURL}/trial.
func (c *Client) Send(ctx context.Context, req types.TrialRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode trial request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send trial request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	rejected := &RejectedError{StatusCode: resp.StatusCode}

	var payload struct {
		Detail any `json:"detail"`
	}
	data, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(data, &payload); err == nil {
		if detail, ok := payload.Detail.(string); ok {
			rejected.Detail = detail
		}
	}

	return rejected
}

// StatusFor maps the outcome of Send onto the message shown under the form.
func StatusFor(err error) types.SubmissionStatus {
	if err == nil {
		return types.SubmissionStatus{Kind: types.SubmissionSuccess, Message: SuccessMessage}
	}

	var rejected *RejectedError
	if errors.As(err, &rejected) {
		message := rejected.Detail
		if message == "" {
			message = FallbackMessage
		}
		return types.SubmissionStatus{Kind: types.SubmissionFailure, Message: message}
	}

	return types.SubmissionStatus{Kind: types.SubmissionFailure, Message: transportMessage(err)}
}

// transportMessage returns the message of the underlying transport error.
func transportMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}

	if inner := errors.Unwrap(err); inner != nil {
		return inner.Error()
	}

	return err.Error()
}
