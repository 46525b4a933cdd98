// Package testlab is the HTTP client for the remote test-management service.
package testlab

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/testlabtools/testlab-publish/internal/payload"
)

// Hosted installations are addressed by company id; on-premise installations
// by a full URL.
const hostedURLFormat = "https://%s.melioratestlab.com"

const addTestResultPath = "/api/addTestResult"

// basicAuthUser is the fixed user name for API-key authentication.
const basicAuthUser = "api"

// Client talks to one Testlab installation. It is constructed once per run
// from the resolved endpoint and carries no global state.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

// RequestError is returned when the service answers with a non-2xx status.
type RequestError struct {
	StatusCode int
}

func (e RequestError) Error() string {
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// AddTestResultResponse is the service's acknowledgement of a published run.
type AddTestResultResponse struct {
	TestRunID int64 `json:"testRunId"`
}

// NewClient resolves the endpoint from companyID or onpremiseURL (the latter
// wins when both are set) and returns a client authenticating with apiKey.
func NewClient(companyID, onpremiseURL, apiKey string, httpClient *http.Client) *Client {
	base := onpremiseURL
	if base == "" {
		base = fmt.Sprintf(hostedURLFormat, companyID)
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(base, "/"),
		apiKey:  apiKey,
	}
}

// AddTestResult publishes one test run. The call is synchronous and is not
// retried; any error is terminal for the run.
func (c *Client) AddTestResult(ctx context.Context, tr *payload.TestResult) (*AddTestResultResponse, error) {
	body, err := json.Marshal(tr)
	if err != nil {
		return nil, fmt.Errorf("encoding test result: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+addTestResultPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(basicAuthUser, c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, RequestError{res.StatusCode}
	}

	var ack AddTestResultResponse
	if err := json.NewDecoder(res.Body).Decode(&ack); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &ack, nil
}
