package testlab

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testlabtools/testlab-publish/internal/payload"
)

func TestAddTestResult(t *testing.T) {
	var (
		gotPath string
		gotBody payload.TestResult
		gotUser string
		gotKey  string
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotKey, _ = r.BasicAuth()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		json.NewEncoder(w).Encode(AddTestResultResponse{TestRunID: 42})
	}))
	defer srv.Close()

	c := NewClient("", srv.URL, "secret", nil)
	ack, err := c.AddTestResult(context.Background(), &payload.TestResult{
		Status:       payload.StatusFinished,
		ProjectKey:   "PRJ",
		TestRunTitle: "Nightly",
		XML:          "<testsuites/>",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), ack.TestRunID)
	assert.Equal(t, "/api/addTestResult", gotPath)
	assert.Equal(t, "api", gotUser)
	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "PRJ", gotBody.ProjectKey)
	assert.Equal(t, "<testsuites/>", gotBody.XML)
}

func TestAddTestResult_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("", srv.URL, "bad-key", nil)
	_, err := c.AddTestResult(context.Background(), &payload.TestResult{})

	var reqErr RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusUnauthorized, reqErr.StatusCode)
}

func TestAddTestResult_ConnectionRefused(t *testing.T) {
	c := NewClient("", "http://127.0.0.1:1", "secret", nil)
	_, err := c.AddTestResult(context.Background(), &payload.TestResult{})
	assert.Error(t, err)
}

func TestNewClient_HostedEndpoint(t *testing.T) {
	c := NewClient("acme", "", "secret", nil)
	assert.Equal(t, "https://acme.melioratestlab.com", c.baseURL)
}

func TestNewClient_OnpremiseWinsAndTrimsSlash(t *testing.T) {
	c := NewClient("acme", "https://testlab.example.com/", "secret", nil)
	assert.Equal(t, "https://testlab.example.com", c.baseURL)
}
