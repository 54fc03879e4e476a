// Package jenkins implements the build-trigger client for a Jenkins server.
package jenkins

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"jenkinsbuilder/internal/logger"
)

// Config carries the connection settings for a Jenkins server.
type Config struct {
	URL      string // base URL, e.g. https://ci.example.com
	Username string
	Token    string
}

// Client is a Jenkins API client scoped to the build-trigger endpoint. One
// client is configured with the credentials up front and reused for every
// request in a run.
type Client struct {
	url      string
	username string
	token    string
	client   *http.Client
}

// NewClient creates a new Jenkins client instance
func NewClient(cfg Config) *Client {
	// Normalize URL: remove trailing slash to avoid double slashes in paths
	url := strings.TrimSuffix(cfg.URL, "/")

	return &Client{
		url:      url,
		username: cfg.Username,
		token:    cfg.Token,
		client:   &http.Client{},
	}
}

// StatusError reports a non-success HTTP status from the CI server.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("jenkins returned %s", e.Status)
}

// TriggerBuild sends a build-trigger POST for the given project.
//
// The target URL is built by plain concatenation; project names are not
// URL-escaped, so a name containing reserved characters produces an
// unintended URL. A received 2xx means the build was accepted; any other
// status comes back as a StatusError carrying the code.
func (c *Client) TriggerBuild(ctx context.Context, project string) error {
	fullURL := c.url + "/job/" + project + "/build"

	// Create the request with context
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, http.NoBody)
	if err != nil {
		logger.Error("Couldn't build project", "project", project, "error", err)
		return fmt.Errorf("build request for %q: %w", project, err)
	}

	// Jenkins API uses Basic Authentication
	// Format: username:token
	auth := base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", c.username, c.token)))
	req.Header.Set("Authorization", "Basic "+auth)

	// Send the request
	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error("Couldn't build project", "project", project, "error", err)
		return fmt.Errorf("build request for %q: %w", project, err)
	}
	defer resp.Body.Close()

	// Drain the body so the connection can be reused for the next project;
	// it is also the only error detail Jenkins gives us.
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("Couldn't build project", "project", project, "error", err)
		return fmt.Errorf("reading build response for %q: %w", project, err)
	}

	// Check if the response status is successful
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error("Jenkins build request failed",
			"project", project, "status", resp.Status, "body", string(respBody), "url", fullURL)
		return &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	logger.Debug("Jenkins accepted build request",
		"project", project, "status", resp.Status, "location", resp.Header.Get("Location"))
	return nil
}
