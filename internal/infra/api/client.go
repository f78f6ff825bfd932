// Package api implements the domain Backend contract against the AgroDoctor
// REST service. A single configured client carries every screen-level call;
// no other HTTP configuration exists in the app.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"agrodoctor/config"
	domainerrors "agrodoctor/internal/domain/errors"
	"agrodoctor/internal/domain/repository"
	"agrodoctor/internal/domain/service"

	"github.com/pkg/errors"
)

// Client is the shared HTTP client: fixed base URL, fixed timeout, bearer
// token attached transparently by its transport. It performs no retries.
type Client struct {
	http    *http.Client
	baseURL string
	logger  *slog.Logger
}

// New builds the Client from configuration. All eleven backend operations
// go through the returned instance.
func New(cfg *config.Config, creds repository.CredentialStore, logger *slog.Logger) service.Backend {
	return &Client{
		http: &http.Client{
			Timeout:   cfg.API.Timeout,
			Transport: newBearerTransport(creds, nil),
		},
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		logger:  logger,
	}
}

// do sends one request and decodes a 2xx JSON response into out (when out is
// non-nil). Transport failures map to the network error; non-2xx statuses
// map to a ServerError carrying the backend's detail message when present.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Any("error", err))

		return domainerrors.ErrNetwork.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domainerrors.ErrNetwork.WithDetails(err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := decodeDetail(body)
		c.logger.Debug("request rejected",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.String("detail", detail))

		return domainerrors.NewServerError(resp.StatusCode, detail)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "decode response")
	}

	return nil
}

// decodeDetail extracts the backend's {"detail": "..."} message. Structured
// validation details are ignored; the caller falls back to a generic message.
func decodeDetail(body []byte) string {
	var payload struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	if detail, ok := payload.Detail.(string); ok {
		return detail
	}

	return ""
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader) (*http.Request, error) {
	endpoint := c.baseURL + path
	if len(query) != 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s %s", method, path)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return req, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, "", nil)
	if err != nil {
		return err
	}

	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrapf(err, "encode %s payload", path)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, "application/json", bytes.NewReader(data))
	if err != nil {
		return err
	}

	return c.do(req, out)
}

// postQuery sends a body-less POST whose parameters travel in the query
// string, matching the password-reset endpoints.
func (c *Client) postQuery(ctx context.Context, path string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodPost, path, query, "", nil)
	if err != nil {
		return err
	}

	return c.do(req, out)
}
