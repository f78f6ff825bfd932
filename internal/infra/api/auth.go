package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"agrodoctor/internal/domain/entity"
	"agrodoctor/internal/domain/service"
)

// Login exchanges username/password for a bearer token via the OAuth2-style
// form-encoded token endpoint.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := c.newRequest(ctx, http.MethodPost, "/token", nil,
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}

	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := c.do(req, &out); err != nil {
		return "", err
	}

	return out.AccessToken, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, input *service.RegisterInput) error {
	return c.postJSON(ctx, "/users/", input, nil)
}

// Me fetches the current user's profile.
func (c *Client) Me(ctx context.Context) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	if err := c.getJSON(ctx, "/users/me/", nil, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// RequestPasswordReset asks the backend to email a one-time code.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	query := url.Values{}
	query.Set("email", email)

	return c.postQuery(ctx, "/forgot-password-otp", query, nil)
}

// ResetPassword finalizes the reset with the emailed code.
func (c *Client) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	query := url.Values{}
	query.Set("email", email)
	query.Set("otp", otp)
	query.Set("new_password", newPassword)

	return c.postQuery(ctx, "/reset-password-otp", query, nil)
}
