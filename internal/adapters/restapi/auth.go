package restapi

import (
	"context"
	"net/http"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_dashboard/internal/core/ports/repositories"
)

var _ portsrepo.AuthRepository = (*Client)(nil)

type loginRequest struct {
	EmailOrUsername string `json:"emailOrUsername"`
	Password        string `json:"password"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type userEnvelope struct {
	User domain.User `json:"user"`
}

// Login exchanges credentials for an API token.
func (c *Client) Login(ctx context.Context, identifier, password string) (string, *domain.User, error) {
	var out authResponse
	err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/auth/login",
		body:     loginRequest{EmailOrUsername: identifier, Password: password},
		fallback: "Failed to login",
	}, &out)
	if err != nil {
		return "", nil, err
	}
	return out.Token, &out.User, nil
}

// FetchProfile returns the user the token belongs to.
func (c *Client) FetchProfile(ctx context.Context, token string) (*domain.User, error) {
	var out userEnvelope
	err := c.do(ctx, request{method: http.MethodGet, path: "/auth/me", token: token, fallback: "Failed to load profile"}, &out)
	if err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, update domain.ProfileUpdate) (*domain.User, error) {
	var out userEnvelope
	err := c.do(ctx, request{method: http.MethodPatch, path: "/auth/me", token: token, body: update, fallback: "Failed to update profile"}, &out)
	if err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) ChangePassword(ctx context.Context, token string, change domain.PasswordChange) error {
	return c.do(ctx, request{method: http.MethodPost, path: "/auth/change-password", token: token, body: change, fallback: "Failed to change password"}, nil)
}
