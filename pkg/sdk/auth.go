package sdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Login exchanges email and password for an access token.
func (c *Client) Login(ctx context.Context, input LoginRequest) (*LoginResponse, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", input, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, errors.New("login response did not include an access token")
	}
	return &resp, nil
}

// LoginAndStore logs in and records the token and role in store.
// The role falls back to DefaultRole when the server omits it.
func (c *Client) LoginAndStore(ctx context.Context, store SessionStore, input LoginRequest) (*LoginResponse, error) {
	resp, err := c.Login(ctx, input)
	if err != nil {
		return nil, err
	}

	role := resp.RoleID
	if role < RoleAdmin {
		role = DefaultRole
	}
	if err := store.SetToken(resp.AccessToken); err != nil {
		return nil, fmt.Errorf("failed to save session token: %w", err)
	}
	if err := store.SetRole(role); err != nil {
		return nil, fmt.Errorf("failed to save session role: %w", err)
	}
	resp.RoleID = role
	return resp, nil
}

// Register creates a new account. New accounts always start as RoleUser.
func (c *Client) Register(ctx context.Context, input RegisterRequest) (*MessageResponse, error) {
	if strings.TrimSpace(input.Username) == "" || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, fmt.Errorf("username, email and password are required")
	}

	var resp MessageResponse
	if err := c.do(ctx, http.MethodPost, "/register", input, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
