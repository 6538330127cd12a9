package api

import (
	"github.com/dami/hope/internal/models"
	"github.com/dami/hope/internal/session"
)

// LoginRequest is the body for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the body for POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates and persists the returned session blob, from which
// every subsequent authenticated request reads its bearer token.
func (c *Client) Login(username, password string) (*session.UserInfo, error) {
	var resp session.UserInfo
	if err := c.doNoAuth("POST", "/api/auth/login", &LoginRequest{Username: username, Password: password}, &resp); err != nil {
		return nil, err
	}
	if err := c.Session.Save(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a back-office account. The response has the same shape as
// a login response and is persisted the same way.
func (c *Client) Register(req *RegisterRequest) (*session.UserInfo, error) {
	var resp session.UserInfo
	if err := c.doNoAuth("POST", "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	if err := c.Session.Save(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me fetches the authenticated user's profile.
func (c *Client) Me() (*models.User, error) {
	var resp models.User
	if err := c.do("GET", "/user/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
