package client

import "context"

// LoginResult is the payload of a successful /login call.
type LoginResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	ID      string `json:"id"`
	Role    string `json:"role"`
}

// Login authenticates a panel user and stores the returned token on the
// client so every following request is authenticated.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result LoginResult
	if err := c.Post(ctx, "/login", body, &result); err != nil {
		return nil, err
	}
	c.SetToken(result.Token)
	return &result, nil
}

// Logout clears the token client-side after telling the server.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.Post(ctx, "/logout", nil, nil); err != nil {
		return err
	}
	c.SetToken("")
	return nil
}

// ChangePassword updates the signed-in user's password.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{
		"old_password": oldPassword,
		"new_password": newPassword,
	}
	return c.Post(ctx, "/changepassword", body, nil)
}
