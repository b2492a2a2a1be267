package client

import "context"

// GuardState is the outcome of a session check protecting a route.
type GuardState int

const (
	GuardLoading GuardState = iota
	GuardAuthorized
	GuardUnauthorized
	GuardUnauthenticated
)

func (s GuardState) String() string {
	switch s {
	case GuardAuthorized:
		return "authorized"
	case GuardUnauthorized:
		return "unauthorized"
	case GuardUnauthenticated:
		return "unauthenticated"
	default:
		return "loading"
	}
}

// Session is the identity the server confirms for a valid token.
type Session struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// ValidateSession asks the server whether the current token is still valid
// and which panel user it belongs to.
func (c *Client) ValidateSession(ctx context.Context) (*Session, error) {
	var session Session
	if err := c.Post(ctx, "/validatetoken", nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Guard gates access to a view behind a set of allowed roles. It starts in
// GuardLoading and settles into a terminal state on the first Check call.
type Guard struct {
	client  *Client
	allowed map[string]bool
	state   GuardState
	session *Session
}

func NewGuard(c *Client, allowedRoles ...string) *Guard {
	allowed := make(map[string]bool, len(allowedRoles))
	for _, role := range allowedRoles {
		allowed[role] = true
	}
	return &Guard{client: c, allowed: allowed, state: GuardLoading}
}

func (g *Guard) State() GuardState { return g.state }

// Session returns the confirmed identity, or nil before a successful Check.
func (g *Guard) Session() *Session { return g.session }

// Check resolves the guard. A missing or invalid token means
// GuardUnauthenticated; a valid token with a role outside the allowed set
// means GuardUnauthorized. Once settled, repeated calls return the same state.
func (g *Guard) Check(ctx context.Context) GuardState {
	if g.state != GuardLoading {
		return g.state
	}
	if g.client.Token() == "" {
		g.state = GuardUnauthenticated
		return g.state
	}

	session, err := g.client.ValidateSession(ctx)
	if err != nil {
		g.state = GuardUnauthenticated
		return g.state
	}
	if !g.allowed[session.Role] {
		g.state = GuardUnauthorized
		return g.state
	}

	g.session = session
	g.state = GuardAuthorized
	return g.state
}
