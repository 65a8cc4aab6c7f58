// Package auth wraps the hosted identity provider (the Identity Toolkit REST
// surface behind Firebase Authentication). The rest of the application only
// ever consumes the stable user identifier a session carries.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"

	applog "moneta/internal/log"
)

var (
	ErrEmptyEmail    = errors.New("empty email")
	ErrEmptyPassword = errors.New("empty password")
	ErrNotSignedIn   = errors.New("not signed in")
	ErrMissingAPIKey = errors.New("missing identity api key")
)

// Session is the authenticated state after a successful sign-in or sign-up.
type Session struct {
	// UserID is the provider's stable localId; every backend resource is
	// scoped by it.
	UserID       string
	Email        string
	IDToken      string
	RefreshToken string
	ExpiresAt    time.Time
}

// Listener receives auth-state changes. A nil session means signed out.
type Listener func(*Session)

type Client struct {
	svc *identitytoolkit.RelyingpartyService

	mu        sync.Mutex
	current   *Session
	listeners []Listener
}

// New builds an identity client. The API key authenticates the application to
// the provider; extra options (endpoint and HTTP client overrides) exist for
// tests.
func New(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Client, error) {
	all := make([]option.ClientOption, 0, len(opts)+1)
	if strings.TrimSpace(apiKey) != "" {
		all = append(all, option.WithAPIKey(apiKey))
	} else if len(opts) == 0 {
		return nil, ErrMissingAPIKey
	}
	all = append(all, opts...)

	svc, err := identitytoolkit.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("identity toolkit service: %w", err)
	}
	return &Client{svc: svc.Relyingparty}, nil
}

// SignIn verifies the password for an existing user and makes the resulting
// session current.
func (c *Client) SignIn(ctx context.Context, email, password string) (Session, error) {
	if err := checkCredentials(email, password); err != nil {
		return Session{}, err
	}
	resp, err := c.svc.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return Session{}, fmt.Errorf("sign in: %w", err)
	}

	s := Session{
		UserID:       resp.LocalId,
		Email:        resp.Email,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
	}
	c.setSession(&s)
	slog.InfoContext(ctx, "Signed in",
		applog.FieldComponent, applog.ComponentAuth,
		applog.FieldOperation, applog.OpSignIn,
		applog.FieldUserID, s.UserID)
	return s, nil
}

// SignUp registers a new user and makes the resulting session current.
func (c *Client) SignUp(ctx context.Context, email, password string) (Session, error) {
	if err := checkCredentials(email, password); err != nil {
		return Session{}, err
	}
	resp, err := c.svc.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:    email,
		Password: password,
	}).Context(ctx).Do()
	if err != nil {
		return Session{}, fmt.Errorf("sign up: %w", err)
	}

	s := Session{
		UserID:       resp.LocalId,
		Email:        resp.Email,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
	}
	c.setSession(&s)
	slog.InfoContext(ctx, "Signed up",
		applog.FieldComponent, applog.ComponentAuth,
		applog.FieldOperation, applog.OpSignUp,
		applog.FieldUserID, s.UserID)
	return s, nil
}

// SendPasswordReset asks the provider to mail a password-reset code.
func (c *Client) SendPasswordReset(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}
	_, err := c.svc.GetOobConfirmationCode(&identitytoolkit.Relyingparty{
		RequestType: "PASSWORD_RESET",
		Email:       email,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("send password reset: %w", err)
	}
	return nil
}

// SignOut clears the current session and notifies listeners with nil.
func (c *Client) SignOut() {
	c.setSession(nil)
	slog.Info("Signed out",
		applog.FieldComponent, applog.ComponentAuth,
		applog.FieldOperation, applog.OpSignOut)
}

// CurrentSession returns a copy of the active session.
func (c *Client) CurrentSession() (Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return Session{}, ErrNotSignedIn
	}
	return *c.current, nil
}

// Subscribe registers a listener for auth-state changes. Listeners run
// synchronously on the goroutine that changed the state, in registration
// order.
func (c *Client) Subscribe(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, l)
}

func (c *Client) setSession(s *Session) {
	c.mu.Lock()
	c.current = s
	listeners := make([]Listener, len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, l := range listeners {
		l(s)
	}
}

func checkCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}
	if password == "" {
		return ErrEmptyPassword
	}
	return nil
}
