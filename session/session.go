// ABOUTME: Session state with a defined lifecycle and change notifications
// ABOUTME: Persists the bearer credential across invocations at an XDG path
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Davi-web/cms-dashboard/api"
)

// ErrNoSession is returned by operations that need an active session.
var ErrNoSession = fmt.Errorf("no active session")

// Session is the explicit session value: who is signed in and the bearer
// credential to attach to remote requests.
type Session struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name,omitempty"`
	LastName    string    `json:"last_name,omitempty"`
	AccessToken string    `json:"access_token"`
	SignedInAt  time.Time `json:"signed_in_at"`
}

// Manager owns the session lifecycle: loaded at startup, replaced on
// credential change, torn down on sign-out. Observers are notified on every
// transition with the new session (nil on sign-out).
type Manager struct {
	path   string
	client *api.Client
	log    *logrus.Entry

	mu      sync.RWMutex
	current *Session
	subs    []func(*Session)
}

// NewManager creates a manager persisting at path and installing credentials
// on client.
func NewManager(path string, client *api.Client) *Manager {
	return &Manager{
		path:   path,
		client: client,
		log:    logrus.WithField("component", "session"),
	}
}

// Load restores a persisted session, if any. A missing or unreadable file
// just means no session.
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read session file: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil || s.AccessToken == "" {
		// Corrupt session file, treat as signed out
		_ = os.Remove(m.path)
		return nil
	}

	m.set(&s)
	return nil
}

// Current returns the active session, or nil.
func (m *Manager) Current() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Active reports whether a user is signed in.
func (m *Manager) Active() bool {
	return m.Current() != nil
}

// Subscribe registers a change observer. Observers run synchronously on the
// goroutine that changed the session.
func (m *Manager) Subscribe(fn func(*Session)) {
	m.mu.Lock()
	m.subs = append(m.subs, fn)
	m.mu.Unlock()
}

// set installs the session, persists it, and notifies observers.
func (m *Manager) set(s *Session) {
	m.mu.Lock()
	m.current = s
	subs := make([]func(*Session), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	if s != nil {
		m.client.SetAccessToken(s.AccessToken)
		if data, err := json.MarshalIndent(s, "", "  "); err == nil {
			if err := os.WriteFile(m.path, data, 0600); err != nil {
				m.log.WithError(err).Warn("failed to persist session")
			}
		}
	} else {
		m.client.SetAccessToken("")
		_ = os.Remove(m.path)
	}

	for _, fn := range subs {
		fn(s)
	}
}

// SignIn exchanges credentials for a session. Failures do not touch any
// stored data.
func (m *Manager) SignIn(ctx context.Context, email, password string) (*Session, error) {
	auth, err := m.client.SignIn(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("sign in failed: %w", err)
	}

	s := &Session{
		UserID:      auth.User.ID,
		Email:       auth.User.Email,
		FirstName:   auth.User.FirstName,
		LastName:    auth.User.LastName,
		AccessToken: auth.AccessToken,
		SignedInAt:  time.Now().UTC(),
	}
	m.set(s)
	m.log.WithField("email", s.Email).Info("signed in")
	return s, nil
}

// SignUp creates the account, then signs in with the same credentials.
func (m *Manager) SignUp(ctx context.Context, email, password, firstName, lastName string) (*Session, error) {
	if _, err := m.client.Signup(ctx, email, password, firstName, lastName); err != nil {
		return nil, fmt.Errorf("sign up failed: %w", err)
	}
	return m.SignIn(ctx, email, password)
}

// SignOut tears the session down. Stored record data is unaffected.
func (m *Manager) SignOut() {
	if !m.Active() {
		return
	}
	m.set(nil)
	m.log.Info("signed out")
}
