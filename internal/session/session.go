package session

import (
	"sync"

	"github.com/xavierca1/lead-cms/internal/entity"
)

type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

func IsAuthenticationError(err error) bool {
	_, ok := err.(*AuthenticationError)
	return ok
}

// Identity is the sanitized record kept for a logged-in user. Secrets never
// leave the credential list.
type Identity struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
}

func (i Identity) Actor() entity.Actor {
	return entity.Actor{ID: i.ID, Name: i.Name, Role: i.Role}
}

type Credential struct {
	Email  string
	Secret string
}

// Directory resolves an email to its user record. The user store satisfies it.
type Directory interface {
	FindByEmail(email string) (entity.User, bool)
}

// Store persists the current identity across restarts.
type Store interface {
	Load() (*Identity, error)
	Save(Identity) error
	Clear() error
}

// Manager is a two-state machine: anonymous or authenticated. Login is the
// only way in, Logout the only way out.
type Manager struct {
	mu          sync.Mutex
	current     *Identity
	credentials []Credential
	users       Directory
	store       Store
}

// NewManager restores any persisted identity. A missing or unreadable record
// means anonymous; startup never fails because of a broken session file.
func NewManager(users Directory, credentials []Credential, store Store) *Manager {
	m := &Manager{
		credentials: credentials,
		users:       users,
		store:       store,
	}
	if store != nil {
		if identity, err := store.Load(); err == nil && identity != nil {
			m.current = identity
		}
	}
	return m
}

// Login matches email+secret exactly against the credential list. On a miss
// the session state is left untouched.
func (m *Manager) Login(email, secret string) (Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched bool
	for _, cred := range m.credentials {
		if cred.Email == email && cred.Secret == secret {
			matched = true
			break
		}
	}
	if !matched {
		return Identity{}, &AuthenticationError{"invalid credentials"}
	}

	user, ok := m.users.FindByEmail(email)
	if !ok {
		return Identity{}, &AuthenticationError{"invalid credentials"}
	}

	identity := Identity{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
	m.current = &identity

	// Persistence is best effort: a full disk must not block the login.
	if m.store != nil {
		_ = m.store.Save(identity)
	}
	return identity, nil
}

// Logout clears the session unconditionally, persisted copy included.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = nil
	if m.store != nil {
		_ = m.store.Clear()
	}
}

func (m *Manager) Current() (Identity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return Identity{}, false
	}
	return *m.current, true
}

// Actor returns the acting identity for created_by stamping. Anonymous
// sessions yield a zero actor, which stamps the "Unknown" placeholder.
func (m *Manager) Actor() entity.Actor {
	identity, ok := m.Current()
	if !ok {
		return entity.Actor{}
	}
	return identity.Actor()
}
