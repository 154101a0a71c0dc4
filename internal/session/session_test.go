package session

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/lead-cms/internal/entity"
)

type fakeDirectory map[string]entity.User

func (d fakeDirectory) FindByEmail(email string) (entity.User, bool) {
	user, ok := d[email]
	return user, ok
}

func testDirectory() fakeDirectory {
	return fakeDirectory{
		"jane@company.com": {
			ID:     "2",
			Name:   "Jane Engineer",
			Email:  "jane@company.com",
			Role:   entity.RoleSalesEngineer,
			Status: entity.UserActive,
		},
	}
}

func testCredentials() []Credential {
	return []Credential{{Email: "jane@company.com", Secret: "secret123"}}
}

func TestManager_LoginLogoutRoundTrip(t *testing.T) {
	m := NewManager(testDirectory(), testCredentials(), nil)

	_, ok := m.Current()
	assert.False(t, ok)

	identity, err := m.Login("jane@company.com", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, "2", identity.ID)
	assert.Equal(t, entity.RoleSalesEngineer, identity.Role)

	current, ok := m.Current()
	assert.True(t, ok)
	assert.Equal(t, identity, current)

	m.Logout()
	_, ok = m.Current()
	assert.False(t, ok)
}

func TestManager_LoginRejectsBadCredentials(t *testing.T) {
	m := NewManager(testDirectory(), testCredentials(), nil)

	cases := []struct{ email, secret string }{
		{"jane@company.com", "wrong"},
		{"jane@company.com", ""},
		{"JANE@company.com", "secret123"}, // exact match only
		{"ghost@company.com", "secret123"},
	}
	for _, c := range cases {
		_, err := m.Login(c.email, c.secret)
		assert.True(t, IsAuthenticationError(err))
	}

	// A failed attempt leaves the session untouched.
	_, ok := m.Current()
	assert.False(t, ok)
}

func TestManager_FailedLoginKeepsExistingSession(t *testing.T) {
	m := NewManager(testDirectory(), testCredentials(), nil)

	_, err := m.Login("jane@company.com", "secret123")
	assert.NoError(t, err)

	_, err = m.Login("jane@company.com", "wrong")
	assert.Error(t, err)

	current, ok := m.Current()
	assert.True(t, ok)
	assert.Equal(t, "2", current.ID)
}

func TestManager_ActorFallsBackToAnonymous(t *testing.T) {
	m := NewManager(testDirectory(), testCredentials(), nil)

	assert.Equal(t, "Unknown", m.Actor().DisplayName())

	m.Login("jane@company.com", "secret123")
	assert.Equal(t, "Jane Engineer", m.Actor().DisplayName())
}

func TestSQLiteStore_SurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	first, err := OpenSQLiteStore(path)
	assert.NoError(t, err)

	m := NewManager(testDirectory(), testCredentials(), first)
	_, err = m.Login("jane@company.com", "secret123")
	assert.NoError(t, err)
	assert.NoError(t, first.Close())

	// Simulated restart: fresh store and manager on the same file.
	second, err := OpenSQLiteStore(path)
	assert.NoError(t, err)
	defer second.Close()

	restarted := NewManager(testDirectory(), testCredentials(), second)
	current, ok := restarted.Current()
	assert.True(t, ok)
	assert.Equal(t, "Jane Engineer", current.Name)

	restarted.Logout()

	third := NewManager(testDirectory(), testCredentials(), second)
	_, ok = third.Current()
	assert.False(t, ok)
}

func TestSQLiteStore_CorruptPayloadMeansAnonymous(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	store, err := OpenSQLiteStore(path)
	assert.NoError(t, err)
	defer store.Close()

	db, err := sql.Open("sqlite", path)
	assert.NoError(t, err)
	_, err = db.Exec(`INSERT INTO session (id, payload) VALUES (1, 'not json')`)
	assert.NoError(t, err)
	assert.NoError(t, db.Close())

	identity, err := store.Load()
	assert.NoError(t, err)
	assert.Nil(t, identity)

	m := NewManager(testDirectory(), testCredentials(), store)
	_, ok := m.Current()
	assert.False(t, ok)
}

func TestSQLiteStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	store, err := OpenSQLiteStore(path)
	assert.NoError(t, err)
	defer store.Close()

	assert.NoError(t, store.Save(Identity{ID: "1", Name: "First"}))
	assert.NoError(t, store.Save(Identity{ID: "2", Name: "Second"}))

	identity, err := store.Load()
	assert.NoError(t, err)
	assert.Equal(t, "Second", identity.Name)

	assert.NoError(t, store.Clear())
	identity, err = store.Load()
	assert.NoError(t, err)
	assert.Nil(t, identity)
}
