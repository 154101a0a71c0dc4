package store

import (
	"sync"
	"time"

	"github.com/xavierca1/lead-cms/internal/entity"
)

// UserStore is the sole source of role classification. Assignment candidate
// lists and login identities both come from here.
type UserStore struct {
	mu    sync.Mutex
	users map[string]*entity.User
	order []string
}

func NewUserStore(seed []entity.User) *UserStore {
	s := &UserStore{
		users: make(map[string]*entity.User),
		order: make([]string, 0, len(seed)),
	}
	for i := range seed {
		user := seed[i]
		s.users[user.ID] = &user
		s.order = append(s.order, user.ID)
	}
	return s
}

func (s *UserStore) List() []entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.User, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.users[id])
	}
	return out
}

func (s *UserStore) FindByID(id string) (entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return entity.User{}, false
	}
	return *user, true
}

func (s *UserStore) FindByEmail(email string) (entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		if s.users[id].Email == email {
			return *s.users[id], true
		}
	}
	return entity.User{}, false
}

func (s *UserStore) Add(in entity.UserInput) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := entity.NewUser(in, time.Now().UTC())
	if err != nil {
		return entity.User{}, err
	}

	s.users[user.ID] = user
	s.order = append(s.order, user.ID)
	return *user, nil
}

func (s *UserStore) Update(id string, patch entity.UserPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return
	}
	patch.Apply(user)
}

func (s *UserStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return
	}
	delete(s.users, id)
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// AssignmentCandidates returns the users a lead or proposal may be assigned
// to: sales engineers and managers, in insertion order.
func (s *UserStore) AssignmentCandidates() []entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entity.User
	for _, id := range s.order {
		if s.users[id].Role.Assignable() {
			out = append(out, *s.users[id])
		}
	}
	return out
}
