package store

import (
	"sync"

	"github.com/xavierca1/lead-cms/internal/entity"
)

type SparePartStore struct {
	mu    sync.Mutex
	parts map[string]*entity.SparePart
	order []string
	clock touchClock
}

func NewSparePartStore(seed []entity.SparePart) *SparePartStore {
	s := &SparePartStore{
		parts: make(map[string]*entity.SparePart),
		order: make([]string, 0, len(seed)),
	}
	for i := range seed {
		part := seed[i]
		s.parts[part.ID] = &part
		s.order = append(s.order, part.ID)
	}
	return s
}

func (s *SparePartStore) List() []entity.SparePart {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.SparePart, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.parts[id])
	}
	return out
}

func (s *SparePartStore) FindByID(id string) (entity.SparePart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	part, ok := s.parts[id]
	if !ok {
		return entity.SparePart{}, false
	}
	return *part, true
}

// Resolve maps sparePartIds to the parts that still exist. Dangling
// references are skipped, never an error.
func (s *SparePartStore) Resolve(ids []string) []entity.SparePart {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entity.SparePart
	for _, id := range ids {
		if part, ok := s.parts[id]; ok {
			out = append(out, *part)
		}
	}
	return out
}

func (s *SparePartStore) Add(in entity.SparePartInput) (entity.SparePart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	part, err := entity.NewSparePart(in, s.clock.Now())
	if err != nil {
		return entity.SparePart{}, err
	}

	s.parts[part.ID] = part
	s.order = append(s.order, part.ID)
	return *part, nil
}

func (s *SparePartStore) Update(id string, patch entity.SparePartPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	part, ok := s.parts[id]
	if !ok {
		return
	}
	patch.Apply(part)
	part.UpdatedAt = s.clock.Now()
}

func (s *SparePartStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.parts[id]; !ok {
		return
	}
	delete(s.parts, id)
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
