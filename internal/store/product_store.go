package store

import (
	"sync"

	"github.com/xavierca1/lead-cms/internal/entity"
)

// ProductStore is the robot master catalog. Lead/proposal dialogs resolve a
// productId through FindByID; a deleted product simply resolves to absent.
type ProductStore struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	order    []string
	clock    touchClock
}

func NewProductStore(seed []entity.Product) *ProductStore {
	s := &ProductStore{
		products: make(map[string]*entity.Product),
		order:    make([]string, 0, len(seed)),
	}
	for i := range seed {
		product := seed[i]
		s.products[product.ID] = &product
		s.order = append(s.order, product.ID)
	}
	return s
}

func (s *ProductStore) List() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.products[id])
	}
	return out
}

func (s *ProductStore) FindByID(id string) (entity.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return entity.Product{}, false
	}
	return *product, true
}

func (s *ProductStore) Add(in entity.ProductInput) (entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := entity.NewProduct(in, s.clock.Now())
	if err != nil {
		return entity.Product{}, err
	}

	s.products[product.ID] = product
	s.order = append(s.order, product.ID)
	return *product, nil
}

func (s *ProductStore) Update(id string, patch entity.ProductPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return
	}
	patch.Apply(product)
	product.UpdatedAt = s.clock.Now()
}

func (s *ProductStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return
	}
	delete(s.products, id)
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
