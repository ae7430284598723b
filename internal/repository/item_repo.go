package repository

import (
	"errors"
	"sync"

	"item-api/internal/models"
)

// Sentinel errors surfaced by the item store.
var (
	ErrItemNotFound = errors.New("item not found")
	ErrEmptyUpdate  = errors.New("no fields provided for update")
)

// ItemStore owns the item collection. Every read and write goes through the
// one mutex, so there is at most one in-flight mutation at a time and ids are
// assigned exactly once.
type ItemStore struct {
	mu     sync.Mutex
	items  []models.Item
	nextID int
}

var _ Items = (*ItemStore)(nil)

// NewItemStore builds a store pre-populated with the two seed items. The id
// counter starts past the highest seed id and only ever increases.
func NewItemStore() *ItemStore {
	seed := []models.Item{
		{ID: 1, Name: "Item A", Description: "Description for Item A"},
		{ID: 2, Name: "Item B", Description: "Description for Item B"},
	}
	next := 1
	for _, it := range seed {
		if it.ID >= next {
			next = it.ID + 1
		}
	}
	return &ItemStore{items: seed, nextID: next}
}

// List returns a copy of the collection in insertion order.
func (s *ItemStore) List() []models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *ItemStore) GetByID(id int) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.Item{}, ErrItemNotFound
}

// Create appends a new item under the next unused id. Ids are never reused,
// even after deletes.
func (s *ItemStore) Create(name, description string) models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	it := models.Item{ID: s.nextID, Name: name, Description: description}
	s.nextID++
	s.items = append(s.items, it)
	return it
}

// Update applies a partial update. An empty string means "leave unchanged";
// absent and empty fields are deliberately not distinguished. The existence
// check runs before the empty-update check, and both happen atomically under
// the store lock.
func (s *ItemStore) Update(id int, name, description string) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, it := range s.items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Item{}, ErrItemNotFound
	}
	if name == "" && description == "" {
		return models.Item{}, ErrEmptyUpdate
	}
	if name != "" {
		s.items[idx].Name = name
	}
	if description != "" {
		s.items[idx].Description = description
	}
	return s.items[idx], nil
}

// Delete removes the item with the given id, keeping everything else in
// order. The id counter is untouched.
func (s *ItemStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(s.items) {
		return ErrItemNotFound
	}
	s.items = kept
	return nil
}
