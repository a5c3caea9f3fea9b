package docstore

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore 内存实现，测试用。语义与GormStore保持一致。
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]Document

	// OrderedErr 不为nil时 QueryOrdered 直接失败，用于模拟缺失排序索引
	OrderedErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]Document)}
}

func (s *MemoryStore) Get(collection, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	out := doc.Clone()
	out["id"] = id
	return out, nil
}

func (s *MemoryStore) Query(collection string, filter map[string]any) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]Document, 0)
	for id, doc := range s.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		out := doc.Clone()
		out["id"] = id
		docs = append(docs, out)
	}
	return docs, nil
}

func (s *MemoryStore) QueryOrdered(collection string, filter map[string]any, orderField string) ([]Document, error) {
	if s.OrderedErr != nil {
		return nil, s.OrderedErr
	}
	docs, err := s.Query(collection, filter)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].Int(orderField) < docs[j].Int(orderField)
	})
	return docs, nil
}

func (s *MemoryStore) Create(collection string, fields Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]Document)
	}
	id := uuid.New().String()
	doc := fields.Clone()
	delete(doc, "id")
	s.collections[collection][id] = doc
	return id, nil
}

func (s *MemoryStore) Update(collection, id string, partial Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range partial {
		if k == "id" {
			continue
		}
		doc[k] = v
	}
	return nil
}

func (s *MemoryStore) Delete(collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], id)
	return nil
}

func matches(doc Document, filter map[string]any) bool {
	for field, want := range filter {
		if doc[field] != want {
			return false
		}
	}
	return true
}
