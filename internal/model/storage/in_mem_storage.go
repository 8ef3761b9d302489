package storage

import (
	"sync"

	"max.ks1230/expense-analyzer/internal/entity/expense"
	"max.ks1230/expense-analyzer/internal/entity/summary"
)

// Dataset is one analyzed statement held for later queries. Datasets
// are not durable: the store exists so the server can answer summary,
// advice and export requests after a single upload.
type Dataset struct {
	Records []expense.Record
	Summary *summary.Summary
	Advice  []string
	Skipped int
}

type InMemStorage struct {
	mu       sync.RWMutex
	datasets map[string]Dataset
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{datasets: make(map[string]Dataset)}
}

func (s *InMemStorage) GetByID(id string) (Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.datasets[id]
	return d, ok
}

func (s *InMemStorage) SaveByID(id string, d Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasets[id] = d
}
