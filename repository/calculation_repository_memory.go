package repository

import (
	"context"
	"sync"

	"mortgage-engine/domain"
)

// CalculationRepositoryMemory is an in-memory implementation of CalculationRepository.
type CalculationRepositoryMemory struct {
	mu   sync.RWMutex
	data map[string]domain.CalculationRecord
}

// NewCalculationRepositoryMemory creates a new in-memory calculation repository.
func NewCalculationRepositoryMemory() *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{
		data: make(map[string]domain.CalculationRecord),
	}
}

// Save stores the record in memory, replacing any record with the same ID.
func (r *CalculationRepositoryMemory) Save(
	_ context.Context,
	record domain.CalculationRecord,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.Report = append([]byte(nil), record.Report...)
	r.data[record.ID] = record
	return nil
}

// FindByID returns the record stored under id.
func (r *CalculationRepositoryMemory) FindByID(
	_ context.Context,
	id string,
) (domain.CalculationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.data[id]
	if !ok {
		return domain.CalculationRecord{}, ErrRecordNotFound
	}
	return record, nil
}

func (r *CalculationRepositoryMemory) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}
