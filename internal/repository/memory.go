package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/rainet-engine/internal/entity"
)

// memoryRecord keeps encoded records so callers never share state with the store.
type memoryRecord struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryRecordRepository() RecordRepository {
	return &memoryRecord{
		records: map[string][]byte{},
	}
}

func (that *memoryRecord) CreateOrUpdate(_ context.Context, record *entity.Record) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal game record: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()
	that.records[record.ID] = recordJSON

	return nil
}

func (that *memoryRecord) GetByID(_ context.Context, id string) (*entity.Record, error) {
	that.mu.RLock()
	recordJSON, ok := that.records[id]
	that.mu.RUnlock()

	if !ok {
		return &entity.Record{}, ErrGameNotFound
	}

	var record entity.Record
	if err := json.Unmarshal(recordJSON, &record); err != nil {
		return &entity.Record{}, fmt.Errorf("failed to unmarshal game record: %w", err)
	}

	return &record, nil
}

func (that *memoryRecord) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.records[id]; !ok {
		return ErrGameNotFound
	}

	delete(that.records, id)

	return nil
}
