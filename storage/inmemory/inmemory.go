// Package inmemory stores analyses in a mutex-guarded map with optional
// JSON file snapshot and restore.
package inmemory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/errs"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/model"
)

type MemStorage struct {
	analyses map[uuid.UUID]*model.Analysis
	mu       sync.RWMutex
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		analyses: make(map[uuid.UUID]*model.Analysis),
	}
}

func (store *MemStorage) Save(ctx context.Context, a *model.Analysis) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.analyses[a.ID] = a
	return nil
}

func (store *MemStorage) Get(ctx context.Context, id uuid.UUID) (*model.Analysis, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	a, ok := store.analyses[id]
	if !ok {
		return nil, errs.ErrAnalysisNotFound
	}
	return a, nil
}

func (store *MemStorage) List(ctx context.Context) ([]*model.Analysis, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	result := make([]*model.Analysis, 0, len(store.analyses))
	for _, a := range store.analyses {
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (store *MemStorage) Ping(ctx context.Context) error {
	return nil
}

func (store *MemStorage) SaveToFile(ctx context.Context, filePath string) error {
	analyses, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list analyses: %w", err)
	}

	if len(analyses) == 0 {
		return nil
	}

	data, err := json.MarshalIndent(analyses, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analyses: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func (store *MemStorage) LoadFromFile(ctx context.Context, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read file: %w", err)
	}

	var analyses []*model.Analysis
	if err := json.Unmarshal(data, &analyses); err != nil {
		return fmt.Errorf("failed to unmarshal analyses: %w", err)
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	for _, a := range analyses {
		store.analyses[a.ID] = a
	}
	return nil
}
