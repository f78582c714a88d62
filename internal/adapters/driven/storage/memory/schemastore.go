package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
	"github.com/custodia-labs/jobscope-cli/internal/core/ports/driven"
)

// Ensure SchemaStore implements the interface.
var _ driven.SchemaStore = (*SchemaStore)(nil)

// SchemaStore is an in-memory implementation of driven.SchemaStore for testing.
type SchemaStore struct {
	mu       sync.RWMutex
	accepted *domain.Schema
}

// NewSchemaStore creates a new in-memory schema store.
func NewSchemaStore() *SchemaStore {
	return &SchemaStore{}
}

// LoadAccepted returns the last accepted snapshot.
func (s *SchemaStore) LoadAccepted(ctx context.Context) (*domain.Schema, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.accepted == nil {
		return nil, fmt.Errorf("accepted schema: %w", domain.ErrNotFound)
	}
	return s.accepted, nil
}

// SaveAccepted replaces the accepted snapshot.
func (s *SchemaStore) SaveAccepted(ctx context.Context, schema *domain.Schema) error {
	if schema == nil {
		return fmt.Errorf("schema is required: %w", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.accepted = schema
	return nil
}
