package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
	"github.com/custodia-labs/jobscope-cli/internal/core/ports/driven"
)

// Ensure SchemaStore implements the interface.
var _ driven.SchemaStore = (*SchemaStore)(nil)

const acceptedSchemaFile = "accepted_schema.json"

// SchemaStore persists the accepted schema snapshot as a JSON file in
// the jobscope config directory.
type SchemaStore struct {
	mu       sync.RWMutex
	filePath string
}

// NewSchemaStore creates a new file-based schema store.
// If configDir is empty, defaults to ~/.jobscope.
func NewSchemaStore(configDir string) (*SchemaStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".jobscope")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &SchemaStore{
		filePath: filepath.Join(configDir, acceptedSchemaFile),
	}, nil
}

// LoadAccepted returns the last accepted snapshot.
func (s *SchemaStore) LoadAccepted(ctx context.Context) (*domain.Schema, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("accepted schema: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("read accepted schema: %w", err)
	}

	var schema domain.Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("decode accepted schema: %w", err)
	}
	return &schema, nil
}

// SaveAccepted replaces the accepted snapshot.
func (s *SchemaStore) SaveAccepted(ctx context.Context, schema *domain.Schema) error {
	if schema == nil {
		return fmt.Errorf("schema is required: %w", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("encode accepted schema: %w", err)
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the schema file path.
func (s *SchemaStore) Path() string {
	return s.filePath
}
