package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
)

func TestSchemaCmd_Use(t *testing.T) {
	assert.Equal(t, "schema", schemaCmd.Use)
}

func TestSchemaCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0, 3)
	for _, sub := range schemaCmd.Commands() {
		names = append(names, sub.Use)
	}
	assert.Contains(t, names, "sync")
	assert.Contains(t, names, "accept")
	assert.Contains(t, names, "show")
}

func TestSchemaSyncCmd_NoBaseline(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"schema", "sync"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "Live Schema")
	assert.Contains(t, output, "Name: title")
	assert.Contains(t, output, "status: select (2 options)")
	assert.Contains(t, output, "No schema was accepted yet.")
}

func TestSchemaSyncCmd_NoDrift(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	schemaService = &mockSchemaSyncService{schema: testSchema(), drift: &domain.SchemaDiff{}}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"schema", "sync"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Schema matches the accepted baseline.")
}

func TestSchemaSyncCmd_ReportsDrift(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	schemaService = &mockSchemaSyncService{
		schema: testSchema(),
		drift: &domain.SchemaDiff{
			Added:   []domain.SchemaProperty{{Name: "remote", Type: domain.PropertyTypeCheckbox}},
			Removed: []domain.SchemaProperty{{Name: "memo", Type: domain.PropertyTypeRichText}},
			Changed: []domain.PropertyChange{{Name: "salary_min", OldType: domain.PropertyTypeRichText, NewType: domain.PropertyTypeNumber}},
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"schema", "sync"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "+ remote (checkbox)")
	assert.Contains(t, output, "- memo (rich_text)")
	assert.Contains(t, output, "~ salary_min (rich_text -> number)")
	assert.Contains(t, output, "Run 'jobscope schema accept'")
}

func TestSchemaAcceptCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"schema", "accept"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Accepted schema with 2 properties.")
}

func TestSchemaShowCmd_NoBaseline(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	schemaService = &mockSchemaSyncService{err: domain.ErrNotFound}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"schema", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No schema was accepted yet.")
}

func TestSchemaShowCmd_PrintsBaseline(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"schema", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Accepted Schema")
	assert.Contains(t, buf.String(), "Name: title")
}
