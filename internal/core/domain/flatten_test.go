package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten_Primitives(t *testing.T) {
	assert.Nil(t, Flatten(nil))
	assert.Equal(t, "hello", Flatten("hello"))
	assert.Equal(t, 3.5, Flatten(3.5))
	assert.Equal(t, true, Flatten(true))
}

func TestFlatten_RichTextWrapper(t *testing.T) {
	value := map[string]any{
		"rich_text": []any{
			map[string]any{"text": map[string]any{"content": "Acme "}},
			map[string]any{"plain_text": "Corp"},
		},
	}

	assert.Equal(t, "Acme Corp", Flatten(value))
}

func TestFlatten_SelectWrapper(t *testing.T) {
	value := map[string]any{
		"select": map[string]any{"name": "正社員"},
	}

	assert.Equal(t, "正社員", Flatten(value))
}

func TestFlatten_MultiSelectWrapper(t *testing.T) {
	value := map[string]any{
		"multi_select": []any{
			map[string]any{"name": "Go"},
			map[string]any{"name": "AWS"},
		},
	}

	assert.Equal(t, []any{"Go", "AWS"}, Flatten(value))
}

func TestFlatten_DateWrapper(t *testing.T) {
	value := map[string]any{
		"date": map[string]any{"start": "2024-06-01"},
	}

	assert.Equal(t, "2024-06-01", Flatten(value))
}

func TestFlatten_ScalarWrappers(t *testing.T) {
	assert.Equal(t, 500.0, Flatten(map[string]any{"number": 500.0}))
	assert.Equal(t, "https://example.com", Flatten(map[string]any{"url": "https://example.com"}))
	assert.Equal(t, true, Flatten(map[string]any{"checkbox": true}))
}

func TestFlatten_NameField(t *testing.T) {
	assert.Equal(t, "Tokyo", Flatten(map[string]any{"name": "Tokyo"}))
}

func TestFlatten_EmptyObjectIsNil(t *testing.T) {
	assert.Nil(t, Flatten(map[string]any{}))
}

func TestFlatten_UnknownObjectKeepsData(t *testing.T) {
	flat := Flatten(map[string]any{"weird": map[string]any{"deep": 1.0}})

	s, ok := flat.(string)
	require.True(t, ok, "unknown objects should serialise to a JSON string")
	assert.Contains(t, s, "weird")
}

func TestFlatten_SliceOfWrappers(t *testing.T) {
	value := []any{
		map[string]any{"name": "Go"},
		"Python",
		nil,
	}

	assert.Equal(t, []any{"Go", "Python"}, Flatten(value))
}

func TestFlatten_StringSliceUnchanged(t *testing.T) {
	value := []any{"Go", "Python"}

	assert.Equal(t, []any{"Go", "Python"}, Flatten(value))
}

// Flattening an already flat result must change nothing.
func TestFlatten_Idempotent(t *testing.T) {
	inputs := []any{
		"text",
		42.0,
		true,
		nil,
		[]any{"a", "b"},
		map[string]any{"select": map[string]any{"name": "x"}},
	}

	for _, in := range inputs {
		once := Flatten(in)
		twice := Flatten(once)
		assert.Equal(t, once, twice)
	}
}
