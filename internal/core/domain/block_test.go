package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlock_SetsMatchingBody(t *testing.T) {
	b := NewBlock(BlockTypeHeading2, "Company Info")

	assert.Equal(t, "block", b.Object)
	assert.Equal(t, BlockTypeHeading2, b.Type)
	require.NotNil(t, b.Heading2)
	assert.Nil(t, b.Paragraph)
	assert.Equal(t, "Company Info", b.Text())
}

func TestNewBlock_UnknownTypeFallsBackToParagraph(t *testing.T) {
	b := NewBlock("quote", "text")

	assert.Equal(t, BlockTypeParagraph, b.Type)
	require.NotNil(t, b.Paragraph)
}

func TestNewBlock_EmptyTextIsSpacer(t *testing.T) {
	b := NewBlock(BlockTypeParagraph, "")

	require.NotNil(t, b.Paragraph)
	assert.Empty(t, b.Paragraph.RichText)
	assert.Equal(t, "", b.Text())
}

func TestBlock_MarshalJSON_OmitsOtherBodies(t *testing.T) {
	data, err := json.Marshal(NewBlock(BlockTypeBulletedItem, "Go"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "bulleted_list_item")
	assert.NotContains(t, decoded, "paragraph")
	assert.NotContains(t, decoded, "heading_1")
}
