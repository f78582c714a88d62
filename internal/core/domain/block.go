package domain

// Block type wire names.
const (
	BlockTypeHeading1     = "heading_1"
	BlockTypeHeading2     = "heading_2"
	BlockTypeHeading3     = "heading_3"
	BlockTypeBulletedItem = "bulleted_list_item"
	BlockTypeNumberedItem = "numbered_list_item"
	BlockTypeParagraph    = "paragraph"
)

// RichTextSpan is one rich-text segment within a block.
type RichTextSpan struct {
	Type string      `json:"type"`
	Text TextContent `json:"text"`
}

// BlockText is the rich-text body shared by all block kinds.
type BlockText struct {
	RichText []RichTextSpan `json:"rich_text"`
}

// Block is one element of a page body in the external service's
// document model. Exactly one of the typed fields is set, matching Type.
type Block struct {
	Object string `json:"object"`
	Type   string `json:"type"`

	Heading1         *BlockText `json:"heading_1,omitempty"`
	Heading2         *BlockText `json:"heading_2,omitempty"`
	Heading3         *BlockText `json:"heading_3,omitempty"`
	BulletedListItem *BlockText `json:"bulleted_list_item,omitempty"`
	NumberedListItem *BlockText `json:"numbered_list_item,omitempty"`
	Paragraph        *BlockText `json:"paragraph,omitempty"`
}

// NewBlock builds a block of the given type around a single text span.
// An empty text produces an empty rich-text body (a spacer paragraph).
func NewBlock(blockType, text string) Block {
	body := &BlockText{RichText: []RichTextSpan{}}
	if text != "" {
		body.RichText = []RichTextSpan{{Type: "text", Text: TextContent{Content: text}}}
	}

	b := Block{Object: "block", Type: blockType}
	switch blockType {
	case BlockTypeHeading1:
		b.Heading1 = body
	case BlockTypeHeading2:
		b.Heading2 = body
	case BlockTypeHeading3:
		b.Heading3 = body
	case BlockTypeBulletedItem:
		b.BulletedListItem = body
	case BlockTypeNumberedItem:
		b.NumberedListItem = body
	default:
		b.Type = BlockTypeParagraph
		b.Paragraph = body
	}
	return b
}

// Text returns the concatenated text content of the block.
func (b Block) Text() string {
	for _, body := range []*BlockText{
		b.Heading1, b.Heading2, b.Heading3,
		b.BulletedListItem, b.NumberedListItem, b.Paragraph,
	} {
		if body == nil {
			continue
		}
		out := ""
		for _, span := range body.RichText {
			out += span.Text.Content
		}
		return out
	}
	return ""
}
