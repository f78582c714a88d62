package services

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
)

const (
	// maxBlockTextLength is the service's per-text-segment length cap.
	maxBlockTextLength = 2000

	// maxBlockCount is the service's per-request block limit; excess
	// trailing blocks are dropped.
	maxBlockCount = 100

	truncationMarker = "…"
)

var numberedItemPattern = regexp.MustCompile(`^\d+[.)] `)

// MarkdownToBlocks converts a markdown report into the external
// service's block model, line by line. Only block structure survives:
// bold delimiters are stripped and inline formatting is not preserved.
// Blank lines become spacer paragraphs when keepSpacers is set and are
// dropped otherwise. Output is capped at the service's block limit.
func MarkdownToBlocks(markdown string, keepSpacers bool) []domain.Block {
	if markdown == "" {
		return nil
	}

	var blocks []domain.Block
	for _, line := range strings.Split(markdown, "\n") {
		if len(blocks) >= maxBlockCount {
			break
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "# "):
			blocks = append(blocks, textBlock(domain.BlockTypeHeading1, strings.TrimPrefix(line, "# ")))
		case strings.HasPrefix(line, "## "):
			blocks = append(blocks, textBlock(domain.BlockTypeHeading2, strings.TrimPrefix(line, "## ")))
		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, textBlock(domain.BlockTypeHeading3, strings.TrimPrefix(line, "### ")))
		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
			blocks = append(blocks, textBlock(domain.BlockTypeBulletedItem, line[2:]))
		case numberedItemPattern.MatchString(line):
			rest := numberedItemPattern.ReplaceAllString(line, "")
			blocks = append(blocks, textBlock(domain.BlockTypeNumberedItem, rest))
		case trimmed == "":
			if keepSpacers {
				blocks = append(blocks, domain.NewBlock(domain.BlockTypeParagraph, ""))
			}
		default:
			blocks = append(blocks, textBlock(domain.BlockTypeParagraph, line))
		}
	}
	return blocks
}

// textBlock cleans a line's remaining text and wraps it as a block.
func textBlock(blockType, text string) domain.Block {
	text = strings.TrimSpace(strings.ReplaceAll(text, "**", ""))
	if len([]rune(text)) > maxBlockTextLength {
		text = domain.TruncateText(text, maxBlockTextLength-len([]rune(truncationMarker))) + truncationMarker
	}
	return domain.NewBlock(blockType, text)
}
