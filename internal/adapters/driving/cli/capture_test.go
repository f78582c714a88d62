package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
	"github.com/custodia-labs/jobscope-cli/internal/core/ports/driving"
)

func resetCaptureFlags() {
	captureURL = ""
	captureForce = false
}

func TestCaptureCmd_Use(t *testing.T) {
	assert.Equal(t, "capture [file]", captureCmd.Use)
}

func TestCaptureCmd_HasForceFlag(t *testing.T) {
	flag := captureCmd.Flags().Lookup("force")
	require.NotNil(t, flag, "force flag should exist")
	assert.Equal(t, "f", flag.Shorthand)
}

func TestCaptureCmd_SavesNewRecord(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetCaptureFlags()

	path := writePostingFile(t, "Backend Engineer at Acme")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"capture", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Saved new record: https://notion.so/page-1")
}

func TestCaptureCmd_ReportsUpdate(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetCaptureFlags()

	captureService = &mockCaptureService{
		saved: &driving.SaveOutcome{
			Page:    domain.PageRef{ID: "page-1", URL: "https://notion.so/page-1"},
			Updated: true,
		},
	}

	path := writePostingFile(t, "Backend Engineer at Acme")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"capture", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Updated existing record: https://notion.so/page-1")
}

func TestCaptureCmd_DuplicateNotice(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetCaptureFlags()

	captureService = &mockCaptureService{
		saved: &driving.SaveOutcome{
			Page:    domain.PageRef{ID: "page-1", URL: "https://notion.so/page-1"},
			Updated: true,
		},
		match: domain.DuplicateMatch{IsDuplicate: true, ExistingID: "rec-1"},
	}

	path := writePostingFile(t, "Backend Engineer at Acme")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"capture", "--url", "https://jobs.example.com/1", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "This URL was captured before (record rec-1).")
}

func TestCaptureCmd_ForceSkipsNotice(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetCaptureFlags()

	captureService = &mockCaptureService{
		saved: &driving.SaveOutcome{
			Page: domain.PageRef{ID: "page-1", URL: "https://notion.so/page-1"},
		},
		match: domain.DuplicateMatch{IsDuplicate: true, ExistingID: "rec-1"},
	}

	path := writePostingFile(t, "Backend Engineer at Acme")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"capture", "--url", "https://jobs.example.com/1", "--force", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "captured before")
	assert.Contains(t, buf.String(), "Saved new record:")
}
