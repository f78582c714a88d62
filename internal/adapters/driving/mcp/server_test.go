package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil analysis service returns error", func(t *testing.T) {
		ports := &Ports{Capture: &mockCaptureService{}}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingAnalysisService)
	})

	t.Run("nil capture service returns error", func(t *testing.T) {
		ports := &Ports{Analysis: &mockAnalysisService{}}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingCaptureService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Analysis: &mockAnalysisService{},
			Capture:  &mockCaptureService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("missing analysis service returns error", func(t *testing.T) {
		ports := &Ports{Capture: &mockCaptureService{}}
		assert.ErrorIs(t, ports.Validate(), ErrMissingAnalysisService)
	})

	t.Run("missing capture service returns error", func(t *testing.T) {
		ports := &Ports{Analysis: &mockAnalysisService{}}
		assert.ErrorIs(t, ports.Validate(), ErrMissingCaptureService)
	})

	t.Run("analysis and capture is valid", func(t *testing.T) {
		ports := &Ports{
			Analysis: &mockAnalysisService{},
			Capture:  &mockCaptureService{},
		}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Analysis: &mockAnalysisService{},
			Capture:  &mockCaptureService{},
			Schema:   &mockSchemaService{},
		}
		assert.NoError(t, ports.Validate())
	})
}
