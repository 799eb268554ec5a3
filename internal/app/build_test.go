package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-clipper/internal/config"
	"github.com/ytget/yt-clipper/internal/engine"
)

func TestNewFromTools(t *testing.T) {
	ex, err := NewFromTools(nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultOutputPrefix, ex.prefix)

	tools := config.DefaultTools()
	tools.Engine = engine.KindNative
	tools.OutputPrefix = "clip"
	ex, err = NewFromTools(tools)
	require.NoError(t, err)
	assert.Equal(t, "clip", ex.prefix)

	tools.Engine = "unknown"
	_, err = NewFromTools(tools)
	require.Error(t, err)
}
