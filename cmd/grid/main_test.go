package main

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/tilegrid/internal/domain/entity"
)

func TestLoadConfig_Embedded(t *testing.T) {
	cfg, err := loadConfig(configFS)
	require.NoError(t, err)

	assert.Equal(t, "Tile Grid", cfg.Display.Title)
	assert.Equal(t, entity.DefaultGridLayout(), cfg.Layout.GridLayout())
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := loadConfig(fstest.MapFS{})
	assert.Error(t, err)
}
