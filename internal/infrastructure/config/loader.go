package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Loader loads grid configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGrid loads grid.json. Fields left out of the file keep their
// default values.
func (l *Loader) LoadGrid() (*GridConfig, error) {
	data, err := fs.ReadFile(l.fsys, "grid.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read grid.json: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse grid.json: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid grid.json in %s: %w", l.basePath, err)
	}

	return cfg, nil
}

// Validate checks that the configuration describes a usable window and a
// grid whose tiles do not overlap.
func (c *GridConfig) Validate() error {
	var errs []error

	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d",
			c.Display.ScreenWidth, c.Display.ScreenHeight))
	}
	if c.Display.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("framerate must be positive, got %d", c.Display.Framerate))
	}
	if c.Layout.Cols <= 0 || c.Layout.Rows <= 0 {
		errs = append(errs, fmt.Errorf("grid must have at least one cell, got %dx%d",
			c.Layout.Cols, c.Layout.Rows))
	}
	if c.Layout.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %g", c.Layout.CellSize))
	}
	if c.Layout.Spacing < c.Layout.CellSize {
		errs = append(errs, fmt.Errorf("spacing %g is smaller than cell size %g, tiles would overlap",
			c.Layout.Spacing, c.Layout.CellSize))
	}

	return errors.Join(errs...)
}
