// Package storage locates the roster workspace: its configuration file and
// the data file the configuration points at.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Workspace is a directory holding an optional .rosterconfig.yaml and the
// roster data file.
type Workspace struct {
	root string // directory containing .rosterconfig.yaml
	cfg  *Config
}

// Open returns the workspace rooted at dir, with its configuration loaded.
// Returns error if dir does not exist or the configuration is invalid.
func Open(dir string) (*Workspace, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("directory %s not found", dir)
		}
		return nil, fmt.Errorf("failed to access %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		return nil, err
	}

	return &Workspace{root: dir, cfg: cfg}, nil
}

// Root returns the workspace directory.
func (w *Workspace) Root() string {
	return w.root
}

// Config returns the loaded configuration. Callers may override fields
// (e.g. from command-line flags) before resolving paths.
func (w *Workspace) Config() *Config {
	return w.cfg
}

// ConfigPath returns the path to the user config file.
func (w *Workspace) ConfigPath() string {
	return filepath.Join(w.root, userConfigFile)
}

// DataPath returns the path of the roster data file.
func (w *Workspace) DataPath() string {
	return w.resolve(w.cfg.DataFile)
}

// LogPath returns the configured log file path, or "" if none is set.
func (w *Workspace) LogPath() string {
	if w.cfg.LogFile == "" {
		return ""
	}
	return w.resolve(w.cfg.LogFile)
}

func (w *Workspace) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(w.root, p)
}

// DataExists reports whether the data file is present.
func (w *Workspace) DataExists() bool {
	info, err := os.Stat(w.DataPath())
	return err == nil && !info.IsDir()
}

// Init creates an empty data file, along with its parent directory.
// Returns error if the data file already exists.
func (w *Workspace) Init() error {
	path := w.DataPath()

	// Check if the data file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("data file %s already exists", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check for %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		return fmt.Errorf("failed to create data file: %w", err)
	}

	return nil
}
