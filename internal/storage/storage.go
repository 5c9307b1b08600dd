// Package storage provides file system operations for .maze/ libraries.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jacksmith/maze/internal/model"
	"gopkg.in/yaml.v3"
)

const (
	// mazeDir is the name of the library directory.
	mazeDir = ".maze"
	// mazesDir is the subdirectory for maze files.
	mazesDir = "mazes"
	// configFile is the name of the config file within .maze/.
	configFile = "config.yaml"
	// mazeExt is the extension of stored maze files.
	mazeExt = ".yaml"
)

// StorageConfig contains settings stored in .maze/config.yaml.
type StorageConfig struct {
	Version int `yaml:"version"`
}

// Storage provides access to a .maze/ directory.
type Storage struct {
	root string // path to directory containing .maze/
}

// Open returns a Storage for the given directory.
// Returns error if .maze/ does not exist.
func Open(dir string) (*Storage, error) {
	path := filepath.Join(dir, mazeDir)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf(".maze/ directory not found in %s (run 'maze init')", dir)
		}
		return nil, fmt.Errorf("failed to access .maze/: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf(".maze is not a directory")
	}

	return &Storage{root: dir}, nil
}

// Init creates an empty .maze/ library in dir.
// Returns error if .maze/ already exists.
func Init(dir string) (*Storage, error) {
	path := filepath.Join(dir, mazeDir)

	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf(".maze/ directory already exists in %s", dir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to check for .maze/: %w", err)
	}

	if err := os.MkdirAll(filepath.Join(path, mazesDir), 0755); err != nil {
		return nil, fmt.Errorf("failed to create .maze/mazes/: %w", err)
	}

	cfgData, err := yaml.Marshal(&StorageConfig{Version: 1})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(path, configFile), cfgData, 0644); err != nil {
		os.RemoveAll(path)
		return nil, fmt.Errorf("failed to write config.yaml: %w", err)
	}

	return &Storage{root: dir}, nil
}

// Root returns the root directory containing .maze/.
func (s *Storage) Root() string {
	return s.root
}

// MazePath returns the path of the file for a maze name.
func (s *Storage) MazePath(name string) string {
	return filepath.Join(s.root, mazeDir, mazesDir, model.NormalizeName(name)+mazeExt)
}

// LoadMaze loads a maze by name. Names are case-insensitive.
func (s *Storage) LoadMaze(name string) (*model.MazeFile, error) {
	name, err := model.ValidateName(name)
	if err != nil {
		return nil, err
	}
	path := s.MazePath(name)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("maze %q not found", name)
		}
		return nil, fmt.Errorf("failed to access maze file: %w", err)
	}

	return model.LoadMaze(path)
}

// SaveMaze writes m to .maze/mazes/<name>.yaml, replacing any existing file.
func (s *Storage) SaveMaze(m *model.MazeFile) error {
	name, err := model.ValidateName(m.Name)
	if err != nil {
		return err
	}
	m.Name = name
	return model.SaveMaze(s.MazePath(name), m)
}

// ListMazes returns all maze names in sorted order.
func (s *Storage) ListMazes() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, mazeDir, mazesDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read mazes directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), mazeExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), mazeExt))
	}
	sort.Strings(names)

	return names, nil
}

// DeleteMaze removes a maze file.
func (s *Storage) DeleteMaze(name string) error {
	name, err := model.ValidateName(name)
	if err != nil {
		return err
	}
	if err := os.Remove(s.MazePath(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("maze %q not found", name)
		}
		return fmt.Errorf("failed to delete maze: %w", err)
	}
	return nil
}

// MazeExists checks if a maze name is in use. Invalid names never exist.
func (s *Storage) MazeExists(name string) bool {
	name, err := model.ValidateName(name)
	if err != nil {
		return false
	}
	_, err = os.Stat(s.MazePath(name))
	return err == nil
}
