package model

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// MazeFile is a stored maze. Grid holds the rows as text ('1'/'0' per cell).
type MazeFile struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Side        int       `yaml:"side"`
	Created     time.Time `yaml:"created"`
	Grid        string    `yaml:"grid"`
}

// NewMazeFile builds a MazeFile from a parsed grid.
func NewMazeFile(name, description string, g Grid, created time.Time) *MazeFile {
	return &MazeFile{
		Name:        name,
		Description: description,
		Side:        g.Side(),
		Created:     created,
		Grid:        g.String(),
	}
}

// Rows returns the grid text split into rows.
func (m *MazeFile) Rows() []string {
	return strings.Split(strings.TrimRight(m.Grid, "\n"), "\n")
}

// ParseGrid parses the stored rows into an occupancy grid.
func (m *MazeFile) ParseGrid() (Grid, error) {
	g, err := ParseRows(m.Rows())
	if err != nil {
		return nil, fmt.Errorf("maze %s: %w", m.Name, err)
	}
	return g, nil
}

// LoadMaze loads a maze file from the given path.
func LoadMaze(path string) (*MazeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read maze file %s: %w", path, err)
	}
	return DecodeMaze(data, path)
}

// DecodeMaze parses maze YAML. The source is only used in error messages.
func DecodeMaze(data []byte, source string) (*MazeFile, error) {
	var m MazeFile
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse maze file %s: %w", source, err)
	}
	return &m, nil
}

// SaveMaze saves a maze file to the given path.
// The grid is written as a literal block so rows stay readable and are
// never reinterpreted as numbers.
func SaveMaze(path string, m *MazeFile) error {
	data, err := EncodeMaze(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write maze file %s: %w", path, err)
	}
	return nil
}

// EncodeMaze renders a maze file as YAML.
func EncodeMaze(m *MazeFile) ([]byte, error) {
	data, err := yaml.Marshal(buildMazeNode(m))
	if err != nil {
		return nil, fmt.Errorf("failed to encode maze: %w", err)
	}
	return data, nil
}

// buildMazeNode creates a yaml.Node tree for a MazeFile with stable field order.
func buildMazeNode(m *MazeFile) *yaml.Node {
	doc := &yaml.Node{Kind: yaml.MappingNode}

	addStringField(doc, "name", m.Name)
	if m.Description != "" {
		addStringField(doc, "description", m.Description)
	}
	addIntField(doc, "side", m.Side)
	addTimeField(doc, "created", m.Created)

	grid := m.Grid
	if !strings.HasSuffix(grid, "\n") {
		grid += "\n"
	}
	doc.Content = append(doc.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "grid"},
		&yaml.Node{Kind: yaml.ScalarNode, Value: grid, Style: yaml.LiteralStyle, Tag: "!!str"},
	)

	return doc
}

// Helper functions for building yaml.Node

// addStringField tags the value as !!str so names like "null", "true" or
// "123" read back as strings.
func addStringField(node *yaml.Node, key, value string) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value, Tag: "!!str"},
	)
}

func addIntField(node *yaml.Node, key string, value int) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprintf("%d", value), Tag: "!!int"},
	)
}

func addTimeField(node *yaml.Node, key string, t time.Time) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: t.Format(time.RFC3339)},
	)
}
