package ops

import "github.com/jacksmith/maze/internal/model"

// Store defines the persistence interface required by maze operations.
// The concrete implementation is storage.Storage.
type Store interface {
	LoadMaze(name string) (*model.MazeFile, error)
	SaveMaze(m *model.MazeFile) error
	ListMazes() ([]string, error)
	DeleteMaze(name string) error
	MazeExists(name string) bool
}
