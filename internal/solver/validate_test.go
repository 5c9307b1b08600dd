package solver

import (
	"testing"

	"github.com/jacksmith/maze/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestIsOpen(t *testing.T) {
	g := model.Grid{
		{model.Open, model.Blocked},
		{model.Blocked, model.Open},
	}

	tests := []struct {
		name     string
		row, col int
		want     bool
	}{
		{"open cell", 0, 0, true},
		{"blocked cell", 0, 1, false},
		{"open bottom right", 1, 1, true},
		{"row below grid", 2, 0, false},
		{"col right of grid", 0, 2, false},
		{"negative row", -1, 0, false},
		{"negative col", 0, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOpen(g, tt.row, tt.col, 2))
		})
	}
}

func TestIsOpenSeesClosedCells(t *testing.T) {
	g := model.Grid{{model.Open}}
	assert.True(t, IsOpen(g, 0, 0, 1))

	g[0][0] = model.Blocked
	assert.False(t, IsOpen(g, 0, 0, 1))
}
