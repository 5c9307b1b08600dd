package render

import (
	"fmt"
	"io"

	"github.com/jacksmith/maze/internal/model"
	"github.com/jacksmith/maze/internal/solver"
	"gopkg.in/yaml.v3"
)

// Report is the machine-readable form of a search result.
type Report struct {
	Name   string        `yaml:"name,omitempty"`
	Found  bool          `yaml:"found"`
	Side   int           `yaml:"side"`
	Path   []string      `yaml:"path,omitempty"`
	Points []model.Point `yaml:"points,omitempty"`
	Closed []string      `yaml:"closed,omitempty"`
	Stats  ReportStats   `yaml:"stats"`
}

// ReportStats mirrors solver.Stats with a stable YAML layout.
type ReportStats struct {
	Steps      int   `yaml:"steps"`
	Advances   int   `yaml:"advances"`
	Retreats   int   `yaml:"retreats"`
	MaxDepth   int   `yaml:"max_depth"`
	DurationUS int64 `yaml:"duration_us"`
}

// NewReport builds a report. closed, if non-nil, is the occupancy grid as
// left by the search.
func NewReport(name string, side int, p model.PathGrid, found bool, st solver.Stats, closed model.Grid) *Report {
	r := &Report{
		Name:  name,
		Found: found,
		Side:  side,
		Stats: ReportStats{
			Steps:      st.Steps,
			Advances:   st.Advances,
			Retreats:   st.Retreats,
			MaxDepth:   st.MaxDepth,
			DurationUS: st.Duration.Microseconds(),
		},
	}
	if found {
		r.Path = p.Rows()
		r.Points = p.Points()
	}
	for _, row := range closed {
		b := make([]byte, len(row))
		for i, c := range row {
			b[i] = c.Byte()
		}
		r.Closed = append(r.Closed, string(b))
	}
	return r
}

// WriteYAML encodes r to w.
func WriteYAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}
