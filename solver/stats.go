package solver

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/corwin-vance/xcover/internal/xcover"
)

// MatrixInfo summarizes the shape of a built Matrix, for reporting only.
type MatrixInfo struct {
	Columns    int
	Rows       int
	TotalNodes int
	Density    float64 // percentage of (row, column) cells that are non-zero
}

// NewMatrixInfo computes a MatrixInfo snapshot from m. Call it right after
// Problem.Build, before Solve mutates column sizes.
func NewMatrixInfo(m *xcover.Matrix) MatrixInfo {
	info := MatrixInfo{
		Columns:    m.ColumnCount(),
		Rows:       m.RowCount(),
		TotalNodes: m.NodeCount(),
	}
	if cells := info.Columns * info.Rows; cells > 0 {
		info.Density = float64(info.TotalNodes) / float64(cells) * 100
	}
	return info
}

// Stats accumulates run statistics for one Driver.Run, intended to be
// assembled by a caller that is reading the event channel itself (e.g.
// cmd/xcover-demo), not produced by the Driver automatically.
type Stats struct {
	MatrixSize     MatrixInfo
	SolutionsFound int
	Aborted        bool
	TimeElapsed    time.Duration
}

// Print displays the statistics as a colorized, labeled summary.
func (s *Stats) Print() {
	fmt.Printf("\n%s\n", color.HiCyanString("Exact Cover Statistics"))
	fmt.Printf("%s\n", color.HiCyanString("======================"))

	fmt.Printf("Matrix:\n")
	fmt.Printf("  Columns:     %s\n", color.HiYellowString("%d", s.MatrixSize.Columns))
	fmt.Printf("  Rows:        %s\n", color.HiYellowString("%d", s.MatrixSize.Rows))
	fmt.Printf("  Total Nodes: %s\n", color.HiYellowString("%d", s.MatrixSize.TotalNodes))
	fmt.Printf("  Density:     %s\n", color.HiYellowString("%.2f%%", s.MatrixSize.Density))

	fmt.Printf("Search:\n")
	fmt.Printf("  Solutions Found: %s\n", color.HiGreenString("%d", s.SolutionsFound))
	if s.Aborted {
		fmt.Printf("  Outcome:         %s\n", color.HiRedString("aborted"))
	} else {
		fmt.Printf("  Outcome:         %s\n", color.HiGreenString("finished"))
	}
	fmt.Printf("  Time Elapsed:    %s\n", color.HiBlueString("%v", s.TimeElapsed))
}
