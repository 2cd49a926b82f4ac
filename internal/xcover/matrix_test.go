package xcover

import "testing"

func buildKnuthMatrix(t *testing.T) *Matrix {
	t.Helper()
	m := NewMatrix(7)
	rows := [][]int{
		{3, 5, 6},
		{1, 4, 7},
		{2, 3, 6},
		{1, 4},
		{2, 7},
		{4, 5, 7},
	}
	for _, r := range rows {
		if _, err := m.AddRow(r); err != nil {
			t.Fatalf("AddRow(%v): %v", r, err)
		}
	}
	return m
}

func TestAddRowRejectsOutOfRangeColumn(t *testing.T) {
	m := NewMatrix(3)
	if _, err := m.AddRow([]int{1, 4}); err == nil {
		t.Fatal("expected error for out-of-range column, got nil")
	}
}

func TestAddRowRejectsDuplicateColumn(t *testing.T) {
	m := NewMatrix(3)
	if _, err := m.AddRow([]int{1, 1, 2}); err == nil {
		t.Fatal("expected error for duplicate column within a row, got nil")
	}
}

func TestAddRowAssignsSequentialIDs(t *testing.T) {
	m := NewMatrix(3)
	for i := 1; i <= 3; i++ {
		id, err := m.AddRow([]int{i})
		if err != nil {
			t.Fatalf("AddRow: %v", err)
		}
		if id != i {
			t.Errorf("AddRow row %d: got id %d, want %d", i, id, i)
		}
	}
}

// snapshot captures enough of the header-list topology to detect whether
// cover/uncover (or tweak/untweak) fully restored the Matrix.
type snapshot struct {
	colOrder []string
	colSize  []int
	colRows  [][]int
}

func takeSnapshot(m *Matrix) snapshot {
	var s snapshot
	for c := m.root.right; c != &m.root; c = c.right {
		s.colOrder = append(s.colOrder, c.col.name)
		s.colSize = append(s.colSize, c.col.size)
		var rows []int
		for r := c.down; r != c; r = r.down {
			rows = append(rows, r.rowID)
		}
		s.colRows = append(s.colRows, rows)
	}
	return s
}

func sameSnapshot(a, b snapshot) bool {
	if len(a.colOrder) != len(b.colOrder) {
		return false
	}
	for i := range a.colOrder {
		if a.colOrder[i] != b.colOrder[i] || a.colSize[i] != b.colSize[i] {
			return false
		}
		if len(a.colRows[i]) != len(b.colRows[i]) {
			return false
		}
		for j := range a.colRows[i] {
			if a.colRows[i][j] != b.colRows[i][j] {
				return false
			}
		}
	}
	return true
}

func TestCoverUncoverSymmetry(t *testing.T) {
	m := buildKnuthMatrix(t)
	before := takeSnapshot(m)

	c := m.columns[0] // column "1"
	m.coverCol(c)
	m.uncoverCol(c)

	after := takeSnapshot(m)
	if !sameSnapshot(before, after) {
		t.Fatalf("cover/uncover did not restore topology: before=%+v after=%+v", before, after)
	}
}

func TestTweakUntweakSymmetry(t *testing.T) {
	m := NewMatrix(1)
	for i := 0; i < 3; i++ {
		if _, err := m.AddRow([]int{1}); err != nil {
			t.Fatalf("AddRow: %v", err)
		}
	}
	c := m.columns[0]
	before := takeSnapshot(m)

	first := c.down
	r := first
	var tweaked []*node
	for r != &c.node {
		next := r.down
		m.tweakRow(r)
		tweaked = append(tweaked, r)
		r = next
	}
	if len(tweaked) != 3 {
		t.Fatalf("expected to tweak 3 rows, tweaked %d", len(tweaked))
	}

	m.untweakRows(first, &c.node)
	after := takeSnapshot(m)
	if !sameSnapshot(before, after) {
		t.Fatalf("tweak/untweak did not restore topology: before=%+v after=%+v", before, after)
	}
}

func TestChooseBestColPicksSmallest(t *testing.T) {
	m := buildKnuthMatrix(t)
	c := m.chooseBestCol()
	// Column 1 (index 0) appears in rows B and D -> size 2, the minimum
	// among all 7 columns for this instance.
	if c.size != 2 {
		t.Fatalf("chooseBestCol: got size %d, want 2", c.size)
	}
}

func TestColFulfillablePredicate(t *testing.T) {
	c := &column{min: 2, max: 3}

	c.weight, c.size = 0, 1 // can never reach min=2
	if colFulfillable(c) {
		t.Error("expected unfulfillable when weight+size < min")
	}

	c.weight, c.size = 4, 0 // already past max
	if colFulfillable(c) {
		t.Error("expected unfulfillable when weight > max")
	}

	c.weight, c.size = 1, 5
	if !colFulfillable(c) {
		t.Error("expected fulfillable")
	}
}
