package xcover

// Solve runs Algorithm M to exhaustion, or until Abort is called, streaming
// every solution found through cb.OnSolution. Matrix state is fully restored
// by the time Solve returns, whether it ran to completion or was aborted.
func (m *Matrix) Solve(cb Callback) {
	m.abortRequested = false
	m.partialSol = m.partialSol[:0]

	aborted := m.search(cb)
	if !aborted {
		cb.OnFinish()
	}
}

// search is the recursive core of Algorithm M. It returns
// true if the abort flag was observed anywhere below this call, in which
// case the caller must stop trying further branches but still perform its
// own undo so the Matrix is left exactly as it found it.
func (m *Matrix) search(cb Callback) bool {
	if m.root.right == &m.root {
		cb.OnSolution(append([]int(nil), m.partialSol...), m)
		cb.OnIteration(m)
		if m.abortRequested {
			cb.OnAbort(m)
			return true
		}
		return false
	}

	cb.OnIteration(m)
	if m.abortRequested {
		cb.OnAbort(m)
		return true
	}

	c := m.chooseBestCol()
	if !colFulfillable(c) {
		return false
	}

	c.weight++
	covered := colFull(c)
	if covered {
		m.coverCol(c)
	}

	first := c.down
	r := first
	stop := false
	for r != &c.node && !stop {
		if !covered {
			m.tweakRow(r)
		}
		m.selectRow(r)
		m.partialSol = append(m.partialSol, r.rowID)

		if colFulfillable(c) && m.search(cb) {
			stop = true
		}

		m.partialSol = m.partialSol[:len(m.partialSol)-1]
		m.unselectRow(r)
		r = r.down
	}

	c.weight--
	if !stop && colFulfilled(c) {
		left, right := c.left, c.right
		left.right = right
		right.left = left

		if m.search(cb) {
			stop = true
		}

		left.right = &c.node
		right.left = &c.node
	}

	if covered {
		m.uncoverCol(c)
	} else {
		// On abort r stopped short of the column header; untweak only the
		// rows this level actually tweaked.
		m.untweakRows(first, r)
	}

	return stop
}
