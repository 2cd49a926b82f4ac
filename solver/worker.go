package solver

import "github.com/corwin-vance/xcover/internal/xcover"

// threadCallback mediates between the Engine's callback hooks (invoked on
// the worker goroutine) and the Driver's signal/event channels.
type threadCallback[E, N comparable] struct {
	names   []N // names[rowID-1] is the option name that produced row rowID
	sigCh   <-chan signal
	eventCh chan<- Event[N]
}

var _ xcover.Callback = (*threadCallback[int, string])(nil)

func (cb *threadCallback[E, N]) optionNames(rows []int) []N {
	out := make([]N, len(rows))
	for i, row := range rows {
		out[i] = cb.names[row-1]
	}
	return out
}

func (cb *threadCallback[E, N]) OnSolution(sol []int, _ *xcover.Matrix) {
	cb.eventCh <- Event[N]{Kind: SolutionFound, Options: cb.optionNames(sol)}
}

// OnIteration is the only cooperation point: it drains the signal channel
// non-blockingly, honoring Pause by blocking in pause() and RequestProgress
// by emitting a ProgressUpdated event, and requests an abort on the Matrix
// if Abort is observed or the signal channel is closed.
func (cb *threadCallback[E, N]) OnIteration(m *xcover.Matrix) {
	var pending *signal
	abort := false

loop:
	for {
		var sig signal
		if pending != nil {
			sig = *pending
			pending = nil
		} else {
			select {
			case s, ok := <-cb.sigCh:
				if !ok {
					abort = true
					break loop
				}
				sig = s
			default:
				break loop
			}
		}

		switch sig {
		case signalRun:
			// already running; nothing to do
		case signalRequestProgress:
			cb.eventCh <- Event[N]{Kind: ProgressUpdated, Progress: 0.0}
		case signalPause:
			s := cb.pause()
			pending = &s
		case signalAbort:
			abort = true
			break loop
		}
	}

	if abort {
		m.Abort()
	}
}

// pause blocks, having announced Paused, until Run or Abort arrives.
// RequestProgress received while paused is honored without leaving the
// paused state.
func (cb *threadCallback[E, N]) pause() signal {
	cb.eventCh <- Event[N]{Kind: Paused}
	for {
		sig, ok := <-cb.sigCh
		if !ok {
			return signalAbort
		}
		switch sig {
		case signalRun:
			return signalRun
		case signalRequestProgress:
			cb.eventCh <- Event[N]{Kind: ProgressUpdated, Progress: 0.0}
		case signalPause:
			// already paused
		case signalAbort:
			return signalAbort
		}
	}
}

func (cb *threadCallback[E, N]) OnAbort(m *xcover.Matrix) {
	cb.eventCh <- Event[N]{Kind: Aborted, Snapshot: &AbortSnapshot[N]{
		ActiveColumns:   m.ActiveColumns(),
		PartialSolution: cb.optionNames(m.PartialSolution()),
	}}
}

func (cb *threadCallback[E, N]) OnFinish() {
	cb.eventCh <- Event[N]{Kind: Finished}
}
