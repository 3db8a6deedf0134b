package domain

// CellState exposes the progress of a Cell to tests.
type CellState = cellState

const (
	CellPending = cellPending
	CellReady   = cellReady
	CellFailed  = cellFailed
)

// StateOf reports the state of c without triggering its computation.
func StateOf[T any](c *Cell[T]) CellState {
	return c.currentState()
}
