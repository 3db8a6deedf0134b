package domain

import (
	"fmt"
	"sync"
	"sync/atomic"

	"go.trai.ch/zerr"
)

type cellState uint32

const (
	// cellPending: the value has not been requested yet.
	cellPending cellState = iota
	// cellReady: the value was computed and is cached.
	cellReady
	// cellFailed: the computation failed or panicked and the error is cached.
	cellFailed
)

// Cell memoizes the outcome of a single computation.
// The computation runs at most once; both the value and the error are kept.
// The zero value is an empty, pending cell. A Cell must not be copied after first use.
type Cell[T any] struct {
	once  sync.Once
	state atomic.Uint32
	value T
	err   error
}

// Get returns the cached outcome, running compute on the first call only.
// If compute panics, the panic reaches the first caller and every later
// call returns ErrComputationPanicked.
func (c *Cell[T]) Get(compute func() (T, error)) (T, error) {
	c.once.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				var zero T
				c.value = zero
				c.err = zerr.Wrap(ErrComputationPanicked, fmt.Sprint(r))
				c.state.Store(uint32(cellFailed))
				panic(r)
			}
		}()

		c.value, c.err = compute()
		if c.err != nil {
			c.state.Store(uint32(cellFailed))
			return
		}
		c.state.Store(uint32(cellReady))
	})
	return c.value, c.err
}

func (c *Cell[T]) currentState() cellState {
	return cellState(c.state.Load())
}
