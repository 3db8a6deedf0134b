package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/compdb/internal/core/ports"
)

// RealpathNodeID is the unique identifier for the realpath cache Graft node.
// The node is cacheable so that every consumer shares one cache per process.
const RealpathNodeID graft.ID = "adapter.fs.realpath"

func init() {
	graft.Register(graft.Node[ports.RealpathCache]{
		ID:        RealpathNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RealpathCache, error) {
			return NewRealpathCache(), nil
		},
	})
}
