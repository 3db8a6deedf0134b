package compdb

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/compdb/internal/core/ports"
)

// NodeID is the unique identifier for the compilation database loader Graft node.
const NodeID graft.ID = "adapter.compdb"

func init() {
	graft.Register(graft.Node[ports.DatabaseLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DatabaseLoader, error) {
			return NewLoader(), nil
		},
	})
}
