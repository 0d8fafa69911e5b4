package annotations

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/emorec/internal/core/ports"
)

// NodeID is the unique identifier for the annotation store Graft node.
const NodeID graft.ID = "adapter.annotation_store"

func init() {
	graft.Register(graft.Node[ports.AnnotationStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.AnnotationStore, error) {
			return NewStore(), nil
		},
	})
}
