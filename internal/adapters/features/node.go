package features

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/emorec/internal/core/ports"
)

// NodeID is the unique identifier for the feature store Graft node.
const NodeID graft.ID = "adapter.feature_store"

func init() {
	graft.Register(graft.Node[ports.FeatureStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FeatureStore, error) {
			return NewStore(), nil
		},
	})
}
