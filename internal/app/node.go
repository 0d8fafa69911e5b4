package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/emorec/internal/adapters/annotations" //nolint:depguard // Wired in app layer
	"go.trai.ch/emorec/internal/adapters/cas"         //nolint:depguard // Wired in app layer
	"go.trai.ch/emorec/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.trai.ch/emorec/internal/adapters/features"    //nolint:depguard // Wired in app layer
	"go.trai.ch/emorec/internal/adapters/ffmpeg"      //nolint:depguard // Wired in app layer
	"go.trai.ch/emorec/internal/adapters/fs"          //nolint:depguard // Wired in app layer
	"go.trai.ch/emorec/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/emorec/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			features.NodeID,
			annotations.NodeID,
			ffmpeg.NodeID,
			cas.NodeID,
			fs.HasherNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	featureStore, err := graft.Dep[ports.FeatureStore](ctx)
	if err != nil {
		return nil, err
	}

	annotationStore, err := graft.Dep[ports.AnnotationStore](ctx)
	if err != nil {
		return nil, err
	}

	transcoder, err := graft.Dep[ports.Transcoder](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.RecordStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, featureStore, annotationStore, transcoder, store, hasher), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
