package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/corebuild/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/corebuild/internal/adapters/corestore" //nolint:depguard // Wired in app layer
	"go.trai.ch/corebuild/internal/adapters/hostinfo"  //nolint:depguard // Wired in app layer
	"go.trai.ch/corebuild/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/corebuild/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/corebuild/internal/adapters/workspace" //nolint:depguard // Wired in app layer
	"go.trai.ch/corebuild/internal/builder"
	"go.trai.ch/corebuild/internal/core/domain"
	"go.trai.ch/corebuild/internal/core/ports"
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
			config.ReaderNodeID,
			corestore.NodeID,
			workspace.NodeID,
			builder.NodeID,
			hostinfo.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.ConfigurationReader](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.CoreStore](ctx)
	if err != nil {
		return nil, err
	}

	workspaces, err := graft.Dep[ports.WorkspaceManager](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[*builder.Registry](ctx)
	if err != nil {
		return nil, err
	}

	detector, err := graft.Dep[ports.PlatformDetector](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(settings, store, workspaces, registry, detector, reader, log, tracer), nil
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

	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, settings), nil
}
