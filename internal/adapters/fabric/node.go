package fabric

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mupmc/mup/internal/adapters/logger"
	"github.com/mupmc/mup/internal/adapters/web"
	"github.com/mupmc/mup/internal/core/ports"
)

// NodeID is the unique identifier for the Fabric installer node.
const NodeID graft.ID = "adapter.loader.fabric"

func init() {
	graft.Register(graft.Node[*Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{web.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Installer, error) {
			webClient, err := graft.Dep[*web.Client](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstaller(webClient, log), nil
		},
	})
}
