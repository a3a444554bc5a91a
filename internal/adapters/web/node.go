package web

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mupmc/mup/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the shared HTTP client node.
	NodeID graft.ID = "adapter.web"
	// DownloaderNodeID is the unique identifier for the downloader node.
	DownloaderNodeID graft.ID = "adapter.downloader"
)

func init() {
	graft.Register(graft.Node[*Client]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Client, error) {
			return NewClient(), nil
		},
	})

	graft.Register(graft.Node[ports.Downloader]{
		ID:        DownloaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.Downloader, error) {
			client, err := graft.Dep[*Client](ctx)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	})
}
