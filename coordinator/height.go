package coordinator

import (
	"context"
	"sync"

	"github.com/crossgov/crossgov-core/evmrpc"
	"github.com/crossgov/crossgov-core/poll"
)

// heightSource reports the child chain's latest block height. The highest
// height ever observed is cached so a lagging RPC node can never make the
// reported height go backwards.
type heightSource struct {
	client  evmrpc.Client
	lock    sync.Mutex
	highest uint64
}

var _ poll.HeightSource = &heightSource{}

// NewHeightSource returns a monotonic height source over the given client
func NewHeightSource(client evmrpc.Client) poll.HeightSource {
	return &heightSource{client: client}
}

// LatestHeight returns the latest local block height
func (h *heightSource) LatestHeight(ctx context.Context) (uint64, error) {
	latest, err := h.client.BlockNumber(ctx)
	if err != nil {
		return 0, err
	}

	h.lock.Lock()
	defer h.lock.Unlock()

	if latest > h.highest {
		h.highest = latest
	}

	return h.highest, nil
}
