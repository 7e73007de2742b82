// Package relay authenticates and translates messages between the opaque
// cross-chain relay transport and the poll registry. Inbound relay payloads
// are verified against the registered transport endpoint and parent governor
// before they can touch poll state; outbound closure payloads are encoded and
// submitted with the relay's estimated fee.
package relay

import (
	"context"

	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/crossgov/crossgov-core/poll"
)

// Authentication and transmission errors
var (
	ErrUnauthorizedOrigin = errors.New("unauthorized message origin")
	ErrInsufficientFunds  = errors.New("insufficient funds to cover the relay fee")
	ErrTransportSend      = errors.New("relay transport rejected the send")
)

// Message is an inbound relay message as delivered by the transport
// endpoint. SourceAddress is the raw sender buffer; the sender's on-chain
// address occupies its first 20 bytes. The nonce is recorded for diagnostics
// only.
type Message struct {
	Endpoint      common.Address
	SourceChainID uint16
	SourceAddress []byte
	Nonce         uint64
	Payload       []byte
}

// ChainAddress identifies a contract on a remote chain
type ChainAddress struct {
	ChainID uint16
	Address common.Address
}

//go:generate moq -pkg mock -out ./mock/expected_keepers.go . Transport Bank Registry

// Transport is the external message-relay network, opaque beyond delivery
// and fee estimation
type Transport interface {
	Subscribe(ctx context.Context) (<-chan Message, error)
	EstimateFee(ctx context.Context, dest ChainAddress, payload []byte) (sdkmath.Uint, error)
	Send(ctx context.Context, dest ChainAddress, payload []byte, fee sdkmath.Uint, refund common.Address) error
}

// Bank reports the balance available to pay relay fees
type Bank interface {
	Balance(ctx context.Context) (sdkmath.Uint, error)
}

// Registry provides the poll registry operations the authenticator
// dispatches to
type Registry interface {
	CreatePoll(ctx context.Context, chainID uint64, parentID sdkmath.Uint) (uint64, error)
	FindOpenPollByParent(parentID sdkmath.Uint) (uint64, bool, error)
	ClosePoll(ctx context.Context, pollID uint64, settler poll.Settler) error
}
