// Package poll implements the child-chain poll registry: the authoritative
// owner of mirrored governance polls, their vote tallies and vote receipts.
package poll

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Registry operation errors
var (
	ErrInvalidPollID = errors.New("invalid poll id")
	ErrPollNotOpen   = errors.New("poll is not open")
	ErrAlreadyVoted  = errors.New("voter has voted already")
	ErrUnauthorized  = errors.New("caller is not the owner")
)

// State of a poll, derived from its closed flag
type State int

// Possible poll states
const (
	Open State = iota
	Closed
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("unknown state %d", int(s))
	}
}

// Poll is the local mirror of a parent-chain proposal. Tallies only grow
// while the poll is open; once Closed is set it never reverts.
type Poll struct {
	ID           uint64      `json:"id"`
	ChainID      uint64      `json:"chain_id"`
	ParentID     sdkmath.Uint `json:"parent_id"`
	StartBlock   uint64      `json:"start_block"`
	ForVotes     sdkmath.Uint `json:"for_votes"`
	AgainstVotes sdkmath.Uint `json:"against_votes"`
	Closed       bool        `json:"closed"`
}

// State returns the derived state of the poll
func (p Poll) State() State {
	if p.Closed {
		return Closed
	}

	return Open
}

// Receipt records a single voter's ballot on a single poll. Once HasVoted is
// set the receipt is immutable.
type Receipt struct {
	HasVoted bool         `json:"has_voted"`
	Support  bool         `json:"support"`
	Votes    sdkmath.Uint `json:"votes"`
}

// ZeroReceipt returns the receipt of a voter that has not voted
func ZeroReceipt() Receipt {
	return Receipt{HasVoted: false, Support: false, Votes: sdkmath.ZeroUint()}
}

// Event is a notification emitted by the registry
type Event interface {
	isEvent()
}

// PollCreated is emitted when a poll mirror is created
type PollCreated struct {
	PollID   uint64
	ChainID  uint64
	ParentID sdkmath.Uint
}

// VoteCast is emitted when a ballot is recorded
type VoteCast struct {
	Voter   common.Address
	PollID  uint64
	Support bool
	Votes   sdkmath.Uint
}

// PollClosed is emitted when a poll is closed and its result has been handed
// off for transmission
type PollClosed struct {
	PollID uint64
}

func (PollCreated) isEvent() {}
func (VoteCast) isEvent()    {}
func (PollClosed) isEvent()  {}

//go:generate moq -pkg mock -out ./mock/expected_keepers.go . VotingPowerOracle Settler HeightSource Notifier Store

// VotingPowerOracle reports a voter's eligible weight in the given governance
// token at a historical block height
type VotingPowerOracle interface {
	GetPriorVotes(ctx context.Context, token common.Address, voter common.Address, height uint64) (sdkmath.Uint, error)
}

// Settler transmits the aggregated tally of a closed poll back to the parent
// chain
type Settler interface {
	SendClosure(ctx context.Context, parentID sdkmath.Uint, forVotes sdkmath.Uint, againstVotes sdkmath.Uint) error
}

// HeightSource reports the current local block height
type HeightSource interface {
	LatestHeight(ctx context.Context) (uint64, error)
}

// Notifier publishes registry events for observability. Events carry no
// correctness weight.
type Notifier interface {
	Publish(event Event)
}

// Store persists polls and receipts. All writes of a single registry
// operation must be applied atomically.
type Store interface {
	GetPoll(id uint64) (Poll, bool, error)
	GetReceipt(pollID uint64, voter common.Address) (Receipt, bool, error)
	PollCount() (uint64, error)
	CreatePoll(poll Poll) error
	RecordVote(poll Poll, voter common.Address, receipt Receipt) error
	ClosePoll(poll Poll) error
	GetMeta(key string) ([]byte, bool, error)
	SetMeta(key string, value []byte) error
}
