package poll

import (
	"context"
	"sync"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

const (
	metaOwner    = "owner"
	metaGovToken = "gov_token"
)

// Registry owns the poll collection. All mutation goes through its methods;
// a registry-level lock makes every operation atomic with respect to
// concurrent callers, and each operation writes its state changes in a
// single store batch so a failure mid-operation leaves the stored state
// untouched.
type Registry struct {
	mu       sync.RWMutex
	store    Store
	oracle   VotingPowerOracle
	height   HeightSource
	notifier Notifier
	logger   log.Logger

	owner    common.Address
	govToken common.Address
}

// NewRegistry returns a registry over the given store. Owner and governance
// token addresses persisted by earlier admin operations take precedence over
// the configured ones.
func NewRegistry(store Store, oracle VotingPowerOracle, height HeightSource, notifier Notifier, logger log.Logger, owner common.Address, govToken common.Address) (*Registry, error) {
	r := &Registry{
		store:    store,
		oracle:   oracle,
		height:   height,
		notifier: notifier,
		logger:   logger.With("component", "poll_registry"),
		owner:    owner,
		govToken: govToken,
	}

	if bz, ok, err := store.GetMeta(metaOwner); err != nil {
		return nil, err
	} else if ok {
		r.owner = common.BytesToAddress(bz)
	}

	if bz, ok, err := store.GetMeta(metaGovToken); err != nil {
		return nil, err
	} else if ok {
		r.govToken = common.BytesToAddress(bz)
	}

	return r, nil
}

// CreatePoll allocates the next sequential poll id and opens a poll mirror
// for the given parent proposal. Multiple creation commands for the same
// parent id create distinct polls.
func (r *Registry) CreatePoll(ctx context.Context, chainID uint64, parentID sdkmath.Uint) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count, err := r.store.PollCount()
	if err != nil {
		return 0, err
	}

	startBlock, err := r.height.LatestHeight(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to snapshot the local block height")
	}

	if _, ok, err := r.findOpenPollByParent(parentID); err != nil {
		return 0, err
	} else if ok {
		r.logger.Warn("creating a second poll for an already mirrored parent proposal", "parent_id", parentID.String())
	}

	poll := Poll{
		ID:           count + 1,
		ChainID:      chainID,
		ParentID:     parentID,
		StartBlock:   startBlock,
		ForVotes:     sdkmath.ZeroUint(),
		AgainstVotes: sdkmath.ZeroUint(),
		Closed:       false,
	}

	if err := r.store.CreatePoll(poll); err != nil {
		return 0, errors.Wrapf(err, "failed to persist poll %d", poll.ID)
	}

	r.notifier.Publish(PollCreated{PollID: poll.ID, ChainID: chainID, ParentID: parentID})
	r.logger.Info("poll created", "poll_id", poll.ID, "chain_id", chainID, "parent_id", parentID.String(), "start_block", startBlock)

	return poll.ID, nil
}

// CastVote records the given voter's ballot on the poll. The voter's weight
// is looked up at the poll's start block and frozen in the receipt; later
// balance changes never retroactively change the tally.
func (r *Registry) CastVote(ctx context.Context, pollID uint64, voter common.Address, support bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	poll, err := r.getExistingPoll(pollID)
	if err != nil {
		return err
	}

	if poll.State() != Open {
		return errors.Wrapf(ErrPollNotOpen, "poll %d", pollID)
	}

	if _, ok, err := r.store.GetReceipt(pollID, voter); err != nil {
		return err
	} else if ok {
		return errors.Wrapf(ErrAlreadyVoted, "voter %s on poll %d", voter.Hex(), pollID)
	}

	votes, err := r.oracle.GetPriorVotes(ctx, r.govToken, voter, poll.StartBlock)
	if err != nil {
		return errors.Wrapf(err, "failed to query voting power of %s at block %d", voter.Hex(), poll.StartBlock)
	}

	if support {
		poll.ForVotes = poll.ForVotes.Add(votes)
	} else {
		poll.AgainstVotes = poll.AgainstVotes.Add(votes)
	}

	receipt := Receipt{HasVoted: true, Support: support, Votes: votes}
	if err := r.store.RecordVote(poll, voter, receipt); err != nil {
		return errors.Wrapf(err, "failed to persist vote on poll %d", pollID)
	}

	r.notifier.Publish(VoteCast{Voter: voter, PollID: pollID, Support: support, Votes: votes})
	r.logger.Info("vote cast", "poll_id", pollID, "voter", voter.Hex(), "support", support, "votes", votes.String())

	return nil
}

// ClosePoll closes the poll and hands the aggregated tally to the given
// settler for transmission to the parent chain. The closure payload is sent
// first; only once the transport has accepted it is the closed flag
// persisted, so a failed send leaves the poll open and re-closable.
func (r *Registry) ClosePoll(ctx context.Context, pollID uint64, settler Settler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	poll, err := r.getExistingPoll(pollID)
	if err != nil {
		return err
	}

	if poll.State() != Open {
		return errors.Wrapf(ErrPollNotOpen, "poll %d", pollID)
	}

	if err := settler.SendClosure(ctx, poll.ParentID, poll.ForVotes, poll.AgainstVotes); err != nil {
		return errors.Wrapf(err, "failed to settle poll %d, poll stays open", pollID)
	}

	poll.Closed = true
	if err := r.store.ClosePoll(poll); err != nil {
		return errors.Wrapf(err, "failed to persist closure of poll %d", pollID)
	}

	r.notifier.Publish(PollClosed{PollID: pollID})
	r.logger.Info("poll closed", "poll_id", pollID, "for_votes", poll.ForVotes.String(), "against_votes", poll.AgainstVotes.String())

	return nil
}

// GetPoll returns the poll with the given id
func (r *Registry) GetPoll(pollID uint64) (Poll, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.getExistingPoll(pollID)
}

// GetReceipt returns the given voter's receipt on the poll; a zero-valued
// receipt if the voter never voted
func (r *Registry) GetReceipt(pollID uint64, voter common.Address) (Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	receipt, ok, err := r.store.GetReceipt(pollID, voter)
	if err != nil {
		return Receipt{}, err
	}
	if !ok {
		return ZeroReceipt(), nil
	}

	return receipt, nil
}

// State returns the derived state of the poll
func (r *Registry) State(pollID uint64) (State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	poll, err := r.getExistingPoll(pollID)
	if err != nil {
		return 0, err
	}

	return poll.State(), nil
}

// PollCount returns the id of the most recently created poll
func (r *Registry) PollCount() (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.store.PollCount()
}

// FindOpenPollByParent returns the most recently created open poll mirroring
// the given parent proposal
func (r *Registry) FindOpenPollByParent(parentID sdkmath.Uint) (uint64, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.findOpenPollByParent(parentID)
}

// SetOwner transfers control of the admin surface
func (r *Registry) SetOwner(caller common.Address, newOwner common.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if caller != r.owner {
		return errors.Wrapf(ErrUnauthorized, "caller %s", caller.Hex())
	}

	if err := r.store.SetMeta(metaOwner, newOwner.Bytes()); err != nil {
		return err
	}

	r.owner = newOwner
	r.logger.Info("owner updated", "owner", newOwner.Hex())

	return nil
}

// SetGovToken reconfigures the governance token consulted for voting power
func (r *Registry) SetGovToken(caller common.Address, token common.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if caller != r.owner {
		return errors.Wrapf(ErrUnauthorized, "caller %s", caller.Hex())
	}

	if err := r.store.SetMeta(metaGovToken, token.Bytes()); err != nil {
		return err
	}

	r.govToken = token
	r.logger.Info("governance token updated", "gov_token", token.Hex())

	return nil
}

func (r *Registry) getExistingPoll(pollID uint64) (Poll, error) {
	if pollID == 0 {
		return Poll{}, errors.Wrapf(ErrInvalidPollID, "poll id 0")
	}

	poll, ok, err := r.store.GetPoll(pollID)
	if err != nil {
		return Poll{}, err
	}
	if !ok {
		return Poll{}, errors.Wrapf(ErrInvalidPollID, "poll %d does not exist", pollID)
	}

	return poll, nil
}

func (r *Registry) findOpenPollByParent(parentID sdkmath.Uint) (uint64, bool, error) {
	count, err := r.store.PollCount()
	if err != nil {
		return 0, false, err
	}

	for id := count; id >= 1; id-- {
		poll, ok, err := r.store.GetPoll(id)
		if err != nil {
			return 0, false, err
		}

		if ok && !poll.Closed && poll.ParentID.Equal(parentID) {
			return id, true, nil
		}
	}

	return 0, false, nil
}
