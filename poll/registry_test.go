package poll_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	dbm "github.com/cometbft/cometbft-db"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	. "github.com/axelarnetwork/utils/test"

	"github.com/crossgov/crossgov-core/poll"
	"github.com/crossgov/crossgov-core/poll/mock"
	"github.com/crossgov/crossgov-core/store"
	"github.com/crossgov/crossgov-core/testutils/rand"
)

func TestRegistryCreatePoll(t *testing.T) {
	var (
		registry *mockedRegistry
		parentID sdkmath.Uint
		chainID  uint64
	)

	givenRegistry := Given("a poll registry", func() {
		registry = newMockedRegistry(t)
	})

	givenRegistry.
		When("a parent proposal is mirrored", func() {
			parentID = rand.Uint()
			chainID = uint64(rand.Uint16())
		}).
		Then("the poll opens with the next sequential id and zero tallies", func(t *testing.T) {
			pollID, err := registry.CreatePoll(context.Background(), chainID, parentID)
			assert.NoError(t, err)
			assert.EqualValues(t, 1, pollID)

			p, err := registry.GetPoll(pollID)
			assert.NoError(t, err)
			assert.Equal(t, poll.Open, p.State())
			assert.Equal(t, chainID, p.ChainID)
			assert.True(t, p.ParentID.Equal(parentID))
			assert.Equal(t, registry.currentHeight, p.StartBlock)
			assert.True(t, p.ForVotes.IsZero())
			assert.True(t, p.AgainstVotes.IsZero())

			count, err := registry.PollCount()
			assert.NoError(t, err)
			assert.EqualValues(t, 1, count)
		}).
		Run(t)

	givenRegistry.
		When("several parent proposals are mirrored", func() {
			parentID = rand.Uint()
			chainID = uint64(rand.Uint16())
		}).
		Then("poll ids are assigned sequentially starting at 1", func(t *testing.T) {
			for i := 1; i <= 5; i++ {
				pollID, err := registry.CreatePoll(context.Background(), chainID, rand.Uint())
				assert.NoError(t, err)
				assert.EqualValues(t, i, pollID)
			}
		}).
		Run(t)

	givenRegistry.
		When("the same parent proposal is mirrored twice", func() {
			parentID = rand.Uint()
		}).
		Then("two distinct polls exist", func(t *testing.T) {
			first, err := registry.CreatePoll(context.Background(), chainID, parentID)
			assert.NoError(t, err)
			second, err := registry.CreatePoll(context.Background(), chainID, parentID)
			assert.NoError(t, err)

			assert.NotEqual(t, first, second)

			p1, err := registry.GetPoll(first)
			assert.NoError(t, err)
			p2, err := registry.GetPoll(second)
			assert.NoError(t, err)
			assert.True(t, p1.ParentID.Equal(p2.ParentID))
		}).
		Run(t)

	givenRegistry.
		When("the height source fails", func() {
			registry.height.LatestHeightFunc = func(context.Context) (uint64, error) {
				return 0, fmt.Errorf("rpc unavailable")
			}
		}).
		Then("no poll is created", func(t *testing.T) {
			_, err := registry.CreatePoll(context.Background(), chainID, rand.Uint())
			assert.Error(t, err)

			count, err := registry.PollCount()
			assert.NoError(t, err)
			assert.Zero(t, count)
		}).
		Run(t)
}

func TestRegistryCastVote(t *testing.T) {
	var (
		registry *mockedRegistry
		pollID   uint64
		voter    common.Address
		weight   sdkmath.Uint
	)

	givenOpenPoll := Given("a registry with an open poll", func() {
		registry = newMockedRegistry(t)
		pollID = registry.mustCreatePoll(t)
		voter = rand.EVMAddr()
		weight = rand.Uint()
		registry.setVotingPower(voter, weight)
	})

	givenOpenPoll.
		When("a voter supports the proposal", func() {}).
		Then("the for tally grows by the voter's weight and a receipt is frozen", func(t *testing.T) {
			assert.NoError(t, registry.CastVote(context.Background(), pollID, voter, true))

			p, err := registry.GetPoll(pollID)
			assert.NoError(t, err)
			assert.True(t, p.ForVotes.Equal(weight))
			assert.True(t, p.AgainstVotes.IsZero())

			receipt, err := registry.GetReceipt(pollID, voter)
			assert.NoError(t, err)
			assert.True(t, receipt.HasVoted)
			assert.True(t, receipt.Support)
			assert.True(t, receipt.Votes.Equal(weight))
		}).
		Run(t, 5)

	givenOpenPoll.
		When("a voter opposes the proposal", func() {}).
		Then("the against tally grows by the voter's weight", func(t *testing.T) {
			assert.NoError(t, registry.CastVote(context.Background(), pollID, voter, false))

			p, err := registry.GetPoll(pollID)
			assert.NoError(t, err)
			assert.True(t, p.ForVotes.IsZero())
			assert.True(t, p.AgainstVotes.Equal(weight))
		}).
		Run(t, 5)

	givenOpenPoll.
		When("the voter has voted already", func() {
			assert.NoError(t, registry.CastVote(context.Background(), pollID, voter, true))
		}).
		Then("a second ballot is rejected and the tally is unchanged", func(t *testing.T) {
			err := registry.CastVote(context.Background(), pollID, voter, false)
			assert.ErrorIs(t, err, poll.ErrAlreadyVoted)

			p, err := registry.GetPoll(pollID)
			assert.NoError(t, err)
			assert.True(t, p.ForVotes.Equal(weight))
			assert.True(t, p.AgainstVotes.IsZero())
		}).
		Run(t)

	givenOpenPoll.
		When("the voter's balance changes after the snapshot block", func() {
			snapshot := registry.currentHeight
			registry.oracle.GetPriorVotesFunc = func(_ context.Context, _ common.Address, _ common.Address, height uint64) (sdkmath.Uint, error) {
				if height == snapshot {
					return weight, nil
				}
				return sdkmath.ZeroUint(), nil
			}
			registry.currentHeightAdvance(100)
		}).
		Then("the ballot still counts the weight at the poll's start block", func(t *testing.T) {
			assert.NoError(t, registry.CastVote(context.Background(), pollID, voter, true))

			p, err := registry.GetPoll(pollID)
			assert.NoError(t, err)
			assert.True(t, p.ForVotes.Equal(weight))
		}).
		Run(t)

	givenOpenPoll.
		When("multiple voters with different weights vote", func() {}).
		Then("the tallies are the sums of the respective weights", func(t *testing.T) {
			expectedFor := sdkmath.ZeroUint()
			expectedAgainst := sdkmath.ZeroUint()

			for i := 0; i < 10; i++ {
				v := rand.EVMAddr()
				w := rand.Uint()
				registry.setVotingPower(v, w)

				support := i%2 == 0
				assert.NoError(t, registry.CastVote(context.Background(), pollID, v, support))

				if support {
					expectedFor = expectedFor.Add(w)
				} else {
					expectedAgainst = expectedAgainst.Add(w)
				}
			}

			p, err := registry.GetPoll(pollID)
			assert.NoError(t, err)
			assert.True(t, p.ForVotes.Equal(expectedFor))
			assert.True(t, p.AgainstVotes.Equal(expectedAgainst))
		}).
		Run(t)

	givenOpenPoll.
		When("the poll is closed", func() {
			assert.NoError(t, registry.ClosePoll(context.Background(), pollID, registry.settler))
		}).
		Then("ballots are rejected", func(t *testing.T) {
			err := registry.CastVote(context.Background(), pollID, voter, true)
			assert.ErrorIs(t, err, poll.ErrPollNotOpen)
		}).
		Run(t)

	givenOpenPoll.
		When("the poll id is unknown", func() {}).
		Then("the ballot is rejected", func(t *testing.T) {
			err := registry.CastVote(context.Background(), pollID+rand.PosUint64(), voter, true)
			assert.ErrorIs(t, err, poll.ErrInvalidPollID)

			err = registry.CastVote(context.Background(), 0, voter, true)
			assert.ErrorIs(t, err, poll.ErrInvalidPollID)
		}).
		Run(t)

	givenOpenPoll.
		When("the voting power lookup fails", func() {
			registry.oracle.GetPriorVotesFunc = func(context.Context, common.Address, common.Address, uint64) (sdkmath.Uint, error) {
				return sdkmath.Uint{}, fmt.Errorf("token contract reverted")
			}
		}).
		Then("no receipt is recorded", func(t *testing.T) {
			assert.Error(t, registry.CastVote(context.Background(), pollID, voter, true))

			receipt, err := registry.GetReceipt(pollID, voter)
			assert.NoError(t, err)
			assert.False(t, receipt.HasVoted)
		}).
		Run(t)
}

func TestRegistryConcurrentVoters(t *testing.T) {
	registry := newMockedRegistry(t)
	pollID := registry.mustCreatePoll(t)

	weight := rand.Uint()
	registry.oracle.GetPriorVotesFunc = func(context.Context, common.Address, common.Address, uint64) (sdkmath.Uint, error) {
		return weight, nil
	}

	voterCount := 50
	var wg sync.WaitGroup
	for i := 0; i < voterCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, registry.CastVote(context.Background(), pollID, rand.EVMAddr(), true))
		}()
	}
	wg.Wait()

	p, err := registry.GetPoll(pollID)
	assert.NoError(t, err)
	assert.True(t, p.ForVotes.Equal(weight.MulUint64(uint64(voterCount))))
}

func TestRegistryClosePoll(t *testing.T) {
	var (
		registry *mockedRegistry
		pollID   uint64
	)

	givenVotedPoll := Given("a registry with an open poll carrying votes", func() {
		registry = newMockedRegistry(t)
		pollID = registry.mustCreatePoll(t)

		for i := 0; i < 3; i++ {
			v := rand.EVMAddr()
			registry.setVotingPower(v, rand.Uint())
			assert.NoError(t, registry.CastVote(context.Background(), pollID, v, i%2 == 0))
		}
	})

	givenVotedPoll.
		When("the poll is closed", func() {}).
		Then("the settler receives the aggregated tally and the poll is closed", func(t *testing.T) {
			p, err := registry.GetPoll(pollID)
			assert.NoError(t, err)

			assert.NoError(t, registry.ClosePoll(context.Background(), pollID, registry.settler))

			calls := registry.settler.SendClosureCalls()
			assert.Len(t, calls, 1)
			assert.True(t, calls[0].ParentID.Equal(p.ParentID))
			assert.True(t, calls[0].ForVotes.Equal(p.ForVotes))
			assert.True(t, calls[0].AgainstVotes.Equal(p.AgainstVotes))

			state, err := registry.State(pollID)
			assert.NoError(t, err)
			assert.Equal(t, poll.Closed, state)
		}).
		Run(t)

	givenVotedPoll.
		When("the poll is closed already", func() {
			assert.NoError(t, registry.ClosePoll(context.Background(), pollID, registry.settler))
		}).
		Then("a second closure is rejected and nothing is resent", func(t *testing.T) {
			err := registry.ClosePoll(context.Background(), pollID, registry.settler)
			assert.ErrorIs(t, err, poll.ErrPollNotOpen)
			assert.Len(t, registry.settler.SendClosureCalls(), 1)
		}).
		Run(t)

	givenVotedPoll.
		When("the settlement send fails", func() {
			registry.settler.SendClosureFunc = func(context.Context, sdkmath.Uint, sdkmath.Uint, sdkmath.Uint) error {
				return fmt.Errorf("transport rejected the payload")
			}
		}).
		Then("the poll stays open and can be closed again", func(t *testing.T) {
			assert.Error(t, registry.ClosePoll(context.Background(), pollID, registry.settler))

			state, err := registry.State(pollID)
			assert.NoError(t, err)
			assert.Equal(t, poll.Open, state)

			registry.settler.SendClosureFunc = func(context.Context, sdkmath.Uint, sdkmath.Uint, sdkmath.Uint) error { return nil }
			assert.NoError(t, registry.ClosePoll(context.Background(), pollID, registry.settler))

			state, err = registry.State(pollID)
			assert.NoError(t, err)
			assert.Equal(t, poll.Closed, state)
		}).
		Run(t)

	givenVotedPoll.
		When("the poll id is unknown", func() {}).
		Then("the closure is rejected", func(t *testing.T) {
			err := registry.ClosePoll(context.Background(), pollID+rand.PosUint64(), registry.settler)
			assert.ErrorIs(t, err, poll.ErrInvalidPollID)
		}).
		Run(t)
}

func TestRegistryFindOpenPollByParent(t *testing.T) {
	var (
		registry *mockedRegistry
		parentID sdkmath.Uint
	)

	Given("a registry mirroring the same parent proposal twice", func() {
		registry = newMockedRegistry(t)
		parentID = rand.Uint()
	}).
		When("both mirrors are open", func() {
			_, err := registry.CreatePoll(context.Background(), 1, parentID)
			assert.NoError(t, err)
			_, err = registry.CreatePoll(context.Background(), 1, parentID)
			assert.NoError(t, err)
		}).
		Then("the most recent open mirror is found", func(t *testing.T) {
			pollID, ok, err := registry.FindOpenPollByParent(parentID)
			assert.NoError(t, err)
			assert.True(t, ok)
			assert.EqualValues(t, 2, pollID)

			assert.NoError(t, registry.ClosePoll(context.Background(), pollID, registry.settler))

			pollID, ok, err = registry.FindOpenPollByParent(parentID)
			assert.NoError(t, err)
			assert.True(t, ok)
			assert.EqualValues(t, 1, pollID)

			assert.NoError(t, registry.ClosePoll(context.Background(), pollID, registry.settler))

			_, ok, err = registry.FindOpenPollByParent(parentID)
			assert.NoError(t, err)
			assert.False(t, ok)
		}).
		Run(t)
}

func TestRegistryReceipts(t *testing.T) {
	registry := newMockedRegistry(t)
	pollID := registry.mustCreatePoll(t)

	t.Run("zero receipt for a voter that never voted", func(t *testing.T) {
		receipt, err := registry.GetReceipt(pollID, rand.EVMAddr())
		assert.NoError(t, err)
		assert.Equal(t, poll.ZeroReceipt(), receipt)
	})

	t.Run("zero receipt for an unknown poll", func(t *testing.T) {
		receipt, err := registry.GetReceipt(pollID+rand.PosUint64(), rand.EVMAddr())
		assert.NoError(t, err)
		assert.Equal(t, poll.ZeroReceipt(), receipt)
	})
}

func TestRegistryAdmin(t *testing.T) {
	var (
		registry *mockedRegistry
		owner    common.Address
		stranger common.Address
	)

	givenRegistry := Given("a registry with a configured owner", func() {
		registry = newMockedRegistry(t)
		owner = registry.owner
		stranger = rand.EVMAddr()
	})

	givenRegistry.
		When("a stranger calls the admin surface", func() {}).
		Then("the calls are rejected", func(t *testing.T) {
			assert.ErrorIs(t, registry.SetOwner(stranger, rand.EVMAddr()), poll.ErrUnauthorized)
			assert.ErrorIs(t, registry.SetGovToken(stranger, rand.EVMAddr()), poll.ErrUnauthorized)
		}).
		Run(t)

	givenRegistry.
		When("the owner hands over control", func() {
			assert.NoError(t, registry.SetOwner(owner, stranger))
		}).
		Then("only the new owner can administrate", func(t *testing.T) {
			assert.ErrorIs(t, registry.SetGovToken(owner, rand.EVMAddr()), poll.ErrUnauthorized)
			assert.NoError(t, registry.SetGovToken(stranger, rand.EVMAddr()))
		}).
		Run(t)

	givenRegistry.
		When("the registry is restarted", func() {
			assert.NoError(t, registry.SetOwner(owner, stranger))
		}).
		Then("the persisted owner takes precedence over the configured one", func(t *testing.T) {
			reopened, err := poll.NewRegistry(registry.store, registry.oracle, registry.height, registry.notifier, log.NewTestLogger(t), owner, rand.EVMAddr())
			assert.NoError(t, err)

			assert.ErrorIs(t, reopened.SetOwner(owner, rand.EVMAddr()), poll.ErrUnauthorized)
			assert.NoError(t, reopened.SetOwner(stranger, owner))
		}).
		Run(t)
}

// mockedRegistry bundles a registry over an in-memory store with its mocked
// collaborators so tests can tweak them independently
type mockedRegistry struct {
	*poll.Registry

	store         poll.Store
	oracle        *mock.VotingPowerOracleMock
	height        *mock.HeightSourceMock
	notifier      *mock.NotifierMock
	settler       *mock.SettlerMock
	owner         common.Address
	govToken      common.Address
	currentHeight uint64
}

func newMockedRegistry(t *testing.T) *mockedRegistry {
	m := &mockedRegistry{
		store:         store.NewStore(dbm.NewMemDB()),
		owner:         rand.EVMAddr(),
		govToken:      rand.EVMAddr(),
		currentHeight: rand.PosUint64(),
	}

	m.oracle = &mock.VotingPowerOracleMock{
		GetPriorVotesFunc: func(context.Context, common.Address, common.Address, uint64) (sdkmath.Uint, error) {
			return sdkmath.ZeroUint(), nil
		},
	}
	m.height = &mock.HeightSourceMock{
		LatestHeightFunc: func(context.Context) (uint64, error) { return m.currentHeight, nil },
	}
	m.notifier = &mock.NotifierMock{PublishFunc: func(poll.Event) {}}
	m.settler = &mock.SettlerMock{
		SendClosureFunc: func(context.Context, sdkmath.Uint, sdkmath.Uint, sdkmath.Uint) error { return nil },
	}

	registry, err := poll.NewRegistry(m.store, m.oracle, m.height, m.notifier, log.NewTestLogger(t), m.owner, m.govToken)
	if err != nil {
		t.Fatalf("failed to set up the registry: %v", err)
	}
	m.Registry = registry

	return m
}

func (m *mockedRegistry) mustCreatePoll(t *testing.T) uint64 {
	pollID, err := m.CreatePoll(context.Background(), uint64(rand.Uint16()), rand.Uint())
	if err != nil {
		t.Fatalf("failed to create a poll: %v", err)
	}

	return pollID
}

// setVotingPower registers the voter's weight with the oracle mock, preserving
// weights of previously registered voters
func (m *mockedRegistry) setVotingPower(voter common.Address, weight sdkmath.Uint) {
	previous := m.oracle.GetPriorVotesFunc
	m.oracle.GetPriorVotesFunc = func(ctx context.Context, token common.Address, v common.Address, height uint64) (sdkmath.Uint, error) {
		if v == voter {
			return weight, nil
		}

		return previous(ctx, token, v, height)
	}
}

func (m *mockedRegistry) currentHeightAdvance(delta uint64) {
	m.currentHeight += delta
}
