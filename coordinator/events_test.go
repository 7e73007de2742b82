package coordinator_test

import (
	"testing"

	"cosmossdk.io/log"
	"github.com/stretchr/testify/assert"

	"github.com/crossgov/crossgov-core/coordinator"
	"github.com/crossgov/crossgov-core/poll"
	"github.com/crossgov/crossgov-core/testutils/rand"
)

func TestBus(t *testing.T) {
	t.Run("subscribers only see events matching their filter", func(t *testing.T) {
		bus := coordinator.NewBus(log.NewTestLogger(t))
		defer bus.Close()

		all := bus.Subscribe(func(poll.Event) bool { return true })
		votesOnly := bus.Subscribe(func(e poll.Event) bool {
			_, ok := e.(poll.VoteCast)
			return ok
		})

		created := poll.PollCreated{PollID: rand.PosUint64(), ChainID: uint64(rand.Uint16()), ParentID: rand.Uint()}
		vote := poll.VoteCast{Voter: rand.EVMAddr(), PollID: created.PollID, Support: true, Votes: rand.Uint()}

		bus.Publish(created)
		bus.Publish(vote)

		assert.Equal(t, created, <-all)
		assert.Equal(t, vote, <-all)
		assert.Equal(t, vote, <-votesOnly)
		assert.Len(t, votesOnly, 0)
	})

	t.Run("close closes all subscriber channels", func(t *testing.T) {
		bus := coordinator.NewBus(log.NewTestLogger(t))
		events := bus.Subscribe(func(poll.Event) bool { return true })

		bus.Close()

		_, ok := <-events
		assert.False(t, ok)
	})

	t.Run("publish after close is a no-op", func(t *testing.T) {
		bus := coordinator.NewBus(log.NewTestLogger(t))
		bus.Close()

		assert.NotPanics(t, func() {
			bus.Publish(poll.PollClosed{PollID: rand.PosUint64()})
		})
	})

	t.Run("a full subscriber drops events instead of blocking", func(t *testing.T) {
		bus := coordinator.NewBus(log.NewTestLogger(t))
		defer bus.Close()

		bus.Subscribe(func(poll.Event) bool { return true })

		assert.NotPanics(t, func() {
			for i := 0; i < 2000; i++ {
				bus.Publish(poll.PollClosed{PollID: uint64(i + 1)})
			}
		})
	})
}
