// Package coordinator wires the child governance coordinator daemon
// together: it pumps authenticated relay messages into the poll registry,
// observes registry events, and serves the query API.
package coordinator

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	"golang.org/x/sync/errgroup"

	"github.com/axelarnetwork/utils/jobs"

	"github.com/crossgov/crossgov-core/api"
	"github.com/crossgov/crossgov-core/poll"
	"github.com/crossgov/crossgov-core/relay"
)

// Coordinator runs the daemon's long-lived jobs until its context is
// cancelled
type Coordinator struct {
	mgr       relay.Mgr
	transport relay.Transport
	bus       *Bus
	api       *api.Server
	apiAddr   string
	logger    log.Logger
}

// New returns a coordinator over the given components
func New(mgr relay.Mgr, transport relay.Transport, bus *Bus, apiServer *api.Server, apiAddr string, logger log.Logger) *Coordinator {
	return &Coordinator{
		mgr:       mgr,
		transport: transport,
		bus:       bus,
		api:       apiServer,
		apiAddr:   apiAddr,
		logger:    logger.With("component", "coordinator"),
	}
}

// Run starts the message pump, the event observers and the API server, and
// blocks until the context is cancelled or a component fails to start
func (c *Coordinator) Run(ctx context.Context) error {
	inbound, err := c.transport.Subscribe(ctx)
	if err != nil {
		return err
	}
	defer c.bus.Close()

	events := c.bus.Subscribe(func(poll.Event) bool { return true })

	c.logger.Info("start listening to relay messages")

	jobMgr := jobs.NewMgr(ctx)
	jobMgr.AddJobs(
		c.processInbound(inbound),
		c.observeEvents(events),
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error { return c.api.ListenAndServe(groupCtx, c.apiAddr) })
	group.Go(func() error {
		<-jobMgr.Done()
		return nil
	})

	err = group.Wait()
	c.logger.Info("shutting down")

	return err
}

// processInbound feeds delivered relay messages through the authenticator.
// Message-level failures (unauthorized origin, invalid commands) are
// terminal for that message only.
func (c *Coordinator) processInbound(inbound <-chan relay.Message) jobs.Job {
	return func(ctx context.Context) error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case msg, ok := <-inbound:
				if !ok {
					return nil
				}

				if err := c.mgr.OnMessage(ctx, msg); err != nil {
					c.logger.Error("failed to process relay message", "nonce", msg.Nonce, "err", err.Error())
				}
			}
		}
	}
}

func (c *Coordinator) observeEvents(events <-chan poll.Event) jobs.Job {
	return func(ctx context.Context) error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case event, ok := <-events:
				if !ok {
					return nil
				}

				recordMetrics(event)
				c.logger.Debug(fmt.Sprintf("observed event %T", event))
			}
		}
	}
}
