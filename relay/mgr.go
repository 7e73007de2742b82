package relay

import (
	"context"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/crossgov/crossgov-core/poll"
)

var ignoredMessages = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "crossgov",
	Subsystem: "relay",
	Name:      "ignored_messages_total",
	Help:      "Number of authenticated relay messages ignored because their payload carried no recognized command.",
})

// Mgr is the gatekeeper between the relay transport and the poll registry.
// Transport-level trust (who delivered the message) and application-level
// trust (who authored it) are verified by two independent guards; a
// compromised endpoint must not be able to impersonate the parent governor.
type Mgr struct {
	registry  Registry
	transport Transport
	bank      Bank
	endpoint  common.Address
	parent    ChainAddress
	refund    common.Address
	logger    log.Logger
}

var _ poll.Settler = Mgr{}

// NewMgr returns a manager authenticating messages against the given
// endpoint and parent governor
func NewMgr(registry Registry, transport Transport, bank Bank, endpoint common.Address, parent ChainAddress, refund common.Address, logger log.Logger) Mgr {
	return Mgr{
		registry:  registry,
		transport: transport,
		bank:      bank,
		endpoint:  endpoint,
		parent:    parent,
		refund:    refund,
		logger:    logger.With("component", "relay"),
	}
}

// OnMessage authenticates an inbound relay message and dispatches the
// decoded command to the poll registry. Messages failing either origin check
// are rejected without touching state; authenticated payloads that carry no
// recognized command are ignored.
func (m Mgr) OnMessage(ctx context.Context, msg Message) error {
	if msg.Endpoint != m.endpoint {
		return errors.Wrapf(ErrUnauthorizedOrigin, "message delivered by %s instead of the registered endpoint", msg.Endpoint.Hex())
	}

	sender, err := SourceAddress(msg.SourceAddress)
	if err != nil {
		return errors.Wrap(ErrUnauthorizedOrigin, err.Error())
	}

	if sender != m.parent.Address {
		return errors.Wrapf(ErrUnauthorizedOrigin, "message sent by %s instead of the parent governor", sender.Hex())
	}

	cmd, err := DecodeCommand(msg.Payload)
	if err != nil {
		m.logger.Debug("ignoring undecodable payload", "nonce", msg.Nonce, "err", err.Error())
		ignoredMessages.Inc()
		return nil
	}

	switch cmd.Type {
	case CommandCreatePoll:
		pollID, err := m.registry.CreatePoll(ctx, uint64(msg.SourceChainID), cmd.ParentID)
		if err != nil {
			return err
		}

		m.logger.Debug("dispatched poll creation", "poll_id", pollID, "parent_id", cmd.ParentID.String(), "nonce", msg.Nonce)
		return nil

	case CommandClosePoll:
		pollID, ok, err := m.registry.FindOpenPollByParent(cmd.ParentID)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Wrapf(poll.ErrInvalidPollID, "no open poll mirrors parent proposal %s", cmd.ParentID.String())
		}

		return m.registry.ClosePoll(ctx, pollID, m)

	default:
		m.logger.Debug("ignoring unknown command", "tag", cmd.Tag, "nonce", msg.Nonce)
		ignoredMessages.Inc()
		return nil
	}
}

// SendClosure encodes the aggregated tally and submits it to the relay
// transport addressed to the parent governor, paying exactly the estimated
// fee. The configured refund address receives any excess fee.
func (m Mgr) SendClosure(ctx context.Context, parentID sdkmath.Uint, forVotes sdkmath.Uint, againstVotes sdkmath.Uint) error {
	payload, err := EncodeClosure(parentID, forVotes, againstVotes)
	if err != nil {
		return err
	}

	fee, err := m.transport.EstimateFee(ctx, m.parent, payload)
	if err != nil {
		return errors.Wrap(ErrTransportSend, err.Error())
	}

	balance, err := m.bank.Balance(ctx)
	if err != nil {
		return errors.Wrap(ErrTransportSend, err.Error())
	}

	if balance.LT(fee) {
		return errors.Wrapf(ErrInsufficientFunds, "balance %s, estimated fee %s", balance.String(), fee.String())
	}

	if err := m.transport.Send(ctx, m.parent, payload, fee, m.refund); err != nil {
		return errors.Wrap(ErrTransportSend, err.Error())
	}

	m.logger.Info("closure payload submitted",
		"parent_id", parentID.String(),
		"for_votes", forVotes.String(),
		"against_votes", againstVotes.String(),
		"fee", fee.String(),
	)

	return nil
}
