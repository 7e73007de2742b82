package relay

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"time"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/axelarnetwork/utils/funcs"

	"github.com/crossgov/crossgov-core/evmrpc"
)

// PayloadDelivered is emitted by the relay endpoint contract when a payload
// addressed to this coordinator has been delivered
var payloadDeliveredSig = crypto.Keccak256Hash([]byte("PayloadDelivered(uint16,bytes,uint64,address,bytes)"))

var (
	uint16Type = funcs.Must(abi.NewType("uint16", "uint16", nil))
	uint64Type = funcs.Must(abi.NewType("uint64", "uint64", nil))
	bytesType  = funcs.Must(abi.NewType("bytes", "bytes", nil))

	// data fields of the delivery event; the destination address is indexed
	payloadDeliveredArguments = abi.Arguments{{Type: uint16Type}, {Type: bytesType}, {Type: uint64Type}, {Type: bytesType}}

	estimateFeeSelector = crypto.Keccak256([]byte("estimateFee(uint16,bytes)"))[:4]
	sendPayloadSelector = crypto.Keccak256([]byte("sendPayload(uint16,bytes,bytes,address)"))[:4]

	estimateFeeArguments = abi.Arguments{{Type: uint16Type}, {Type: bytesType}}
	sendPayloadArguments = abi.Arguments{{Type: uint16Type}, {Type: bytesType}, {Type: bytesType}, {Type: funcs.Must(abi.NewType("address", "address", nil))}}

	uint256ReturnArguments = abi.Arguments{{Type: funcs.Must(abi.NewType("uint256", "uint256", nil))}}
)

// EVMTransport talks to the relay network through its endpoint contract on
// the child chain: inbound payloads are observed as delivery events, fees
// are estimated with a read-only call, and outbound payloads are submitted
// as endpoint transactions carrying the fee as value.
type EVMTransport struct {
	client       evmrpc.Client
	endpoint     common.Address
	receiver     common.Address
	key          *ecdsa.PrivateKey
	sender       common.Address
	gasLimit     uint64
	pollInterval time.Duration
	logger       log.Logger
}

var (
	_ Transport = &EVMTransport{}
	_ Bank      = &EVMTransport{}
)

// NewEVMTransport returns a transport over the given endpoint contract. The
// key signs outbound endpoint transactions; its address is the account
// charged for relay fees.
func NewEVMTransport(client evmrpc.Client, endpoint common.Address, receiver common.Address, key *ecdsa.PrivateKey, gasLimit uint64, pollInterval time.Duration, logger log.Logger) *EVMTransport {
	return &EVMTransport{
		client:       client,
		endpoint:     endpoint,
		receiver:     receiver,
		key:          key,
		sender:       crypto.PubkeyToAddress(key.PublicKey),
		gasLimit:     gasLimit,
		pollInterval: pollInterval,
		logger:       logger.With("component", "evm_transport"),
	}
}

// Sender returns the account paying relay fees
func (t *EVMTransport) Sender() common.Address {
	return t.sender
}

// Subscribe starts watching the endpoint contract for payloads delivered to
// the coordinator. The returned channel is closed when ctx is cancelled.
func (t *EVMTransport) Subscribe(ctx context.Context) (<-chan Message, error) {
	fromBlock, err := t.client.BlockNumber(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query the current block")
	}

	messages := make(chan Message, 1000)
	go func() {
		defer close(messages)

		ticker := time.NewTicker(t.pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fromBlock = t.poll(ctx, fromBlock, messages)
			}
		}
	}()

	return messages, nil
}

func (t *EVMTransport) poll(ctx context.Context, fromBlock uint64, messages chan<- Message) uint64 {
	latest, err := t.client.BlockNumber(ctx)
	if err != nil {
		t.logger.Error("failed to query the current block", "err", err.Error())
		return fromBlock
	}

	if latest < fromBlock {
		return fromBlock
	}

	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(latest),
		Addresses: []common.Address{t.endpoint},
		Topics: [][]common.Hash{
			{payloadDeliveredSig},
			{common.BytesToHash(t.receiver.Bytes())},
		},
	}

	logs, err := t.client.FilterLogs(ctx, query)
	if err != nil {
		t.logger.Error("failed to filter endpoint logs", "err", err.Error())
		return fromBlock
	}

	for _, l := range logs {
		msg, err := decodePayloadDelivered(l)
		if err != nil {
			t.logger.Error("failed to decode delivery event", "tx_id", l.TxHash.Hex(), "err", err.Error())
			continue
		}

		messages <- msg
	}

	return latest + 1
}

// EstimateFee queries the endpoint for the fee to deliver the payload to the
// given destination
func (t *EVMTransport) EstimateFee(ctx context.Context, dest ChainAddress, payload []byte) (sdkmath.Uint, error) {
	args, err := estimateFeeArguments.Pack(dest.ChainID, payload)
	if err != nil {
		return sdkmath.Uint{}, err
	}

	bz, err := t.client.CallContract(ctx, ethereum.CallMsg{To: &t.endpoint, Data: withSelector(estimateFeeSelector, args)}, nil)
	if err != nil {
		return sdkmath.Uint{}, errors.Wrap(err, "fee estimation call failed")
	}

	params, err := uint256ReturnArguments.Unpack(bz)
	if err != nil {
		return sdkmath.Uint{}, errors.Wrap(err, "unexpected fee estimation return data")
	}

	return sdkmath.NewUintFromBigInt(params[0].(*big.Int)), nil
}

// Send submits the payload to the endpoint contract, paying the given fee as
// transaction value
func (t *EVMTransport) Send(ctx context.Context, dest ChainAddress, payload []byte, fee sdkmath.Uint, refund common.Address) error {
	args, err := sendPayloadArguments.Pack(dest.ChainID, dest.Address.Bytes(), payload, refund)
	if err != nil {
		return err
	}

	nonce, err := t.client.PendingNonceAt(ctx, t.sender)
	if err != nil {
		return errors.Wrap(err, "failed to query the account nonce")
	}

	gasPrice, err := t.client.SuggestGasPrice(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to query the gas price")
	}

	chainID, err := t.client.ChainID(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to query the chain id")
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &t.endpoint,
		Value:    fee.BigInt(),
		Gas:      t.gasLimit,
		GasPrice: gasPrice,
		Data:     withSelector(sendPayloadSelector, args),
	})

	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), t.key)
	if err != nil {
		return err
	}

	if err := t.client.SendTransaction(ctx, signedTx); err != nil {
		return errors.Wrap(err, "endpoint transaction rejected")
	}

	t.logger.Info("payload submitted to endpoint", "tx_id", signedTx.Hash().Hex(), "dest_chain", dest.ChainID, "fee", fee.String())

	return nil
}

// Balance returns the fee account's balance
func (t *EVMTransport) Balance(ctx context.Context) (sdkmath.Uint, error) {
	balance, err := t.client.BalanceAt(ctx, t.sender, nil)
	if err != nil {
		return sdkmath.Uint{}, errors.Wrap(err, "failed to query the fee account balance")
	}

	return sdkmath.NewUintFromBigInt(balance), nil
}

func decodePayloadDelivered(l types.Log) (Message, error) {
	if len(l.Topics) != 2 || l.Topics[0] != payloadDeliveredSig {
		return Message{}, errors.New("log is not a payload delivery")
	}

	params, err := StrictDecode(payloadDeliveredArguments, l.Data)
	if err != nil {
		return Message{}, err
	}

	return Message{
		Endpoint:      l.Address,
		SourceChainID: params[0].(uint16),
		SourceAddress: params[1].([]byte),
		Nonce:         params[2].(uint64),
		Payload:       params[3].([]byte),
	}, nil
}

func withSelector(selector []byte, args []byte) []byte {
	data := make([]byte, 0, len(selector)+len(args))

	return append(append(data, selector...), args...)
}
