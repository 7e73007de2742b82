// Package oracle queries a voter's historical voting power from the
// governance token contract on the child chain.
package oracle

import (
	"context"
	"math/big"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/axelarnetwork/utils/funcs"

	"github.com/crossgov/crossgov-core/evmrpc"
	"github.com/crossgov/crossgov-core/poll"
)

var (
	getPriorVotesSelector = crypto.Keccak256([]byte("getPriorVotes(address,uint256)"))[:4]

	addressType = funcs.Must(abi.NewType("address", "address", nil))
	uint256Type = funcs.Must(abi.NewType("uint256", "uint256", nil))

	getPriorVotesArguments = abi.Arguments{{Type: addressType}, {Type: uint256Type}}
	votesReturnArguments   = abi.Arguments{{Type: uint256Type}}
)

// Oracle reads historical voting power through the chain's JSON-RPC endpoint
type Oracle struct {
	client evmrpc.Client
	logger log.Logger
}

var _ poll.VotingPowerOracle = Oracle{}

// NewOracle returns a voting power oracle over the given client
func NewOracle(client evmrpc.Client, logger log.Logger) Oracle {
	return Oracle{client: client, logger: logger.With("component", "oracle")}
}

// GetPriorVotes returns the given voter's eligible weight in the governance
// token at the given block height
func (o Oracle) GetPriorVotes(ctx context.Context, token common.Address, voter common.Address, height uint64) (sdkmath.Uint, error) {
	args, err := getPriorVotesArguments.Pack(voter, new(big.Int).SetUint64(height))
	if err != nil {
		return sdkmath.Uint{}, err
	}

	data := make([]byte, 0, len(getPriorVotesSelector)+len(args))
	data = append(append(data, getPriorVotesSelector...), args...)

	bz, err := o.client.CallContract(ctx, ethereum.CallMsg{To: &token, Data: data}, nil)
	if err != nil {
		return sdkmath.Uint{}, errors.Wrapf(err, "getPriorVotes call on token %s failed", token.Hex())
	}

	params, err := votesReturnArguments.Unpack(bz)
	if err != nil {
		return sdkmath.Uint{}, errors.Wrap(err, "unexpected getPriorVotes return data")
	}

	return sdkmath.NewUintFromBigInt(params[0].(*big.Int)), nil
}
