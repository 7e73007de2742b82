package oracle_test

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/utils/funcs"

	"github.com/crossgov/crossgov-core/evmrpc/mock"
	"github.com/crossgov/crossgov-core/oracle"
	"github.com/crossgov/crossgov-core/testutils/rand"
)

func TestGetPriorVotes(t *testing.T) {
	var (
		addressType = funcs.Must(abi.NewType("address", "address", nil))
		uint256Type = funcs.Must(abi.NewType("uint256", "uint256", nil))
	)

	token := rand.EVMAddr()
	voter := rand.EVMAddr()
	height := rand.PosUint64()
	weight := rand.Uint()

	t.Run("queries the token at the requested height", func(t *testing.T) {
		client := &mock.ClientMock{
			CallContractFunc: func(_ context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
				assert.Equal(t, token, *call.To)
				assert.Nil(t, blockNumber)
				assert.Equal(t, crypto.Keccak256([]byte("getPriorVotes(address,uint256)"))[:4], call.Data[:4])

				params, err := abi.Arguments{{Type: addressType}, {Type: uint256Type}}.Unpack(call.Data[4:])
				assert.NoError(t, err)
				assert.Equal(t, voter, params[0].(common.Address))
				assert.Equal(t, height, params[1].(*big.Int).Uint64())

				return abi.Arguments{{Type: uint256Type}}.Pack(weight.BigInt())
			},
		}

		actual, err := oracle.NewOracle(client, log.NewTestLogger(t)).GetPriorVotes(context.Background(), token, voter, height)
		assert.NoError(t, err)
		assert.True(t, actual.Equal(weight))
	})

	t.Run("propagates call failures", func(t *testing.T) {
		client := &mock.ClientMock{
			CallContractFunc: func(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error) {
				return nil, fmt.Errorf("execution reverted")
			},
		}

		_, err := oracle.NewOracle(client, log.NewTestLogger(t)).GetPriorVotes(context.Background(), token, voter, height)
		assert.Error(t, err)
	})

	t.Run("should fail on malformed return data", func(t *testing.T) {
		client := &mock.ClientMock{
			CallContractFunc: func(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error) {
				return rand.Bytes(7), nil
			},
		}

		_, err := oracle.NewOracle(client, log.NewTestLogger(t)).GetPriorVotes(context.Background(), token, voter, height)
		assert.Error(t, err)
	})
}
