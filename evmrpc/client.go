// Package evmrpc provides the JSON-RPC client surface the coordinator needs
// from the child chain's EVM endpoint.
package evmrpc

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

//go:generate moq -out ./mock/client.go -pkg mock . Client

// Client provides calls to EVM JSON-RPC endpoints
type Client interface {
	// BlockNumber returns the most recent block number
	BlockNumber(ctx context.Context) (uint64, error)
	// CallContract executes a read-only contract call
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	// FilterLogs returns the logs that satisfy the given filter query
	FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error)
	// BalanceAt returns the wei balance of the given account
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	// PendingNonceAt returns the account nonce of the given account in the pending state
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	// SuggestGasPrice retrieves the currently suggested gas price
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	// ChainID returns the chain id of the connected chain
	ChainID(ctx context.Context) (*big.Int, error)
	// SendTransaction submits a signed transaction
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	// Close closes the client connection
	Close()
}

// NewClient returns an EVM JSON-RPC client for the given url
func NewClient(ctx context.Context, url string) (Client, error) {
	conn, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, err
	}

	return ethclient.NewClient(conn), nil
}
