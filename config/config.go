// Package config contains all configuration of the crossgov coordinator.
package config

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Config contains all necessary coordinator configurations
type Config struct {
	Relay    RelayConfig    `mapstructure:"relay"`
	Oracle   OracleConfig   `mapstructure:"oracle"`
	Registry RegistryConfig `mapstructure:"registry"`
	Store    StoreConfig    `mapstructure:"store"`
	API      APIConfig      `mapstructure:"api"`
}

// RelayConfig configures the connection to the relay endpoint contract and
// the registered parent governor
type RelayConfig struct {
	EndpointAddr  common.Address `mapstructure:"endpoint_addr"`  // relay endpoint contract on the child chain
	ReceiverAddr  common.Address `mapstructure:"receiver_addr"`  // this coordinator's address as payload destination
	ParentChainID uint16         `mapstructure:"parent_chain_id"`
	ParentAddr    common.Address `mapstructure:"parent_addr"` // parent governor contract
	RefundAddr    common.Address `mapstructure:"refund_addr"` // receives excess relay fees
	SenderKey     string         `mapstructure:"sender_key"`  // hex key signing endpoint transactions
	GasLimit      uint64         `mapstructure:"gas_limit"`
	PollInterval  time.Duration  `mapstructure:"poll_interval"`
}

// OracleConfig configures the child chain RPC used for voting power lookups
type OracleConfig struct {
	RPCURL      string        `mapstructure:"rpc_url"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}

// RegistryConfig configures the poll registry's admin surface
type RegistryConfig struct {
	Owner    common.Address `mapstructure:"owner"`
	GovToken common.Address `mapstructure:"gov_token"`
}

// StoreConfig configures poll ledger persistence
type StoreConfig struct {
	Dir      string `mapstructure:"dir"`
	InMemory bool   `mapstructure:"in_memory"`
}

// APIConfig configures the HTTP query surface
type APIConfig struct {
	Addr string `mapstructure:"addr"`
}

// DefaultConfig returns a configuration populated with default values
func DefaultConfig() Config {
	return Config{
		Relay: RelayConfig{
			GasLimit:     500_000,
			PollInterval: 5 * time.Second,
		},
		Oracle: OracleConfig{
			DialTimeout: 15 * time.Second,
		},
		Store: StoreConfig{
			Dir: "data",
		},
		API: APIConfig{
			Addr: "127.0.0.1:8099",
		},
	}
}
