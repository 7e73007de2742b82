package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"cosmossdk.io/log"
	dbm "github.com/cometbft/cometbft-db"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/crossgov/crossgov-core/api"
	"github.com/crossgov/crossgov-core/config"
	"github.com/crossgov/crossgov-core/coordinator"
	"github.com/crossgov/crossgov-core/evmrpc"
	"github.com/crossgov/crossgov-core/oracle"
	"github.com/crossgov/crossgov-core/poll"
	"github.com/crossgov/crossgov-core/relay"
	"github.com/crossgov/crossgov-core/store"
)

func getStartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the child governance coordinator",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := createLogger(viper.GetString("log-level"))
			if err != nil {
				return err
			}

			home := viper.GetString("home")
			cfg, err := loadConfig(home)
			if err != nil {
				return err
			}

			return run(cmd.Context(), cfg, home, logger)
		},
	}
}

func createLogger(level string) (log.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %s", level)
	}

	return log.NewLogger(os.Stderr, log.LevelOption(lvl)), nil
}

func loadConfig(home string) (config.Config, error) {
	v := viper.New()
	v.AddConfigPath(home)
	v.SetConfigName("config")
	v.SetEnvPrefix("CROSSGOV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return config.Config{}, err
		}
	}

	cfg := config.DefaultConfig()
	if err := v.Unmarshal(&cfg, config.AddDecodeHooks); err != nil {
		return config.Config{}, errors.Wrap(err, "failed to decode the configuration")
	}

	return cfg, nil
}

func run(ctx context.Context, cfg config.Config, home string, logger log.Logger) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	dialCtx, dialCancel := context.WithTimeout(ctx, cfg.Oracle.DialTimeout)
	defer dialCancel()

	client, err := evmrpc.NewClient(dialCtx, cfg.Oracle.RPCURL)
	if err != nil {
		return errors.Wrapf(err, "failed to connect to %s", cfg.Oracle.RPCURL)
	}
	defer client.Close()

	var db dbm.DB
	if cfg.Store.InMemory {
		db = dbm.NewMemDB()
	} else {
		db, err = dbm.NewGoLevelDB("crossgov", filepath.Join(home, cfg.Store.Dir))
		if err != nil {
			return errors.Wrap(err, "failed to open the poll store")
		}
	}

	st := store.NewStore(db)
	defer func() { _ = st.Close() }()

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.Relay.SenderKey, "0x"))
	if err != nil {
		return errors.Wrap(err, "invalid relay sender key")
	}

	transport := relay.NewEVMTransport(client, cfg.Relay.EndpointAddr, cfg.Relay.ReceiverAddr, key, cfg.Relay.GasLimit, cfg.Relay.PollInterval, logger)

	bus := coordinator.NewBus(logger)
	registry, err := poll.NewRegistry(st, oracle.NewOracle(client, logger), coordinator.NewHeightSource(client), bus, logger, cfg.Registry.Owner, cfg.Registry.GovToken)
	if err != nil {
		return err
	}

	refund := cfg.Relay.RefundAddr
	if refund == (common.Address{}) {
		refund = transport.Sender()
	}

	parent := relay.ChainAddress{ChainID: cfg.Relay.ParentChainID, Address: cfg.Relay.ParentAddr}
	mgr := relay.NewMgr(registry, transport, transport, cfg.Relay.EndpointAddr, parent, refund, logger)

	return coordinator.New(mgr, transport, bus, api.NewServer(registry, logger), cfg.API.Addr, logger).Run(ctx)
}
