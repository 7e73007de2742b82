package config

import (
	"fmt"
	"reflect"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"
)

func stringToAddress(
	f reflect.Type,
	t reflect.Type,
	data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String {
		return data, nil
	}

	if t != reflect.TypeOf(common.Address{}) {
		return data, nil
	}

	str := data.(string)
	if str == "" {
		return common.Address{}, nil
	}

	if !common.IsHexAddress(str) {
		return nil, fmt.Errorf("'%s' is not a hex address", str)
	}

	return common.HexToAddress(str), nil
}

// AddDecodeHooks adds decode hooks to the given config to correctly translate strings into addresses
func AddDecodeHooks(cfg *mapstructure.DecoderConfig) {
	hooks := []mapstructure.DecodeHookFunc{
		stringToAddress,
	}
	if cfg.DecodeHook != nil {
		hooks = append(hooks, cfg.DecodeHook)
	}

	cfg.DecodeHook = mapstructure.ComposeDecodeHookFunc(hooks...)
}
