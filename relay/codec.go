package relay

import (
	"bytes"
	"fmt"
	"math/big"

	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/axelarnetwork/utils/funcs"
)

var (
	uint256Type = funcs.Must(abi.NewType("uint256", "uint256", nil))
	stringType  = funcs.Must(abi.NewType("string", "string", nil))

	// payload of a parent command: (parentId, commandTag)
	commandArguments = abi.Arguments{{Type: uint256Type}, {Type: stringType}}
	// payload of an outbound closure: (parentId, forVotes, againstVotes)
	closureArguments = abi.Arguments{{Type: uint256Type}, {Type: uint256Type}, {Type: uint256Type}}
)

// Command tags recognized on the inbound path
const (
	createPollTag = "_createPoll"
	closePollTag  = "_closePoll"
)

// CommandType discriminates decoded parent commands
type CommandType int

// Command types
const (
	CommandUnknown CommandType = iota
	CommandCreatePoll
	CommandClosePoll
)

// Command is a decoded parent command. Tag retains the raw command tag for
// diagnostics on unknown commands.
type Command struct {
	Type     CommandType
	ParentID sdkmath.Uint
	Tag      string
}

// DecodeCommand decodes an inbound command payload. Unrecognized tags decode
// without error into a CommandUnknown command.
func DecodeCommand(payload []byte) (Command, error) {
	params, err := StrictDecode(commandArguments, payload)
	if err != nil {
		return Command{}, err
	}

	cmd := Command{
		ParentID: sdkmath.NewUintFromBigInt(params[0].(*big.Int)),
		Tag:      params[1].(string),
	}

	switch cmd.Tag {
	case createPollTag:
		cmd.Type = CommandCreatePoll
	case closePollTag:
		cmd.Type = CommandClosePoll
	default:
		cmd.Type = CommandUnknown
	}

	return cmd, nil
}

// EncodeCommand encodes a parent command in the canonical wire format
func EncodeCommand(cmd Command) ([]byte, error) {
	var tag string
	switch cmd.Type {
	case CommandCreatePoll:
		tag = createPollTag
	case CommandClosePoll:
		tag = closePollTag
	default:
		tag = cmd.Tag
	}

	return commandArguments.Pack(cmd.ParentID.BigInt(), tag)
}

// EncodeClosure encodes the aggregated tally of a closed poll in the
// canonical wire format shared with the parent's decoder
func EncodeClosure(parentID sdkmath.Uint, forVotes sdkmath.Uint, againstVotes sdkmath.Uint) ([]byte, error) {
	return closureArguments.Pack(parentID.BigInt(), forVotes.BigInt(), againstVotes.BigInt())
}

// DecodeClosure decodes a closure payload
func DecodeClosure(payload []byte) (parentID sdkmath.Uint, forVotes sdkmath.Uint, againstVotes sdkmath.Uint, err error) {
	params, err := StrictDecode(closureArguments, payload)
	if err != nil {
		return sdkmath.Uint{}, sdkmath.Uint{}, sdkmath.Uint{}, err
	}

	return sdkmath.NewUintFromBigInt(params[0].(*big.Int)),
		sdkmath.NewUintFromBigInt(params[1].(*big.Int)),
		sdkmath.NewUintFromBigInt(params[2].(*big.Int)),
		nil
}

// SourceAddress extracts the sender's on-chain address from the raw source
// address buffer of a relay message
func SourceAddress(bz []byte) (common.Address, error) {
	if len(bz) < common.AddressLength {
		return common.Address{}, fmt.Errorf("source address buffer is too short (%d bytes)", len(bz))
	}

	return common.BytesToAddress(bz[:common.AddressLength]), nil
}

// StrictDecode performs strict decode on abi encoded data, i.e. no byte can be left after the decoding
func StrictDecode(arguments abi.Arguments, bz []byte) ([]interface{}, error) {
	params, err := arguments.Unpack(bz)
	if err != nil {
		return nil, err
	}

	if actual, err := arguments.Pack(params...); err != nil || !bytes.Equal(actual, bz) {
		return nil, fmt.Errorf("wrong data")
	}

	return params, nil
}
