package relay_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/crossgov/crossgov-core/relay"
	"github.com/crossgov/crossgov-core/testutils"
	"github.com/crossgov/crossgov-core/testutils/rand"
)

func TestDecodeCommand(t *testing.T) {
	t.Run("round trip for a poll creation command", testutils.Func(func(t *testing.T) {
		cmd := relay.Command{Type: relay.CommandCreatePoll, ParentID: rand.Uint()}

		payload, err := relay.EncodeCommand(cmd)
		assert.NoError(t, err)

		decoded, err := relay.DecodeCommand(payload)
		assert.NoError(t, err)
		assert.Equal(t, relay.CommandCreatePoll, decoded.Type)
		assert.True(t, decoded.ParentID.Equal(cmd.ParentID))
	}).Repeat(20))

	t.Run("round trip for a poll closure command", testutils.Func(func(t *testing.T) {
		cmd := relay.Command{Type: relay.CommandClosePoll, ParentID: rand.Uint()}

		payload, err := relay.EncodeCommand(cmd)
		assert.NoError(t, err)

		decoded, err := relay.DecodeCommand(payload)
		assert.NoError(t, err)
		assert.Equal(t, relay.CommandClosePoll, decoded.Type)
		assert.True(t, decoded.ParentID.Equal(cmd.ParentID))
	}).Repeat(20))

	t.Run("unrecognized tags decode into an unknown command", testutils.Func(func(t *testing.T) {
		payload, err := relay.EncodeCommand(relay.Command{Type: relay.CommandUnknown, ParentID: rand.Uint(), Tag: "_deletePoll"})
		assert.NoError(t, err)

		decoded, err := relay.DecodeCommand(payload)
		assert.NoError(t, err)
		assert.Equal(t, relay.CommandUnknown, decoded.Type)
		assert.Equal(t, "_deletePoll", decoded.Tag)
	}).Repeat(20))

	t.Run("should fail on garbage", testutils.Func(func(t *testing.T) {
		_, err := relay.DecodeCommand(rand.Bytes(int(rand.I64Between(0, 100))))
		assert.Error(t, err)
	}).Repeat(20))

	t.Run("should fail on trailing bytes", func(t *testing.T) {
		payload, err := relay.EncodeCommand(relay.Command{Type: relay.CommandCreatePoll, ParentID: rand.Uint()})
		assert.NoError(t, err)

		_, err = relay.DecodeCommand(append(payload, 0x00))
		assert.Error(t, err)
	})
}

func TestDecodeClosure(t *testing.T) {
	t.Run("round trip", testutils.Func(func(t *testing.T) {
		parentID, forVotes, againstVotes := rand.Uint(), rand.Uint(), rand.Uint()

		payload, err := relay.EncodeClosure(parentID, forVotes, againstVotes)
		assert.NoError(t, err)

		// three static uint256 words
		assert.Len(t, payload, 96)

		p, f, a, err := relay.DecodeClosure(payload)
		assert.NoError(t, err)
		assert.True(t, p.Equal(parentID))
		assert.True(t, f.Equal(forVotes))
		assert.True(t, a.Equal(againstVotes))
	}).Repeat(20))

	t.Run("zero tallies survive the round trip", func(t *testing.T) {
		payload, err := relay.EncodeClosure(rand.Uint(), sdkmath.ZeroUint(), sdkmath.ZeroUint())
		assert.NoError(t, err)

		_, f, a, err := relay.DecodeClosure(payload)
		assert.NoError(t, err)
		assert.True(t, f.IsZero())
		assert.True(t, a.IsZero())
	})

	t.Run("should fail on a command payload", func(t *testing.T) {
		payload, err := relay.EncodeCommand(relay.Command{Type: relay.CommandCreatePoll, ParentID: rand.Uint()})
		assert.NoError(t, err)

		_, _, _, err = relay.DecodeClosure(payload)
		assert.Error(t, err)
	})
}

func TestSourceAddress(t *testing.T) {
	t.Run("extracts the address from the first 20 bytes", testutils.Func(func(t *testing.T) {
		addr := rand.EVMAddr()
		buffer := append(addr.Bytes(), rand.Bytes(int(rand.I64Between(0, 50)))...)

		actual, err := relay.SourceAddress(buffer)
		assert.NoError(t, err)
		assert.Equal(t, addr, actual)
	}).Repeat(20))

	t.Run("should fail on a short buffer", testutils.Func(func(t *testing.T) {
		_, err := relay.SourceAddress(rand.Bytes(int(rand.I64Between(0, common.AddressLength))))
		assert.Error(t, err)
	}).Repeat(20))
}
