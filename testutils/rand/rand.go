// Package rand provides random test data generators.
package rand

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand"

	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
)

// Bytes returns a random slice of bytes of the given length
func Bytes(n int) []byte {
	bz := make([]byte, n)
	if _, err := cryptoRand.Read(bz); err != nil {
		panic(err)
	}

	return bz
}

// I64Between returns a random integer between lower (inclusive) and upper (exclusive)
func I64Between(lower int64, upper int64) int64 {
	return rand.Int63n(upper-lower) + lower
}

// PosI64 returns a random positive integer
func PosI64() int64 {
	return I64Between(1, 1<<62)
}

// PosUint64 returns a random positive uint64
func PosUint64() uint64 {
	return uint64(PosI64())
}

// Uint returns a random sdk uint in [1, 2^63)
func Uint() sdkmath.Uint {
	return sdkmath.NewUint(PosUint64())
}

// EVMAddr returns a random evm address
func EVMAddr() common.Address {
	return common.BytesToAddress(Bytes(common.AddressLength))
}

// Uint16 returns a random uint16
func Uint16() uint16 {
	return uint16(I64Between(1, 1<<16))
}

// Nonce returns a random message nonce
func Nonce() uint64 {
	return binary.BigEndian.Uint64(Bytes(8))
}
