// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"strings"
	"testing"

	"github.com/33cn/rps/common/address"
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const addr1 = "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"
const addr2 = "0x8ba1f109551bD432803012645Ac136ddd64DBA72"

func TestCalcMoveHash(t *testing.T) {
	secret := []byte("my secret")
	hash, err := CalcMoveHash(addr1, rt.MoveScissors, secret)
	require.NoError(t, err)

	padded := make([]byte, 32)
	copy(padded, secret)
	want := crypto.Keccak256(address.ToBytes(addr1), []byte{3}, padded)
	assert.Equal(t, want, hash)

	// the secret is a bytes32 value, trailing zeros do not make another secret
	same, err := CalcMoveHash(addr1, rt.MoveScissors, padded)
	require.NoError(t, err)
	assert.Equal(t, hash, same)
	same, err = CalcMoveHash(addr1, rt.MoveScissors, append([]byte("my secret"), 0))
	require.NoError(t, err)
	assert.Equal(t, hash, same)
	empty, err := CalcMoveHash(addr1, rt.MoveScissors, nil)
	require.NoError(t, err)
	zero, err := CalcMoveHash(addr1, rt.MoveScissors, make([]byte, 32))
	require.NoError(t, err)
	assert.Equal(t, empty, zero)

	// any change of the 32 byte value changes the hash
	padded[31] = 1
	diff, err := CalcMoveHash(addr1, rt.MoveScissors, padded)
	require.NoError(t, err)
	assert.NotEqual(t, hash, diff)

	other, err := CalcMoveHash(addr2, rt.MoveScissors, secret)
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)

	_, err = CalcMoveHash(addr1, rt.MoveVoid, secret)
	assert.Equal(t, rt.ErrInvalidMove, err)
	_, err = CalcMoveHash(addr1, rt.MoveRock, make([]byte, 33))
	assert.Equal(t, rt.ErrSecretTooLong, err)
	_, err = CalcMoveHash("nobody", rt.MoveRock, secret)
	assert.Equal(t, types.ErrInvalidAddress, err)
}

func TestCheckReveal(t *testing.T) {
	hash, err := MoveHashHex(addr1, rt.MoveRock, []byte("s"))
	require.NoError(t, err)
	assert.Equal(t, hexutil.Encode(mustHash(t, addr1, rt.MoveRock, "s")), hash)

	assert.NoError(t, checkReveal(addr1, hash, rt.MoveRock, []byte("s")))
	assert.Equal(t, rt.ErrCommitmentMismatch, checkReveal(addr1, hash, rt.MovePaper, []byte("s")))
	assert.Equal(t, rt.ErrCommitmentMismatch, checkReveal(addr1, hash, rt.MoveRock, []byte("t")))
	assert.Equal(t, rt.ErrCommitmentMismatch, checkReveal(addr2, hash, rt.MoveRock, []byte("s")))
}

func mustHash(t *testing.T, addr string, move int32, secret string) []byte {
	h, err := CalcMoveHash(addr, move, []byte(secret))
	require.NoError(t, err)
	return h
}

func TestNormalizeHash(t *testing.T) {
	hash, err := MoveHashHex(addr1, rt.MovePaper, nil)
	require.NoError(t, err)

	upper, err := normalizeHash(strings.ToUpper(hash[2:]))
	require.NoError(t, err)
	assert.Equal(t, hash, upper)

	_, err = normalizeHash("0x1234")
	assert.Equal(t, types.ErrInvalidParam, err)
	_, err = normalizeHash("")
	assert.Equal(t, types.ErrInvalidParam, err)
}

func TestPairGameID(t *testing.T) {
	id1, err := PairGameID(addr1, addr2)
	require.NoError(t, err)
	id2, err := PairGameID(strings.ToLower(addr2), addr1)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	self, err := PairGameID(addr1, addr1)
	require.NoError(t, err)
	assert.NotEqual(t, id1, self)

	_, err = PairGameID(addr1, "bad")
	assert.Equal(t, types.ErrInvalidAddress, err)
}
