// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"testing"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/address"
	"github.com/33cn/rps/plugin/dapp/rps/executor"
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitment(t *testing.T) {
	priv, err := crypto.GenerateKey()
	require.NoError(t, err)
	addr := address.PubKeyToAddress(&priv.PublicKey)

	cmd := PlayCmd()
	require.NoError(t, cmd.Flags().Set("key", common.ToHex(crypto.FromECDSA(priv))))

	hash, err := commitment(cmd)
	require.NoError(t, err)
	assert.Equal(t, "", hash)

	require.NoError(t, cmd.Flags().Set("move", "paper"))
	require.NoError(t, cmd.Flags().Set("secret", "s3"))
	hash, err = commitment(cmd)
	require.NoError(t, err)
	want, err := executor.MoveHashHex(addr, rt.MovePaper, []byte("s3"))
	require.NoError(t, err)
	assert.Equal(t, want, hash)

	require.NoError(t, cmd.Flags().Set("hash", "0xabc"))
	hash, err = commitment(cmd)
	require.NoError(t, err)
	assert.Equal(t, "0xabc", hash)
}

func TestMoveFlags(t *testing.T) {
	cmd := RevealTableCmd()
	require.NoError(t, cmd.Flags().Set("move", "s"))
	require.NoError(t, cmd.Flags().Set("secret", "x"))
	move, secret, err := moveFlags(cmd)
	require.NoError(t, err)
	assert.Equal(t, rt.MoveScissors, move)
	assert.Equal(t, []byte("x"), secret)

	require.NoError(t, cmd.Flags().Set("move", "lizard"))
	_, _, err = moveFlags(cmd)
	assert.Equal(t, rt.ErrInvalidMove, errors.Cause(err))
}

func TestCmdTree(t *testing.T) {
	cmd := Cmd()
	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	for _, n := range []string{"table", "game", "hash", "withdraw", "balance"} {
		assert.True(t, names[n], n)
	}
	sub, _, err := cmd.Find([]string{"game", "claim"})
	require.NoError(t, err)
	assert.Equal(t, "claim", sub.Name())
}
