// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockchain

import (
	"crypto/ecdsa"
	"testing"

	"github.com/33cn/rps/common/address"
	dbm "github.com/33cn/rps/common/db"
	_ "github.com/33cn/rps/system"
	cty "github.com/33cn/rps/system/dapp/coins/types"
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testKey struct {
	priv *ecdsa.PrivateKey
	addr string
}

func newKey(t *testing.T) *testKey {
	priv, err := crypto.GenerateKey()
	require.NoError(t, err)
	return &testKey{priv: priv, addr: address.PubKeyToAddress(&priv.PublicKey)}
}

func transfer(t *testing.T, from *testKey, to string, amount int64) *types.Transaction {
	tx := cty.CreateTransfer(to, amount, "")
	require.NoError(t, tx.Sign(from.priv))
	return tx
}

func newChain(t *testing.T, db dbm.DB, keys ...*testKey) *BlockChain {
	var allocs []*types.GenesisAlloc
	for _, k := range keys {
		allocs = append(allocs, &types.GenesisAlloc{Addr: k.addr, Amount: "100"})
	}
	chain, err := NewWithDB(db, allocs, nil)
	require.NoError(t, err)
	return chain
}

func memDB(t *testing.T) dbm.DB {
	db, err := dbm.NewDB("chain", dbm.MemDBBackendStr, "", 16)
	require.NoError(t, err)
	return db
}

func TestGenesis(t *testing.T) {
	alice := newKey(t)
	chain := newChain(t, memDB(t), alice)
	assert.Equal(t, int64(0), chain.Height())

	bal, err := chain.GetBalance(alice.addr, "")
	require.NoError(t, err)
	assert.Equal(t, 100*types.Coin, bal.Wallet)
	assert.Equal(t, int64(0), bal.Balance)

	_, err = NewWithDB(memDB(t), []*types.GenesisAlloc{{Addr: "bad", Amount: "1"}}, nil)
	assert.Equal(t, types.ErrConfig, errors.Cause(err))
	_, err = NewWithDB(memDB(t), []*types.GenesisAlloc{{Addr: alice.addr, Amount: "0.000000001"}}, nil)
	assert.Equal(t, types.ErrConfig, errors.Cause(err))
}

func TestSendTransaction(t *testing.T) {
	alice, bob := newKey(t), newKey(t)
	chain := newChain(t, memDB(t), alice)

	var seen []*types.TxResult
	chain.Subscribe(func(res *types.TxResult) { seen = append(seen, res) })

	tx := transfer(t, alice, bob.addr, types.Coin)
	res, err := chain.SendTransaction(tx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Height)
	assert.Equal(t, alice.addr, res.From)
	assert.Equal(t, int64(1), chain.Height())
	require.Len(t, seen, 1)

	stored, err := chain.GetTxResult(tx.Hash())
	require.NoError(t, err)
	assert.Equal(t, res.Height, stored.Height)
	assert.Len(t, stored.Receipt.Logs, 2)

	header, err := chain.GetHeader(1)
	require.NoError(t, err)
	genesis, err := chain.GetHeader(0)
	require.NoError(t, err)
	assert.Equal(t, genesis.Hash, header.ParentHash)
	assert.Equal(t, tx.Hash(), header.TxHash)

	_, err = chain.SendTransaction(tx)
	assert.Equal(t, types.ErrTxDup, err)

	bal, err := chain.GetBalance(bob.addr, "")
	require.NoError(t, err)
	assert.Equal(t, types.Coin, bal.Wallet)
}

func TestFailedTxLeavesNoBlock(t *testing.T) {
	alice, bob := newKey(t), newKey(t)
	chain := newChain(t, memDB(t), alice)

	_, err := chain.SendTransaction(transfer(t, bob, alice.addr, types.Coin))
	assert.Equal(t, types.ErrNoBalance, errors.Cause(err))
	assert.Equal(t, int64(0), chain.Height())

	_, err = chain.SendTransaction(transfer(t, alice, bob.addr, 1000*types.Coin))
	assert.Equal(t, types.ErrNoBalance, errors.Cause(err))

	_, err = chain.GetHeader(1)
	assert.Equal(t, types.ErrNotFound, errors.Cause(err))

	bal, err := chain.GetBalance(alice.addr, "")
	require.NoError(t, err)
	assert.Equal(t, 100*types.Coin, bal.Wallet)
}

func TestMineBlocksAndReopen(t *testing.T) {
	alice := newKey(t)
	dir := t.TempDir()
	db, err := dbm.NewDB("chain", dbm.GoLevelDBBackendStr, dir, 16)
	require.NoError(t, err)
	chain := newChain(t, db, alice)

	height, err := chain.MineBlocks(5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), height)
	_, err = chain.MineBlocks(-1)
	assert.Equal(t, types.ErrInvalidParam, err)
	last, err := chain.GetHeader(5)
	require.NoError(t, err)
	chain.Close()

	db, err = dbm.NewDB("chain", dbm.GoLevelDBBackendStr, dir, 16)
	require.NoError(t, err)
	chain = newChain(t, db, alice)
	defer chain.Close()
	assert.Equal(t, int64(5), chain.Height())

	// genesis ran once
	bal, err := chain.GetBalance(alice.addr, "")
	require.NoError(t, err)
	assert.Equal(t, 100*types.Coin, bal.Wallet)

	_, err = chain.MineBlocks(1)
	require.NoError(t, err)
	next, err := chain.GetHeader(6)
	require.NoError(t, err)
	assert.Equal(t, last.Hash, next.ParentHash)
}

func TestTransferToExecAddress(t *testing.T) {
	alice := newKey(t)
	chain := newChain(t, memDB(t), alice)
	bal, err := chain.GetBalance(alice.addr, "")
	require.NoError(t, err)

	_, err = chain.SendTransaction(transfer(t, alice, bal.ExecAddr, types.Coin))
	assert.Equal(t, types.ErrInvalidAddress, errors.Cause(err))

	_, err = chain.GetBalance(alice.addr, "nosuch")
	assert.Equal(t, types.ErrUnknownExecutor, err)
}
