// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"crypto/ecdsa"
	"testing"

	"github.com/33cn/rps/blockchain"
	"github.com/33cn/rps/common/address"
	dbm "github.com/33cn/rps/common/db"
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	_ "github.com/33cn/rps/system"
	drivers "github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/crypto"
	proto "github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	price   = types.Coin
	timeout = int64(10)
)

type testKey struct {
	priv *ecdsa.PrivateKey
	addr string
}

type testEnv struct {
	t     *testing.T
	chain *blockchain.BlockChain
	keys  []*testKey
}

func newTestEnv(t *testing.T, n int) *testEnv {
	return newTestEnvWithConfig(t, n, nil)
}

// newTestEnvWithConfig n funded keys, sub is the json of [exec.sub.rps]
func newTestEnvWithConfig(t *testing.T, n int, sub []byte) *testEnv {
	env := &testEnv{t: t}
	var allocs []*types.GenesisAlloc
	for i := 0; i < n; i++ {
		priv, err := crypto.GenerateKey()
		require.NoError(t, err)
		key := &testKey{priv: priv, addr: address.PubKeyToAddress(&priv.PublicKey)}
		env.keys = append(env.keys, key)
		allocs = append(allocs, &types.GenesisAlloc{Addr: key.addr, Amount: "100"})
	}
	db, err := dbm.NewDB("rps", dbm.MemDBBackendStr, "", 16)
	require.NoError(t, err)
	cfg := &types.ConfigSubModule{Exec: map[string][]byte{}}
	if sub != nil {
		cfg.Exec[rt.RpsX] = sub
	}
	env.chain, err = blockchain.NewWithDB(db, allocs, cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		env.chain.Close()
		conf = defaultConfig()
	})
	return env
}

func (env *testEnv) send(key *testKey, tx *types.Transaction) (*types.TxResult, error) {
	require.NoError(env.t, tx.Sign(key.priv))
	return env.chain.SendTransaction(tx)
}

func (env *testEnv) mustSend(key *testKey, tx *types.Transaction) *types.TxResult {
	res, err := env.send(key, tx)
	require.NoError(env.t, err)
	return res
}

func (env *testEnv) sendErr(key *testKey, tx *types.Transaction, want error) {
	_, err := env.send(key, tx)
	require.Error(env.t, err)
	assert.Equal(env.t, want, errors.Cause(err))
}

func (env *testEnv) mine(n int) {
	_, err := env.chain.MineBlocks(n)
	require.NoError(env.t, err)
}

func (env *testEnv) query(funcName string, req proto.Message) proto.Message {
	reply, err := env.chain.Query(rt.RpsX, funcName, types.Encode(req))
	require.NoError(env.t, err)
	return reply
}

func (env *testEnv) balance(key *testKey) *types.AccountBalance {
	bal, err := env.chain.GetBalance(key.addr, rt.RpsX)
	require.NoError(env.t, err)
	return bal
}

func (env *testEnv) hash(key *testKey, move int32, secret string) string {
	h, err := MoveHashHex(key.addr, move, []byte(secret))
	require.NoError(env.t, err)
	return h
}

// checkConservation every coin held by the executor address belongs to some ledger entry
func (env *testEnv) checkConservation() {
	balance, frozen := env.chain.SumExecAccounts(rt.RpsX)
	execaddr := drivers.ExecAddress(rt.RpsX)
	bal, err := env.chain.GetBalance(execaddr, "")
	require.NoError(env.t, err)
	assert.Equal(env.t, bal.Wallet, balance+frozen)
}

func rpsLogs(res *types.TxResult) []*types.ReceiptLog {
	var logs []*types.ReceiptLog
	for _, l := range res.Receipt.Logs {
		if rt.IsRpsLog(l.Ty) {
			logs = append(logs, l)
		}
	}
	return logs
}

func decodeLog(t *testing.T, res *types.TxResult, msg proto.Message) int32 {
	logs := rpsLogs(res)
	require.Len(t, logs, 1)
	require.NoError(t, types.Decode(logs[0].Log, msg))
	return logs[0].Ty
}

func TestCheckTxNotPayable(t *testing.T) {
	env := newTestEnv(t, 1)
	alice := env.keys[0]
	tx := rt.CreateTableTx(price, timeout, "")
	tx.Value = 1
	env.sendErr(alice, tx, rt.ErrNotPayable)
	env.sendErr(alice, rt.WithdrawTx(), rt.ErrEmptyWithdrawal)

	withdraw := rt.WithdrawTx()
	withdraw.Value = price
	env.sendErr(alice, withdraw, rt.ErrNotPayable)
	assert.Equal(t, int64(0), env.chain.Height())
}

func TestUnknownAction(t *testing.T) {
	env := newTestEnv(t, 1)
	tx := types.CreateTx(rt.RpsX, types.Encode(&rt.RpsAction{Ty: rt.RpsActionEnrol}), 0)
	env.sendErr(env.keys[0], tx, types.ErrActionNotSupport)
}

func TestInitConfig(t *testing.T) {
	defer func() { conf = defaultConfig() }()
	Init(rt.RpsX, []byte(`{"resolutionTrigger":"anyparticipant","tableResolutionTrigger":"anycaller","maxTimeoutBlocks":50}`))
	assert.Equal(t, rt.TriggerAnyParticipant, conf.gameTrigger)
	assert.Equal(t, rt.TriggerAnyCaller, conf.tableTrigger)
	assert.Equal(t, int64(50), conf.maxTimeoutBlocks)

	Init(rt.RpsX, nil)
	assert.Equal(t, defaultConfig(), conf)

	assert.Panics(t, func() { Init(rt.RpsX, []byte(`{"resolutionTrigger":"nobody"}`)) })
}

func TestQueryHashAndGameID(t *testing.T) {
	env := newTestEnv(t, 2)
	alice, bob := env.keys[0], env.keys[1]

	reply := env.query(rt.FuncNameHash, &rt.ReqHash{Addr: alice.addr, Move: rt.MoveRock, Secret: []byte("s")}).(*rt.ReplyHash)
	assert.Equal(t, env.hash(alice, rt.MoveRock, "s"), reply.Hash)

	_, err := env.chain.Query(rt.RpsX, rt.FuncNameHash, types.Encode(&rt.ReqHash{Addr: alice.addr, Move: 4}))
	assert.Equal(t, rt.ErrInvalidMove, err)

	id1 := env.query(rt.FuncNameGameID, &rt.ReqGameId{Addr1: alice.addr, Addr2: bob.addr}).(*rt.ReplyHash)
	id2 := env.query(rt.FuncNameGameID, &rt.ReqGameId{Addr1: bob.addr, Addr2: alice.addr}).(*rt.ReplyHash)
	assert.Equal(t, id1.Hash, id2.Hash)

	explicit := env.query(rt.FuncNameGameID, &rt.ReqGameId{Addr1: alice.addr, Id: id1.Hash}).(*rt.ReplyHash)
	want, err := ExplicitGameID(alice.addr, id1.Hash)
	require.NoError(t, err)
	assert.Equal(t, want, explicit.Hash)
	assert.NotEqual(t, id1.Hash, explicit.Hash)
	_, err = env.chain.Query(rt.RpsX, rt.FuncNameGameID, types.Encode(&rt.ReqGameId{Addr1: alice.addr, Id: "0x12"}))
	assert.Equal(t, types.ErrInvalidParam, err)

	_, err = env.chain.Query(rt.RpsX, "NoSuchFunc", nil)
	assert.Equal(t, types.ErrQueryNotSupport, err)
}

func TestWithdraw(t *testing.T) {
	env := newTestEnv(t, 2)
	alice, bob := env.keys[0], env.keys[1]
	env.mustSend(alice, rt.StartGameTx(bob.addr, price, timeout, "", "", 3*price))

	bal := env.balance(alice)
	assert.Equal(t, 97*types.Coin, bal.Wallet)
	assert.Equal(t, 2*price, bal.Balance)
	assert.Equal(t, price, bal.Frozen)
	env.checkConservation()

	res := env.mustSend(alice, rt.WithdrawTx())
	var w rt.ReceiptWithdraw
	assert.Equal(t, int32(rt.TyLogWithdraw), decodeLog(t, res, &w))
	assert.Equal(t, 2*price, w.Amount)
	assert.Equal(t, alice.addr, w.Player)

	bal = env.balance(alice)
	assert.Equal(t, 99*types.Coin, bal.Wallet)
	assert.Equal(t, int64(0), bal.Balance)
	assert.Equal(t, price, bal.Frozen)
	env.checkConservation()

	// the frozen stake is not withdrawable
	env.sendErr(alice, rt.WithdrawTx(), rt.ErrEmptyWithdrawal)
	env.sendErr(bob, rt.WithdrawTx(), rt.ErrEmptyWithdrawal)

	reply := env.query(rt.FuncNameGetBalance, &types.ReqAddr{Addr: alice.addr}).(*types.AccountBalance)
	assert.Equal(t, price, reply.Frozen)
	assert.Equal(t, 99*types.Coin, reply.Wallet)
}
