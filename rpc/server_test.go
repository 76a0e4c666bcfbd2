// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/ecdsa"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/33cn/rps/blockchain"
	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/address"
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/eventstore"
	_ "github.com/33cn/rps/plugin/dapp/rps"
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/rpc/jsonclient"
	rpctypes "github.com/33cn/rps/rpc/types"
	_ "github.com/33cn/rps/system"
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/crypto"
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

func newTestServer(t *testing.T, cfg *types.RPC, keys ...*testKey) (*JSONRPCServer, *jsonclient.JSONClient) {
	var allocs []*types.GenesisAlloc
	for _, k := range keys {
		allocs = append(allocs, &types.GenesisAlloc{Addr: k.addr, Amount: "100"})
	}
	db, err := dbm.NewDB("rpc", dbm.MemDBBackendStr, "", 16)
	require.NoError(t, err)
	chain, err := blockchain.NewWithDB(db, allocs, nil)
	require.NoError(t, err)
	t.Cleanup(chain.Close)

	server, err := NewJSONRPCServer(cfg, chain)
	require.NoError(t, err)
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return server, jsonclient.NewJSONClientWith(ts.URL, ts.Client())
}

func sendTx(t *testing.T, client *jsonclient.JSONClient, key *testKey, tx *types.Transaction) (*rpctypes.TxResult, error) {
	require.NoError(t, tx.Sign(key.priv))
	var res rpctypes.TxResult
	err := client.Call("SendTransaction", rpctypes.RawParm{Data: common.ToHex(types.Encode(tx))}, &res)
	return &res, err
}

func TestChainMethods(t *testing.T) {
	alice := newKey(t)
	_, client := newTestServer(t, nil, alice)

	var height int64
	require.NoError(t, client.Call("Chain.Height", rpctypes.ReqNil{}, &height))
	assert.Equal(t, int64(0), height)

	require.NoError(t, client.Call("Chain.MineBlocks", rpctypes.ReqInt{Data: 3}, &height))
	assert.Equal(t, int64(3), height)

	var header rpctypes.Header
	require.NoError(t, client.Call("Chain.GetHeader", rpctypes.ReqInt{Data: 2}, &header))
	assert.Equal(t, int64(2), header.Height)
	assert.NotEmpty(t, header.Hash)

	var bal types.AccountBalance
	require.NoError(t, client.Call("Chain.GetBalance", types.ReqBalance{Addr: alice.addr}, &bal))
	assert.Equal(t, 100*types.Coin, bal.Wallet)

	var snap map[string]float64
	require.NoError(t, client.Call("Chain.GetMetrics", rpctypes.ReqNil{}, &snap))

	err := client.Call("Chain.NoSuchMethod", rpctypes.ReqNil{}, nil)
	assert.Error(t, err)
}

func TestSendTransactionAndQuery(t *testing.T) {
	alice, bob := newKey(t), newKey(t)
	_, client := newTestServer(t, nil, alice, bob)

	res, err := sendTx(t, client, alice, rt.StartGameTx(bob.addr, types.Coin, 10, "", "", types.Coin))
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Height)
	assert.Equal(t, rt.RpsX, res.Execer)
	assert.Equal(t, alice.addr, res.From)
	var names []string
	for _, l := range res.Logs {
		names = append(names, l.TyName)
	}
	assert.Contains(t, names, "LogGameStart")

	var stored rpctypes.TxResult
	require.NoError(t, client.Call("Chain.GetTxResult", rpctypes.ReqHash{Hash: res.Hash}, &stored))
	assert.Equal(t, res.Height, stored.Height)

	var id rt.ReplyHash
	require.NoError(t, client.Call("rps.GameID", &rt.ReqGameId{Addr1: alice.addr, Addr2: bob.addr}, &id))
	require.NotEmpty(t, id.Hash)

	// the same query through the raw executor interface
	var raw rt.ReplyHash
	q := rpctypes.Query4Jrpc{
		Execer:   rt.RpsX,
		FuncName: rt.FuncNameGameID,
		Payload:  common.ToHex(types.Encode(&rt.ReqGameId{Addr1: bob.addr, Addr2: alice.addr})),
	}
	require.NoError(t, client.Call("Chain.Query", q, &raw))
	assert.Equal(t, id.Hash, raw.Hash)

	var game rt.ReplyGame
	require.NoError(t, client.Call("rps.GetGame", &rt.ReqGame{GameId: id.Hash, Addr: bob.addr}, &game))
	require.NotNil(t, game.Game)
	assert.Equal(t, rt.GameStatusOpen, game.Game.Status)
	assert.True(t, game.CanJoin)

	var list rt.ReplyGameList
	require.NoError(t, client.Call("rps.ListGames", &rt.ReqListGames{Status: rt.GameStatusOpen}, &list))
	assert.Len(t, list.Games, 1)

	var hash rt.ReplyHash
	require.NoError(t, client.Call("rps.Hash", reqHash{Addr: alice.addr, Move: "rock", Secret: "one"}, &hash))
	assert.True(t, strings.HasPrefix(hash.Hash, "0x"))
	assert.Error(t, client.Call("rps.Hash", reqHash{Addr: alice.addr, Move: "lizard", Secret: "one"}, &hash))

	err = client.Call("rps.GetGame", &rt.ReqGame{GameId: common.ToHex(make([]byte, 32))}, &game)
	require.Error(t, err)
	assert.Contains(t, err.Error(), rt.ErrGameNotFound.Error())

	// bob has 100 coins, the price is 1, a second start against alice hits the open game
	_, err = sendTx(t, client, bob, rt.StartGameTx(alice.addr, types.Coin, 10, "", "", types.Coin))
	require.Error(t, err)
	assert.Contains(t, err.Error(), rt.ErrGameExists.Error())

	var height int64
	require.NoError(t, client.Call("Height", rpctypes.ReqNil{}, &height))
	assert.Equal(t, int64(1), height)
}

// reqHash json shape of rps.Hash
type reqHash struct {
	Addr   string `json:"addr"`
	Move   string `json:"move"`
	Secret string `json:"secret"`
}

func TestRoutes(t *testing.T) {
	server, _ := newTestServer(t, &types.RPC{})
	h := server.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.RemoteAddr = "127.0.0.1:5000"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := `{"method":"Chain.Height","params":[{}],"id":1}`
	// httptest.NewRequest uses 192.0.2.1 as remote address
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestWhitelist(t *testing.T) {
	server, _ := newTestServer(t, &types.RPC{Whitelist: []string{"192.0.2.1"}})
	assert.True(t, server.checkIPWhitelist("192.0.2.1"))
	assert.True(t, server.checkIPWhitelist("127.0.0.1"))
	assert.True(t, server.checkIPWhitelist("::1"))
	assert.False(t, server.checkIPWhitelist("192.0.2.2"))
	assert.False(t, server.checkIPWhitelist("not an ip"))

	body := `{"method":"Chain.Height","params":[{}],"id":1}`
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"result":0`)

	all, _ := newTestServer(t, &types.RPC{Whitelist: []string{"0.0.0.0"}})
	assert.True(t, all.checkIPWhitelist("203.0.113.9"))
}

func TestGetEvents(t *testing.T) {
	alice, bob := newKey(t), newKey(t)
	server, client := newTestServer(t, nil, alice, bob)

	var reply rpctypes.ReplyEvents
	err := client.Call("Chain.GetEvents", rpctypes.ReqEvents{Execer: rt.RpsX}, &reply)
	require.Error(t, err)
	assert.Equal(t, types.ErrEventStoreDisable.Error(), err.Error())

	store, err := eventstore.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	server.GetAPI().(*blockchain.BlockChain).Subscribe(store.Subscriber())
	server.SetEventSource(store)

	res, err := sendTx(t, client, alice, rt.StartGameTx(bob.addr, types.Coin, 10, "", "", types.Coin))
	require.NoError(t, err)

	require.NoError(t, client.Call("Chain.GetEvents", rpctypes.ReqEvents{TxHash: res.Hash}, &reply))
	require.Len(t, reply.Events, len(res.Logs))
	assert.Equal(t, res.Height, reply.LastHeight)
	for i, e := range reply.Events {
		assert.Equal(t, res.Hash, e.TxHash)
		assert.Equal(t, i, e.LogIndex)
		assert.Equal(t, rt.RpsX, e.Execer)
	}

	var byName rpctypes.ReplyEvents
	require.NoError(t, client.Call("Chain.GetEvents", rpctypes.ReqEvents{TyName: "LogGameStart"}, &byName))
	require.Len(t, byName.Events, 1)
	assert.Equal(t, res.From, byName.Events[0].From)
	assert.Contains(t, strings.ToLower(byName.Events[0].Log), strings.ToLower(bob.addr))

	var byExec rpctypes.ReplyEvents
	require.NoError(t, client.Call("Chain.GetEvents", rpctypes.ReqEvents{Execer: rt.RpsX, FromHeight: res.Height + 1}, &byExec))
	assert.Len(t, byExec.Events, 0)

	err = client.Call("Chain.GetEvents", rpctypes.ReqEvents{}, &reply)
	require.Error(t, err)
	assert.Equal(t, types.ErrInvalidParam.Error(), err.Error())
}
