// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/rps/common"
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (env *testEnv) getGame(id, addr string) *rt.ReplyGame {
	return env.query(rt.FuncNameGetGame, &rt.ReqGame{GameId: id, Addr: addr}).(*rt.ReplyGame)
}

func (env *testEnv) listGames(status int32, addr string) []*rt.Game {
	req := &rt.ReqListGames{Status: status, Addr: addr, Direction: rt.ListASC}
	return env.query(rt.FuncNameListGames, req).(*rt.ReplyGameList).Games
}

// startGame p1 opens a pair game with p2, both commit, returns the game id
func (env *testEnv) startGame(p1, p2 *testKey, move1, move2 int32) string {
	res := env.mustSend(p1, rt.StartGameTx(p2.addr, price, timeout, env.hash(p1, move1, "one"), "", price))
	var l rt.ReceiptGame
	require.Equal(env.t, int32(rt.TyLogGameStart), decodeLog(env.t, res, &l))
	env.mustSend(p2, rt.JoinGameTx(l.GameId, env.hash(p2, move2, "two"), price))
	return l.GameId
}

func TestGameRockBeatsScissors(t *testing.T) {
	env := newTestEnv(t, 2)
	alice, bob := env.keys[0], env.keys[1]
	id := env.startGame(alice, bob, rt.MoveRock, rt.MoveScissors)

	reply := env.getGame(id, bob.addr)
	assert.Equal(t, rt.GameStatusMatched, reply.Game.Status)
	assert.True(t, reply.CanReveal)
	assert.False(t, reply.CanClaim)

	res := env.mustSend(bob, rt.RevealGameTx(id, rt.MoveScissors, []byte("two")))
	var l rt.ReceiptGame
	decodeLog(t, res, &l)
	assert.False(t, l.Resolved)

	res = env.mustSend(alice, rt.RevealGameTx(id, rt.MoveRock, []byte("one")))
	decodeLog(t, res, &l)
	assert.True(t, l.Resolved)
	assert.Equal(t, rt.OutcomePlayer1, l.Outcome)

	game := env.getGame(id, "").Game
	assert.Equal(t, rt.GameStatusResolved, game.Status)
	assert.Equal(t, int64(1), game.Rounds)
	assert.Equal(t, "", game.MoveHash1)
	assert.Equal(t, rt.MoveVoid, game.Move2)

	assert.Equal(t, 2*price, env.balance(alice).Balance)
	assert.Equal(t, int64(0), env.balance(bob).Balance)
	assert.Equal(t, int64(0), env.balance(bob).Frozen)
	env.checkConservation()

	env.sendErr(alice, rt.RevealGameTx(id, rt.MoveRock, []byte("one")), rt.ErrAlreadyResolved)
	env.sendErr(alice, rt.ClaimTx(id), rt.ErrAlreadyResolved)
}

func TestGameDraw(t *testing.T) {
	env := newTestEnv(t, 2)
	alice, bob := env.keys[0], env.keys[1]
	id := env.startGame(alice, bob, rt.MovePaper, rt.MovePaper)
	env.mustSend(alice, rt.RevealGameTx(id, rt.MovePaper, []byte("one")))
	env.mustSend(bob, rt.RevealGameTx(id, rt.MovePaper, []byte("two")))

	assert.Equal(t, rt.OutcomeDraw, env.getGame(id, "").Game.Outcome)
	assert.Equal(t, price, env.balance(alice).Balance)
	assert.Equal(t, price, env.balance(bob).Balance)
	env.checkConservation()
}

func TestGameCommitmentBinding(t *testing.T) {
	env := newTestEnv(t, 3)
	alice, bob, carol := env.keys[0], env.keys[1], env.keys[2]
	id := env.startGame(alice, bob, rt.MoveRock, rt.MovePaper)

	before := env.getGame(id, "").Game.String()
	env.sendErr(alice, rt.RevealGameTx(id, rt.MoveRock, []byte("two")), rt.ErrCommitmentMismatch)
	env.sendErr(alice, rt.RevealGameTx(id, rt.MoveScissors, []byte("one")), rt.ErrCommitmentMismatch)
	// the commitment of alice is bound to her address
	env.sendErr(carol, rt.RevealGameTx(id, rt.MoveRock, []byte("one")), rt.ErrIneligibleCaller)
	env.sendErr(alice, rt.RevealGameTx(id, rt.MoveVoid, []byte("one")), rt.ErrInvalidMove)
	env.sendErr(alice, rt.RevealGameTx(id, rt.MoveRock, make([]byte, rt.SecretLen+1)), rt.ErrSecretTooLong)
	assert.Equal(t, before, env.getGame(id, "").Game.String())

	env.mustSend(alice, rt.RevealGameTx(id, rt.MoveRock, []byte("one")))
	env.sendErr(alice, rt.RevealGameTx(id, rt.MoveRock, []byte("one")), rt.ErrAlreadyResolved)
}

func TestGameLifecycleErrors(t *testing.T) {
	env := newTestEnv(t, 3)
	alice, bob, carol := env.keys[0], env.keys[1], env.keys[2]

	env.sendErr(alice, rt.StartGameTx("", price, timeout, "", "", price), rt.ErrIneligibleCaller)
	env.sendErr(alice, rt.StartGameTx(alice.addr, price, timeout, "", "", price), rt.ErrIneligibleCaller)
	env.sendErr(alice, rt.StartGameTx("bad", price, timeout, "", "", price), types.ErrInvalidAddress)
	env.sendErr(alice, rt.StartGameTx(bob.addr, 0, timeout, "", "", price), rt.ErrInvalidConfiguration)
	env.sendErr(alice, rt.StartGameTx(bob.addr, price, 0, "", "", price), rt.ErrInvalidConfiguration)
	env.sendErr(alice, rt.StartGameTx(bob.addr, price, timeout, "", "", price-1), rt.ErrInsufficientPayment)

	env.mustSend(alice, rt.StartGameTx(bob.addr, price, timeout, "", "", price))
	id, err := PairGameID(alice.addr, bob.addr)
	require.NoError(t, err)
	env.sendErr(bob, rt.StartGameTx(alice.addr, price, timeout, "", "", price), rt.ErrGameExists)

	reply := env.getGame(id, bob.addr)
	assert.True(t, reply.CanJoin)
	assert.False(t, reply.CanCommit)
	assert.True(t, env.getGame(id, alice.addr).CanCommit)

	env.sendErr(carol, rt.JoinGameTx(id, "", price), rt.ErrIneligibleCaller)
	env.sendErr(alice, rt.JoinGameTx(id, "", price), rt.ErrIneligibleCaller)
	env.sendErr(bob, rt.CommitTx(id, env.hash(bob, rt.MoveRock, "b")), rt.ErrIneligibleCaller)
	env.sendErr(bob, rt.JoinGameTx(id, "", price-1), rt.ErrInsufficientPayment)
	env.sendErr(bob, rt.JoinGameTx(common.ToHex(make([]byte, 32)), "", price), rt.ErrGameNotFound)

	env.mustSend(alice, rt.CommitTx(id, env.hash(alice, rt.MoveRock, "a")))
	env.sendErr(alice, rt.CommitTx(id, env.hash(alice, rt.MovePaper, "a")), rt.ErrIneligibleCaller)
	env.mustSend(bob, rt.JoinGameTx(id, "", price))
	env.sendErr(bob, rt.JoinGameTx(id, "", price), rt.ErrIneligibleCaller)
	env.sendErr(bob, rt.RevealGameTx(id, rt.MoveRock, []byte("b")), rt.ErrIneligibleCaller)
	env.sendErr(carol, rt.CommitTx(id, env.hash(carol, rt.MoveRock, "c")), rt.ErrIneligibleCaller)
	env.mustSend(bob, rt.CommitTx(id, env.hash(bob, rt.MoveRock, "b")))
	env.sendErr(alice, rt.ClaimTx(id), rt.ErrPrematureOperation)

	assert.True(t, env.getGame(id, alice.addr).CanReveal)
	env.checkConservation()
}

func TestGameClaimForfeit(t *testing.T) {
	env := newTestEnv(t, 3)
	alice, bob, carol := env.keys[0], env.keys[1], env.keys[2]
	id := env.startGame(alice, bob, rt.MoveScissors, rt.MoveRock)
	env.mustSend(alice, rt.RevealGameTx(id, rt.MoveScissors, []byte("one")))
	first := env.getGame(id, "").Game.FirstRevealBlock

	env.mine(int(first + timeout - 2 - env.chain.Height()))
	assert.False(t, env.getGame(id, carol.addr).CanClaim)
	env.sendErr(carol, rt.ClaimTx(id), rt.ErrPrematureOperation)
	env.mine(1)
	assert.True(t, env.getGame(id, carol.addr).CanClaim)

	// anycaller is the default for games
	res := env.mustSend(carol, rt.ClaimTx(id))
	var l rt.ReceiptGame
	assert.Equal(t, int32(rt.TyLogGameResolve), decodeLog(t, res, &l))
	assert.Equal(t, rt.OutcomePlayer1, l.Outcome)
	assert.Equal(t, rt.GameStatusResolved, l.Status)

	assert.Equal(t, 2*price, env.balance(alice).Balance)
	assert.Equal(t, int64(0), env.balance(bob).Balance)
	assert.Equal(t, int64(0), env.balance(carol).Balance)
	env.checkConservation()
}

func TestGameClaimRefund(t *testing.T) {
	env := newTestEnv(t, 2)
	alice, bob := env.keys[0], env.keys[1]

	// never joined: only the creator is refunded
	env.mustSend(alice, rt.StartGameTx(bob.addr, price, timeout, "", "", price))
	id, err := PairGameID(alice.addr, bob.addr)
	require.NoError(t, err)
	env.mine(int(timeout))
	env.mustSend(bob, rt.ClaimTx(id))
	assert.Equal(t, price, env.balance(alice).Balance)
	assert.Equal(t, int64(0), env.balance(alice).Frozen)
	assert.Equal(t, int64(0), env.balance(bob).Balance)
	env.checkConservation()

	// joined but nobody revealed: both are refunded
	id = env.startGame(alice, bob, rt.MoveRock, rt.MoveRock)
	env.mine(int(timeout))
	env.mustSend(alice, rt.ClaimTx(id))
	assert.Equal(t, 2*price, env.balance(alice).Balance)
	assert.Equal(t, price, env.balance(bob).Balance)
	assert.Equal(t, int64(2), env.getGame(id, "").Game.Rounds)
	env.checkConservation()
}

func TestGameTriggerPolicy(t *testing.T) {
	env := newTestEnvWithConfig(t, 3, []byte(`{"resolutionTrigger":"owner"}`))
	alice, bob, carol := env.keys[0], env.keys[1], env.keys[2]
	id := env.startGame(alice, bob, rt.MoveRock, rt.MoveRock)
	env.mustSend(bob, rt.RevealGameTx(id, rt.MoveRock, []byte("two")))
	env.mine(int(timeout))

	env.sendErr(carol, rt.ClaimTx(id), rt.ErrUnauthorizedTrigger)
	env.sendErr(bob, rt.ClaimTx(id), rt.ErrUnauthorizedTrigger)
	assert.False(t, env.getGame(id, bob.addr).CanClaim)
	assert.True(t, env.getGame(id, alice.addr).CanClaim)
	env.mustSend(alice, rt.ClaimTx(id))
	assert.Equal(t, 2*price, env.balance(bob).Balance)

	Init(rt.RpsX, []byte(`{"resolutionTrigger":"anyparticipant"}`))
	id = env.startGame(alice, bob, rt.MoveRock, rt.MoveRock)
	env.mine(int(timeout))
	env.sendErr(carol, rt.ClaimTx(id), rt.ErrUnauthorizedTrigger)
	env.mustSend(bob, rt.ClaimTx(id))
	env.checkConservation()
}

func TestGameRestartAndIndex(t *testing.T) {
	env := newTestEnv(t, 3)
	alice, bob, carol := env.keys[0], env.keys[1], env.keys[2]
	id := env.startGame(alice, bob, rt.MoveRock, rt.MovePaper)

	require.Len(t, env.listGames(rt.GameStatusMatched, ""), 1)
	require.Len(t, env.listGames(rt.GameStatusMatched, bob.addr), 1)
	require.Len(t, env.listGames(rt.GameStatusOpen, alice.addr), 0)

	env.mustSend(alice, rt.RevealGameTx(id, rt.MoveRock, []byte("one")))
	env.mustSend(bob, rt.RevealGameTx(id, rt.MovePaper, []byte("two")))
	assert.Len(t, env.listGames(rt.GameStatusMatched, ""), 0)
	resolved := env.listGames(rt.GameStatusResolved, alice.addr)
	require.Len(t, resolved, 1)
	assert.Equal(t, id, resolved[0].GameId)

	// the pair id is reusable once resolved, bob opens the next round
	res := env.mustSend(bob, rt.StartGameTx(alice.addr, price, timeout, "", "", price))
	var l rt.ReceiptGame
	decodeLog(t, res, &l)
	assert.Equal(t, id, l.GameId)
	assert.Equal(t, rt.GameStatusResolved, l.PrevStatus)

	game := env.getGame(id, "").Game
	assert.Equal(t, bob.addr, game.Player1)
	assert.Equal(t, alice.addr, game.Player2)
	assert.Equal(t, int64(1), game.Rounds)
	assert.Len(t, env.listGames(rt.GameStatusResolved, ""), 0)
	assert.Len(t, env.listGames(rt.GameStatusOpen, alice.addr), 1)

	// an explicit id is keyed by its creator, bob's copy is another game
	explicit := common.ToHex(common.Keccak256([]byte("table 7")))
	res = env.mustSend(carol, rt.StartGameTx(alice.addr, price, timeout, "", explicit, price))
	decodeLog(t, res, &l)
	carolID, err := ExplicitGameID(carol.addr, explicit)
	require.NoError(t, err)
	assert.Equal(t, carolID, l.GameId)
	env.sendErr(carol, rt.StartGameTx(alice.addr, price, timeout, "", explicit, price), rt.ErrGameExists)
	res = env.mustSend(bob, rt.StartGameTx(alice.addr, price, timeout, "", explicit, price))
	decodeLog(t, res, &l)
	assert.NotEqual(t, carolID, l.GameId)

	open := env.listGames(rt.GameStatusOpen, alice.addr)
	require.Len(t, open, 3)
	assert.Equal(t, id, open[0].GameId)
	assert.Equal(t, carolID, open[1].GameId)
	assert.Len(t, env.listGames(rt.GameStatusOpen, carol.addr), 1)
	env.checkConservation()

	_, err = env.chain.Query(rt.RpsX, rt.FuncNameListGames, types.Encode(&rt.ReqListGames{Status: 9}))
	assert.Equal(t, types.ErrInvalidParam, err)
}

func TestExplicitIDCannotTakePairID(t *testing.T) {
	env := newTestEnv(t, 4)
	alice, bob, carol, dave := env.keys[0], env.keys[1], env.keys[2], env.keys[3]
	pairID, err := PairGameID(alice.addr, bob.addr)
	require.NoError(t, err)

	// carol asks for the id of the alice/bob pair with a tiny stake and the longest timeout
	res := env.mustSend(carol, rt.StartGameTx(dave.addr, 1, 100000, "", pairID, 1))
	var l rt.ReceiptGame
	decodeLog(t, res, &l)
	assert.NotEqual(t, pairID, l.GameId)
	_, err = env.chain.Query(rt.RpsX, rt.FuncNameGetGame, types.Encode(&rt.ReqGame{GameId: pairID}))
	assert.Equal(t, rt.ErrGameNotFound, err)

	res = env.mustSend(alice, rt.StartGameTx(bob.addr, price, timeout, "", "", price))
	decodeLog(t, res, &l)
	assert.Equal(t, pairID, l.GameId)
	game := env.getGame(pairID, "").Game
	assert.Equal(t, alice.addr, game.Player1)
	assert.Equal(t, bob.addr, game.Player2)

	squat, err := ExplicitGameID(carol.addr, pairID)
	require.NoError(t, err)
	assert.Equal(t, dave.addr, env.getGame(squat, "").Game.Player2)
	env.checkConservation()
}

func TestOneRpsLogPerCall(t *testing.T) {
	env := newTestEnv(t, 3)
	owner, alice, bob := env.keys[0], env.keys[1], env.keys[2]
	tableID := env.createTable(owner, "")
	txs := []struct {
		key *testKey
		tx  *types.Transaction
	}{
		{alice, rt.EnrolTx(tableID, price)},
		{alice, rt.PlayTx(tableID, env.hash(alice, rt.MoveRock, "a"))},
		{bob, rt.EnrolTx(tableID, price)},
		{bob, rt.PlayTx(tableID, env.hash(bob, rt.MoveRock, "b"))},
		{alice, rt.RevealTableTx(tableID, rt.MoveRock, []byte("a"))},
		{bob, rt.RevealTableTx(tableID, rt.MoveRock, []byte("b"))},
		{owner, rt.ChooseWinnerTx(tableID)},
		{alice, rt.StartGameTx(bob.addr, price, timeout, "", "", price)},
		{alice, rt.WithdrawTx()},
	}
	for _, c := range txs {
		res := env.mustSend(c.key, c.tx)
		assert.Len(t, rpsLogs(res), 1)
	}
}
