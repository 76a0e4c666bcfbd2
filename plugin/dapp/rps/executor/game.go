// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/address"
	dbm "github.com/33cn/rps/common/db"
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
)

//game 的状态变化：
// status == 1 (open, 创建者已押注, 等待对手)
// status == 2 (matched, 对手已押注)
// status == 3 (resolved, 已结算; 同一个 gameId 可以重新 StartGame)
//
// 每次状态变化时 Index 记录本次交易的位置, PrevIndex 记录上一个状态的位置,
// 本地索引根据 ReceiptGame 删除旧状态的索引再建立新状态的索引。

// PairGameID id of the game between a and b, the same for both orders
func PairGameID(a, b string) (string, error) {
	if err := address.CheckAddress(a); err != nil {
		return "", types.ErrInvalidAddress
	}
	if err := address.CheckAddress(b); err != nil {
		return "", types.ErrInvalidAddress
	}
	x, y := address.ToBytes(a), address.ToBytes(b)
	if bytes.Compare(x, y) > 0 {
		x, y = y, x
	}
	return common.ToHex(common.Keccak256(x, y)), nil
}

// ExplicitGameID id of a game opened with an explicit id, Keccak256(creator20 ‖ id32).
// Ids of different creators never meet, and none of them is a pair id.
func ExplicitGameID(creator, id string) (string, error) {
	if err := address.CheckAddress(creator); err != nil {
		return "", types.ErrInvalidAddress
	}
	b, err := common.HexToHash(id)
	if err != nil {
		return "", types.ErrInvalidParam
	}
	return common.ToHex(common.Keccak256(address.ToBytes(creator), b)), nil
}

// readGame nil game and no error when the id was never used
func readGame(db dbm.KV, id string) (*rt.Game, error) {
	data, err := db.Get(GameKey(id))
	if err == dbm.ErrNotFoundInDb {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var game rt.Game
	if err := types.Decode(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// readLiveGame the game must exist and be unresolved
func readLiveGame(db dbm.KV, id string) (*rt.Game, error) {
	gameID, err := normalizeHash(id)
	if err != nil {
		return nil, err
	}
	game, err := readGame(db, gameID)
	if err != nil {
		return nil, err
	}
	switch game.GetStatus() {
	case rt.GameStatusNone:
		return nil, rt.ErrGameNotFound
	case rt.GameStatusResolved:
		return nil, rt.ErrAlreadyResolved
	}
	return game, nil
}

func (action *Action) gameReceipt(game *rt.Game, prevStatus int32) *rt.ReceiptGame {
	r := &rt.ReceiptGame{
		GameId:        game.GameId,
		Addr:          action.fromaddr,
		Player1:       game.Player1,
		Player2:       game.Player2,
		Status:        game.Status,
		PrevStatus:    prevStatus,
		Index:         game.Index,
		PrevIndex:     game.PrevIndex,
		Price:         game.Price,
		TimeoutBlocks: game.TimeoutBlocks,
		Outcome:       game.Outcome,
	}
	if prevStatus != rt.GameStatusNone && prevStatus != game.Status {
		r.PrevPlayer1, r.PrevPlayer2 = game.Player1, game.Player2
	}
	return r
}

// moveHashOf the commitment slot of addr, nil when addr does not play game
func moveHashOf(game *rt.Game, addr string) (*string, *int32) {
	switch addr {
	case game.Player1:
		return &game.MoveHash1, &game.Move1
	case game.Player2:
		return &game.MoveHash2, &game.Move2
	}
	return nil, nil
}

// StartGame opens a game against peer and takes the stake of the creator
func (action *Action) StartGame(start *rt.RpsStartGame) (*types.Receipt, error) {
	if start.Peer == "" {
		rlog.Error("StartGame", "addr", action.fromaddr, "err", rt.ErrIneligibleCaller)
		return nil, rt.ErrIneligibleCaller
	}
	peer, err := address.Normalize(start.Peer)
	if err != nil {
		rlog.Error("StartGame", "addr", action.fromaddr, "peer", start.Peer, "err", err)
		return nil, types.ErrInvalidAddress
	}
	if peer == action.fromaddr {
		rlog.Error("StartGame", "addr", action.fromaddr, "peer", peer, "err", rt.ErrIneligibleCaller)
		return nil, rt.ErrIneligibleCaller
	}
	if err := checkConfig(start.Price, start.TimeoutBlocks); err != nil {
		rlog.Error("StartGame", "addr", action.fromaddr, "price", start.Price,
			"timeoutBlocks", start.TimeoutBlocks, "err", err)
		return nil, err
	}
	var moveHash string
	if start.MoveHash != "" {
		if moveHash, err = normalizeHash(start.MoveHash); err != nil {
			rlog.Error("StartGame", "addr", action.fromaddr, "moveHash", start.MoveHash, "err", err)
			return nil, err
		}
	}
	var gameID string
	if start.GameId != "" {
		gameID, err = ExplicitGameID(action.fromaddr, start.GameId)
	} else {
		gameID, err = PairGameID(action.fromaddr, peer)
	}
	if err != nil {
		rlog.Error("StartGame", "addr", action.fromaddr, "gameId", start.GameId, "err", err)
		return nil, err
	}
	prev, err := readGame(action.db, gameID)
	if err != nil {
		return nil, err
	}
	if s := prev.GetStatus(); s == rt.GameStatusOpen || s == rt.GameStatusMatched {
		rlog.Error("StartGame", "addr", action.fromaddr, "id", gameID, "err", rt.ErrGameExists)
		return nil, rt.ErrGameExists
	}
	receipt, err := action.deposit(start.Price)
	if err != nil {
		rlog.Error("StartGame", "addr", action.fromaddr, "id", gameID, "value", action.value, "err", err)
		return nil, err
	}
	game := &rt.Game{
		GameId:        gameID,
		Player1:       action.fromaddr,
		Player2:       peer,
		MoveHash1:     moveHash,
		Price:         start.Price,
		TimeoutBlocks: start.TimeoutBlocks,
		StartBlock:    action.height,
		Status:        rt.GameStatusOpen,
		Index:         action.GetIndex(),
	}
	prevStatus := rt.GameStatusNone
	if prev != nil {
		game.Rounds = prev.Rounds
		game.PrevIndex = prev.Index
		prevStatus = prev.Status
	}
	receipt.KV = append(receipt.KV, action.save(GameKey(gameID), game)...)
	r := action.gameReceipt(game, prevStatus)
	r.MoveHash = moveHash
	if prev != nil {
		// the creator may reuse its explicit id against another peer
		r.PrevPlayer1, r.PrevPlayer2 = prev.Player1, prev.Player2
	}
	receipt.Logs = append(receipt.Logs, newLog(rt.TyLogGameStart, r))
	return receipt, nil
}

// JoinGame the named peer pays its stake
func (action *Action) JoinGame(join *rt.RpsJoinGame) (*types.Receipt, error) {
	game, err := readLiveGame(action.db, join.GameId)
	if err != nil {
		rlog.Error("JoinGame", "addr", action.fromaddr, "id", join.GameId, "err", err)
		return nil, err
	}
	if game.Status != rt.GameStatusOpen || game.Player2 != action.fromaddr {
		rlog.Error("JoinGame", "addr", action.fromaddr, "id", join.GameId, "err", rt.ErrIneligibleCaller)
		return nil, rt.ErrIneligibleCaller
	}
	var moveHash string
	if join.MoveHash != "" {
		if moveHash, err = normalizeHash(join.MoveHash); err != nil {
			rlog.Error("JoinGame", "addr", action.fromaddr, "moveHash", join.MoveHash, "err", err)
			return nil, err
		}
	}
	receipt, err := action.deposit(game.Price)
	if err != nil {
		rlog.Error("JoinGame", "addr", action.fromaddr, "id", join.GameId, "value", action.value, "err", err)
		return nil, err
	}
	game.MoveHash2 = moveHash
	game.Status = rt.GameStatusMatched
	game.PrevIndex = game.Index
	game.Index = action.GetIndex()
	receipt.KV = append(receipt.KV, action.save(GameKey(game.GameId), game)...)
	r := action.gameReceipt(game, rt.GameStatusOpen)
	r.MoveHash = moveHash
	receipt.Logs = append(receipt.Logs, newLog(rt.TyLogGameJoin, r))
	return receipt, nil
}

// Commit stores the move hash of a player. The creator may commit before the peer joins.
func (action *Action) Commit(commit *rt.RpsCommit) (*types.Receipt, error) {
	moveHash, err := normalizeHash(commit.MoveHash)
	if err != nil {
		rlog.Error("Commit", "addr", action.fromaddr, "moveHash", commit.MoveHash, "err", err)
		return nil, err
	}
	game, err := readLiveGame(action.db, commit.GameId)
	if err != nil {
		rlog.Error("Commit", "addr", action.fromaddr, "id", commit.GameId, "err", err)
		return nil, err
	}
	if !canCommit(game, action.fromaddr) {
		rlog.Error("Commit", "addr", action.fromaddr, "id", commit.GameId, "err", rt.ErrIneligibleCaller)
		return nil, rt.ErrIneligibleCaller
	}
	slot, _ := moveHashOf(game, action.fromaddr)
	*slot = moveHash
	kv := action.save(GameKey(game.GameId), game)
	r := action.gameReceipt(game, game.Status)
	r.MoveHash = moveHash
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: []*types.ReceiptLog{newLog(rt.TyLogGameCommit, r)}}, nil
}

// RevealGame discloses the move of a player, the second reveal settles the game
func (action *Action) RevealGame(reveal *rt.RpsReveal) (*types.Receipt, error) {
	if !ValidMove(reveal.Move) {
		rlog.Error("RevealGame", "addr", action.fromaddr, "move", reveal.Move, "err", rt.ErrInvalidMove)
		return nil, rt.ErrInvalidMove
	}
	game, err := readLiveGame(action.db, reveal.Id)
	if err != nil {
		rlog.Error("RevealGame", "addr", action.fromaddr, "id", reveal.Id, "err", err)
		return nil, err
	}
	slot, move := moveHashOf(game, action.fromaddr)
	if slot == nil || game.Status != rt.GameStatusMatched || game.MoveHash1 == "" || game.MoveHash2 == "" {
		rlog.Error("RevealGame", "addr", action.fromaddr, "id", reveal.Id, "err", rt.ErrIneligibleCaller)
		return nil, rt.ErrIneligibleCaller
	}
	if *move != rt.MoveVoid {
		rlog.Error("RevealGame", "addr", action.fromaddr, "id", reveal.Id, "err", rt.ErrAlreadyResolved)
		return nil, rt.ErrAlreadyResolved
	}
	if err := checkReveal(action.fromaddr, *slot, reveal.Move, reveal.Secret); err != nil {
		rlog.Error("RevealGame", "addr", action.fromaddr, "id", reveal.Id, "err", err)
		return nil, err
	}
	*move = reveal.Move
	if game.FirstRevealBlock == 0 {
		game.FirstRevealBlock = action.height
	}

	receipt := &types.Receipt{Ty: types.ExecOk}
	resolved := game.Move1 != rt.MoveVoid && game.Move2 != rt.MoveVoid
	if resolved {
		outcome, err := Resolve(game.Move1, game.Move2)
		if err != nil {
			return nil, err
		}
		receipt, err = action.settle(game.Player1, game.Player2, game.Price, outcome)
		if err != nil {
			return nil, err
		}
		action.resolveGame(game, outcome)
	}
	receipt.KV = append(receipt.KV, action.save(GameKey(game.GameId), game)...)
	r := action.gameReceipt(game, rt.GameStatusMatched)
	r.Move = reveal.Move
	r.Resolved = resolved
	receipt.Logs = append(receipt.Logs, newLog(rt.TyLogGameReveal, r))
	return receipt, nil
}

// resolveGame clears the commitments and moves and closes the round
func (action *Action) resolveGame(game *rt.Game, outcome int32) {
	game.MoveHash1, game.MoveHash2 = "", ""
	game.Move1, game.Move2 = rt.MoveVoid, rt.MoveVoid
	game.FirstRevealBlock = 0
	game.Outcome = outcome
	game.Status = rt.GameStatusResolved
	game.Rounds++
	game.PrevIndex = game.Index
	game.Index = action.GetIndex()
}

// gameResolution outcome a claim would settle at height, refund reports a timeout without any reveal
func gameResolution(game *rt.Game, height int64) (outcome int32, refund bool, err error) {
	switch {
	case game.Move1 != rt.MoveVoid || game.Move2 != rt.MoveVoid:
		if !elapsed(game.FirstRevealBlock, game.TimeoutBlocks, height) {
			return rt.OutcomeDraw, false, rt.ErrPrematureOperation
		}
		if game.Move1 != rt.MoveVoid {
			return rt.OutcomePlayer1, false, nil
		}
		return rt.OutcomePlayer2, false, nil
	case elapsed(game.StartBlock, game.TimeoutBlocks, height):
		return rt.OutcomeDraw, true, nil
	}
	return rt.OutcomeDraw, false, rt.ErrPrematureOperation
}

// Claim settles a game whose timeout elapsed
func (action *Action) Claim(claim *rt.RpsClaim) (*types.Receipt, error) {
	game, err := readLiveGame(action.db, claim.GameId)
	if err != nil {
		rlog.Error("Claim", "addr", action.fromaddr, "id", claim.GameId, "err", err)
		return nil, err
	}
	if !allowed(conf.gameTrigger, action.fromaddr, game.Player1, game.Player1, game.Player2) {
		rlog.Error("Claim", "addr", action.fromaddr, "id", claim.GameId, "err", rt.ErrUnauthorizedTrigger)
		return nil, rt.ErrUnauthorizedTrigger
	}
	outcome, refund, err := gameResolution(game, action.height)
	if err != nil {
		rlog.Error("Claim", "addr", action.fromaddr, "id", claim.GameId, "height", action.height, "err", err)
		return nil, err
	}
	var receipt *types.Receipt
	if refund {
		receipt, err = action.refund(game.Player1, game.Price)
		if err != nil {
			return nil, err
		}
		if game.Status == rt.GameStatusMatched {
			receipt2, err := action.refund(game.Player2, game.Price)
			if err != nil {
				return nil, err
			}
			receipt = mergeReceipt(receipt, receipt2)
		}
	} else {
		receipt, err = action.award(winnerOf(game, outcome), loserOf(game, outcome), game.Price)
		if err != nil {
			return nil, err
		}
	}
	prevStatus := game.Status
	action.resolveGame(game, outcome)
	receipt.KV = append(receipt.KV, action.save(GameKey(game.GameId), game)...)
	receipt.Logs = append(receipt.Logs, newLog(rt.TyLogGameResolve, action.gameReceipt(game, prevStatus)))
	return receipt, nil
}

func winnerOf(game *rt.Game, outcome int32) string {
	if outcome == rt.OutcomePlayer2 {
		return game.Player2
	}
	return game.Player1
}

func loserOf(game *rt.Game, outcome int32) string {
	if outcome == rt.OutcomePlayer2 {
		return game.Player1
	}
	return game.Player2
}

// canJoin addr is the invited peer of an open game
func canJoin(game *rt.Game, addr string) bool {
	return game.Status == rt.GameStatusOpen && addr != "" && addr == game.Player2
}

// canCommit addr has not committed, the peer only after joining
func canCommit(game *rt.Game, addr string) bool {
	if addr == "" {
		return false
	}
	switch addr {
	case game.Player1:
		return (game.Status == rt.GameStatusOpen || game.Status == rt.GameStatusMatched) && game.MoveHash1 == ""
	case game.Player2:
		return game.Status == rt.GameStatusMatched && game.MoveHash2 == ""
	}
	return false
}

// canRevealGame both committed and addr has not revealed
func canRevealGame(game *rt.Game, addr string) bool {
	if addr == "" || game.Status != rt.GameStatusMatched || game.MoveHash1 == "" || game.MoveHash2 == "" {
		return false
	}
	_, move := moveHashOf(game, addr)
	return move != nil && *move == rt.MoveVoid
}

// canClaim addr may settle the game at height
func canClaim(game *rt.Game, addr string, height int64) bool {
	if game.Status != rt.GameStatusOpen && game.Status != rt.GameStatusMatched {
		return false
	}
	if !allowed(conf.gameTrigger, addr, game.Player1, game.Player1, game.Player2) {
		return false
	}
	_, _, err := gameResolution(game, height)
	return err == nil
}
