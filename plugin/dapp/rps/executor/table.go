// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/rps/common"
	dbm "github.com/33cn/rps/common/db"
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
)

// 单局游戏桌:
// 两个空位 bet1/bet2, 报名(enrol) -> 出招哈希(play) -> 揭示(reveal) -> 开奖(chooseWinner) -> 清空两个空位
// 第一个报名的区块开始计算未揭示超时, 第一个揭示的区块开始计算揭示超时

// table resolution kinds
const (
	resolveRules = iota + 1
	resolveForfeit
	resolveRefund
)

type tableResult struct {
	kind    int
	outcome int32
}

func readTable(db dbm.KV, id string) (*rt.Table, error) {
	data, err := db.Get(TableKey(id))
	if err != nil {
		return nil, rt.ErrTableNotFound
	}
	var table rt.Table
	if err := types.Decode(data, &table); err != nil {
		return nil, err
	}
	if table.Bet1 == nil {
		table.Bet1 = &rt.Bet{}
	}
	if table.Bet2 == nil {
		table.Bet2 = &rt.Bet{}
	}
	return &table, nil
}

// betOf slot of addr and its id, nil when addr is not enrolled
func betOf(table *rt.Table, addr string) (*rt.Bet, int32) {
	if addr == "" {
		return nil, 0
	}
	if table.Bet1.Player == addr {
		return table.Bet1, 1
	}
	if table.Bet2.Player == addr {
		return table.Bet2, 2
	}
	return nil, 0
}

func checkConfig(price, timeoutBlocks int64) error {
	if price <= 0 || timeoutBlocks <= 0 || timeoutBlocks > conf.maxTimeoutBlocks || !types.CheckAmount(price) {
		return rt.ErrInvalidConfiguration
	}
	return nil
}

// CreateTable opens a table owned by the sender, its id is the transaction hash
func (action *Action) CreateTable(create *rt.RpsCreateTable) (*types.Receipt, error) {
	if err := checkConfig(create.Price, create.TimeoutBlocks); err != nil {
		rlog.Error("CreateTable", "addr", action.fromaddr, "price", create.Price,
			"timeoutBlocks", create.TimeoutBlocks, "err", err)
		return nil, err
	}
	trigger := conf.tableTrigger
	if create.Trigger != "" {
		ty, ok := rt.ParseTrigger(create.Trigger)
		if !ok {
			rlog.Error("CreateTable", "addr", action.fromaddr, "trigger", create.Trigger, "err", rt.ErrInvalidConfiguration)
			return nil, rt.ErrInvalidConfiguration
		}
		trigger = ty
	}
	table := &rt.Table{
		TableId:       common.ToHex(action.txhash),
		Owner:         action.fromaddr,
		Price:         create.Price,
		TimeoutBlocks: create.TimeoutBlocks,
		Trigger:       trigger,
		Bet1:          &rt.Bet{},
		Bet2:          &rt.Bet{},
		Index:         action.GetIndex(),
	}
	kv := action.save(TableKey(table.TableId), table)
	r := &rt.ReceiptCreation{
		TableId:       table.TableId,
		Owner:         table.Owner,
		Price:         table.Price,
		TimeoutBlocks: table.TimeoutBlocks,
		Trigger:       table.Trigger,
		Index:         table.Index,
	}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: []*types.ReceiptLog{newLog(rt.TyLogCreation, r)}}, nil
}

// Enrol takes the first free slot, the attached value must cover the price
func (action *Action) Enrol(enrol *rt.RpsEnrol) (*types.Receipt, error) {
	table, err := readTable(action.db, enrol.TableId)
	if err != nil {
		rlog.Error("Enrol", "addr", action.fromaddr, "id", enrol.TableId, "err", err)
		return nil, err
	}
	if bet, _ := betOf(table, action.fromaddr); bet != nil || !canEnrol(table) {
		rlog.Error("Enrol", "addr", action.fromaddr, "id", enrol.TableId, "err", rt.ErrIneligibleCaller)
		return nil, rt.ErrIneligibleCaller
	}
	receipt, err := action.deposit(table.Price)
	if err != nil {
		rlog.Error("Enrol", "addr", action.fromaddr, "id", enrol.TableId, "value", action.value, "err", err)
		return nil, err
	}
	bet, betID := table.Bet1, int32(1)
	if bet.Player != "" {
		bet, betID = table.Bet2, 2
	}
	bet.Player = action.fromaddr
	if table.StartBlock == 0 {
		table.StartBlock = action.height
	}
	receipt.KV = append(receipt.KV, action.save(TableKey(table.TableId), table)...)
	r := &rt.ReceiptEnrol{TableId: table.TableId, Player: action.fromaddr, BetId: betID}
	receipt.Logs = append(receipt.Logs, newLog(rt.TyLogEnrol, r))
	return receipt, nil
}

// Play stores the move hash of the sender's slot
func (action *Action) Play(play *rt.RpsPlay) (*types.Receipt, error) {
	moveHash, err := normalizeHash(play.MoveHash)
	if err != nil {
		rlog.Error("Play", "addr", action.fromaddr, "moveHash", play.MoveHash, "err", err)
		return nil, err
	}
	table, err := readTable(action.db, play.TableId)
	if err != nil {
		rlog.Error("Play", "addr", action.fromaddr, "id", play.TableId, "err", err)
		return nil, err
	}
	bet, betID := betOf(table, action.fromaddr)
	if bet == nil || bet.MoveHash != "" {
		rlog.Error("Play", "addr", action.fromaddr, "id", play.TableId, "err", rt.ErrIneligibleCaller)
		return nil, rt.ErrIneligibleCaller
	}
	bet.MoveHash = moveHash
	kv := action.save(TableKey(table.TableId), table)
	r := &rt.ReceiptPlay{TableId: table.TableId, Player: action.fromaddr, BetId: betID, MoveHash: moveHash}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: []*types.ReceiptLog{newLog(rt.TyLogPlay, r)}}, nil
}

// RevealTable discloses the move of the sender's slot once both slots have played
func (action *Action) RevealTable(reveal *rt.RpsReveal) (*types.Receipt, error) {
	if !ValidMove(reveal.Move) {
		rlog.Error("RevealTable", "addr", action.fromaddr, "move", reveal.Move, "err", rt.ErrInvalidMove)
		return nil, rt.ErrInvalidMove
	}
	table, err := readTable(action.db, reveal.Id)
	if err != nil {
		rlog.Error("RevealTable", "addr", action.fromaddr, "id", reveal.Id, "err", err)
		return nil, err
	}
	bet, betID := betOf(table, action.fromaddr)
	if bet == nil || table.Bet1.MoveHash == "" || table.Bet2.MoveHash == "" {
		rlog.Error("RevealTable", "addr", action.fromaddr, "id", reveal.Id, "err", rt.ErrIneligibleCaller)
		return nil, rt.ErrIneligibleCaller
	}
	if bet.Move != rt.MoveVoid {
		rlog.Error("RevealTable", "addr", action.fromaddr, "id", reveal.Id, "err", rt.ErrAlreadyResolved)
		return nil, rt.ErrAlreadyResolved
	}
	if err := checkReveal(action.fromaddr, bet.MoveHash, reveal.Move, reveal.Secret); err != nil {
		rlog.Error("RevealTable", "addr", action.fromaddr, "id", reveal.Id, "err", err)
		return nil, err
	}
	bet.Move = reveal.Move
	if table.FirstRevealBlock == 0 {
		table.FirstRevealBlock = action.height
	}
	kv := action.save(TableKey(table.TableId), table)
	r := &rt.ReceiptReveal{TableId: table.TableId, Player: action.fromaddr, BetId: betID, Move: reveal.Move}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: []*types.ReceiptLog{newLog(rt.TyLogReveal, r)}}, nil
}

// tableResolution what ChooseWinner would do at height
func tableResolution(table *rt.Table, height int64) (*tableResult, error) {
	move1, move2 := table.Bet1.Move, table.Bet2.Move
	switch {
	case move1 != rt.MoveVoid && move2 != rt.MoveVoid:
		outcome, err := Resolve(move1, move2)
		if err != nil {
			return nil, err
		}
		return &tableResult{kind: resolveRules, outcome: outcome}, nil
	case move1 != rt.MoveVoid || move2 != rt.MoveVoid:
		if !elapsed(table.FirstRevealBlock, table.TimeoutBlocks, height) {
			return nil, rt.ErrPrematureOperation
		}
		//超时只有一方揭示, 揭示方赢
		outcome := rt.OutcomePlayer1
		if move2 != rt.MoveVoid {
			outcome = rt.OutcomePlayer2
		}
		return &tableResult{kind: resolveForfeit, outcome: outcome}, nil
	}
	if !elapsed(table.StartBlock, table.TimeoutBlocks, height) {
		return nil, rt.ErrPrematureOperation
	}
	return &tableResult{kind: resolveRefund, outcome: rt.OutcomeDraw}, nil
}

// ChooseWinner settles the table and frees both slots
func (action *Action) ChooseWinner(choose *rt.RpsChooseWinner) (*types.Receipt, error) {
	table, err := readTable(action.db, choose.TableId)
	if err != nil {
		rlog.Error("ChooseWinner", "addr", action.fromaddr, "id", choose.TableId, "err", err)
		return nil, err
	}
	if !allowed(table.Trigger, action.fromaddr, table.Owner, table.Bet1.Player, table.Bet2.Player) {
		rlog.Error("ChooseWinner", "addr", action.fromaddr, "id", choose.TableId, "err", rt.ErrUnauthorizedTrigger)
		return nil, rt.ErrUnauthorizedTrigger
	}
	res, err := tableResolution(table, action.height)
	if err != nil {
		rlog.Error("ChooseWinner", "addr", action.fromaddr, "id", choose.TableId, "height", action.height, "err", err)
		return nil, err
	}
	var receipt *types.Receipt
	if res.kind == resolveRefund {
		for _, bet := range []*rt.Bet{table.Bet1, table.Bet2} {
			if bet.Player == "" {
				continue
			}
			r, err := action.refund(bet.Player, table.Price)
			if err != nil {
				return nil, err
			}
			receipt = mergeReceipt(receipt, r)
		}
	} else {
		receipt, err = action.settle(table.Bet1.Player, table.Bet2.Player, table.Price, res.outcome)
		if err != nil {
			return nil, err
		}
	}
	if receipt == nil {
		receipt = &types.Receipt{Ty: types.ExecOk}
	}
	table.Bet1 = &rt.Bet{}
	table.Bet2 = &rt.Bet{}
	table.StartBlock = 0
	table.FirstRevealBlock = 0
	table.WinnerId = res.outcome
	table.Rounds++
	receipt.KV = append(receipt.KV, action.save(TableKey(table.TableId), table)...)
	r := &rt.ReceiptChooseWinner{TableId: table.TableId, Caller: action.fromaddr, WinnerId: res.outcome}
	receipt.Logs = append(receipt.Logs, newLog(rt.TyLogChooseWinner, r))
	return receipt, nil
}

// canEnrol a slot is free
func canEnrol(table *rt.Table) bool {
	return table.Bet1.Player == "" || table.Bet2.Player == ""
}

// canPlay addr is enrolled and has not played
func canPlay(table *rt.Table, addr string) bool {
	bet, _ := betOf(table, addr)
	return bet != nil && bet.MoveHash == ""
}

// canReveal both slots played and addr has not revealed
func canReveal(table *rt.Table, addr string) bool {
	bet, _ := betOf(table, addr)
	return bet != nil && table.Bet1.MoveHash != "" && table.Bet2.MoveHash != "" && bet.Move == rt.MoveVoid
}

// isGameOver ChooseWinner would settle at height, whoever calls it
func isGameOver(table *rt.Table, height int64) bool {
	_, err := tableResolution(table, height)
	return err == nil
}
