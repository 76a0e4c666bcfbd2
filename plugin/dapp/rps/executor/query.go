// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/rps/common/address"
	dbm "github.com/33cn/rps/common/db"
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	drivers "github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
	proto "github.com/golang/protobuf/proto"
)

// Query read only functions, eligibility flags are evaluated for the next block
func (r *Rps) Query(funcName string, params []byte) (proto.Message, error) {
	switch funcName {
	case rt.FuncNameGetTable:
		var req rt.ReqTable
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		return r.queryTable(&req)
	case rt.FuncNameListTables:
		var req rt.ReqListTables
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		return r.listTables(&req)
	case rt.FuncNameGetGame:
		var req rt.ReqGame
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		return r.queryGame(&req)
	case rt.FuncNameListGames:
		var req rt.ReqListGames
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		return r.listGames(&req)
	case rt.FuncNameGameID:
		var req rt.ReqGameId
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		var id string
		var err error
		if req.Id != "" {
			id, err = ExplicitGameID(req.Addr1, req.Id)
		} else {
			id, err = PairGameID(req.Addr1, req.Addr2)
		}
		if err != nil {
			return nil, err
		}
		return &rt.ReplyHash{Hash: id}, nil
	case rt.FuncNameHash:
		var req rt.ReqHash
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		hash, err := MoveHashHex(req.Addr, req.Move, req.Secret)
		if err != nil {
			return nil, err
		}
		return &rt.ReplyHash{Hash: hash}, nil
	case rt.FuncNameGetBalance:
		var req types.ReqAddr
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		return r.queryBalance(&req)
	}
	return nil, types.ErrQueryNotSupport
}

// optionalAddr "" stays "", anything else must be a valid address
func optionalAddr(addr string) (string, error) {
	if addr == "" {
		return "", nil
	}
	return address.Normalize(addr)
}

func (r *Rps) queryTable(req *rt.ReqTable) (*rt.ReplyTable, error) {
	addr, err := optionalAddr(req.Addr)
	if err != nil {
		return nil, types.ErrInvalidAddress
	}
	table, err := readTable(r.GetStateDB(), req.TableId)
	if err != nil {
		return nil, err
	}
	next := r.GetHeight() + 1
	return &rt.ReplyTable{
		Table:      table,
		CanEnrol:   canEnrol(table) && (addr == "" || !isEnrolled(table, addr)),
		CanPlay:    canPlay(table, addr),
		CanReveal:  canReveal(table, addr),
		IsGameOver: isGameOver(table, next),
		Height:     r.GetHeight(),
	}, nil
}

func isEnrolled(table *rt.Table, addr string) bool {
	bet, _ := betOf(table, addr)
	return bet != nil
}

func (r *Rps) queryGame(req *rt.ReqGame) (*rt.ReplyGame, error) {
	addr, err := optionalAddr(req.Addr)
	if err != nil {
		return nil, types.ErrInvalidAddress
	}
	id, err := normalizeHash(req.GameId)
	if err != nil {
		return nil, err
	}
	game, err := readGame(r.GetStateDB(), id)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, rt.ErrGameNotFound
	}
	next := r.GetHeight() + 1
	return &rt.ReplyGame{
		Game:      game,
		CanJoin:   canJoin(game, addr),
		CanCommit: canCommit(game, addr),
		CanReveal: canRevealGame(game, addr),
		CanClaim:  addr != "" && canClaim(game, addr, next),
		Height:    r.GetHeight(),
	}, nil
}

func (r *Rps) queryBalance(req *types.ReqAddr) (*types.AccountBalance, error) {
	addr, err := address.Normalize(req.Addr)
	if err != nil {
		return nil, types.ErrInvalidAddress
	}
	execaddr := drivers.ExecAddress(driverName)
	acc := r.GetCoinsAccount()
	execacc := acc.LoadExecAccount(addr, execaddr)
	return &types.AccountBalance{
		Addr:     addr,
		Execer:   driverName,
		ExecAddr: execaddr,
		Wallet:   acc.LoadAccount(addr).GetBalance(),
		Balance:  execacc.GetBalance(),
		Frozen:   execacc.GetFrozen(),
	}, nil
}

func pageCount(count int32) int32 {
	if count <= 0 {
		return rt.DefaultCount
	}
	if count > rt.MaxCount {
		return rt.MaxCount
	}
	return count
}

func (r *Rps) listGames(req *rt.ReqListGames) (*rt.ReplyGameList, error) {
	if req.Status < rt.GameStatusOpen || req.Status > rt.GameStatusResolved {
		return nil, types.ErrInvalidParam
	}
	addr, err := optionalAddr(req.Addr)
	if err != nil {
		return nil, types.ErrInvalidAddress
	}
	var prefix, key []byte
	if addr == "" {
		prefix = calcGameStatusIndexPrefix(req.Status)
		if req.Index > 0 {
			key = calcGameStatusIndexKey(req.Status, req.Index)
		}
	} else {
		prefix = calcGameAddrIndexPrefix(req.Status, addr)
		if req.Index > 0 {
			key = calcGameAddrIndexKey(req.Status, addr, req.Index)
		}
	}
	values := dbm.NewListHelper(r.GetLocalDB()).List(prefix, key, pageCount(req.Count), req.Direction)
	reply := &rt.ReplyGameList{}
	for _, value := range values {
		var record rt.GameRecord
		if err := types.Decode(value, &record); err != nil {
			rlog.Error("listGames", "err", err)
			continue
		}
		game, err := readGame(r.GetStateDB(), record.GameId)
		if err != nil || game == nil {
			rlog.Error("listGames", "id", record.GameId, "err", err)
			continue
		}
		reply.Games = append(reply.Games, game)
	}
	return reply, nil
}

func (r *Rps) listTables(req *rt.ReqListTables) (*rt.ReplyTableList, error) {
	owner, err := address.Normalize(req.Owner)
	if err != nil {
		return nil, types.ErrInvalidAddress
	}
	var key []byte
	if req.Index > 0 {
		key = calcTableOwnerIndexKey(owner, req.Index)
	}
	values := dbm.NewListHelper(r.GetLocalDB()).List(calcTableOwnerIndexPrefix(owner), key, pageCount(req.Count), req.Direction)
	reply := &rt.ReplyTableList{}
	for _, value := range values {
		var record rt.TableRecord
		if err := types.Decode(value, &record); err != nil {
			rlog.Error("listTables", "err", err)
			continue
		}
		table, err := readTable(r.GetStateDB(), record.TableId)
		if err != nil {
			rlog.Error("listTables", "id", record.TableId, "err", err)
			continue
		}
		reply.Tables = append(reply.Tables, table)
	}
	return reply, nil
}
