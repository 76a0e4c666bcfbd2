// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc json rpc service "rps": typed wrappers over the executor queries
package rpc

import (
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	rpctypes "github.com/33cn/rps/rpc/types"
	"github.com/33cn/rps/types"
	log15 "github.com/inconshreveable/log15"
	proto "github.com/golang/protobuf/proto"
)

var log = log15.New("module", "rps.rpc")

// Jrpc rps json rpc receiver
type Jrpc struct {
	api rpctypes.ChainAPI
}

// ReqHash commitment request, Move by name or number
type ReqHash struct {
	Addr   string `json:"addr"`
	Move   string `json:"move"`
	Secret string `json:"secret"`
}

// Init registers the service as name
func Init(name string, s rpctypes.RPCServer) error {
	return s.RegisterName(name, &Jrpc{api: s.GetAPI()})
}

func (j *Jrpc) query(funcName string, req proto.Message, result *interface{}) error {
	reply, err := j.api.Query(rt.RpsX, funcName, types.Encode(req))
	if err != nil {
		log.Debug("query", "func", funcName, "err", err)
		return err
	}
	*result = reply
	return nil
}

// GetTable table with the eligibility flags of in.Addr
func (j *Jrpc) GetTable(in rt.ReqTable, result *interface{}) error {
	return j.query(rt.FuncNameGetTable, &in, result)
}

// ListTables tables of an owner
func (j *Jrpc) ListTables(in rt.ReqListTables, result *interface{}) error {
	return j.query(rt.FuncNameListTables, &in, result)
}

// GetGame game with the eligibility flags of in.Addr
func (j *Jrpc) GetGame(in rt.ReqGame, result *interface{}) error {
	return j.query(rt.FuncNameGetGame, &in, result)
}

// ListGames games by status, optionally of one address
func (j *Jrpc) ListGames(in rt.ReqListGames, result *interface{}) error {
	return j.query(rt.FuncNameListGames, &in, result)
}

// GameID id of the pair game of two addresses
func (j *Jrpc) GameID(in rt.ReqGameId, result *interface{}) error {
	return j.query(rt.FuncNameGameID, &in, result)
}

// Hash commitment of a move, the secret is taken as utf8 bytes
func (j *Jrpc) Hash(in ReqHash, result *interface{}) error {
	move, ok := rt.ParseMove(in.Move)
	if !ok {
		return rt.ErrInvalidMove
	}
	return j.query(rt.FuncNameHash, &rt.ReqHash{Addr: in.Addr, Move: move, Secret: []byte(in.Secret)}, result)
}

// GetBalance wallet, ledger balance and frozen stake of an address
func (j *Jrpc) GetBalance(in types.ReqAddr, result *interface{}) error {
	return j.query(rt.FuncNameGetBalance, &in, result)
}
