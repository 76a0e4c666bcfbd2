// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor coins 是一个货币的exec。内置货币的执行器。
//
// 主要提供一种操作：
// Transfer -> 转移资产
package executor

import (
	"github.com/33cn/rps/common/address"
	drivers "github.com/33cn/rps/system/dapp"
	cty "github.com/33cn/rps/system/dapp/coins/types"
	"github.com/33cn/rps/types"
	proto "github.com/golang/protobuf/proto"
	log "github.com/inconshreveable/log15"
)

var clog = log.New("module", "execs.coins")

var driverName = cty.CoinsX

func init() {
	drivers.Register(driverName, newCoins, nil)
}

// GetName driver name
func GetName() string {
	return driverName
}

// Coins driver
type Coins struct {
	drivers.DriverBase
}

func newCoins() drivers.Driver {
	c := &Coins{}
	c.SetName(driverName)
	return c
}

// Exec decodes the action and dispatches it
func (c *Coins) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action cty.CoinsAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return nil, err
	}
	switch action.Ty {
	case cty.CoinsActionTransfer:
		if action.GetTransfer() == nil {
			return nil, types.ErrInvalidParam
		}
		return c.execTransfer(action.Transfer, tx)
	}
	return nil, types.ErrActionNotSupport
}

func (c *Coins) execTransfer(transfer *cty.CoinsTransfer, tx *types.Transaction) (*types.Receipt, error) {
	from, err := tx.From()
	if err != nil {
		return nil, err
	}
	to, err := address.Normalize(transfer.To)
	if err != nil {
		return nil, err
	}
	// executor wallets only move through the executor accounts
	if _, ok := drivers.GetExecName(to); ok {
		clog.Debug("execTransfer", "to", to)
		return nil, types.ErrInvalidAddress
	}
	return c.GetCoinsAccount().Transfer(from, to, transfer.Amount)
}

// Query GetAccount returns the wallet account of an address
func (c *Coins) Query(funcName string, params []byte) (proto.Message, error) {
	if funcName != "GetAccount" {
		return nil, types.ErrQueryNotSupport
	}
	var req types.ReqAddr
	if err := types.Decode(params, &req); err != nil {
		return nil, err
	}
	addr, err := address.Normalize(req.Addr)
	if err != nil {
		return nil, err
	}
	return c.GetCoinsAccount().LoadAccount(addr), nil
}
