// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"github.com/33cn/rps/types"
)

// GenesisInit credits a wallet at height 0, the only way coins come into existence
func (acc *DB) GenesisInit(addr string, amount int64) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	accTo := acc.LoadAccount(addr)
	copyto := *accTo
	balance, err := safeAdd(accTo.GetBalance(), amount)
	if err != nil {
		return nil, err
	}
	accTo.Balance = balance
	receiptBalanceTo := &types.ReceiptAccountTransfer{
		Prev:    &copyto,
		Current: accTo,
	}
	acc.SaveAccount(accTo)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   acc.GetKVSet(accTo),
		Logs: []*types.ReceiptLog{{Ty: types.TyLogGenesis, Log: types.Encode(receiptBalanceTo)}},
	}, nil
}
