// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"github.com/33cn/rps/common/address"
	"github.com/33cn/rps/types"
)

// LoadExecAccount account of addr inside execaddr
func (acc *DB) LoadExecAccount(addr, execaddr string) *types.Account {
	value, err := acc.db.Get(acc.execAccountKey(addr, execaddr))
	if err != nil {
		return &types.Account{Addr: addr}
	}
	var acc1 types.Account
	err = types.Decode(value, &acc1)
	if err != nil {
		panic(err) //数据库已经损坏
	}
	return &acc1
}

// SaveExecAccount save exec account data to db
func (acc *DB) SaveExecAccount(execaddr string, acc1 *types.Account) {
	for _, kv := range acc.GetExecKVSet(execaddr, acc1) {
		if err := acc.db.Set(kv.Key, kv.Value); err != nil {
			alog.Error("SaveExecAccount", "addr", acc1.Addr, "err", err)
			panic(err)
		}
	}
}

// GetExecKVSet state writes for an executor account
func (acc *DB) GetExecKVSet(execaddr string, acc1 *types.Account) (kvset []*types.KeyValue) {
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.execAccountKey(acc1.Addr, execaddr),
		Value: types.Encode(acc1),
	})
	return kvset
}

func (acc *DB) execAccountKey(address, execaddr string) (key []byte) {
	key = make([]byte, 0, len(acc.execAccountKeyPerfix)+len(execaddr)+len(address)+1)
	key = append(key, acc.execAccountKeyPerfix...)
	key = append(key, []byte(execaddr)...)
	key = append(key, ':')
	key = append(key, []byte(address)...)
	return key
}

// ExecAccountPrefix key prefix of every account inside execaddr
func (acc *DB) ExecAccountPrefix(execaddr string) []byte {
	return append(append(append([]byte{}, acc.execAccountKeyPerfix...), []byte(execaddr)...), ':')
}

// ExecAddress 根据执行器名称获取执行器地址
func (acc *DB) ExecAddress(name string) string {
	return address.ExecAddress(name)
}

// TransferToExec pays amount from the wallet of from into its account inside exec address to
func (acc *DB) TransferToExec(from, to string, amount int64) (*types.Receipt, error) {
	receipt, err := acc.Transfer(from, to, amount)
	if err != nil {
		return nil, err
	}
	receipt2, err := acc.ExecDeposit(from, to, amount)
	if err != nil {
		//存款不应该出任何问题
		panic(err)
	}
	return acc.mergeReceipt(receipt, receipt2), nil
}

// TransferWithdraw pays the free balance of from inside exec address to back to its wallet.
// The executor account is debited before the wallet is credited.
func (acc *DB) TransferWithdraw(from, to string, amount int64) (*types.Receipt, error) {
	if err := acc.CheckTransfer(to, from, amount); err != nil {
		return nil, err
	}
	receipt, err := acc.ExecWithdraw(to, from, amount)
	if err != nil {
		return nil, err
	}
	receipt2, err := acc.Transfer(to, from, amount)
	if err != nil {
		panic(err)
	}
	return acc.mergeReceipt(receipt, receipt2), nil
}

// ExecFrozen moves amount from Balance to Frozen
func (acc *DB) ExecFrozen(addr, execaddr string, amount int64) (*types.Receipt, error) {
	if addr == execaddr {
		return nil, types.ErrSendSameToRecv
	}
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1 := acc.LoadExecAccount(addr, execaddr)
	if acc1.Balance-amount < 0 {
		alog.Error("ExecFrozen", "balance", acc1.Balance, "amount", amount)
		return nil, types.ErrNoBalance
	}
	copyacc := *acc1
	acc1.Balance -= amount
	acc1.Frozen += amount
	return acc.saveExec(types.TyLogExecFrozen, execaddr, &copyacc, acc1), nil
}

// ExecActive moves amount from Frozen back to Balance
func (acc *DB) ExecActive(addr, execaddr string, amount int64) (*types.Receipt, error) {
	if addr == execaddr {
		return nil, types.ErrSendSameToRecv
	}
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1 := acc.LoadExecAccount(addr, execaddr)
	if acc1.Frozen-amount < 0 {
		alog.Error("ExecActive", "frozen", acc1.Frozen, "amount", amount)
		return nil, types.ErrNoBalance
	}
	copyacc := *acc1
	acc1.Balance += amount
	acc1.Frozen -= amount
	return acc.saveExec(types.TyLogExecActive, execaddr, &copyacc, acc1), nil
}

// ExecTransferFrozen takes amount out of the frozen part of from and credits the free balance of to
func (acc *DB) ExecTransferFrozen(from, to, execaddr string, amount int64) (*types.Receipt, error) {
	if from == to {
		return nil, types.ErrSendSameToRecv
	}
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	accFrom := acc.LoadExecAccount(from, execaddr)
	accTo := acc.LoadExecAccount(to, execaddr)
	if accFrom.GetFrozen()-amount < 0 {
		return nil, types.ErrNoBalance
	}
	copyaccFrom := *accFrom
	copyaccTo := *accTo

	accFrom.Frozen -= amount
	accTo.Balance += amount

	receipt := acc.saveExec(types.TyLogExecTransfer, execaddr, &copyaccFrom, accFrom)
	return acc.mergeReceipt(receipt, acc.saveExec(types.TyLogExecTransfer, execaddr, &copyaccTo, accTo)), nil
}

// ExecDeposit credits the free balance of addr inside execaddr, the wallet side is the caller's job
func (acc *DB) ExecDeposit(addr, execaddr string, amount int64) (*types.Receipt, error) {
	if addr == execaddr {
		return nil, types.ErrSendSameToRecv
	}
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1 := acc.LoadExecAccount(addr, execaddr)
	copyacc := *acc1
	balance, err := safeAdd(acc1.Balance, amount)
	if err != nil {
		return nil, err
	}
	acc1.Balance = balance
	return acc.saveExec(types.TyLogExecDeposit, execaddr, &copyacc, acc1), nil
}

// ExecWithdraw debits the free balance of addr inside execaddr
func (acc *DB) ExecWithdraw(execaddr, addr string, amount int64) (*types.Receipt, error) {
	if addr == execaddr {
		return nil, types.ErrSendSameToRecv
	}
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1 := acc.LoadExecAccount(addr, execaddr)
	if acc1.Balance-amount < 0 {
		return nil, types.ErrNoBalance
	}
	copyacc := *acc1
	acc1.Balance -= amount
	return acc.saveExec(types.TyLogExecWithdraw, execaddr, &copyacc, acc1), nil
}

func (acc *DB) saveExec(ty int32, execaddr string, prev, current *types.Account) *types.Receipt {
	acc.SaveExecAccount(execaddr, current)
	r := &types.ReceiptExecAccountTransfer{
		ExecAddr: execaddr,
		Prev:     prev,
		Current:  current,
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   acc.GetExecKVSet(execaddr, current),
		Logs: []*types.ReceiptLog{{Ty: ty, Log: types.Encode(r)}},
	}
}
