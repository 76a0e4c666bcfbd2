// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package account keeps coin balances in the state store.
//
// Two kinds of accounts share one key space:
//  1. wallet accounts, mavl-coins-rps-<addr>, moved by Transfer
//  2. executor accounts, mavl-coins-rps-exec-<execaddr>:<addr>, the part of the wallet
//     handed to an executor. Balance is free to withdraw, Frozen is held by the executor.
//
// Every mutation writes through the KV it was given and returns a Receipt listing the
// writes plus one log per touched account.
package account

import (
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
	proto "github.com/golang/protobuf/proto"
	log "github.com/inconshreveable/log15"
)

var alog = log.New("module", "account")

const coinsPrefix = types.StatePrefix + types.CoinsExecName + "-rps-"

// DB for account
type DB struct {
	db                   dbm.KV
	accountKeyPerfix     []byte
	execAccountKeyPerfix []byte
}

// NewCoinsAccount coins ledger on db
func NewCoinsAccount(db dbm.KV) *DB {
	acc := &DB{}
	acc.accountKeyPerfix = []byte(coinsPrefix)
	acc.execAccountKeyPerfix = append([]byte(coinsPrefix), []byte("exec-")...)
	acc.db = db
	return acc
}

// SetDB swaps the underlying store, the executor points it at the per-transaction overlay
func (acc *DB) SetDB(db dbm.KV) *DB {
	acc.db = db
	return acc
}

// LoadAccount wallet account, an unknown address has zero balance
func (acc *DB) LoadAccount(addr string) *types.Account {
	value, err := acc.db.Get(acc.AccountKey(addr))
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

// CheckTransfer from can pay amount
func (acc *DB) CheckTransfer(from, to string, amount int64) error {
	if !types.CheckAmount(amount) {
		return types.ErrAmount
	}
	if from == to {
		return types.ErrSendSameToRecv
	}
	if acc.LoadAccount(from).GetBalance()-amount < 0 {
		return types.ErrNoBalance
	}
	return nil
}

// Transfer moves amount between wallet accounts
func (acc *DB) Transfer(from, to string, amount int64) (*types.Receipt, error) {
	if err := acc.CheckTransfer(from, to, amount); err != nil {
		return nil, err
	}
	accFrom := acc.LoadAccount(from)
	accTo := acc.LoadAccount(to)
	copyfrom := *accFrom
	copyto := *accTo

	accFrom.Balance -= amount
	balance, err := safeAdd(accTo.Balance, amount)
	if err != nil {
		return nil, err
	}
	accTo.Balance = balance

	receiptBalanceFrom := &types.ReceiptAccountTransfer{
		Prev:    &copyfrom,
		Current: accFrom,
	}
	receiptBalanceTo := &types.ReceiptAccountTransfer{
		Prev:    &copyto,
		Current: accTo,
	}
	acc.SaveAccount(accFrom)
	acc.SaveAccount(accTo)
	return acc.transferReceipt(accFrom, accTo, receiptBalanceFrom, receiptBalanceTo), nil
}

func (acc *DB) transferReceipt(accFrom, accTo *types.Account, receiptFrom, receiptTo proto.Message) *types.Receipt {
	log1 := &types.ReceiptLog{
		Ty:  types.TyLogTransfer,
		Log: types.Encode(receiptFrom),
	}
	log2 := &types.ReceiptLog{
		Ty:  types.TyLogTransfer,
		Log: types.Encode(receiptTo),
	}
	kv := acc.GetKVSet(accFrom)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1, log2},
	}
}

// SaveAccount writes acc1 under its address
func (acc *DB) SaveAccount(acc1 *types.Account) {
	for _, kv := range acc.GetKVSet(acc1) {
		if err := acc.db.Set(kv.Key, kv.Value); err != nil {
			alog.Error("SaveAccount", "addr", acc1.Addr, "err", err)
			panic(err)
		}
	}
}

// GetKVSet state writes for acc1
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: types.Encode(acc1),
	})
	return kvset
}

// AccountKey state key of a wallet account
func (acc *DB) AccountKey(address string) (key []byte) {
	key = make([]byte, 0, len(acc.accountKeyPerfix)+len(address))
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(address)...)
	return key
}

func (acc *DB) mergeReceipt(receipt, receipt2 *types.Receipt) *types.Receipt {
	receipt.Logs = append(receipt.Logs, receipt2.Logs...)
	receipt.KV = append(receipt.KV, receipt2.KV...)
	return receipt
}

func safeAdd(balance, amount int64) (int64, error) {
	if balance+amount < amount || balance+amount > types.MaxCoin {
		return balance, types.ErrAmount
	}
	return balance + amount, nil
}
