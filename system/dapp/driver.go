// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp is the contract between the executor and the application drivers.
package dapp

import (
	"github.com/33cn/rps/account"
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
	proto "github.com/golang/protobuf/proto"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "execs.base")

// LocalDB index store seen by a driver, reads see the writes of the running transaction
type LocalDB interface {
	dbm.KV
	dbm.IteratorDB
}

// Driver one application executor. A fresh instance serves each transaction or query.
type Driver interface {
	SetStateDB(dbm.KV)
	SetLocalDB(LocalDB)
	GetCoinsAccount() *account.DB
	GetDriverName() string
	SetEnv(height, blocktime int64)
	// CheckTx stateless checks run before Exec
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	// ExecLocal derives local index writes from a successful receipt
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) ([]*types.KeyValue, error)
	Query(funcName string, params []byte) (proto.Message, error)
}

// DriverBase plumbing shared by drivers, embed it and override what differs
type DriverBase struct {
	statedb      dbm.KV
	localdb      LocalDB
	coinsaccount *account.DB
	height       int64
	blocktime    int64
	name         string
}

// SetName driver name, also the name its executor address derives from
func (d *DriverBase) SetName(name string) {
	d.name = name
}

// GetDriverName name
func (d *DriverBase) GetDriverName() string {
	return d.name
}

// GetExecAddr address holding the coins escrowed by this driver
func (d *DriverBase) GetExecAddr() string {
	return ExecAddress(d.name)
}

// SetEnv block context of the running transaction
func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

// GetHeight height of the block being built, or the last block for queries
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

// GetBlockTime block time
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

// SetStateDB state store, also rebinds the coins account
func (d *DriverBase) SetStateDB(db dbm.KV) {
	d.statedb = db
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount(db)
	} else {
		d.coinsaccount.SetDB(db)
	}
}

// GetStateDB state store
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

// SetLocalDB index store
func (d *DriverBase) SetLocalDB(db LocalDB) {
	d.localdb = db
}

// GetLocalDB index store
func (d *DriverBase) GetLocalDB() LocalDB {
	return d.localdb
}

// GetCoinsAccount coins ledger over the state store
func (d *DriverBase) GetCoinsAccount() *account.DB {
	return d.coinsaccount
}

// CheckTx by default a driver accepts no attached value
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	if tx.Value != 0 {
		return types.ErrNotPayable
	}
	return nil
}

// ExecLocal no index by default
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) ([]*types.KeyValue, error) {
	return nil, nil
}

// Query no queries by default
func (d *DriverBase) Query(funcName string, params []byte) (proto.Message, error) {
	blog.Debug("Query", "driver", d.name, "funcName", funcName)
	return nil, types.ErrQueryNotSupport
}
