// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor runs transactions through the registered drivers.
//
// Each transaction gets its own state and local overlays. The writes of a transaction
// leave the executor only when the driver succeeds, so a failed call leaves no trace.
package executor

import (
	"bytes"
	"fmt"

	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
	proto "github.com/golang/protobuf/proto"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var elog = log.New("module", "execs")

// Executor dispatches transactions and queries to drivers
type Executor struct {
	db dbm.DB
}

// ExecResult effect of one successful transaction
type ExecResult struct {
	From    string
	Receipt *types.ReceiptData
	// state writes first, then local index writes
	KV []*types.KeyValue
}

// New executor over db, drivers receive their [exec.sub.<name>] sections
func New(db dbm.DB, sub *types.ConfigSubModule) *Executor {
	dapp.InitDrivers(sub)
	return &Executor{db: db}
}

// CheckTx stateless checks, returns the sender
func (exec *Executor) CheckTx(tx *types.Transaction) (string, error) {
	if tx.Size() > types.MaxTxSize {
		return "", types.ErrTxSize
	}
	if tx.Value < 0 {
		return "", types.ErrAmount
	}
	from, err := tx.From()
	if err != nil {
		return "", err
	}
	if _, err := dapp.LoadDriver(tx.Execer); err != nil {
		return "", errors.Wrapf(err, "execer %q", tx.Execer)
	}
	return from, nil
}

// ExecTx executes tx as transaction index of block height
func (exec *Executor) ExecTx(tx *types.Transaction, height, blocktime int64, index int) (result *ExecResult, err error) {
	from, err := exec.CheckTx(tx)
	if err != nil {
		return nil, err
	}
	driver, err := dapp.LoadDriver(tx.Execer)
	if err != nil {
		return nil, err
	}
	state := NewStateDB(exec.db)
	local := NewStateDB(exec.db)
	driver.SetStateDB(state)
	driver.SetLocalDB(local)
	driver.SetEnv(height, blocktime)

	defer func() {
		if r := recover(); r != nil {
			elog.Crit("ExecTx panic", "execer", tx.Execer, "height", height, "info", r)
			result, err = nil, fmt.Errorf("exec %s panic: %v", tx.Execer, r)
		}
	}()

	if err := driver.CheckTx(tx, index); err != nil {
		return nil, err
	}
	receipt, err := driver.Exec(tx, index)
	if err != nil {
		elog.Debug("ExecTx", "execer", tx.Execer, "from", from, "err", err)
		return nil, err
	}
	if receipt == nil || receipt.Ty != types.ExecOk {
		return nil, errors.Wrap(types.ErrActionNotSupport, "driver returned no receipt")
	}
	kvs := state.KVList()
	if err := checkPrefix(kvs, types.StatePrefix); err != nil {
		return nil, err
	}
	rdata := &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}
	lkvs, err := driver.ExecLocal(tx, rdata, index)
	if err != nil {
		return nil, err
	}
	if err := checkPrefix(lkvs, types.LocalPrefix); err != nil {
		return nil, err
	}
	for _, kv := range lkvs {
		if err := local.Set(kv.Key, kv.Value); err != nil {
			return nil, err
		}
	}
	kvs = append(kvs, local.KVList()...)
	return &ExecResult{From: from, Receipt: rdata, KV: kvs}, nil
}

// Query runs a read only function of execer against the committed state at height
func (exec *Executor) Query(execer, funcName string, params []byte, height int64) (proto.Message, error) {
	driver, err := dapp.LoadDriver(execer)
	if err != nil {
		return nil, err
	}
	driver.SetStateDB(NewStateDB(exec.db))
	driver.SetLocalDB(NewStateDB(exec.db))
	driver.SetEnv(height, 0)
	return driver.Query(funcName, params)
}

func checkPrefix(kvs []*types.KeyValue, prefix string) error {
	for _, kv := range kvs {
		if !bytes.HasPrefix(kv.Key, []byte(prefix)) {
			return errors.Wrapf(types.ErrInvalidParam, "key %q outside %s", kv.Key, prefix)
		}
	}
	return nil
}
