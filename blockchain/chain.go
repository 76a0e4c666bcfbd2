// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blockchain a single writer ledger.
//
// Every accepted transaction is executed and stored as its own block at height+1.
// Rejected transactions leave no block, no receipt and no state change.
// MineBlocks appends empty blocks so that timeouts measured in blocks can elapse.
package blockchain

import (
	"sync"
	"time"

	"github.com/33cn/rps/account"
	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/address"
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/executor"
	"github.com/33cn/rps/metrics"
	"github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
	proto "github.com/golang/protobuf/proto"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var chainlog = log.New("module", "blockchain")

var (
	txOkCounter   = metrics.Counter("blockchain.tx.ok")
	txFailCounter = metrics.Counter("blockchain.tx.fail")
	txExecTimer   = metrics.Timer("blockchain.tx.exec")
	heightGauge   = metrics.Gauge("blockchain.height")
)

// Subscriber receives every stored transaction in block order
type Subscriber func(result *types.TxResult)

// BlockChain ledger plus executor
type BlockChain struct {
	mu          sync.RWMutex
	db          dbm.DB
	exec        *executor.Executor
	height      int64
	lastHash    []byte
	subscribers []Subscriber
	now         func() int64
}

// New opens the store named by cfg
func New(cfg *types.Config, sub *types.ConfigSubModule) (*BlockChain, error) {
	db, err := dbm.NewDB(cfg.Store.Name, cfg.Store.Driver, cfg.Store.DbPath, int(cfg.Store.DbCache))
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}
	chain, err := NewWithDB(db, cfg.Genesis, sub)
	if err != nil {
		db.Close()
		return nil, err
	}
	return chain, nil
}

// NewWithDB chain over db, an empty db is initialised with the genesis block
func NewWithDB(db dbm.DB, genesis []*types.GenesisAlloc, sub *types.ConfigSubModule) (*BlockChain, error) {
	chain := &BlockChain{
		db:   db,
		exec: executor.New(db, sub),
		now:  func() int64 { return time.Now().Unix() },
	}
	height, err := loadHeight(db)
	if err != nil {
		return nil, err
	}
	if height < 0 {
		if err := chain.genesis(genesis); err != nil {
			return nil, err
		}
		height = 0
	}
	header, err := loadHeader(db, height)
	if err != nil {
		return nil, err
	}
	chain.height = height
	chain.lastHash = header.Hash
	heightGauge.Update(height)
	chainlog.Info("NewBlockChain", "height", height, "hash", common.ToHex(header.Hash))
	return chain, nil
}

func (chain *BlockChain) genesis(allocs []*types.GenesisAlloc) error {
	state := executor.NewStateDB(chain.db)
	acc := account.NewCoinsAccount(state)
	for _, alloc := range allocs {
		addr, err := address.Normalize(alloc.Addr)
		if err != nil {
			return errors.Wrapf(types.ErrConfig, "genesis addr %s", alloc.Addr)
		}
		amount, err := types.ParseAmount(alloc.Amount)
		if err != nil {
			return errors.Wrapf(types.ErrConfig, "genesis amount %s", alloc.Amount)
		}
		if _, err := acc.GenesisInit(addr, amount); err != nil {
			return err
		}
		chainlog.Info("genesis", "addr", addr, "amount", alloc.Amount)
	}
	header := newHeader(0, chain.now(), nil, nil)
	return writeBlock(chain.db, header, state.KVList(), nil)
}

// SetClock replaces the block time source
func (chain *BlockChain) SetClock(now func() int64) {
	chain.mu.Lock()
	defer chain.mu.Unlock()
	chain.now = now
}

// Subscribe sub is called after every stored transaction, under the chain lock
func (chain *BlockChain) Subscribe(sub Subscriber) {
	chain.mu.Lock()
	defer chain.mu.Unlock()
	chain.subscribers = append(chain.subscribers, sub)
}

// SendTransaction executes tx in a new block
func (chain *BlockChain) SendTransaction(tx *types.Transaction) (*types.TxResult, error) {
	chain.mu.Lock()
	defer chain.mu.Unlock()

	hash := tx.Hash()
	if _, err := chain.db.Get(calcTxKey(hash)); err == nil {
		txFailCounter.Inc(1)
		return nil, types.ErrTxDup
	}
	height := chain.height + 1
	blocktime := chain.now()
	begin := time.Now()
	res, err := chain.exec.ExecTx(tx, height, blocktime, 0)
	txExecTimer.UpdateSince(begin)
	if err != nil {
		txFailCounter.Inc(1)
		chainlog.Debug("SendTransaction", "hash", common.ToHex(hash), "execer", tx.Execer, "err", err)
		return nil, err
	}
	header := newHeader(height, blocktime, chain.lastHash, hash)
	result := &types.TxResult{
		Height:    height,
		BlockTime: blocktime,
		Tx:        tx,
		Receipt:   res.Receipt,
		From:      res.From,
	}
	if err := writeBlock(chain.db, header, res.KV, result); err != nil {
		chainlog.Error("SendTransaction", "height", height, "err", err)
		return nil, err
	}
	chain.advance(header)
	txOkCounter.Inc(1)
	for _, sub := range chain.subscribers {
		sub(result)
	}
	return result, nil
}

// MineBlocks appends n empty blocks, returns the new height
func (chain *BlockChain) MineBlocks(n int) (int64, error) {
	if n < 0 {
		return 0, types.ErrInvalidParam
	}
	chain.mu.Lock()
	defer chain.mu.Unlock()
	for i := 0; i < n; i++ {
		header := newHeader(chain.height+1, chain.now(), chain.lastHash, nil)
		if err := writeBlock(chain.db, header, nil, nil); err != nil {
			return chain.height, err
		}
		chain.advance(header)
	}
	return chain.height, nil
}

func (chain *BlockChain) advance(header *types.Header) {
	chain.height = header.Height
	chain.lastHash = header.Hash
	heightGauge.Update(header.Height)
}

// Height of the last block
func (chain *BlockChain) Height() int64 {
	chain.mu.RLock()
	defer chain.mu.RUnlock()
	return chain.height
}

// GetHeader header at height
func (chain *BlockChain) GetHeader(height int64) (*types.Header, error) {
	chain.mu.RLock()
	defer chain.mu.RUnlock()
	if height < 0 || height > chain.height {
		return nil, errors.Wrapf(types.ErrNotFound, "header %d", height)
	}
	return loadHeader(chain.db, height)
}

// GetTxResult stored result of a transaction
func (chain *BlockChain) GetTxResult(hash []byte) (*types.TxResult, error) {
	chain.mu.RLock()
	defer chain.mu.RUnlock()
	return loadTxResult(chain.db, hash)
}

// Query read only executor function at the current height
func (chain *BlockChain) Query(execer, funcName string, params []byte) (proto.Message, error) {
	chain.mu.RLock()
	defer chain.mu.RUnlock()
	return chain.exec.Query(execer, funcName, params, chain.height)
}

// GetBalance wallet of addr and its account inside execer
func (chain *BlockChain) GetBalance(addr, execer string) (*types.AccountBalance, error) {
	addr, err := address.Normalize(addr)
	if err != nil {
		return nil, err
	}
	if execer == "" {
		execer = types.CoinsExecName
	}
	if _, err := dapp.LoadDriver(execer); err != nil {
		return nil, err
	}
	chain.mu.RLock()
	defer chain.mu.RUnlock()
	acc := account.NewCoinsAccount(chain.db)
	execaddr := dapp.ExecAddress(execer)
	execacc := acc.LoadExecAccount(addr, execaddr)
	return &types.AccountBalance{
		Addr:     addr,
		Execer:   execer,
		ExecAddr: execaddr,
		Wallet:   acc.LoadAccount(addr).Balance,
		Balance:  execacc.Balance,
		Frozen:   execacc.Frozen,
	}, nil
}

// SumExecAccounts total Balance and Frozen over every account inside execer
func (chain *BlockChain) SumExecAccounts(execer string) (balance, frozen int64) {
	chain.mu.RLock()
	defer chain.mu.RUnlock()
	acc := account.NewCoinsAccount(chain.db)
	it := chain.db.Iterator(acc.ExecAccountPrefix(dapp.ExecAddress(execer)), false)
	defer it.Close()
	for ok := it.Rewind(); ok; ok = it.Next() {
		var a types.Account
		if err := types.Decode(it.ValueCopy(), &a); err != nil {
			chainlog.Error("SumExecAccounts", "key", string(it.Key()), "err", err)
			continue
		}
		balance += a.Balance
		frozen += a.Frozen
	}
	return balance, frozen
}

// Close releases the store
func (chain *BlockChain) Close() {
	chain.mu.Lock()
	defer chain.mu.Unlock()
	chain.db.Close()
}
