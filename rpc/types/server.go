// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"context"

	"github.com/33cn/rps/types"
	proto "github.com/golang/protobuf/proto"
)

// ChainAPI what the rpc layer needs from the node, implemented by blockchain.BlockChain
type ChainAPI interface {
	SendTransaction(tx *types.Transaction) (*types.TxResult, error)
	Query(execer, funcName string, params []byte) (proto.Message, error)
	GetTxResult(hash []byte) (*types.TxResult, error)
	GetHeader(height int64) (*types.Header, error)
	GetBalance(addr, execer string) (*types.AccountBalance, error)
	MineBlocks(n int) (int64, error)
	Height() int64
}

// RPCServer plugins register their json rpc receivers on it
type RPCServer interface {
	GetAPI() ChainAPI
	RegisterName(name string, rcvr interface{}) error
}

// EventSource read side of the event archive, implemented by eventstore.Store
type EventSource interface {
	ByTx(ctx context.Context, hash []byte) ([]*Event, error)
	ByName(ctx context.Context, name string, fromHeight int64, limit int) ([]*Event, error)
	Since(ctx context.Context, execer string, fromHeight int64, limit int) ([]*Event, error)
	LastHeight(ctx context.Context) (int64, error)
}
