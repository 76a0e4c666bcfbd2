// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"context"
	"time"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/metrics"
	rpctypes "github.com/33cn/rps/rpc/types"
	"github.com/33cn/rps/types"
	go_metrics "github.com/rcrowley/go-metrics"
)

// Chain host methods, "Chain.<Method>"
type Chain struct {
	api    rpctypes.ChainAPI
	events rpctypes.EventSource
}

// SendTransaction executes a hex encoded signed transaction in a new block
func (c *Chain) SendTransaction(in rpctypes.RawParm, result *rpctypes.TxResult) error {
	data, err := common.FromHex(in.Data)
	if err != nil {
		return types.ErrInvalidParam
	}
	var tx types.Transaction
	if err := types.Decode(data, &tx); err != nil {
		return err
	}
	res, err := c.api.SendTransaction(&tx)
	if err != nil {
		return err
	}
	*result = *rpctypes.DecodeTxResult(res)
	return nil
}

// Query runs an executor query, the payload is the hex encoded request message
func (c *Chain) Query(in rpctypes.Query4Jrpc, result *interface{}) error {
	payload, err := common.FromHex(in.Payload)
	if err != nil {
		return types.ErrInvalidParam
	}
	reply, err := c.api.Query(in.Execer, in.FuncName, payload)
	if err != nil {
		return err
	}
	*result = reply
	return nil
}

// GetTxResult stored result of a transaction hash
func (c *Chain) GetTxResult(in rpctypes.ReqHash, result *rpctypes.TxResult) error {
	hash, err := common.FromHex(in.Hash)
	if err != nil {
		return types.ErrInvalidParam
	}
	res, err := c.api.GetTxResult(hash)
	if err != nil {
		return err
	}
	*result = *rpctypes.DecodeTxResult(res)
	return nil
}

// GetHeader header at height
func (c *Chain) GetHeader(in rpctypes.ReqInt, result *rpctypes.Header) error {
	header, err := c.api.GetHeader(in.Data)
	if err != nil {
		return err
	}
	*result = *rpctypes.DecodeHeader(header)
	return nil
}

// Height of the last block
func (c *Chain) Height(in rpctypes.ReqNil, result *int64) error {
	*result = c.api.Height()
	return nil
}

// MineBlocks appends in.Data empty blocks
func (c *Chain) MineBlocks(in rpctypes.ReqInt, result *int64) error {
	height, err := c.api.MineBlocks(int(in.Data))
	if err != nil {
		return err
	}
	*result = height
	return nil
}

// GetBalance wallet and executor account of an address
func (c *Chain) GetBalance(in types.ReqBalance, result *types.AccountBalance) error {
	bal, err := c.api.GetBalance(in.Addr, in.Execer)
	if err != nil {
		return err
	}
	*result = *bal
	return nil
}

// GetMetrics snapshot of the node counters
func (c *Chain) GetMetrics(in rpctypes.ReqNil, result *map[string]float64) error {
	*result = metrics.Snapshot(go_metrics.DefaultRegistry)
	return nil
}

// GetEvents reads the event archive, by tx hash, by log name or by executor
func (c *Chain) GetEvents(in rpctypes.ReqEvents, result *rpctypes.ReplyEvents) error {
	if c.events == nil {
		return types.ErrEventStoreDisable
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var events []*rpctypes.Event
	var err error
	switch {
	case in.TxHash != "":
		hash, herr := common.FromHex(in.TxHash)
		if herr != nil {
			return types.ErrInvalidParam
		}
		events, err = c.events.ByTx(ctx, hash)
	case in.TyName != "":
		events, err = c.events.ByName(ctx, in.TyName, in.FromHeight, in.Limit)
	case in.Execer != "":
		events, err = c.events.Since(ctx, in.Execer, in.FromHeight, in.Limit)
	default:
		return types.ErrInvalidParam
	}
	if err != nil {
		log.Error("GetEvents", "err", err)
		return err
	}
	last, err := c.events.LastHeight(ctx)
	if err != nil {
		return err
	}
	result.LastHeight = last
	result.Events = events
	if result.Events == nil {
		result.Events = []*rpctypes.Event{}
	}
	return nil
}
