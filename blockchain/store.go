// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/33cn/rps/common"
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
)

var blockLastHeight = []byte("Chain:Height")

//存储block height 对应的header信息
func calcHeightToHeaderKey(height int64) []byte {
	return []byte(fmt.Sprintf("Header:%012d", height))
}

//存储tx hash对应的执行结果
func calcTxKey(hash []byte) []byte {
	return []byte("TX:" + common.ToHex(hash))
}

// loadHeight -1 on a fresh database
func loadHeight(db dbm.KV) (int64, error) {
	data, err := db.Get(blockLastHeight)
	if err == dbm.ErrNotFoundInDb {
		return -1, nil
	}
	if err != nil {
		return -1, err
	}
	var h types.Int64
	if err := types.Decode(data, &h); err != nil {
		return -1, err
	}
	return h.Data, nil
}

func loadHeader(db dbm.KV, height int64) (*types.Header, error) {
	data, err := db.Get(calcHeightToHeaderKey(height))
	if err == dbm.ErrNotFoundInDb {
		return nil, errors.Wrapf(types.ErrNotFound, "header %d", height)
	}
	if err != nil {
		return nil, err
	}
	var header types.Header
	if err := types.Decode(data, &header); err != nil {
		return nil, err
	}
	return &header, nil
}

func loadTxResult(db dbm.KV, hash []byte) (*types.TxResult, error) {
	data, err := db.Get(calcTxKey(hash))
	if err == dbm.ErrNotFoundInDb {
		return nil, errors.Wrapf(types.ErrNotFound, "tx %s", common.ToHex(hash))
	}
	if err != nil {
		return nil, err
	}
	var res types.TxResult
	if err := types.Decode(data, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// newHeader links a block to its parent, Hash covers every other field
func newHeader(height, blocktime int64, parent, txhash []byte) *types.Header {
	header := &types.Header{Height: height, BlockTime: blocktime, ParentHash: parent, TxHash: txhash}
	header.Hash = common.Keccak256(types.Encode(header))
	return header
}

// writeBlock commits the writes of a block in one batch
func writeBlock(db dbm.DB, header *types.Header, kvs []*types.KeyValue, result *types.TxResult) error {
	batch := db.NewBatch(true)
	for _, kv := range kvs {
		if kv.Value == nil {
			batch.Delete(kv.Key)
		} else {
			batch.Set(kv.Key, kv.Value)
		}
	}
	if result != nil {
		batch.Set(calcTxKey(header.TxHash), types.Encode(result))
	}
	batch.Set(calcHeightToHeaderKey(header.Height), types.Encode(header))
	batch.Set(blockLastHeight, types.Encode(&types.Int64{Data: header.Height}))
	return batch.Write()
}
