// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
)

/*
  本地索引:
     状态索引: key = game-status:status:HeightIndex
     状态地址索引: key = game-addr:status:addr:HeightIndex, 两个玩家各一条
     游戏桌索引: key = table-owner:owner:HeightIndex
  HeightIndex = fmt.Sprintf("%018d", height*types.MaxTxsPerBlock+index)
  状态变化时先删除旧状态(PrevStatus, PrevIndex)的索引, 再建立新状态的索引, 以免形成脏数据。
*/

func updateGameIndex(log *rt.ReceiptGame) (kvs []*types.KeyValue) {
	if log.Status == log.PrevStatus {
		return nil
	}
	if log.PrevStatus != rt.GameStatusNone {
		kvs = append(kvs, delGameStatusIndex(log.PrevStatus, log.PrevIndex))
		for _, addr := range []string{log.PrevPlayer1, log.PrevPlayer2} {
			if addr != "" {
				kvs = append(kvs, delGameAddrIndex(log.PrevStatus, addr, log.PrevIndex))
			}
		}
	}
	kvs = append(kvs, addGameStatusIndex(log.Status, log.GameId, log.Index))
	kvs = append(kvs, addGameAddrIndex(log.Status, log.GameId, log.Player1, log.Index))
	kvs = append(kvs, addGameAddrIndex(log.Status, log.GameId, log.Player2, log.Index))
	return kvs
}

func addGameStatusIndex(status int32, gameID string, index int64) *types.KeyValue {
	record := &rt.GameRecord{GameId: gameID, Index: index}
	return &types.KeyValue{Key: calcGameStatusIndexKey(status, index), Value: types.Encode(record)}
}

func addGameAddrIndex(status int32, gameID, addr string, index int64) *types.KeyValue {
	record := &rt.GameRecord{GameId: gameID, Index: index}
	return &types.KeyValue{Key: calcGameAddrIndexKey(status, addr, index), Value: types.Encode(record)}
}

func delGameStatusIndex(status int32, index int64) *types.KeyValue {
	return &types.KeyValue{Key: calcGameStatusIndexKey(status, index), Value: nil}
}

func delGameAddrIndex(status int32, addr string, index int64) *types.KeyValue {
	return &types.KeyValue{Key: calcGameAddrIndexKey(status, addr, index), Value: nil}
}

func addTableOwnerIndex(owner, tableID string, index int64) *types.KeyValue {
	record := &rt.TableRecord{TableId: tableID, Index: index}
	return &types.KeyValue{Key: calcTableOwnerIndexKey(owner, index), Value: types.Encode(record)}
}
