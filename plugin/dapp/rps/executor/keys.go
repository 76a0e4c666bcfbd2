// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
)

var (
	statePrefix = types.StatePrefix + rt.RpsX + "-"
	localPrefix = types.LocalPrefix + rt.RpsX + "-"
)

// TableKey state key of a table
func TableKey(id string) []byte {
	return []byte(statePrefix + "table-" + id)
}

// GameKey state key of a game
func GameKey(id string) []byte {
	return []byte(statePrefix + "game-" + id)
}

func calcTableOwnerIndexKey(owner string, index int64) []byte {
	return []byte(fmt.Sprintf("%stable-owner:%s:%018d", localPrefix, owner, index))
}

func calcTableOwnerIndexPrefix(owner string) []byte {
	return []byte(fmt.Sprintf("%stable-owner:%s:", localPrefix, owner))
}

func calcGameStatusIndexKey(status int32, index int64) []byte {
	return []byte(fmt.Sprintf("%sgame-status:%d:%018d", localPrefix, status, index))
}

func calcGameStatusIndexPrefix(status int32) []byte {
	return []byte(fmt.Sprintf("%sgame-status:%d:", localPrefix, status))
}

func calcGameAddrIndexKey(status int32, addr string, index int64) []byte {
	return []byte(fmt.Sprintf("%sgame-addr:%d:%s:%018d", localPrefix, status, addr, index))
}

func calcGameAddrIndexPrefix(status int32, addr string) []byte {
	return []byte(fmt.Sprintf("%sgame-addr:%d:%s:", localPrefix, status, addr))
}
