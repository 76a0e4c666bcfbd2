// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rps commit reveal rock paper scissors with escrowed stakes
package rps

import (
	"github.com/33cn/rps/plugin/dapp/rps/commands"
	"github.com/33cn/rps/plugin/dapp/rps/executor"
	"github.com/33cn/rps/plugin/dapp/rps/rpc"
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     rt.RpsX,
		ExecName: executor.GetName(),
		Cmd:      commands.Cmd,
		RPC:      rpc.Init,
	})
}
