// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	rpctypes "github.com/33cn/rps/rpc/types"
	"github.com/spf13/cobra"
)

// Plugin 一个dapp插件: 执行器 + 命令行 + rpc
type Plugin interface {
	// 获取整个插件的包名，用以计算唯一值、做前缀等
	GetName() string
	// 获取插件中执行器名
	GetExecutorName() string
	AddCmd(rootCmd *cobra.Command)
	AddRPC(s rpctypes.RPCServer) error
}
