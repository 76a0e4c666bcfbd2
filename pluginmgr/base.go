// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	rpctypes "github.com/33cn/rps/rpc/types"
	"github.com/spf13/cobra"
)

// PluginBase plugin made of optional parts, the executor registers itself from its own init
type PluginBase struct {
	Name     string
	ExecName string
	RPC      func(name string, s rpctypes.RPCServer) error
	Cmd      func() *cobra.Command
}

// GetName package name
func (p *PluginBase) GetName() string {
	return p.Name
}

// GetExecutorName executor name
func (p *PluginBase) GetExecutorName() string {
	return p.ExecName
}

// AddCmd adds the command of the plugin to rootCmd
func (p *PluginBase) AddCmd(rootCmd *cobra.Command) {
	if p.Cmd != nil {
		cmd := p.Cmd()
		if cmd == nil {
			return
		}
		rootCmd.AddCommand(cmd)
	}
}

// AddRPC registers the rpc service of the plugin
func (p *PluginBase) AddRPC(c rpctypes.RPCServer) error {
	if p.RPC != nil {
		return p.RPC(p.GetExecutorName(), c)
	}
	return nil
}
