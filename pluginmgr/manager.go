// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pluginmgr registry of dapp plugins
package pluginmgr

import (
	"sort"
	"sync"

	rpctypes "github.com/33cn/rps/rpc/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	mu          sync.RWMutex
	pluginItems = make(map[string]Plugin)
)

// Register called from the init of a plugin package
func Register(p Plugin) {
	if p == nil {
		panic("plugin param is nil")
	}
	packageName := p.GetName()
	if len(packageName) == 0 {
		panic("plugin package name is empty")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, ok := pluginItems[packageName]; ok {
		panic("execute plugin item is existed. name = " + packageName)
	}
	pluginItems[packageName] = p
}

// sorted so that commands and services come out in a stable order
func items() []Plugin {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(pluginItems))
	for name := range pluginItems {
		names = append(names, name)
	}
	sort.Strings(names)
	list := make([]Plugin, 0, len(names))
	for _, name := range names {
		list = append(list, pluginItems[name])
	}
	return list
}

// AddCmd adds every plugin command to rootCmd
func AddCmd(rootCmd *cobra.Command) {
	for _, item := range items() {
		item.AddCmd(rootCmd)
	}
}

// AddRPC registers every plugin service on s
func AddRPC(s rpctypes.RPCServer) error {
	for _, item := range items() {
		if err := item.AddRPC(s); err != nil {
			return errors.Wrapf(err, "plugin %s rpc", item.GetName())
		}
	}
	return nil
}
