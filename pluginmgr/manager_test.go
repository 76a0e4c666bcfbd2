// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"testing"

	rpctypes "github.com/33cn/rps/rpc/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServer struct {
	names []string
	err   error
}

func (s *fakeServer) GetAPI() rpctypes.ChainAPI { return nil }

func (s *fakeServer) RegisterName(name string, rcvr interface{}) error {
	s.names = append(s.names, name)
	return s.err
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	pluginItems = make(map[string]Plugin)
}

func TestRegister(t *testing.T) {
	reset()
	defer reset()

	Register(&PluginBase{
		Name:     "b",
		ExecName: "bexec",
		Cmd:      func() *cobra.Command { return &cobra.Command{Use: "b"} },
		RPC: func(name string, s rpctypes.RPCServer) error {
			return s.RegisterName(name, struct{}{})
		},
	})
	Register(&PluginBase{Name: "a", ExecName: "aexec"})
	assert.Panics(t, func() { Register(&PluginBase{Name: "a"}) })
	assert.Panics(t, func() { Register(&PluginBase{}) })
	assert.Panics(t, func() { Register(nil) })

	root := &cobra.Command{Use: "root"}
	AddCmd(root)
	require.Len(t, root.Commands(), 1)
	assert.Equal(t, "b", root.Commands()[0].Use)

	s := &fakeServer{}
	require.NoError(t, AddRPC(s))
	assert.Equal(t, []string{"bexec"}, s.names)

	s = &fakeServer{err: errors.New("dup")}
	err := AddRPC(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plugin b rpc")
}
