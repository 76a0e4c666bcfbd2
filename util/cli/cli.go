// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli root command of the rps binary: the node plus its rpc client tools
package cli

import (
	"fmt"
	"os"

	"github.com/33cn/rps/common/log"
	"github.com/33cn/rps/pluginmgr"
	"github.com/33cn/rps/system/dapp/commands"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rps",
	Short: "rock paper scissors node and client tools",
}

func init() {
	rootCmd.AddCommand(
		NodeCmd(),
		ConfigCmd(),
		commands.AccountCmd(),
		commands.BlockCmd(),
		commands.CoinsCmd(),
		commands.TxCmd(),
		commands.MetricsCmd(),
		commands.EventsCmd(),
	)
}

//Run : RPCAddr is the default of --rpc_laddr
func Run(RPCAddr string) {
	pluginmgr.AddCmd(rootCmd)
	log.SetLogLevel("error")
	rootCmd.PersistentFlags().String("rpc_laddr", RPCAddr, "http url")
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
