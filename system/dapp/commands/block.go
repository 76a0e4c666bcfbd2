// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/rps/rpc/jsonclient"
	rpctypes "github.com/33cn/rps/rpc/types"
	"github.com/spf13/cobra"
)

// BlockCmd block command
func BlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Get block header or height, mine empty blocks",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		HeightCmd(),
		HeaderCmd(),
		MineCmd(),
	)
	return cmd
}

// HeightCmd last height
func HeightCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "height",
		Short: "Height of the last block",
		Run:   height,
	}
	return cmd
}

func height(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	var res int64
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain.Height", rpctypes.ReqNil{}, &res)
	ctx.Run()
}

// HeaderCmd header at a height
func HeaderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "header",
		Short: "Header of the block at --height",
		Run:   header,
	}
	cmd.Flags().Int64P("height", "t", 0, "block height")
	cmd.MarkFlagRequired("height")
	return cmd
}

func header(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	h, _ := cmd.Flags().GetInt64("height")
	var res rpctypes.Header
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain.GetHeader", rpctypes.ReqInt{Data: h}, &res)
	ctx.Run()
}

// MineCmd empty blocks, lets block timeouts elapse on a local node
func MineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mine",
		Short: "Append empty blocks",
		Run:   mine,
	}
	cmd.Flags().Int64P("count", "n", 1, "number of blocks")
	return cmd
}

func mine(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	n, _ := cmd.Flags().GetInt64("count")
	var res int64
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain.MineBlocks", rpctypes.ReqInt{Data: n}, &res)
	ctx.Run()
}

// MetricsCmd counters of the node
func MetricsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Snapshot of the node counters",
		Run:   nodeMetrics,
	}
	return cmd
}

func nodeMetrics(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	var res map[string]float64
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain.GetMetrics", rpctypes.ReqNil{}, &res)
	ctx.Run()
}
