// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/rps/rpc/jsonclient"
	rpctypes "github.com/33cn/rps/rpc/types"
	"github.com/spf13/cobra"
)

// EventsCmd reads the event archive of the node
func EventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Archived receipt logs by --tx, --name or --exec",
		Run:   events,
	}
	addEventsFlags(cmd)
	return cmd
}

func addEventsFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("tx", "s", "", "transaction hash")
	cmd.Flags().StringP("name", "n", "", "log name, e.g. LogGameResolve")
	cmd.Flags().StringP("exec", "e", "", "executor name")
	cmd.Flags().Int64P("from", "f", 0, "first height")
	cmd.Flags().IntP("limit", "l", 100, "max rows")
}

func events(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	hash, _ := cmd.Flags().GetString("tx")
	name, _ := cmd.Flags().GetString("name")
	execer, _ := cmd.Flags().GetString("exec")
	from, _ := cmd.Flags().GetInt64("from")
	limit, _ := cmd.Flags().GetInt("limit")
	req := rpctypes.ReqEvents{TxHash: hash, TyName: name, Execer: execer, FromHeight: from, Limit: limit}
	var res rpctypes.ReplyEvents
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain.GetEvents", req, &res)
	ctx.Run()
}
