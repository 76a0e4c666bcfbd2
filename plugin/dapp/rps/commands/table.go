// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"

	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/rpc/jsonclient"
	"github.com/33cn/rps/system/dapp/commands"
	"github.com/spf13/cobra"
)

// TableCmd single slot tables
func TableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Two player table, reused after every round",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreateTableCmd(),
		EnrolCmd(),
		PlayCmd(),
		RevealTableCmd(),
		ChooseWinnerCmd(),
		ShowTableCmd(),
		ListTablesCmd(),
	)
	return cmd
}

// CreateTableCmd create table
func CreateTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a table, the signer becomes its owner",
		Run:   createTable,
	}
	addCreateTableFlags(cmd)
	return cmd
}

func addCreateTableFlags(cmd *cobra.Command) {
	commands.AddKeyFlag(cmd)
	cmd.Flags().StringP("price", "p", "", "stake of each player in coins")
	cmd.MarkFlagRequired("price")
	cmd.Flags().Int64P("timeout", "t", 0, "timeout in blocks")
	cmd.MarkFlagRequired("timeout")
	cmd.Flags().String("trigger", "", "owner, anyparticipant or anycaller, empty for the node default")
}

func createTable(cmd *cobra.Command, args []string) {
	price, err := commands.ParseAmountFlag(cmd, "price")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	timeout, _ := cmd.Flags().GetInt64("timeout")
	trigger, _ := cmd.Flags().GetString("trigger")
	commands.SendTx(cmd, rt.CreateTableTx(price, timeout, trigger))
}

func addTableIDFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("table", "i", "", "table id")
	cmd.MarkFlagRequired("table")
}

// EnrolCmd pay into a table
func EnrolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enrol",
		Short: "Enrol at a table, the paid amount must cover the price",
		Run:   enrol,
	}
	commands.AddKeyFlag(cmd)
	addTableIDFlag(cmd)
	cmd.Flags().StringP("amount", "a", "", "coins sent with the enrolment")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func enrol(cmd *cobra.Command, args []string) {
	amount, err := commands.ParseAmountFlag(cmd, "amount")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	id, _ := cmd.Flags().GetString("table")
	commands.SendTx(cmd, rt.EnrolTx(id, amount))
}

// PlayCmd commit a move on a table
func PlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Commit a move, give --hash or --move with --secret",
		Run:   play,
	}
	commands.AddKeyFlag(cmd)
	addTableIDFlag(cmd)
	addCommitFlags(cmd)
	return cmd
}

func play(cmd *cobra.Command, args []string) {
	hash, err := commitment(cmd)
	if err != nil || hash == "" {
		fmt.Fprintln(os.Stderr, "need --hash or --move with --secret", err)
		return
	}
	id, _ := cmd.Flags().GetString("table")
	commands.SendTx(cmd, rt.PlayTx(id, hash))
}

// RevealTableCmd reveal on a table
func RevealTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal the committed move",
		Run:   revealTable,
	}
	commands.AddKeyFlag(cmd)
	addTableIDFlag(cmd)
	addMoveFlags(cmd)
	return cmd
}

func revealTable(cmd *cobra.Command, args []string) {
	move, secret, err := moveFlags(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	id, _ := cmd.Flags().GetString("table")
	commands.SendTx(cmd, rt.RevealTableTx(id, move, secret))
}

// ChooseWinnerCmd resolve a table
func ChooseWinnerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "choose",
		Short: "Settle a finished table",
		Run:   chooseWinner,
	}
	commands.AddKeyFlag(cmd)
	addTableIDFlag(cmd)
	return cmd
}

func chooseWinner(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("table")
	commands.SendTx(cmd, rt.ChooseWinnerTx(id))
}

// ShowTableCmd table state
func ShowTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a table and what --addr may do next",
		Run:   showTable,
	}
	addTableIDFlag(cmd)
	cmd.Flags().StringP("addr", "a", "", "address the flags are evaluated for")
	return cmd
}

func showTable(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	id, _ := cmd.Flags().GetString("table")
	addr, _ := cmd.Flags().GetString("addr")
	var res rt.ReplyTable
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "rps.GetTable", &rt.ReqTable{TableId: id, Addr: addr}, &res)
	ctx.Run()
}

// ListTablesCmd tables of an owner
func ListTablesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the tables of an owner",
		Run:   listTables,
	}
	cmd.Flags().StringP("owner", "o", "", "owner address")
	cmd.MarkFlagRequired("owner")
	addPageFlags(cmd)
	return cmd
}

func addPageFlags(cmd *cobra.Command) {
	cmd.Flags().Int32P("count", "c", 0, "page size")
	cmd.Flags().Int32P("direction", "d", 0, "0 descending, 1 ascending")
	cmd.Flags().Int64("index", 0, "cursor, the index of the last item of the previous page")
}

func listTables(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	owner, _ := cmd.Flags().GetString("owner")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	index, _ := cmd.Flags().GetInt64("index")
	req := &rt.ReqListTables{Owner: owner, Count: count, Direction: direction, Index: index}
	var res rt.ReplyTableList
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "rps.ListTables", req, &res)
	ctx.Run()
}
