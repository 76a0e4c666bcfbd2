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

// GameCmd pair games
func GameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Games keyed by the pair of players",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		StartGameCmd(),
		JoinGameCmd(),
		CommitCmd(),
		RevealGameCmd(),
		ClaimCmd(),
		ShowGameCmd(),
		ListGamesCmd(),
		GameIDCmd(),
	)
	return cmd
}

func addGameIDFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("game", "g", "", "game id")
	cmd.MarkFlagRequired("game")
}

// StartGameCmd open a game against a peer
func StartGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Open a game against --peer, --amount must cover --price",
		Run:   startGame,
	}
	addStartGameFlags(cmd)
	return cmd
}

func addStartGameFlags(cmd *cobra.Command) {
	commands.AddKeyFlag(cmd)
	cmd.Flags().String("peer", "", "address of the opponent")
	cmd.MarkFlagRequired("peer")
	cmd.Flags().StringP("price", "p", "", "stake of each player in coins")
	cmd.MarkFlagRequired("price")
	cmd.Flags().StringP("amount", "a", "", "coins sent, the price when empty")
	cmd.Flags().Int64P("timeout", "t", 0, "timeout in blocks")
	cmd.MarkFlagRequired("timeout")
	cmd.Flags().String("id", "", "explicit game id, stored as keccak(creator, id); the pair id when empty")
	addCommitFlags(cmd)
}

func startGame(cmd *cobra.Command, args []string) {
	price, err := commands.ParseAmountFlag(cmd, "price")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	amount, err := commands.ParseAmountFlag(cmd, "amount")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if amount == 0 {
		amount = price
	}
	hash, err := commitment(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	peer, _ := cmd.Flags().GetString("peer")
	timeout, _ := cmd.Flags().GetInt64("timeout")
	id, _ := cmd.Flags().GetString("id")
	commands.SendTx(cmd, rt.StartGameTx(peer, price, timeout, hash, id, amount))
}

// JoinGameCmd the peer pays in
func JoinGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join an open game as its named peer",
		Run:   joinGame,
	}
	commands.AddKeyFlag(cmd)
	addGameIDFlag(cmd)
	cmd.Flags().StringP("amount", "a", "", "coins sent with the join")
	cmd.MarkFlagRequired("amount")
	addCommitFlags(cmd)
	return cmd
}

func joinGame(cmd *cobra.Command, args []string) {
	amount, err := commands.ParseAmountFlag(cmd, "amount")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	hash, err := commitment(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	id, _ := cmd.Flags().GetString("game")
	commands.SendTx(cmd, rt.JoinGameTx(id, hash, amount))
}

// CommitCmd commit on a game
func CommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Commit a move, give --hash or --move with --secret",
		Run:   commit,
	}
	commands.AddKeyFlag(cmd)
	addGameIDFlag(cmd)
	addCommitFlags(cmd)
	return cmd
}

func commit(cmd *cobra.Command, args []string) {
	hash, err := commitment(cmd)
	if err != nil || hash == "" {
		fmt.Fprintln(os.Stderr, "need --hash or --move with --secret", err)
		return
	}
	id, _ := cmd.Flags().GetString("game")
	commands.SendTx(cmd, rt.CommitTx(id, hash))
}

// RevealGameCmd reveal on a game
func RevealGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal the committed move, the second reveal settles the game",
		Run:   revealGame,
	}
	commands.AddKeyFlag(cmd)
	addGameIDFlag(cmd)
	addMoveFlags(cmd)
	return cmd
}

func revealGame(cmd *cobra.Command, args []string) {
	move, secret, err := moveFlags(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	id, _ := cmd.Flags().GetString("game")
	commands.SendTx(cmd, rt.RevealGameTx(id, move, secret))
}

// ClaimCmd settle after the timeout
func ClaimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Settle a game whose timeout elapsed",
		Run:   claim,
	}
	commands.AddKeyFlag(cmd)
	addGameIDFlag(cmd)
	return cmd
}

func claim(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("game")
	commands.SendTx(cmd, rt.ClaimTx(id))
}

// ShowGameCmd game state
func ShowGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a game and what --addr may do next",
		Run:   showGame,
	}
	addGameIDFlag(cmd)
	cmd.Flags().StringP("addr", "a", "", "address the flags are evaluated for")
	return cmd
}

func showGame(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	id, _ := cmd.Flags().GetString("game")
	addr, _ := cmd.Flags().GetString("addr")
	var res rt.ReplyGame
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "rps.GetGame", &rt.ReqGame{GameId: id, Addr: addr}, &res)
	ctx.Run()
}

// ListGamesCmd games by status
func ListGamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games by status (1 open, 2 matched, 3 resolved)",
		Run:   listGames,
	}
	cmd.Flags().Int32P("status", "s", 0, "game status")
	cmd.MarkFlagRequired("status")
	cmd.Flags().StringP("addr", "a", "", "only games of this address")
	addPageFlags(cmd)
	return cmd
}

func listGames(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	status, _ := cmd.Flags().GetInt32("status")
	addr, _ := cmd.Flags().GetString("addr")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	index, _ := cmd.Flags().GetInt64("index")
	req := &rt.ReqListGames{Status: status, Addr: addr, Count: count, Direction: direction, Index: index}
	var res rt.ReplyGameList
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "rps.ListGames", req, &res)
	ctx.Run()
}

// GameIDCmd pair id of two addresses, or the stored id of an explicit game id
func GameIDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "id",
		Short: "Id of the pair game of two addresses, or of --id started by --addr1",
		Run:   gameID,
	}
	cmd.Flags().String("addr1", "", "first address, the creator with --id")
	cmd.MarkFlagRequired("addr1")
	cmd.Flags().String("addr2", "", "second address")
	cmd.Flags().String("id", "", "explicit game id given to game start")
	return cmd
}

func gameID(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	addr1, _ := cmd.Flags().GetString("addr1")
	addr2, _ := cmd.Flags().GetString("addr2")
	id, _ := cmd.Flags().GetString("id")
	var res rt.ReplyHash
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "rps.GameID", &rt.ReqGameId{Addr1: addr1, Addr2: addr2, Id: id}, &res)
	ctx.Run()
}
