// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands rps 命令行
package commands

import (
	"fmt"
	"os"

	"github.com/33cn/rps/plugin/dapp/rps/executor"
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/rpc/jsonclient"
	"github.com/33cn/rps/system/dapp/commands"
	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Cmd rps command
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rps",
		Short: "Rock paper scissors tables and games",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		TableCmd(),
		GameCmd(),
		HashCmd(),
		WithdrawCmd(),
		BalanceCmd(),
	)
	return cmd
}

// HashCmd commitment of a move
func HashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Compute the commitment of a move",
		Run:   moveHash,
	}
	addHashFlags(cmd)
	return cmd
}

func addHashFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "a", "", "address that will reveal the move")
	cmd.MarkFlagRequired("addr")
	addMoveFlags(cmd)
}

func addMoveFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("move", "m", "", "rock, paper or scissors")
	cmd.MarkFlagRequired("move")
	cmd.Flags().StringP("secret", "s", "", "secret, at most 32 bytes")
	cmd.MarkFlagRequired("secret")
}

func moveHash(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	move, secret, err := moveFlags(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	hash, err := executor.MoveHashHex(addr, move, secret)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(hash)
}

func moveFlags(cmd *cobra.Command) (int32, []byte, error) {
	name, _ := cmd.Flags().GetString("move")
	secret, _ := cmd.Flags().GetString("secret")
	move, ok := rt.ParseMove(name)
	if !ok {
		return 0, nil, errors.Wrap(rt.ErrInvalidMove, name)
	}
	return move, []byte(secret), nil
}

// commitment of the signer, --hash wins over --move/--secret
func commitment(cmd *cobra.Command) (string, error) {
	hash, _ := cmd.Flags().GetString("hash")
	if hash != "" {
		return hash, nil
	}
	name, _ := cmd.Flags().GetString("move")
	if name == "" {
		return "", nil
	}
	addr, err := commands.KeyAddr(cmd)
	if err != nil {
		return "", err
	}
	move, secret, err := moveFlags(cmd)
	if err != nil {
		return "", err
	}
	return executor.MoveHashHex(addr, move, secret)
}

func addCommitFlags(cmd *cobra.Command) {
	cmd.Flags().String("hash", "", "commitment computed elsewhere")
	cmd.Flags().StringP("move", "m", "", "rock, paper or scissors, hashed with the signer address")
	cmd.Flags().StringP("secret", "s", "", "secret of the commitment")
}

// WithdrawCmd drains the rps balance into the wallet
func WithdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw the whole rps balance of the signer",
		Run:   withdraw,
	}
	commands.AddKeyFlag(cmd)
	return cmd
}

func withdraw(cmd *cobra.Command, args []string) {
	commands.SendTx(cmd, rt.WithdrawTx())
}

// BalanceCmd wallet, rps balance and stake of an address
func BalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show wallet, withdrawable balance and frozen stake",
		Run:   balance,
	}
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func balance(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	addr, _ := cmd.Flags().GetString("addr")
	var res types.AccountBalance
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "rps.GetBalance", types.ReqAddr{Addr: addr}, &res)
	ctx.SetResultCb(parseBalance)
	ctx.Run()
}

type balanceResult struct {
	Addr    string `json:"addr"`
	Wallet  string `json:"wallet"`
	Balance string `json:"balance"`
	Frozen  string `json:"frozen"`
}

func parseBalance(res interface{}) (interface{}, error) {
	bal := res.(*types.AccountBalance)
	return &balanceResult{
		Addr:    bal.Addr,
		Wallet:  types.FormatAmount(bal.Wallet),
		Balance: types.FormatAmount(bal.Balance),
		Frozen:  types.FormatAmount(bal.Frozen),
	}, nil
}
