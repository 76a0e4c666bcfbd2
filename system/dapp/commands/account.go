// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/address"
	"github.com/33cn/rps/rpc/jsonclient"
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
)

// AccountCmd account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		KeyGenCmd(),
		KeyAddrCmd(),
		BalanceCmd(),
	)
	return cmd
}

// KeyGenCmd new secp256k1 key
func KeyGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a private key and its address",
		Run:   keyGen,
	}
	return cmd
}

type keyResult struct {
	Key  string `json:"key"`
	Addr string `json:"addr"`
}

func keyGen(cmd *cobra.Command, args []string) {
	priv, err := crypto.GenerateKey()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	printJSON(&keyResult{
		Key:  common.ToHex(crypto.FromECDSA(priv)),
		Addr: address.PubKeyToAddress(&priv.PublicKey),
	})
}

// KeyAddrCmd address of a private key
func KeyAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addr",
		Short: "Address of --key",
		Run:   keyAddr,
	}
	AddKeyFlag(cmd)
	return cmd
}

func keyAddr(cmd *cobra.Command, args []string) {
	addr, err := KeyAddr(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(addr)
}

// BalanceCmd wallet and executor account of an address
func BalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Wallet balance, with the executor account when --exec is set",
		Run:   balance,
	}
	addBalanceFlags(cmd)
	return cmd
}

func addBalanceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("exec", "e", "", "executor name")
}

type balanceResult struct {
	Addr     string `json:"addr"`
	Execer   string `json:"execer,omitempty"`
	ExecAddr string `json:"execAddr,omitempty"`
	Wallet   string `json:"wallet"`
	Balance  string `json:"balance,omitempty"`
	Frozen   string `json:"frozen,omitempty"`
}

func balance(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	addr, _ := cmd.Flags().GetString("addr")
	execer, _ := cmd.Flags().GetString("exec")
	var res types.AccountBalance
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain.GetBalance", types.ReqBalance{Addr: addr, Execer: execer}, &res)
	ctx.SetResultCb(func(res interface{}) (interface{}, error) {
		bal := res.(*types.AccountBalance)
		out := &balanceResult{
			Addr:   bal.Addr,
			Wallet: types.FormatAmount(bal.Wallet),
		}
		if bal.Execer != "" {
			out.Execer = bal.Execer
			out.ExecAddr = bal.ExecAddr
			out.Balance = types.FormatAmount(bal.Balance)
			out.Frozen = types.FormatAmount(bal.Frozen)
		}
		return out, nil
	})
	ctx.Run()
}
