// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"

	cty "github.com/33cn/rps/system/dapp/coins/types"
	"github.com/spf13/cobra"
)

// CoinsCmd coins command
func CoinsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coins",
		Short: "Coins operation",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		TransferCmd(),
	)
	return cmd
}

// TransferCmd wallet to wallet transfer
func TransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer coins to an address",
		Run:   transfer,
	}
	addTransferFlags(cmd)
	return cmd
}

func addTransferFlags(cmd *cobra.Command) {
	AddKeyFlag(cmd)
	cmd.Flags().StringP("to", "t", "", "receiver address")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("amount", "a", "", "amount in coins")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("note", "n", "", "transaction note")
}

func transfer(cmd *cobra.Command, args []string) {
	amount, err := ParseAmountFlag(cmd, "amount")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	to, _ := cmd.Flags().GetString("to")
	note, _ := cmd.Flags().GetString("note")
	SendTx(cmd, cty.CreateTransfer(to, amount, note))
}
