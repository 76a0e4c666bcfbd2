// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands cobra commands of the node and the built in executors
package commands

import (
	"fmt"
	"os"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/address"
	"github.com/33cn/rps/rpc/jsonclient"
	rpctypes "github.com/33cn/rps/rpc/types"
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// AddKeyFlag signing key of a transaction command
func AddKeyFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "hex private key of the sender")
	cmd.MarkFlagRequired("key")
}

// KeyAddr address of the --key flag
func KeyAddr(cmd *cobra.Command) (string, error) {
	hexkey, _ := cmd.Flags().GetString("key")
	priv, err := crypto.HexToECDSA(trim0x(hexkey))
	if err != nil {
		return "", errors.Wrap(types.ErrSign, "bad private key")
	}
	return address.PubKeyToAddress(&priv.PublicKey), nil
}

func trim0x(s string) string {
	if len(s) > 1 && (s[0:2] == "0x" || s[0:2] == "0X") {
		return s[2:]
	}
	return s
}

// SendTx signs tx with --key and sends it to --rpc_laddr, the result or error is printed
func SendTx(cmd *cobra.Command, tx *types.Transaction) {
	res, err := signAndSend(cmd, tx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	printJSON(res)
}

func signAndSend(cmd *cobra.Command, tx *types.Transaction) (*rpctypes.TxResult, error) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	hexkey, _ := cmd.Flags().GetString("key")
	priv, err := crypto.HexToECDSA(trim0x(hexkey))
	if err != nil {
		return nil, errors.Wrap(types.ErrSign, "bad private key")
	}
	if err := tx.Sign(priv); err != nil {
		return nil, err
	}
	client, err := jsonclient.NewJSONClient(rpcLaddr)
	if err != nil {
		return nil, err
	}
	var res rpctypes.TxResult
	err = client.Call("Chain.SendTransaction", rpctypes.RawParm{Data: common.ToHex(types.Encode(tx))}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ParseAmountFlag coins flag as base units
func ParseAmountFlag(cmd *cobra.Command, name string) (int64, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return 0, nil
	}
	return types.ParseAmount(s)
}

// TxCmd stored transactions
func TxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction result by hash",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(queryTxCmd())
	return cmd
}

func queryTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query transaction result by hash",
		Run:   queryTx,
	}
	cmd.Flags().StringP("hash", "s", "", "transaction hash")
	cmd.MarkFlagRequired("hash")
	return cmd
}

func queryTx(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	hash, _ := cmd.Flags().GetString("hash")
	var res rpctypes.TxResult
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain.GetTxResult", rpctypes.ReqHash{Hash: hash}, &res)
	ctx.Run()
}
