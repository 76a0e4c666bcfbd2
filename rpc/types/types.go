// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types json shapes of the rpc interface
package types

import (
	"encoding/json"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/types"
)

// RawParm hex encoded payload
type RawParm struct {
	Data string `json:"data"`
}

// ReqHash hex encoded hash
type ReqHash struct {
	Hash string `json:"hash"`
}

// ReqInt int parameter
type ReqInt struct {
	Data int64 `json:"data"`
}

// ReqNil empty parameter
type ReqNil struct {
}

// Query4Jrpc executor query, Payload is the hex encoded request message
type Query4Jrpc struct {
	Execer   string `json:"execer"`
	FuncName string `json:"funcName"`
	Payload  string `json:"payload"`
}

// ReceiptLog decoded receipt log, Log keeps the raw hex when the type is unknown
type ReceiptLog struct {
	Ty     int32           `json:"ty"`
	TyName string          `json:"tyName"`
	Log    json.RawMessage `json:"log,omitempty"`
	RawLog string          `json:"rawLog"`
}

// TxResult result of a stored transaction
type TxResult struct {
	Hash      string        `json:"hash"`
	Execer    string        `json:"execer"`
	From      string        `json:"from"`
	Value     int64         `json:"value"`
	Height    int64         `json:"height"`
	BlockTime int64         `json:"blockTime"`
	Ty        int32         `json:"ty"`
	Logs      []*ReceiptLog `json:"logs"`
}

// Event one archived receipt log, Log is the json of the log or its raw hex
type Event struct {
	ID        int64  `json:"id"`
	Height    int64  `json:"height"`
	TxHash    string `json:"txHash"`
	Execer    string `json:"execer"`
	From      string `json:"from"`
	LogIndex  int    `json:"logIndex"`
	Ty        int32  `json:"ty"`
	TyName    string `json:"tyName"`
	Log       string `json:"log"`
	BlockTime int64  `json:"blockTime"`
}

// ReqEvents archived logs of TxHash, else named TyName, else of Execer, from FromHeight on
type ReqEvents struct {
	TxHash     string `json:"txHash,omitempty"`
	TyName     string `json:"tyName,omitempty"`
	Execer     string `json:"execer,omitempty"`
	FromHeight int64  `json:"fromHeight"`
	Limit      int    `json:"limit"`
}

// ReplyEvents LastHeight is the highest archived height, -1 when nothing is archived
type ReplyEvents struct {
	LastHeight int64    `json:"lastHeight"`
	Events     []*Event `json:"events"`
}

// Header block header
type Header struct {
	Height     int64  `json:"height"`
	BlockTime  int64  `json:"blockTime"`
	ParentHash string `json:"parentHash"`
	TxHash     string `json:"txHash"`
	Hash       string `json:"hash"`
}

// DecodeLogs json form of logs
func DecodeLogs(logs []*types.ReceiptLog) []*ReceiptLog {
	out := make([]*ReceiptLog, 0, len(logs))
	for _, l := range logs {
		item := &ReceiptLog{Ty: l.Ty, TyName: "LogReserved", RawLog: common.ToHex(l.Log)}
		name, msg, err := types.DecodeLog(l)
		if err == nil {
			item.TyName = name
			if data, err := json.Marshal(msg); err == nil {
				item.Log = data
			}
		}
		out = append(out, item)
	}
	return out
}

// DecodeTxResult json form of res
func DecodeTxResult(res *types.TxResult) *TxResult {
	out := &TxResult{
		Height:    res.Height,
		BlockTime: res.BlockTime,
		From:      res.From,
	}
	if res.Tx != nil {
		out.Hash = common.ToHex(res.Tx.Hash())
		out.Execer = res.Tx.Execer
		out.Value = res.Tx.Value
	}
	if res.Receipt != nil {
		out.Ty = res.Receipt.Ty
		out.Logs = DecodeLogs(res.Receipt.Logs)
	}
	return out
}

// DecodeHeader json form of h
func DecodeHeader(h *types.Header) *Header {
	return &Header{
		Height:     h.Height,
		BlockTime:  h.BlockTime,
		ParentHash: common.ToHex(h.ParentHash),
		TxHash:     common.ToHex(h.TxHash),
		Hash:       common.ToHex(h.Hash),
	}
}
