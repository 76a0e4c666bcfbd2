// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/rps/types"
)

// unsigned transactions of the rps executor, value is the coins attached to payable actions

func createTx(action *RpsAction, value int64) *types.Transaction {
	return types.CreateTx(RpsX, types.Encode(action), value)
}

// CreateTableTx new table, trigger "" keeps the configured default
func CreateTableTx(price, timeoutBlocks int64, trigger string) *types.Transaction {
	return createTx(&RpsAction{Ty: RpsActionCreateTable, CreateTable: &RpsCreateTable{Price: price, TimeoutBlocks: timeoutBlocks, Trigger: trigger}}, 0)
}

// EnrolTx pays value into the table
func EnrolTx(tableID string, value int64) *types.Transaction {
	return createTx(&RpsAction{Ty: RpsActionEnrol, Enrol: &RpsEnrol{TableId: tableID}}, value)
}

// PlayTx commits moveHash on a table
func PlayTx(tableID, moveHash string) *types.Transaction {
	return createTx(&RpsAction{Ty: RpsActionPlay, Play: &RpsPlay{TableId: tableID, MoveHash: moveHash}}, 0)
}

// RevealTableTx reveals on a table
func RevealTableTx(tableID string, move int32, secret []byte) *types.Transaction {
	return createTx(&RpsAction{Ty: RpsActionRevealTable, Reveal: &RpsReveal{Id: tableID, Move: move, Secret: secret}}, 0)
}

// ChooseWinnerTx resolves a table
func ChooseWinnerTx(tableID string) *types.Transaction {
	return createTx(&RpsAction{Ty: RpsActionChooseWinner, ChooseWinner: &RpsChooseWinner{TableId: tableID}}, 0)
}

// StartGameTx opens a game against peer, gameID and moveHash may be empty
func StartGameTx(peer string, price, timeoutBlocks int64, moveHash, gameID string, value int64) *types.Transaction {
	start := &RpsStartGame{Peer: peer, Price: price, TimeoutBlocks: timeoutBlocks, MoveHash: moveHash, GameId: gameID}
	return createTx(&RpsAction{Ty: RpsActionStartGame, StartGame: start}, value)
}

// JoinGameTx pays value into an open game
func JoinGameTx(gameID, moveHash string, value int64) *types.Transaction {
	return createTx(&RpsAction{Ty: RpsActionJoinGame, JoinGame: &RpsJoinGame{GameId: gameID, MoveHash: moveHash}}, value)
}

// CommitTx commits moveHash on a game
func CommitTx(gameID, moveHash string) *types.Transaction {
	return createTx(&RpsAction{Ty: RpsActionCommit, Commit: &RpsCommit{GameId: gameID, MoveHash: moveHash}}, 0)
}

// RevealGameTx reveals on a game
func RevealGameTx(gameID string, move int32, secret []byte) *types.Transaction {
	return createTx(&RpsAction{Ty: RpsActionRevealGame, Reveal: &RpsReveal{Id: gameID, Move: move, Secret: secret}}, 0)
}

// ClaimTx resolves a game after its timeout
func ClaimTx(gameID string) *types.Transaction {
	return createTx(&RpsAction{Ty: RpsActionClaim, Claim: &RpsClaim{GameId: gameID}}, 0)
}

// WithdrawTx drains the ledger balance of the signer
func WithdrawTx() *types.Transaction {
	return createTx(&RpsAction{Ty: RpsActionWithdraw, Withdraw: &RpsWithdraw{}}, 0)
}

// IsPayable actions that accept attached value
func IsPayable(ty int32) bool {
	return ty == RpsActionEnrol || ty == RpsActionStartGame || ty == RpsActionJoinGame
}
