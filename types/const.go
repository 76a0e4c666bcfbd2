// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// coin conversation
const (
	Coin    int64 = 1e8
	MaxCoin int64 = 1e17
	// CoinPrecision decimal places of Coin
	CoinPrecision  int32 = 8
	MaxTxSize            = 100000 //100K
	// MaxTxsPerBlock scales height into a sortable height*MaxTxsPerBlock+index key
	MaxTxsPerBlock int64 = 100000
)

// receipt types
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

// log types 1-99 belong to the host, executors number theirs from 100
const (
	TyLogReserved     = 0
	TyLogErr          = 1
	TyLogGenesis      = 2
	TyLogTransfer     = 3
	TyLogExecTransfer = 4
	TyLogExecWithdraw = 5
	TyLogExecDeposit  = 6
	TyLogExecFrozen   = 7
	TyLogExecActive   = 8
)

// key prefixes: state keys start with mavl-, local index keys with LODB-
const (
	StatePrefix   = "mavl-"
	LocalPrefix   = "LODB-"
	CoinsExecName = "coins"
)

// CheckAmount valid transfer amount
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}
