// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types messages, constants and errors of the rps executor.
package types

import (
	"github.com/33cn/rps/types"
)

func init() {
	types.RegisterLog(TyLogCreation, "LogCreation", &ReceiptCreation{})
	types.RegisterLog(TyLogEnrol, "LogEnrol", &ReceiptEnrol{})
	types.RegisterLog(TyLogPlay, "LogPlay", &ReceiptPlay{})
	types.RegisterLog(TyLogReveal, "LogReveal", &ReceiptReveal{})
	types.RegisterLog(TyLogChooseWinner, "LogChooseWinner", &ReceiptChooseWinner{})
	types.RegisterLog(TyLogGameStart, "LogGameStart", &ReceiptGame{})
	types.RegisterLog(TyLogGameJoin, "LogGameJoin", &ReceiptGame{})
	types.RegisterLog(TyLogGameCommit, "LogGameCommit", &ReceiptGame{})
	types.RegisterLog(TyLogGameReveal, "LogGameReveal", &ReceiptGame{})
	types.RegisterLog(TyLogGameResolve, "LogGameResolve", &ReceiptGame{})
	types.RegisterLog(TyLogWithdraw, "LogWithdraw", &ReceiptWithdraw{})
}

// IsRpsLog log types owned by this executor
func IsRpsLog(ty int32) bool {
	return ty >= TyLogCreation && ty <= TyLogWithdraw
}
