// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// RpsX executor name
const RpsX = "rps"

// ExecerRps executor name as bytes
var ExecerRps = []byte(RpsX)

// rps action ty
const (
	RpsActionCreateTable = iota + 1
	RpsActionEnrol
	RpsActionPlay
	RpsActionRevealTable
	RpsActionChooseWinner
	RpsActionStartGame
	RpsActionJoinGame
	RpsActionCommit
	RpsActionRevealGame
	RpsActionClaim
	RpsActionWithdraw
)

// log ty
const (
	TyLogCreation = iota + 100
	TyLogEnrol
	TyLogPlay
	TyLogReveal
	TyLogChooseWinner
	TyLogGameStart
	TyLogGameJoin
	TyLogGameCommit
	TyLogGameReveal
	TyLogGameResolve
	TyLogWithdraw
)

// moves
const (
	MoveVoid = int32(iota)
	MoveRock
	MovePaper
	MoveScissors
)

// outcome of a resolution, also the winner id of a table
const (
	OutcomeDraw    = int32(0)
	OutcomePlayer1 = int32(1)
	OutcomePlayer2 = int32(2)
)

// game status: Open 1 -> Matched 2 -> Resolved 3 -> (StartGame) Open 1
const (
	GameStatusNone = int32(iota)
	GameStatusOpen
	GameStatusMatched
	GameStatusResolved
)

// who may trigger resolution
const (
	TriggerAnyParticipant = int32(iota + 1)
	TriggerAnyCaller
	TriggerOwner
)

var triggerNames = map[string]int32{
	"anyparticipant": TriggerAnyParticipant,
	"anycaller":      TriggerAnyCaller,
	"owner":          TriggerOwner,
}

// ParseTrigger trigger policy by name, ok is false for an unknown name
func ParseTrigger(name string) (int32, bool) {
	ty, ok := triggerNames[name]
	return ty, ok
}

// TriggerName name of a trigger policy
func TriggerName(ty int32) string {
	for name, v := range triggerNames {
		if v == ty {
			return name
		}
	}
	return "unknown"
}

// MoveName printable move
func MoveName(move int32) string {
	switch move {
	case MoveRock:
		return "rock"
	case MovePaper:
		return "paper"
	case MoveScissors:
		return "scissors"
	case MoveVoid:
		return "void"
	}
	return "invalid"
}

// ParseMove accepts rock, paper, scissors or their number
func ParseMove(s string) (int32, bool) {
	switch s {
	case "rock", "r", "1":
		return MoveRock, true
	case "paper", "p", "2":
		return MovePaper, true
	case "scissors", "s", "3":
		return MoveScissors, true
	}
	return MoveVoid, false
}

// query function names
const (
	FuncNameGetTable   = "GetTable"
	FuncNameListTables = "ListTables"
	FuncNameGetGame    = "GetGame"
	FuncNameListGames  = "ListGames"
	FuncNameGameID     = "GameId"
	FuncNameHash       = "Hash"
	FuncNameGetBalance = "GetBalance"
)

// deployment defaults of a table
const (
	DefaultTablePrice   = int64(900000) // 0.009 coin
	DefaultTableTimeout = int64(20)
	// SecretLen secrets are bytes32 values, shorter input is right padded with zeros
	SecretLen = 32
)

// list paging
const (
	ListDESC     = int32(0)
	ListASC      = int32(1)
	DefaultCount = int32(20)
	MaxCount     = int32(100)
)
