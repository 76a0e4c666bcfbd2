// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
)

// 石头剪刀布胜负表, ruleTable[move1][move2]
var ruleTable = [4][4]int32{
	rt.MoveRock:     {rt.MoveRock: rt.OutcomeDraw, rt.MovePaper: rt.OutcomePlayer2, rt.MoveScissors: rt.OutcomePlayer1},
	rt.MovePaper:    {rt.MoveRock: rt.OutcomePlayer1, rt.MovePaper: rt.OutcomeDraw, rt.MoveScissors: rt.OutcomePlayer2},
	rt.MoveScissors: {rt.MoveRock: rt.OutcomePlayer2, rt.MovePaper: rt.OutcomePlayer1, rt.MoveScissors: rt.OutcomeDraw},
}

// ValidMove rock, paper or scissors
func ValidMove(move int32) bool {
	return move >= rt.MoveRock && move <= rt.MoveScissors
}

// Resolve outcome of move1 against move2, a void or out of range move is an error
func Resolve(move1, move2 int32) (int32, error) {
	if !ValidMove(move1) || !ValidMove(move2) {
		return rt.OutcomeDraw, rt.ErrInvalidMove
	}
	return ruleTable[move1][move2], nil
}
