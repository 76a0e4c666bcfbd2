// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/rps/types/prototest"
)

func TestMessagesMatchProto(t *testing.T) {
	prototest.CheckFile(t, "../proto/rps.proto",
		&RpsAction{}, &RpsCreateTable{}, &RpsEnrol{}, &RpsPlay{}, &RpsReveal{}, &RpsChooseWinner{},
		&RpsStartGame{}, &RpsJoinGame{}, &RpsCommit{}, &RpsClaim{}, &RpsWithdraw{},
		&Bet{}, &Table{}, &Game{}, &GameRecord{}, &TableRecord{},
		&ReceiptCreation{}, &ReceiptEnrol{}, &ReceiptPlay{}, &ReceiptReveal{}, &ReceiptChooseWinner{},
		&ReceiptGame{}, &ReceiptWithdraw{},
		&ReqTable{}, &ReplyTable{}, &ReqGame{}, &ReplyGame{}, &ReqGameId{}, &ReqHash{}, &ReplyHash{},
		&ReqListGames{}, &ReplyGameList{}, &ReqListTables{}, &ReplyTableList{},
	)
}
