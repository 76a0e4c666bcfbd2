// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

// ReceiptCreation LogCreation
type ReceiptCreation struct {
	TableId       string `protobuf:"bytes,1,opt,name=tableId,proto3" json:"tableId,omitempty"`
	Owner         string `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Price         int64  `protobuf:"varint,3,opt,name=price,proto3" json:"price,omitempty"`
	TimeoutBlocks int64  `protobuf:"varint,4,opt,name=timeoutBlocks,proto3" json:"timeoutBlocks,omitempty"`
	Trigger       int32  `protobuf:"varint,5,opt,name=trigger,proto3" json:"trigger,omitempty"`
	Index         int64  `protobuf:"varint,6,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *ReceiptCreation) Reset()         { *m = ReceiptCreation{} }
func (m *ReceiptCreation) String() string { return proto.CompactTextString(m) }
func (*ReceiptCreation) ProtoMessage()    {}

// ReceiptEnrol LogEnrol
type ReceiptEnrol struct {
	TableId string `protobuf:"bytes,1,opt,name=tableId,proto3" json:"tableId,omitempty"`
	Player  string `protobuf:"bytes,2,opt,name=player,proto3" json:"player,omitempty"`
	BetId   int32  `protobuf:"varint,3,opt,name=betId,proto3" json:"betId,omitempty"`
}

func (m *ReceiptEnrol) Reset()         { *m = ReceiptEnrol{} }
func (m *ReceiptEnrol) String() string { return proto.CompactTextString(m) }
func (*ReceiptEnrol) ProtoMessage()    {}

// ReceiptPlay LogPlay
type ReceiptPlay struct {
	TableId  string `protobuf:"bytes,1,opt,name=tableId,proto3" json:"tableId,omitempty"`
	Player   string `protobuf:"bytes,2,opt,name=player,proto3" json:"player,omitempty"`
	BetId    int32  `protobuf:"varint,3,opt,name=betId,proto3" json:"betId,omitempty"`
	MoveHash string `protobuf:"bytes,4,opt,name=moveHash,proto3" json:"moveHash,omitempty"`
}

func (m *ReceiptPlay) Reset()         { *m = ReceiptPlay{} }
func (m *ReceiptPlay) String() string { return proto.CompactTextString(m) }
func (*ReceiptPlay) ProtoMessage()    {}

// ReceiptReveal LogReveal
type ReceiptReveal struct {
	TableId string `protobuf:"bytes,1,opt,name=tableId,proto3" json:"tableId,omitempty"`
	Player  string `protobuf:"bytes,2,opt,name=player,proto3" json:"player,omitempty"`
	BetId   int32  `protobuf:"varint,3,opt,name=betId,proto3" json:"betId,omitempty"`
	Move    int32  `protobuf:"varint,4,opt,name=move,proto3" json:"move,omitempty"`
}

func (m *ReceiptReveal) Reset()         { *m = ReceiptReveal{} }
func (m *ReceiptReveal) String() string { return proto.CompactTextString(m) }
func (*ReceiptReveal) ProtoMessage()    {}

// ReceiptChooseWinner LogChooseWinner
type ReceiptChooseWinner struct {
	TableId  string `protobuf:"bytes,1,opt,name=tableId,proto3" json:"tableId,omitempty"`
	Caller   string `protobuf:"bytes,2,opt,name=caller,proto3" json:"caller,omitempty"`
	WinnerId int32  `protobuf:"varint,3,opt,name=winnerId,proto3" json:"winnerId"`
}

func (m *ReceiptChooseWinner) Reset()         { *m = ReceiptChooseWinner{} }
func (m *ReceiptChooseWinner) String() string { return proto.CompactTextString(m) }
func (*ReceiptChooseWinner) ProtoMessage()    {}

// ReceiptGame shared by the game logs. Status and PrevStatus drive the local index,
// Index and PrevIndex locate the index entries of the two states, PrevPlayer1 and PrevPlayer2
// name the players indexed under PrevIndex.
type ReceiptGame struct {
	GameId        string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Addr          string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Player1       string `protobuf:"bytes,3,opt,name=player1,proto3" json:"player1,omitempty"`
	Player2       string `protobuf:"bytes,4,opt,name=player2,proto3" json:"player2,omitempty"`
	Status        int32  `protobuf:"varint,5,opt,name=status,proto3" json:"status,omitempty"`
	PrevStatus    int32  `protobuf:"varint,6,opt,name=prevStatus,proto3" json:"prevStatus,omitempty"`
	Index         int64  `protobuf:"varint,7,opt,name=index,proto3" json:"index,omitempty"`
	PrevIndex     int64  `protobuf:"varint,8,opt,name=prevIndex,proto3" json:"prevIndex,omitempty"`
	Price         int64  `protobuf:"varint,9,opt,name=price,proto3" json:"price,omitempty"`
	TimeoutBlocks int64  `protobuf:"varint,10,opt,name=timeoutBlocks,proto3" json:"timeoutBlocks,omitempty"`
	MoveHash      string `protobuf:"bytes,11,opt,name=moveHash,proto3" json:"moveHash,omitempty"`
	Move          int32  `protobuf:"varint,12,opt,name=move,proto3" json:"move,omitempty"`
	Resolved      bool   `protobuf:"varint,13,opt,name=resolved,proto3" json:"resolved,omitempty"`
	Outcome       int32  `protobuf:"varint,14,opt,name=outcome,proto3" json:"outcome"`
	PrevPlayer1   string `protobuf:"bytes,15,opt,name=prevPlayer1,proto3" json:"prevPlayer1,omitempty"`
	PrevPlayer2   string `protobuf:"bytes,16,opt,name=prevPlayer2,proto3" json:"prevPlayer2,omitempty"`
}

func (m *ReceiptGame) Reset()         { *m = ReceiptGame{} }
func (m *ReceiptGame) String() string { return proto.CompactTextString(m) }
func (*ReceiptGame) ProtoMessage()    {}

// ReceiptWithdraw LogWithdraw
type ReceiptWithdraw struct {
	Player string `protobuf:"bytes,1,opt,name=player,proto3" json:"player,omitempty"`
	Amount int64  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *ReceiptWithdraw) Reset()         { *m = ReceiptWithdraw{} }
func (m *ReceiptWithdraw) String() string { return proto.CompactTextString(m) }
func (*ReceiptWithdraw) ProtoMessage()    {}
