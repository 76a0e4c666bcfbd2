// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

// Bet one slot of a table
type Bet struct {
	Player   string `protobuf:"bytes,1,opt,name=player,proto3" json:"player,omitempty"`
	MoveHash string `protobuf:"bytes,2,opt,name=moveHash,proto3" json:"moveHash,omitempty"`
	Move     int32  `protobuf:"varint,3,opt,name=move,proto3" json:"move"`
}

func (m *Bet) Reset()         { *m = Bet{} }
func (m *Bet) String() string { return proto.CompactTextString(m) }
func (*Bet) ProtoMessage()    {}

// GetPlayer player
func (m *Bet) GetPlayer() string {
	if m != nil {
		return m.Player
	}
	return ""
}

// GetMoveHash move hash
func (m *Bet) GetMoveHash() string {
	if m != nil {
		return m.MoveHash
	}
	return ""
}

// GetMove move
func (m *Bet) GetMove() int32 {
	if m != nil {
		return m.Move
	}
	return MoveVoid
}

// Table single slot game, the configuration never changes after creation
type Table struct {
	TableId          string `protobuf:"bytes,1,opt,name=tableId,proto3" json:"tableId,omitempty"`
	Owner            string `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Price            int64  `protobuf:"varint,3,opt,name=price,proto3" json:"price,omitempty"`
	TimeoutBlocks    int64  `protobuf:"varint,4,opt,name=timeoutBlocks,proto3" json:"timeoutBlocks,omitempty"`
	Trigger          int32  `protobuf:"varint,5,opt,name=trigger,proto3" json:"trigger,omitempty"`
	Bet1             *Bet   `protobuf:"bytes,6,opt,name=bet1,proto3" json:"bet1,omitempty"`
	Bet2             *Bet   `protobuf:"bytes,7,opt,name=bet2,proto3" json:"bet2,omitempty"`
	StartBlock       int64  `protobuf:"varint,8,opt,name=startBlock,proto3" json:"startBlock"`
	FirstRevealBlock int64  `protobuf:"varint,9,opt,name=firstRevealBlock,proto3" json:"firstRevealBlock"`
	WinnerId         int32  `protobuf:"varint,10,opt,name=winnerId,proto3" json:"winnerId"`
	Rounds           int64  `protobuf:"varint,11,opt,name=rounds,proto3" json:"rounds"`
	Index            int64  `protobuf:"varint,12,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *Table) Reset()         { *m = Table{} }
func (m *Table) String() string { return proto.CompactTextString(m) }
func (*Table) ProtoMessage()    {}

// Game a game of the multi game executor
type Game struct {
	GameId           string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Player1          string `protobuf:"bytes,2,opt,name=player1,proto3" json:"player1,omitempty"`
	Player2          string `protobuf:"bytes,3,opt,name=player2,proto3" json:"player2,omitempty"`
	MoveHash1        string `protobuf:"bytes,4,opt,name=moveHash1,proto3" json:"moveHash1,omitempty"`
	Move1            int32  `protobuf:"varint,5,opt,name=move1,proto3" json:"move1"`
	MoveHash2        string `protobuf:"bytes,6,opt,name=moveHash2,proto3" json:"moveHash2,omitempty"`
	Move2            int32  `protobuf:"varint,7,opt,name=move2,proto3" json:"move2"`
	Price            int64  `protobuf:"varint,8,opt,name=price,proto3" json:"price,omitempty"`
	TimeoutBlocks    int64  `protobuf:"varint,9,opt,name=timeoutBlocks,proto3" json:"timeoutBlocks,omitempty"`
	StartBlock       int64  `protobuf:"varint,10,opt,name=startBlock,proto3" json:"startBlock"`
	FirstRevealBlock int64  `protobuf:"varint,11,opt,name=firstRevealBlock,proto3" json:"firstRevealBlock"`
	Status           int32  `protobuf:"varint,12,opt,name=status,proto3" json:"status"`
	Outcome          int32  `protobuf:"varint,13,opt,name=outcome,proto3" json:"outcome"`
	Rounds           int64  `protobuf:"varint,14,opt,name=rounds,proto3" json:"rounds"`
	Index            int64  `protobuf:"varint,15,opt,name=index,proto3" json:"index,omitempty"`
	PrevIndex        int64  `protobuf:"varint,16,opt,name=prevIndex,proto3" json:"prevIndex,omitempty"`
}

func (m *Game) Reset()         { *m = Game{} }
func (m *Game) String() string { return proto.CompactTextString(m) }
func (*Game) ProtoMessage()    {}

// GetStatus status, GameStatusNone for a nil game
func (m *Game) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return GameStatusNone
}

// GameRecord value of a local game index entry
type GameRecord struct {
	GameId string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Index  int64  `protobuf:"varint,2,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *GameRecord) Reset()         { *m = GameRecord{} }
func (m *GameRecord) String() string { return proto.CompactTextString(m) }
func (*GameRecord) ProtoMessage()    {}

// TableRecord value of a local table index entry
type TableRecord struct {
	TableId string `protobuf:"bytes,1,opt,name=tableId,proto3" json:"tableId,omitempty"`
	Index   int64  `protobuf:"varint,2,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *TableRecord) Reset()         { *m = TableRecord{} }
func (m *TableRecord) String() string { return proto.CompactTextString(m) }
func (*TableRecord) ProtoMessage()    {}
