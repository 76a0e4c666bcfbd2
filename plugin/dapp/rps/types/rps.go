// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

// Messages of the rps executor, layout in proto/rps.proto. Keep both in step, make proto-check
// compares them.

// RpsAction payload of an rps transaction, Ty selects the filled field
type RpsAction struct {
	Ty           int32            `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	CreateTable  *RpsCreateTable  `protobuf:"bytes,2,opt,name=createTable,proto3" json:"createTable,omitempty"`
	Enrol        *RpsEnrol        `protobuf:"bytes,3,opt,name=enrol,proto3" json:"enrol,omitempty"`
	Play         *RpsPlay         `protobuf:"bytes,4,opt,name=play,proto3" json:"play,omitempty"`
	Reveal       *RpsReveal       `protobuf:"bytes,5,opt,name=reveal,proto3" json:"reveal,omitempty"`
	ChooseWinner *RpsChooseWinner `protobuf:"bytes,6,opt,name=chooseWinner,proto3" json:"chooseWinner,omitempty"`
	StartGame    *RpsStartGame    `protobuf:"bytes,7,opt,name=startGame,proto3" json:"startGame,omitempty"`
	JoinGame     *RpsJoinGame     `protobuf:"bytes,8,opt,name=joinGame,proto3" json:"joinGame,omitempty"`
	Commit       *RpsCommit       `protobuf:"bytes,9,opt,name=commit,proto3" json:"commit,omitempty"`
	Claim        *RpsClaim        `protobuf:"bytes,10,opt,name=claim,proto3" json:"claim,omitempty"`
	Withdraw     *RpsWithdraw     `protobuf:"bytes,11,opt,name=withdraw,proto3" json:"withdraw,omitempty"`
}

func (m *RpsAction) Reset()         { *m = RpsAction{} }
func (m *RpsAction) String() string { return proto.CompactTextString(m) }
func (*RpsAction) ProtoMessage()    {}

// RpsCreateTable opens a single slot table owned by the sender
type RpsCreateTable struct {
	Price         int64 `protobuf:"varint,1,opt,name=price,proto3" json:"price,omitempty"`
	TimeoutBlocks int64 `protobuf:"varint,2,opt,name=timeoutBlocks,proto3" json:"timeoutBlocks,omitempty"`
	// Trigger resolution policy name, empty for the configured default
	Trigger string `protobuf:"bytes,3,opt,name=trigger,proto3" json:"trigger,omitempty"`
}

func (m *RpsCreateTable) Reset()         { *m = RpsCreateTable{} }
func (m *RpsCreateTable) String() string { return proto.CompactTextString(m) }
func (*RpsCreateTable) ProtoMessage()    {}

// RpsEnrol takes a free slot, payable
type RpsEnrol struct {
	TableId string `protobuf:"bytes,1,opt,name=tableId,proto3" json:"tableId,omitempty"`
}

func (m *RpsEnrol) Reset()         { *m = RpsEnrol{} }
func (m *RpsEnrol) String() string { return proto.CompactTextString(m) }
func (*RpsEnrol) ProtoMessage()    {}

// RpsPlay commits the move hash of the sender's slot
type RpsPlay struct {
	TableId  string `protobuf:"bytes,1,opt,name=tableId,proto3" json:"tableId,omitempty"`
	MoveHash string `protobuf:"bytes,2,opt,name=moveHash,proto3" json:"moveHash,omitempty"`
}

func (m *RpsPlay) Reset()         { *m = RpsPlay{} }
func (m *RpsPlay) String() string { return proto.CompactTextString(m) }
func (*RpsPlay) ProtoMessage()    {}

// RpsReveal discloses move and secret, Id is a table id or a game id
type RpsReveal struct {
	Id     string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Move   int32  `protobuf:"varint,2,opt,name=move,proto3" json:"move,omitempty"`
	Secret []byte `protobuf:"bytes,3,opt,name=secret,proto3" json:"secret,omitempty"`
}

func (m *RpsReveal) Reset()         { *m = RpsReveal{} }
func (m *RpsReveal) String() string { return proto.CompactTextString(m) }
func (*RpsReveal) ProtoMessage()    {}

// RpsChooseWinner resolves a table
type RpsChooseWinner struct {
	TableId string `protobuf:"bytes,1,opt,name=tableId,proto3" json:"tableId,omitempty"`
}

func (m *RpsChooseWinner) Reset()         { *m = RpsChooseWinner{} }
func (m *RpsChooseWinner) String() string { return proto.CompactTextString(m) }
func (*RpsChooseWinner) ProtoMessage()    {}

// RpsStartGame opens a game against Peer, payable
type RpsStartGame struct {
	Peer          string `protobuf:"bytes,1,opt,name=peer,proto3" json:"peer,omitempty"`
	Price         int64  `protobuf:"varint,2,opt,name=price,proto3" json:"price,omitempty"`
	TimeoutBlocks int64  `protobuf:"varint,3,opt,name=timeoutBlocks,proto3" json:"timeoutBlocks,omitempty"`
	// MoveHash optional commitment of the creator
	MoveHash string `protobuf:"bytes,4,opt,name=moveHash,proto3" json:"moveHash,omitempty"`
	// GameId optional explicit id, the pair id when empty
	GameId string `protobuf:"bytes,5,opt,name=gameId,proto3" json:"gameId,omitempty"`
}

func (m *RpsStartGame) Reset()         { *m = RpsStartGame{} }
func (m *RpsStartGame) String() string { return proto.CompactTextString(m) }
func (*RpsStartGame) ProtoMessage()    {}

// RpsJoinGame the named peer pays in, payable
type RpsJoinGame struct {
	GameId   string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	MoveHash string `protobuf:"bytes,2,opt,name=moveHash,proto3" json:"moveHash,omitempty"`
}

func (m *RpsJoinGame) Reset()         { *m = RpsJoinGame{} }
func (m *RpsJoinGame) String() string { return proto.CompactTextString(m) }
func (*RpsJoinGame) ProtoMessage()    {}

// RpsCommit commitment of a game participant
type RpsCommit struct {
	GameId   string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	MoveHash string `protobuf:"bytes,2,opt,name=moveHash,proto3" json:"moveHash,omitempty"`
}

func (m *RpsCommit) Reset()         { *m = RpsCommit{} }
func (m *RpsCommit) String() string { return proto.CompactTextString(m) }
func (*RpsCommit) ProtoMessage()    {}

// RpsClaim timeout resolution of a game
type RpsClaim struct {
	GameId string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
}

func (m *RpsClaim) Reset()         { *m = RpsClaim{} }
func (m *RpsClaim) String() string { return proto.CompactTextString(m) }
func (*RpsClaim) ProtoMessage()    {}

// RpsWithdraw drains the sender's ledger balance
type RpsWithdraw struct {
}

func (m *RpsWithdraw) Reset()         { *m = RpsWithdraw{} }
func (m *RpsWithdraw) String() string { return proto.CompactTextString(m) }
func (*RpsWithdraw) ProtoMessage()    {}
