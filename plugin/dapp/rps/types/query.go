// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

// ReqTable GetTable, Addr selects the address the eligibility flags are computed for
type ReqTable struct {
	TableId string `protobuf:"bytes,1,opt,name=tableId,proto3" json:"tableId,omitempty"`
	Addr    string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *ReqTable) Reset()         { *m = ReqTable{} }
func (m *ReqTable) String() string { return proto.CompactTextString(m) }
func (*ReqTable) ProtoMessage()    {}

// ReplyTable table plus the flags evaluated at the next block
type ReplyTable struct {
	Table      *Table `protobuf:"bytes,1,opt,name=table,proto3" json:"table,omitempty"`
	CanEnrol   bool   `protobuf:"varint,2,opt,name=canEnrol,proto3" json:"canEnrol"`
	CanPlay    bool   `protobuf:"varint,3,opt,name=canPlay,proto3" json:"canPlay"`
	CanReveal  bool   `protobuf:"varint,4,opt,name=canReveal,proto3" json:"canReveal"`
	IsGameOver bool   `protobuf:"varint,5,opt,name=isGameOver,proto3" json:"isGameOver"`
	Height     int64  `protobuf:"varint,6,opt,name=height,proto3" json:"height"`
}

func (m *ReplyTable) Reset()         { *m = ReplyTable{} }
func (m *ReplyTable) String() string { return proto.CompactTextString(m) }
func (*ReplyTable) ProtoMessage()    {}

// ReqGame GetGame
type ReqGame struct {
	GameId string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Addr   string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *ReqGame) Reset()         { *m = ReqGame{} }
func (m *ReqGame) String() string { return proto.CompactTextString(m) }
func (*ReqGame) ProtoMessage()    {}

// ReplyGame game plus the flags evaluated at the next block
type ReplyGame struct {
	Game      *Game `protobuf:"bytes,1,opt,name=game,proto3" json:"game,omitempty"`
	CanJoin   bool  `protobuf:"varint,2,opt,name=canJoin,proto3" json:"canJoin"`
	CanCommit bool  `protobuf:"varint,3,opt,name=canCommit,proto3" json:"canCommit"`
	CanReveal bool  `protobuf:"varint,4,opt,name=canReveal,proto3" json:"canReveal"`
	CanClaim  bool  `protobuf:"varint,5,opt,name=canClaim,proto3" json:"canClaim"`
	Height    int64 `protobuf:"varint,6,opt,name=height,proto3" json:"height"`
}

func (m *ReplyGame) Reset()         { *m = ReplyGame{} }
func (m *ReplyGame) String() string { return proto.CompactTextString(m) }
func (*ReplyGame) ProtoMessage()    {}

// ReqGameId pair id of two addresses, or with Id the explicit game id opened by Addr1
type ReqGameId struct {
	Addr1 string `protobuf:"bytes,1,opt,name=addr1,proto3" json:"addr1,omitempty"`
	Addr2 string `protobuf:"bytes,2,opt,name=addr2,proto3" json:"addr2,omitempty"`
	Id    string `protobuf:"bytes,3,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *ReqGameId) Reset()         { *m = ReqGameId{} }
func (m *ReqGameId) String() string { return proto.CompactTextString(m) }
func (*ReqGameId) ProtoMessage()    {}

// ReqHash commitment of (Addr, Move, Secret)
type ReqHash struct {
	Addr   string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Move   int32  `protobuf:"varint,2,opt,name=move,proto3" json:"move,omitempty"`
	Secret []byte `protobuf:"bytes,3,opt,name=secret,proto3" json:"secret,omitempty"`
}

func (m *ReqHash) Reset()         { *m = ReqHash{} }
func (m *ReqHash) String() string { return proto.CompactTextString(m) }
func (*ReqHash) ProtoMessage()    {}

// ReplyHash 0x prefixed hex of a 32 byte hash
type ReplyHash struct {
	Hash string `protobuf:"bytes,1,opt,name=hash,proto3" json:"hash,omitempty"`
}

func (m *ReplyHash) Reset()         { *m = ReplyHash{} }
func (m *ReplyHash) String() string { return proto.CompactTextString(m) }
func (*ReplyHash) ProtoMessage()    {}

// ReqListGames games by status, optionally restricted to a participant.
// Index is the cursor returned by the previous page, 0 for the first page.
type ReqListGames struct {
	Status    int32  `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Addr      string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Count     int32  `protobuf:"varint,3,opt,name=count,proto3" json:"count,omitempty"`
	Direction int32  `protobuf:"varint,4,opt,name=direction,proto3" json:"direction,omitempty"`
	Index     int64  `protobuf:"varint,5,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *ReqListGames) Reset()         { *m = ReqListGames{} }
func (m *ReqListGames) String() string { return proto.CompactTextString(m) }
func (*ReqListGames) ProtoMessage()    {}

// ReplyGameList page of games
type ReplyGameList struct {
	Games []*Game `protobuf:"bytes,1,rep,name=games,proto3" json:"games,omitempty"`
}

func (m *ReplyGameList) Reset()         { *m = ReplyGameList{} }
func (m *ReplyGameList) String() string { return proto.CompactTextString(m) }
func (*ReplyGameList) ProtoMessage()    {}

// ReqListTables tables created by Owner
type ReqListTables struct {
	Owner     string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Count     int32  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	Direction int32  `protobuf:"varint,3,opt,name=direction,proto3" json:"direction,omitempty"`
	Index     int64  `protobuf:"varint,4,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *ReqListTables) Reset()         { *m = ReqListTables{} }
func (m *ReqListTables) String() string { return proto.CompactTextString(m) }
func (*ReqListTables) ProtoMessage()    {}

// ReplyTableList page of tables
type ReplyTableList struct {
	Tables []*Table `protobuf:"bytes,1,rep,name=tables,proto3" json:"tables,omitempty"`
}

func (m *ReplyTableList) Reset()         { *m = ReplyTableList{} }
func (m *ReplyTableList) String() string { return proto.CompactTextString(m) }
func (*ReplyTableList) ProtoMessage()    {}
