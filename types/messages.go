// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

// Wire messages of the host. The layout is documented in proto/types.proto, make proto-check
// fails when the two drift.

//KeyValue one state write
type KeyValue struct {
	Key   []byte `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value []byte `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *KeyValue) Reset()         { *m = KeyValue{} }
func (m *KeyValue) String() string { return proto.CompactTextString(m) }
func (*KeyValue) ProtoMessage()    {}

//GetKey key
func (m *KeyValue) GetKey() []byte {
	if m != nil {
		return m.Key
	}
	return nil
}

//ReceiptLog typed log payload, Log is the encoding of the message registered for Ty
type ReceiptLog struct {
	Ty  int32  `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Log []byte `protobuf:"bytes,2,opt,name=log,proto3" json:"log,omitempty"`
}

func (m *ReceiptLog) Reset()         { *m = ReceiptLog{} }
func (m *ReceiptLog) String() string { return proto.CompactTextString(m) }
func (*ReceiptLog) ProtoMessage()    {}

//Receipt result of an executor action: state writes plus logs
type Receipt struct {
	Ty   int32         `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	KV   []*KeyValue   `protobuf:"bytes,2,rep,name=KV,proto3" json:"KV,omitempty"`
	Logs []*ReceiptLog `protobuf:"bytes,3,rep,name=logs,proto3" json:"logs,omitempty"`
}

func (m *Receipt) Reset()         { *m = Receipt{} }
func (m *Receipt) String() string { return proto.CompactTextString(m) }
func (*Receipt) ProtoMessage()    {}

//ReceiptData what is kept of a receipt once the block is stored
type ReceiptData struct {
	Ty   int32         `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Logs []*ReceiptLog `protobuf:"bytes,3,rep,name=logs,proto3" json:"logs,omitempty"`
}

func (m *ReceiptData) Reset()         { *m = ReceiptData{} }
func (m *ReceiptData) String() string { return proto.CompactTextString(m) }
func (*ReceiptData) ProtoMessage()    {}

//Transaction signed call into an executor
type Transaction struct {
	Execer    string `protobuf:"bytes,1,opt,name=execer,proto3" json:"execer,omitempty"`
	Payload   []byte `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	Value     int64  `protobuf:"varint,3,opt,name=value,proto3" json:"value,omitempty"`
	Nonce     int64  `protobuf:"varint,4,opt,name=nonce,proto3" json:"nonce,omitempty"`
	Signature []byte `protobuf:"bytes,5,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *Transaction) Reset()         { *m = Transaction{} }
func (m *Transaction) String() string { return proto.CompactTextString(m) }
func (*Transaction) ProtoMessage()    {}

//Header block header, one transaction per block at most
type Header struct {
	Height     int64  `protobuf:"varint,1,opt,name=height,proto3" json:"height,omitempty"`
	BlockTime  int64  `protobuf:"varint,2,opt,name=blockTime,proto3" json:"blockTime,omitempty"`
	ParentHash []byte `protobuf:"bytes,3,opt,name=parentHash,proto3" json:"parentHash,omitempty"`
	TxHash     []byte `protobuf:"bytes,4,opt,name=txHash,proto3" json:"txHash,omitempty"`
	Hash       []byte `protobuf:"bytes,5,opt,name=hash,proto3" json:"hash,omitempty"`
}

func (m *Header) Reset()         { *m = Header{} }
func (m *Header) String() string { return proto.CompactTextString(m) }
func (*Header) ProtoMessage()    {}

//TxResult stored per transaction hash
type TxResult struct {
	Height    int64        `protobuf:"varint,1,opt,name=height,proto3" json:"height,omitempty"`
	Index     int32        `protobuf:"varint,2,opt,name=index,proto3" json:"index,omitempty"`
	BlockTime int64        `protobuf:"varint,3,opt,name=blockTime,proto3" json:"blockTime,omitempty"`
	Tx        *Transaction `protobuf:"bytes,4,opt,name=tx,proto3" json:"tx,omitempty"`
	Receipt   *ReceiptData `protobuf:"bytes,5,opt,name=receipt,proto3" json:"receipt,omitempty"`
	From      string       `protobuf:"bytes,6,opt,name=from,proto3" json:"from,omitempty"`
}

func (m *TxResult) Reset()         { *m = TxResult{} }
func (m *TxResult) String() string { return proto.CompactTextString(m) }
func (*TxResult) ProtoMessage()    {}

//Account balance of addr, Frozen is held by an executor
type Account struct {
	Balance int64  `protobuf:"varint,1,opt,name=balance,proto3" json:"balance,omitempty"`
	Frozen  int64  `protobuf:"varint,2,opt,name=frozen,proto3" json:"frozen,omitempty"`
	Addr    string `protobuf:"bytes,3,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *Account) Reset()         { *m = Account{} }
func (m *Account) String() string { return proto.CompactTextString(m) }
func (*Account) ProtoMessage()    {}

//GetBalance balance
func (m *Account) GetBalance() int64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

//GetFrozen frozen
func (m *Account) GetFrozen() int64 {
	if m != nil {
		return m.Frozen
	}
	return 0
}

//ReceiptAccountTransfer wallet account before and after
type ReceiptAccountTransfer struct {
	Prev    *Account `protobuf:"bytes,1,opt,name=prev,proto3" json:"prev,omitempty"`
	Current *Account `protobuf:"bytes,2,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptAccountTransfer) Reset()         { *m = ReceiptAccountTransfer{} }
func (m *ReceiptAccountTransfer) String() string { return proto.CompactTextString(m) }
func (*ReceiptAccountTransfer) ProtoMessage()    {}

//ReceiptExecAccountTransfer executor account before and after
type ReceiptExecAccountTransfer struct {
	ExecAddr string   `protobuf:"bytes,1,opt,name=execAddr,proto3" json:"execAddr,omitempty"`
	Prev     *Account `protobuf:"bytes,2,opt,name=prev,proto3" json:"prev,omitempty"`
	Current  *Account `protobuf:"bytes,3,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptExecAccountTransfer) Reset()         { *m = ReceiptExecAccountTransfer{} }
func (m *ReceiptExecAccountTransfer) String() string { return proto.CompactTextString(m) }
func (*ReceiptExecAccountTransfer) ProtoMessage()    {}

//Int64 wraps a single number in query replies
type Int64 struct {
	Data int64 `protobuf:"varint,1,opt,name=data,proto3" json:"data"`
}

func (m *Int64) Reset()         { *m = Int64{} }
func (m *Int64) String() string { return proto.CompactTextString(m) }
func (*Int64) ProtoMessage()    {}

//Bool wraps a flag in query replies
type Bool struct {
	Data bool `protobuf:"varint,1,opt,name=data,proto3" json:"data"`
}

func (m *Bool) Reset()         { *m = Bool{} }
func (m *Bool) String() string { return proto.CompactTextString(m) }
func (*Bool) ProtoMessage()    {}

//ReqAddr query by address
type ReqAddr struct {
	Addr string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *ReqAddr) Reset()         { *m = ReqAddr{} }
func (m *ReqAddr) String() string { return proto.CompactTextString(m) }
func (*ReqAddr) ProtoMessage()    {}

//ReqBalance balances of addr, Execer selects the executor account
type ReqBalance struct {
	Addr   string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Execer string `protobuf:"bytes,2,opt,name=execer,proto3" json:"execer,omitempty"`
}

func (m *ReqBalance) Reset()         { *m = ReqBalance{} }
func (m *ReqBalance) String() string { return proto.CompactTextString(m) }
func (*ReqBalance) ProtoMessage()    {}

//AccountBalance wallet plus the executor account of Addr
type AccountBalance struct {
	Addr     string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Execer   string `protobuf:"bytes,2,opt,name=execer,proto3" json:"execer,omitempty"`
	ExecAddr string `protobuf:"bytes,3,opt,name=execAddr,proto3" json:"execAddr,omitempty"`
	Wallet   int64  `protobuf:"varint,4,opt,name=wallet,proto3" json:"wallet"`
	Balance  int64  `protobuf:"varint,5,opt,name=balance,proto3" json:"balance"`
	Frozen   int64  `protobuf:"varint,6,opt,name=frozen,proto3" json:"frozen"`
}

func (m *AccountBalance) Reset()         { *m = AccountBalance{} }
func (m *AccountBalance) String() string { return proto.CompactTextString(m) }
func (*AccountBalance) ProtoMessage()    {}
