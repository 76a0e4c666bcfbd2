// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/rps/types"
	proto "github.com/golang/protobuf/proto"
)

// CoinsX driver name
const CoinsX = types.CoinsExecName

// action types
const (
	CoinsActionTransfer = 1
)

// CoinsAction payload of a coins transaction
type CoinsAction struct {
	Ty       int32          `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Transfer *CoinsTransfer `protobuf:"bytes,2,opt,name=transfer,proto3" json:"transfer,omitempty"`
}

func (m *CoinsAction) Reset()         { *m = CoinsAction{} }
func (m *CoinsAction) String() string { return proto.CompactTextString(m) }
func (*CoinsAction) ProtoMessage()    {}

// GetTransfer transfer
func (m *CoinsAction) GetTransfer() *CoinsTransfer {
	if m != nil {
		return m.Transfer
	}
	return nil
}

// CoinsTransfer wallet to wallet payment
type CoinsTransfer struct {
	To     string `protobuf:"bytes,1,opt,name=to,proto3" json:"to,omitempty"`
	Amount int64  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Note   string `protobuf:"bytes,3,opt,name=note,proto3" json:"note,omitempty"`
}

func (m *CoinsTransfer) Reset()         { *m = CoinsTransfer{} }
func (m *CoinsTransfer) String() string { return proto.CompactTextString(m) }
func (*CoinsTransfer) ProtoMessage()    {}

// CreateTransfer unsigned transfer transaction
func CreateTransfer(to string, amount int64, note string) *types.Transaction {
	action := &CoinsAction{Ty: CoinsActionTransfer, Transfer: &CoinsTransfer{To: to, Amount: amount, Note: note}}
	return types.CreateTx(CoinsX, types.Encode(action), 0)
}
