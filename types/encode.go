// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"
	"sync"

	proto "github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
)

// Encode 序列化, panics only on a malformed message type
func Encode(data proto.Message) []byte {
	b, err := proto.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

// Decode 反序列化
func Decode(data []byte, msg proto.Message) error {
	if err := proto.Unmarshal(data, msg); err != nil {
		return errors.Wrap(ErrDecode, err.Error())
	}
	return nil
}

// LogInfo name and payload type of a receipt log type
type LogInfo struct {
	Ty   reflect.Type
	Name string
}

var (
	logMu  sync.RWMutex
	logMap = make(map[int32]*LogInfo)
)

func init() {
	RegisterLog(TyLogGenesis, "LogGenesis", &ReceiptAccountTransfer{})
	RegisterLog(TyLogTransfer, "LogTransfer", &ReceiptAccountTransfer{})
	RegisterLog(TyLogExecTransfer, "LogExecTransfer", &ReceiptExecAccountTransfer{})
	RegisterLog(TyLogExecWithdraw, "LogExecWithdraw", &ReceiptExecAccountTransfer{})
	RegisterLog(TyLogExecDeposit, "LogExecDeposit", &ReceiptExecAccountTransfer{})
	RegisterLog(TyLogExecFrozen, "LogExecFrozen", &ReceiptExecAccountTransfer{})
	RegisterLog(TyLogExecActive, "LogExecActive", &ReceiptExecAccountTransfer{})
}

// RegisterLog binds a log type to its payload message, executors call it from init
func RegisterLog(ty int32, name string, msg proto.Message) {
	logMu.Lock()
	defer logMu.Unlock()
	if _, ok := logMap[ty]; ok {
		panic("log type registered twice: " + name)
	}
	logMap[ty] = &LogInfo{Ty: reflect.TypeOf(msg).Elem(), Name: name}
}

// GetLogInfo nil for an unknown type
func GetLogInfo(ty int32) *LogInfo {
	logMu.RLock()
	defer logMu.RUnlock()
	return logMap[ty]
}

// DecodeLog payload of l as its registered message
func DecodeLog(l *ReceiptLog) (string, proto.Message, error) {
	info := GetLogInfo(l.Ty)
	if info == nil {
		return "", nil, errors.Wrapf(ErrDecode, "unknown log type %d", l.Ty)
	}
	msg := reflect.New(info.Ty).Interface().(proto.Message)
	if err := Decode(l.Log, msg); err != nil {
		return "", nil, err
	}
	return info.Name, msg, nil
}
