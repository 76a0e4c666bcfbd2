// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/address"
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
)

// CalcMoveHash commitment of addr to move: Keccak256(addr20 ‖ uint8(move) ‖ secret32).
//
// The secret is a bytes32 value: it is right padded with zeros to SecretLen, so "s" and "s\x00"
// (or nil and 32 zero bytes) are the same secret and give the same hash. Use a random 32 byte
// secret; anything longer is ErrSecretTooLong.
func CalcMoveHash(addr string, move int32, secret []byte) ([]byte, error) {
	if !ValidMove(move) {
		return nil, rt.ErrInvalidMove
	}
	if len(secret) > rt.SecretLen {
		return nil, rt.ErrSecretTooLong
	}
	if err := address.CheckAddress(addr); err != nil {
		return nil, types.ErrInvalidAddress
	}
	padded := make([]byte, rt.SecretLen)
	copy(padded, secret)
	return common.Keccak256(address.ToBytes(addr), []byte{byte(move)}, padded), nil
}

// MoveHashHex hex form stored by Play and Commit
func MoveHashHex(addr string, move int32, secret []byte) (string, error) {
	hash, err := CalcMoveHash(addr, move, secret)
	if err != nil {
		return "", err
	}
	return common.ToHex(hash), nil
}

// normalizeHash accepts a 32 byte hash in hex, with or without 0x, in any case
func normalizeHash(s string) (string, error) {
	b, err := common.HexToHash(s)
	if err != nil {
		return "", types.ErrInvalidParam
	}
	return common.ToHex(b), nil
}

// checkReveal the revealed move and secret reproduce the commitment of addr
func checkReveal(addr, moveHash string, move int32, secret []byte) error {
	hash, err := MoveHashHex(addr, move, secret)
	if err != nil {
		return err
	}
	if hash != moveHash {
		return rt.ErrCommitmentMismatch
	}
	return nil
}
