// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package address derives and checks 20 byte account addresses.
package address

import (
	"crypto/ecdsa"
	"errors"

	"github.com/33cn/rps/common"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	lru "github.com/hashicorp/golang-lru"
)

var addrSeed = []byte("address seed bytes for public key")
var addressCache *lru.Cache

//MaxExecNameLength longest executor name accepted by ExecAddress
const MaxExecNameLength = 100

// ErrInvalidAddress is returned by CheckAddress
var ErrInvalidAddress = errors.New("ErrInvalidAddress")

func init() {
	addressCache, _ = lru.New(1024)
}

//ExecAddress address of the account that holds the coins escrowed by executor name
func ExecAddress(name string) string {
	if value, ok := addressCache.Get(name); ok {
		return value.(string)
	}
	if len(name) > MaxExecNameLength {
		panic("name too long")
	}
	buf := append(append([]byte{}, addrSeed...), []byte(name)...)
	addr := ethcommon.BytesToAddress(common.Keccak256(buf)[12:]).Hex()
	addressCache.Add(name, addr)
	return addr
}

//PubKeyToAddress checksummed address of an secp256k1 public key
func PubKeyToAddress(pub *ecdsa.PublicKey) string {
	return crypto.PubkeyToAddress(*pub).Hex()
}

//CheckAddress accepts 0x prefixed 40 digit hex
func CheckAddress(addr string) error {
	if !ethcommon.IsHexAddress(addr) || len(addr) != 2*ethcommon.AddressLength+2 {
		return ErrInvalidAddress
	}
	return nil
}

//Normalize returns the checksummed form, used as the canonical key in state
func Normalize(addr string) (string, error) {
	if err := CheckAddress(addr); err != nil {
		return "", err
	}
	return ethcommon.HexToAddress(addr).Hex(), nil
}

//ToBytes raw 20 bytes of addr, zero address when addr is malformed
func ToBytes(addr string) []byte {
	return ethcommon.HexToAddress(addr).Bytes()
}
