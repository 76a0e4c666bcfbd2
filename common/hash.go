// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// HashLen is the size of every hash produced by this package
const HashLen = 32

//Keccak256 hashes the concatenation of data
func Keccak256(data ...[]byte) []byte {
	return crypto.Keccak256(data...)
}


//ToHex []byte -> 0x prefixed hex, empty input gives ""
func ToHex(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return hexutil.Encode(b)
}


//FromHex accepts hex with or without 0x and with an odd number of digits
func FromHex(s string) ([]byte, error) {
	if len(s) > 1 && (s[0:2] == "0x" || s[0:2] == "0X") {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}

//HexToHash decodes s and requires exactly HashLen bytes
func HexToHash(s string) ([]byte, error) {
	b, err := FromHex(s)
	if err != nil {
		return nil, err
	}
	if len(b) != HashLen {
		return nil, errors.Errorf("hash length %d, want %d", len(b), HashLen)
	}
	return b, nil
}


