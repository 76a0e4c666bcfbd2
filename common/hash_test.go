// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "", ToHex(nil))
	assert.Equal(t, "0x0a0b", ToHex([]byte{10, 11}))

	b, err := FromHex("0x0a0b")
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 11}, b)
	b, err = FromHex("a0b")
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 11}, b)
	_, err = FromHex("0xzz")
	assert.Error(t, err)
}

func TestHexToHash(t *testing.T) {
	h := Keccak256([]byte("rps"))
	require.Len(t, h, HashLen)
	b, err := HexToHash(ToHex(h))
	require.NoError(t, err)
	assert.Equal(t, h, b)

	_, err = HexToHash("0x0102")
	assert.Error(t, err)
}

func TestKeccak256Concat(t *testing.T) {
	assert.Equal(t, Keccak256([]byte("ab")), Keccak256([]byte("a"), []byte("b")))
	// keccak256("") 常量
	assert.Equal(t, "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", ToHex(Keccak256()))
}
