// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPriv = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

func TestTxSignAndFrom(t *testing.T) {
	priv, err := crypto.HexToECDSA(testPriv)
	require.NoError(t, err)

	tx := CreateTx("rps", []byte("payload"), 900000)
	assert.False(t, tx.CheckSign())
	require.NoError(t, tx.Sign(priv))
	assert.Len(t, tx.Signature, 65)

	from, err := tx.From()
	require.NoError(t, err)
	assert.Equal(t, "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23", from)

	// cached path
	from2, err := tx.From()
	require.NoError(t, err)
	assert.Equal(t, from, from2)

	hash := tx.Hash()
	tx2, err := DecodeTxHex(tx.EncodeHex())
	require.NoError(t, err)
	assert.Equal(t, hash, tx2.Hash())
	assert.True(t, tx2.CheckSign())
	assert.Equal(t, tx.Size(), len(Encode(tx2)))
}

func TestTxTampered(t *testing.T) {
	priv, err := crypto.HexToECDSA(testPriv)
	require.NoError(t, err)
	tx := CreateTx("rps", []byte("payload"), 1)
	require.NoError(t, tx.Sign(priv))
	from, err := tx.From()
	require.NoError(t, err)

	tx.Value = 2
	from2, err := tx.From()
	if err == nil {
		assert.NotEqual(t, from, from2)
	}

	tx.Signature = tx.Signature[:10]
	_, err = tx.From()
	assert.Equal(t, ErrSign, err)
}

func TestAmount(t *testing.T) {
	v, err := ParseAmount("0.009")
	require.NoError(t, err)
	assert.Equal(t, int64(900000), v)
	assert.Equal(t, "0.009", FormatAmount(v))

	v, err = ParseAmount("12")
	require.NoError(t, err)
	assert.Equal(t, 12*Coin, v)

	_, err = ParseAmount("0.000000001")
	assert.Error(t, err)
	_, err = ParseAmount("abc")
	assert.Error(t, err)
}

func TestDecodeLog(t *testing.T) {
	l := &ReceiptLog{Ty: TyLogExecFrozen, Log: Encode(&ReceiptExecAccountTransfer{ExecAddr: "x", Current: &Account{Frozen: 5}})}
	name, msg, err := DecodeLog(l)
	require.NoError(t, err)
	assert.Equal(t, "LogExecFrozen", name)
	assert.Equal(t, int64(5), msg.(*ReceiptExecAccountTransfer).Current.GetFrozen())

	_, _, err = DecodeLog(&ReceiptLog{Ty: 9999})
	assert.Error(t, err)
}
