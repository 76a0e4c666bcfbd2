// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"crypto/ecdsa"
	"encoding/hex"
	"math/rand"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/address"
	"github.com/ethereum/go-ethereum/crypto"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

// signature hash -> sender, recovering a public key is the expensive part of CheckSign
var txFromCache *lru.Cache

func init() {
	var err error
	txFromCache, err = lru.New(10240)
	if err != nil {
		panic(err)
	}
}

// CreateTx unsigned transaction with a random nonce
func CreateTx(execer string, payload []byte, value int64) *Transaction {
	return &Transaction{Execer: execer, Payload: payload, Value: value, Nonce: rand.Int63()}
}

// Hash keccak256 of the transaction without its signature
func (tx *Transaction) Hash() []byte {
	copytx := *tx
	copytx.Signature = nil
	return common.Keccak256(Encode(&copytx))
}

// Sign sets the 65 byte recoverable secp256k1 signature
func (tx *Transaction) Sign(priv *ecdsa.PrivateKey) error {
	sig, err := crypto.Sign(tx.Hash(), priv)
	if err != nil {
		return errors.Wrap(ErrSign, err.Error())
	}
	tx.Signature = sig
	return nil
}

// From sender address recovered from the signature
func (tx *Transaction) From() (string, error) {
	if len(tx.Signature) != crypto.SignatureLength {
		return "", ErrSign
	}
	hash := tx.Hash()
	key := string(hash) + string(tx.Signature)
	if from, ok := txFromCache.Get(key); ok {
		return from.(string), nil
	}
	pub, err := crypto.SigToPub(hash, tx.Signature)
	if err != nil {
		return "", errors.Wrap(ErrSign, err.Error())
	}
	from := address.PubKeyToAddress(pub)
	txFromCache.Add(key, from)
	return from, nil
}

// CheckSign the signature recovers to some key
func (tx *Transaction) CheckSign() bool {
	_, err := tx.From()
	return err == nil
}

// Size encoded size
func (tx *Transaction) Size() int {
	return len(Encode(tx))
}

// EncodeHex hex of the encoded transaction, the form accepted by SendTransaction
func (tx *Transaction) EncodeHex() string {
	return hex.EncodeToString(Encode(tx))
}

// DecodeTxHex inverse of EncodeHex
func DecodeTxHex(s string) (*Transaction, error) {
	data, err := common.FromHex(s)
	if err != nil {
		return nil, errors.Wrap(ErrDecode, err.Error())
	}
	var tx Transaction
	if err := Decode(data, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}
