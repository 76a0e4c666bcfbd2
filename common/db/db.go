// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db defines the key value store used for state, receipts and local indexes,
// with leveldb, memdb and badger backends.
package db

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
)

// ErrNotFoundInDb is returned by Get for a missing key
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

//KV read/write access to a key space
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
}

//IteratorDB walks the keys sharing prefix, in descending order when reverse is set
type IteratorDB interface {
	Iterator(prefix []byte, reverse bool) Iterator
}

//DB a persistent store
type DB interface {
	KV
	IteratorDB
	Delete(key []byte) error
	NewBatch(sync bool) Batch
	Close()
}

//Batch groups writes that are applied together by Write
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

//Iterator cursor over a prefix
type Iterator interface {
	Rewind() bool
	Next() bool
	Valid() bool
	Seek(key []byte) bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Close()
}

//backend names accepted by NewDB
const (
	LevelDBBackendStr    = "leveldb"
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "badger"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

//NewDB opens the store name under dir with the given backend
func NewDB(name string, backend string, dir string, cache int) (DB, error) {
	creator, ok := backends[backend]
	if !ok {
		return nil, fmt.Errorf("unknown db backend %q, expected one of %v", backend, Backends())
	}
	return creator(name, dir, cache)
}

//Backends registered backend names, sorted
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type itBase struct {
	prefix  []byte
	reverse bool
}

func (it *itBase) checkKey(key []byte) bool {
	return bytes.HasPrefix(key, it.prefix)
}

func cloneByte(v []byte) []byte {
	if v == nil {
		return nil
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value
}
