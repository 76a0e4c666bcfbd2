// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/memdb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// memdb makes no difference between sync and async writes

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(MemDBBackendStr, dbCreator, false)
}

//GoMemDB in memory backend on the goleveldb skiplist
type GoMemDB struct {
	db *memdb.DB
	// batches apply under the write lock so readers never see half of one
	lock sync.RWMutex
}

//NewGoMemDB name and dir are ignored
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	return &GoMemDB{db: memdb.New(comparer.DefaultComparer, cache*1024)}, nil
}

//Get value of key or ErrNotFoundInDb
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()
	v, err := db.db.Get(key)
	if err == errors.ErrNotFound {
		return nil, ErrNotFoundInDb
	}
	if err != nil {
		return nil, err
	}
	return cloneByte(v), nil
}

//Set put key, a nil value deletes it
func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()
	if value == nil {
		return db.delete(key)
	}
	return db.db.Put(key, value)
}

//Delete remove key
func (db *GoMemDB) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()
	return db.delete(key)
}

func (db *GoMemDB) delete(key []byte) error {
	err := db.db.Delete(key)
	if err == errors.ErrNotFound {
		return nil
	}
	return err
}

//Close drops the content
func (db *GoMemDB) Close() {
	db.lock.Lock()
	defer db.lock.Unlock()
	db.db.Reset()
}

//Iterator prefix iterator
func (db *GoMemDB) Iterator(prefix []byte, reverse bool) Iterator {
	return newLevelIt(db.db.NewIterator(util.BytesPrefix(prefix)), prefix, reverse)
}

//NewBatch new
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

type kvOp struct {
	key    []byte
	value  []byte
	delete bool
}

type memBatch struct {
	db   *GoMemDB
	ops  []kvOp
	size int
}

func (b *memBatch) Set(key, value []byte) {
	b.ops = append(b.ops, kvOp{key: cloneByte(key), value: cloneByte(value)})
	b.size += len(value)
}

func (b *memBatch) Delete(key []byte) {
	b.ops = append(b.ops, kvOp{key: cloneByte(key), delete: true})
	b.size++
}

func (b *memBatch) Write() error {
	b.db.lock.Lock()
	defer b.db.lock.Unlock()
	for _, op := range b.ops {
		var err error
		if op.delete {
			err = b.db.delete(op.key)
		} else {
			err = b.db.db.Put(op.key, op.value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *memBatch) ValueSize() int {
	return b.size
}

func (b *memBatch) Reset() {
	b.ops = nil
	b.size = 0
}
