// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"path"

	"github.com/dgraph-io/badger"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "db.gobadgerdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

//GoBadgerDB badger backend
type GoBadgerDB struct {
	db *badger.DB
}

//NewGoBadgerDB opens dir/name.db
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	opts := badger.DefaultOptions(path.Join(dir, name+".db"))
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		blog.Error("NewGoBadgerDB", "error", err)
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

//Get value of key or ErrNotFoundInDb
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFoundInDb
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

//Set put key, a nil value deletes it
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	if value == nil {
		return db.Delete(key)
	}
	return db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

//Delete remove key
func (db *GoBadgerDB) Delete(key []byte) error {
	return db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

//Close close
func (db *GoBadgerDB) Close() {
	if err := db.db.Close(); err != nil {
		blog.Error("Close", "error", err)
	}
}

//Iterator prefix iterator inside a read only transaction released by Close
func (db *GoBadgerDB) Iterator(prefix []byte, reverse bool) Iterator {
	txn := db.db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	opts.Reverse = reverse
	return &badgerIt{itBase: itBase{prefix: prefix, reverse: reverse}, txn: txn, it: txn.NewIterator(opts)}
}

//NewBatch all writes of the batch go through one update transaction
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &badgerBatch{db: db.db}
}

type badgerIt struct {
	itBase
	txn *badger.Txn
	it  *badger.Iterator
	err error
}

// seek target for reverse iteration: just past every key carrying prefix
func (it *badgerIt) lastKey() []byte {
	return append(cloneByte(it.prefix), 0xff, 0xff, 0xff, 0xff)
}

func (it *badgerIt) Rewind() bool {
	if it.reverse {
		it.it.Seek(it.lastKey())
	} else {
		it.it.Seek(it.prefix)
	}
	return it.Valid()
}

func (it *badgerIt) Next() bool {
	it.it.Next()
	return it.Valid()
}

func (it *badgerIt) Valid() bool {
	return it.it.ValidForPrefix(it.prefix)
}

// badger reverse Seek already lands on the greatest key <= key
func (it *badgerIt) Seek(key []byte) bool {
	it.it.Seek(key)
	return it.Valid()
}

func (it *badgerIt) Key() []byte {
	return it.it.Item().Key()
}

func (it *badgerIt) Value() []byte {
	v, err := it.it.Item().ValueCopy(nil)
	if err != nil {
		it.err = err
	}
	return v
}

func (it *badgerIt) ValueCopy() []byte {
	return it.Value()
}

func (it *badgerIt) Error() error {
	return it.err
}

func (it *badgerIt) Close() {
	it.it.Close()
	it.txn.Discard()
}

type badgerBatch struct {
	db   *badger.DB
	ops  []kvOp
	size int
}

func (b *badgerBatch) Set(key, value []byte) {
	b.ops = append(b.ops, kvOp{key: cloneByte(key), value: cloneByte(value)})
	b.size += len(value)
}

func (b *badgerBatch) Delete(key []byte) {
	b.ops = append(b.ops, kvOp{key: cloneByte(key), delete: true})
	b.size++
}

func (b *badgerBatch) Write() error {
	return b.db.Update(func(txn *badger.Txn) error {
		for _, op := range b.ops {
			var err error
			if op.delete {
				err = txn.Delete(op.key)
			} else {
				err = txn.Set(op.key, op.value)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *badgerBatch) ValueSize() int {
	return b.size
}

func (b *badgerBatch) Reset() {
	b.ops = nil
	b.size = 0
}
