// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"path"

	log "github.com/inconshreveable/log15"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var llog = log.New("module", "db.goleveldb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoLevelDB(name, dir, cache)
	}
	registerDBCreator(LevelDBBackendStr, dbCreator, false)
	registerDBCreator(GoLevelDBBackendStr, dbCreator, false)
}

//GoLevelDB leveldb backend
type GoLevelDB struct {
	db *leveldb.DB
}

//NewGoLevelDB opens dir/name.db, cache in MiB
func NewGoLevelDB(name string, dir string, cache int) (*GoLevelDB, error) {
	dbPath := path.Join(dir, name+".db")
	if cache <= 0 {
		cache = 64
	}
	handles := cache
	if handles < 16 {
		handles = 16
	}
	db, err := leveldb.OpenFile(dbPath, &opt.Options{
		OpenFilesCacheCapacity: handles,
		BlockCacheCapacity:     cache / 2 * opt.MiB,
		WriteBuffer:            cache / 4 * opt.MiB,
		Filter:                 filter.NewBloomFilter(10),
	})
	if _, corrupted := err.(*errors.ErrCorrupted); corrupted {
		llog.Warn("NewGoLevelDB recover corrupted db", "path", dbPath)
		db, err = leveldb.RecoverFile(dbPath, nil)
	}
	if err != nil {
		return nil, err
	}
	return &GoLevelDB{db: db}, nil
}

//Get value of key or ErrNotFoundInDb
func (db *GoLevelDB) Get(key []byte) ([]byte, error) {
	res, err := db.db.Get(key, nil)
	if err != nil {
		if err == errors.ErrNotFound {
			return nil, ErrNotFoundInDb
		}
		llog.Error("Get", "error", err)
		return nil, err
	}
	return res, nil
}

//Set put key, a nil value deletes it
func (db *GoLevelDB) Set(key []byte, value []byte) error {
	if value == nil {
		return db.Delete(key)
	}
	return db.db.Put(key, value, nil)
}

//Delete remove key
func (db *GoLevelDB) Delete(key []byte) error {
	return db.db.Delete(key, nil)
}

//Close close
func (db *GoLevelDB) Close() {
	if err := db.db.Close(); err != nil {
		llog.Error("Close", "error", err)
	}
}

//Iterator prefix iterator
func (db *GoLevelDB) Iterator(prefix []byte, reverse bool) Iterator {
	return newLevelIt(db.db.NewIterator(util.BytesPrefix(prefix), nil), prefix, reverse)
}

//NewBatch new
func (db *GoLevelDB) NewBatch(sync bool) Batch {
	return &goLevelDBBatch{db: db.db, batch: new(leveldb.Batch), wop: &opt.WriteOptions{Sync: sync}}
}

// goleveldb and its memdb share the iterator.Iterator contract
type levelIt struct {
	itBase
	iterator.Iterator
}

func newLevelIt(it iterator.Iterator, prefix []byte, reverse bool) *levelIt {
	return &levelIt{itBase: itBase{prefix: prefix, reverse: reverse}, Iterator: it}
}

func (it *levelIt) Rewind() bool {
	if it.reverse {
		return it.Iterator.Last() && it.Valid()
	}
	return it.Iterator.First() && it.Valid()
}

func (it *levelIt) Next() bool {
	if it.reverse {
		return it.Iterator.Prev() && it.Valid()
	}
	return it.Iterator.Next() && it.Valid()
}

func (it *levelIt) Valid() bool {
	return it.Iterator.Valid() && it.checkKey(it.Key())
}

// in reverse mode Seek lands on the greatest key <= key
func (it *levelIt) Seek(key []byte) bool {
	ok := it.Iterator.Seek(key)
	if !it.reverse {
		return ok && it.Valid()
	}
	if !ok {
		return it.Iterator.Last() && it.Valid()
	}
	if bytes.Equal(it.Key(), key) {
		return it.Valid()
	}
	return it.Iterator.Prev() && it.Valid()
}

func (it *levelIt) ValueCopy() []byte {
	return cloneByte(it.Value())
}

func (it *levelIt) Close() {
	it.Iterator.Release()
}

type goLevelDBBatch struct {
	db    *leveldb.DB
	batch *leveldb.Batch
	wop   *opt.WriteOptions
	size  int
}

func (b *goLevelDBBatch) Set(key, value []byte) {
	b.batch.Put(key, value)
	b.size += len(value)
}

func (b *goLevelDBBatch) Delete(key []byte) {
	b.batch.Delete(key)
	b.size++
}

func (b *goLevelDBBatch) Write() error {
	return b.db.Write(b.batch, b.wop)
}

func (b *goLevelDBBatch) ValueSize() int {
	return b.size
}

func (b *goLevelDBBatch) Reset() {
	b.batch.Reset()
	b.size = 0
}
