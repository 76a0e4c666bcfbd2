// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	log "github.com/inconshreveable/log15"
)

//ListHelper paged reads over an IteratorDB
type ListHelper struct {
	db IteratorDB
}

var listlog = log.New("module", "db.ListHelper")

//NewListHelper new
func NewListHelper(db IteratorDB) *ListHelper {
	return &ListHelper{db}
}

//list directions
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

//PrefixScan every value under prefix in key order
func (db *ListHelper) PrefixScan(prefix []byte) [][]byte {
	return db.scan(prefix, nil, -1, false)
}

//List at most count values under prefix, starting after key when key is set
func (db *ListHelper) List(prefix, key []byte, count, direction int32) [][]byte {
	return db.scan(prefix, key, count, direction == ListDESC)
}

//IteratorScanFromFirst first count values under prefix
func (db *ListHelper) IteratorScanFromFirst(prefix []byte, count int32) [][]byte {
	return db.scan(prefix, nil, count, false)
}

//IteratorScanFromLast last count values under prefix, newest first
func (db *ListHelper) IteratorScanFromLast(prefix []byte, count int32) [][]byte {
	return db.scan(prefix, nil, count, true)
}

//PrefixCount number of keys under prefix
func (db *ListHelper) PrefixCount(prefix []byte) (count int64) {
	it := db.db.Iterator(prefix, false)
	defer it.Close()
	for it.Rewind(); it.Valid(); it.Next() {
		count++
	}
	return count
}

func (db *ListHelper) scan(prefix, key []byte, count int32, reverse bool) (values [][]byte) {
	it := db.db.Iterator(prefix, reverse)
	defer it.Close()

	ok := it.Rewind()
	if len(key) > 0 {
		ok = it.Seek(key)
		// start strictly after key
		if ok && string(it.Key()) == string(key) {
			ok = it.Next()
		}
	}
	var i int32
	for ; ok; ok = it.Next() {
		if count >= 0 && i == count {
			break
		}
		value := it.ValueCopy()
		if it.Error() != nil {
			listlog.Error("scan", "prefix", string(prefix), "error", it.Error())
			return nil
		}
		values = append(values, value)
		i++
	}
	return values
}
