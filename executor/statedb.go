// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sort"

	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
)

// StateDB buffers the writes of one transaction over the backend.
// Nothing reaches the backend until the caller commits KVList.
type StateDB struct {
	db    dbm.DB
	cache map[string][]byte
}

// NewStateDB empty overlay on db
func NewStateDB(db dbm.DB) *StateDB {
	return &StateDB{db: db, cache: make(map[string][]byte)}
}

// Get the buffered value first, a buffered nil is a delete
func (s *StateDB) Get(key []byte) ([]byte, error) {
	if v, ok := s.cache[string(key)]; ok {
		if v == nil {
			return nil, dbm.ErrNotFoundInDb
		}
		return v, nil
	}
	return s.db.Get(key)
}

// Set buffers value, nil deletes
func (s *StateDB) Set(key []byte, value []byte) error {
	s.cache[string(key)] = value
	return nil
}

// Iterator reads the backend only; buffered writes are not visible to it
func (s *StateDB) Iterator(prefix []byte, reverse bool) dbm.Iterator {
	return s.db.Iterator(prefix, reverse)
}

// KVList buffered writes sorted by key
func (s *StateDB) KVList() []*types.KeyValue {
	keys := make([]string, 0, len(s.cache))
	for k := range s.cache {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	kvs := make([]*types.KeyValue, 0, len(keys))
	for _, k := range keys {
		kvs = append(kvs, &types.KeyValue{Key: []byte(k), Value: s.cache[k]})
	}
	return kvs
}

// Rollback drops the buffered writes
func (s *StateDB) Rollback() {
	s.cache = make(map[string][]byte)
}
