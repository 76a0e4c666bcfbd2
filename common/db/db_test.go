// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func openBackends(t *testing.T) map[string]DB {
	dbs := make(map[string]DB)
	for _, backend := range []string{GoLevelDBBackendStr, MemDBBackendStr, GoBadgerDBBackendStr} {
		d, err := NewDB("test", backend, t.TempDir(), 16)
		require.NoError(t, err, backend)
		t.Cleanup(d.Close)
		dbs[backend] = d
	}
	return dbs
}

func TestUnknownBackend(t *testing.T) {
	_, err := NewDB("test", "cleveldb", t.TempDir(), 16)
	require.Error(t, err)
	require.Contains(t, Backends(), MemDBBackendStr)
}

func TestGetSetDelete(t *testing.T) {
	for name, d := range openBackends(t) {
		_, err := d.Get([]byte("k"))
		require.Equal(t, ErrNotFoundInDb, err, name)

		require.NoError(t, d.Set([]byte("k"), []byte("v1")))
		v, err := d.Get([]byte("k"))
		require.NoError(t, err, name)
		require.Equal(t, []byte("v1"), v, name)

		require.NoError(t, d.Set([]byte("k"), nil))
		_, err = d.Get([]byte("k"))
		require.Equal(t, ErrNotFoundInDb, err, name)

		require.NoError(t, d.Set([]byte("k"), []byte("v2")))
		require.NoError(t, d.Delete([]byte("k")))
		_, err = d.Get([]byte("k"))
		require.Equal(t, ErrNotFoundInDb, err, name)
	}
}

func TestBatch(t *testing.T) {
	for name, d := range openBackends(t) {
		require.NoError(t, d.Set([]byte("gone"), []byte("x")))
		b := d.NewBatch(true)
		b.Set([]byte("a"), []byte("1"))
		b.Set([]byte("b"), []byte("22"))
		b.Delete([]byte("gone"))
		require.Equal(t, 4, b.ValueSize(), name)

		_, err := d.Get([]byte("a"))
		require.Equal(t, ErrNotFoundInDb, err, name)

		require.NoError(t, b.Write(), name)
		v, err := d.Get([]byte("b"))
		require.NoError(t, err, name)
		require.Equal(t, []byte("22"), v, name)
		_, err = d.Get([]byte("gone"))
		require.Equal(t, ErrNotFoundInDb, err, name)

		b.Reset()
		require.Equal(t, 0, b.ValueSize(), name)
	}
}

func TestListHelper(t *testing.T) {
	for name, d := range openBackends(t) {
		for _, k := range []string{"aaaaaa/1", "my_key/1", "my_key/2", "my_key/3", "my_key/4", "my", "my_", "zzzzzz/1"} {
			require.NoError(t, d.Set([]byte(k), []byte(k)))
		}
		it := NewListHelper(d)

		list := it.PrefixScan([]byte("my"))
		require.Equal(t, [][]byte{[]byte("my"), []byte("my_"), []byte("my_key/1"), []byte("my_key/2"), []byte("my_key/3"), []byte("my_key/4")}, list, name)

		list = it.IteratorScanFromFirst([]byte("my"), 2)
		require.Equal(t, [][]byte{[]byte("my"), []byte("my_")}, list, name)

		list = it.IteratorScanFromLast([]byte("my"), 100)
		require.Equal(t, [][]byte{[]byte("my_key/4"), []byte("my_key/3"), []byte("my_key/2"), []byte("my_key/1"), []byte("my_"), []byte("my")}, list, name)

		list = it.List([]byte("my"), []byte("my_key/3"), 100, ListASC)
		require.Equal(t, [][]byte{[]byte("my_key/4")}, list, name)

		list = it.List([]byte("my"), []byte("my_key/3"), 2, ListDESC)
		require.Equal(t, [][]byte{[]byte("my_key/2"), []byte("my_key/1")}, list, name)

		require.Equal(t, int64(4), it.PrefixCount([]byte("my_key/")), name)
		require.Nil(t, it.PrefixScan([]byte("nothing")), name)
	}
}
