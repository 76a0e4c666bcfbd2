// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonclient

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, reply func(method string) (int, string)) *JSONClient {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req struct {
			Method string            `json:"method"`
			Params []json.RawMessage `json:"params"`
		}
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Len(t, req.Params, 1)
		code, out := reply(req.Method)
		w.WriteHeader(code)
		io.WriteString(w, out)
	}))
	t.Cleanup(ts.Close)
	return NewJSONClientWith(ts.URL, ts.Client())
}

func TestCall(t *testing.T) {
	client := newServer(t, func(method string) (int, string) {
		switch method {
		case "Chain.Height":
			return http.StatusOK, `{"id":1,"result":12,"error":null}`
		case "rps.GetGame":
			return http.StatusOK, `{"id":1,"result":null,"error":"ErrGameNotFound"}`
		case "Chain.Empty":
			return http.StatusOK, `{"id":1,"result":null,"error":null}`
		}
		return http.StatusForbidden, "reject\n"
	})

	var h int64
	require.NoError(t, client.Call("Height", struct{}{}, &h))
	assert.Equal(t, int64(12), h)

	err := client.Call("rps.GetGame", struct{}{}, nil)
	require.Error(t, err)
	assert.Equal(t, "ErrGameNotFound", err.Error())

	err = client.Call("Empty", struct{}{}, nil)
	require.Error(t, err)
	assert.Equal(t, "Empty result", err.Error())

	err = client.Call("Chain.Other", struct{}{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reject")
}

func TestRPCCtxCallback(t *testing.T) {
	client := newServer(t, func(method string) (int, string) {
		return http.StatusOK, `{"id":1,"result":5,"error":null}`
	})
	var res int64
	ctx := NewRPCCtx(client.url, "Chain.Height", struct{}{}, &res)
	ctx.SetResultCb(func(r interface{}) (interface{}, error) {
		return *r.(*int64) * 2, nil
	})
	out, err := ctx.RunResult()
	require.NoError(t, err)
	assert.Equal(t, int64(10), out)
}

func TestNewJSONClientScheme(t *testing.T) {
	c, err := NewJSONClient("localhost:8801")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8801", c.url)
	c, err = NewJSONClient("https://node")
	require.NoError(t, err)
	assert.Equal(t, "https://node", c.url)
}
