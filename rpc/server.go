// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc json rpc endpoint of the node.
//
// Requests are JSON-RPC 1.0 (net/rpc/jsonrpc) posted to "/". Host methods live under "Chain",
// plugins register their own services through pluginmgr.
package rpc

import (
	"context"
	"net"
	"net/http"
	"net/rpc"
	"time"

	"github.com/33cn/rps/pluginmgr"
	rpctypes "github.com/33cn/rps/rpc/types"
	"github.com/33cn/rps/types"
	log15 "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var log = log15.New("module", "rpc")

// JSONRPCServer a json rpcserver object
type JSONRPCServer struct {
	api       rpctypes.ChainAPI
	chain     *Chain
	s         *rpc.Server
	l         net.Listener
	srv       *http.Server
	whitelist map[string]bool
}

// NewJSONRPCServer registers the Chain service and every plugin service
func NewJSONRPCServer(cfg *types.RPC, api rpctypes.ChainAPI) (*JSONRPCServer, error) {
	j := &JSONRPCServer{
		api:       api,
		s:         rpc.NewServer(),
		whitelist: make(map[string]bool),
	}
	if cfg != nil {
		for _, ip := range cfg.Whitelist {
			j.whitelist[ip] = true
		}
	}
	j.chain = &Chain{api: api}
	if err := j.s.RegisterName("Chain", j.chain); err != nil {
		return nil, errors.Wrap(err, "register Chain")
	}
	if err := pluginmgr.AddRPC(j); err != nil {
		return nil, err
	}
	return j, nil
}

// SetEventSource enables Chain.GetEvents, call it before Listen
func (s *JSONRPCServer) SetEventSource(src rpctypes.EventSource) {
	s.chain.events = src
}

// GetAPI chain behind the server
func (s *JSONRPCServer) GetAPI() rpctypes.ChainAPI {
	return s.api
}

// RegisterName adds a receiver under name
func (s *JSONRPCServer) RegisterName(name string, rcvr interface{}) error {
	return s.s.RegisterName(name, rcvr)
}

// Handler http entry, exposed for tests
func (s *JSONRPCServer) Handler() http.Handler {
	return s.routes()
}

// Listen binds addr and serves in the background, returns the bound address
func (s *JSONRPCServer) Listen(addr string) (string, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return "", errors.Wrapf(err, "listen %s", addr)
	}
	s.l = l
	s.srv = &http.Server{Handler: s.routes(), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := s.srv.Serve(l); err != nil && err != http.ErrServerClosed {
			log.Error("jsonrpc serve", "err", err)
		}
	}()
	log.Info("jsonrpc listen", "addr", l.Addr().String())
	return l.Addr().String(), nil
}

// Close json rpcserver close
func (s *JSONRPCServer) Close() error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
