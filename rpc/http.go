// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"io"
	"net"
	"net/http"
	"net/rpc/jsonrpc"
	"strings"

	"github.com/33cn/rps/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	go_metrics "github.com/rcrowley/go-metrics"
	"github.com/rs/cors"
)

// HTTPConn adapt HTTP connection to ReadWriteCloser
type HTTPConn struct {
	in  io.Reader
	out io.Writer
}

func (c *HTTPConn) Read(p []byte) (n int, err error)  { return c.in.Read(p) }
func (c *HTTPConn) Write(d []byte) (n int, err error) { return c.out.Write(d) }

// Close the body is closed by net/http
func (c *HTTPConn) Close() error { return nil }

// routes: POST / json rpc, GET /health, GET /metrics
func (s *JSONRPCServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/health"))
	r.Use(s.checkWhitelist)
	r.Post("/", s.serveJSONRPC)
	r.Method(http.MethodGet, "/metrics", metrics.Handler(go_metrics.DefaultRegistry))

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(r)
}

func (s *JSONRPCServer) serveJSONRPC(w http.ResponseWriter, r *http.Request) {
	serverCodec := jsonrpc.NewServerCodec(&HTTPConn{in: r.Body, out: w})
	w.Header().Set("Content-type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := s.s.ServeRequest(serverCodec); err != nil {
		log.Debug("Error while serving JSON request", "err", err)
	}
}

func (s *JSONRPCServer) checkWhitelist(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if !s.checkIPWhitelist(host) {
			log.Error("HandlerFunc", "remote addr not in whitelist", host)
			http.Error(w, "reject", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *JSONRPCServer) checkIPWhitelist(addr string) bool {
	//回环网络直接允许
	ip := net.ParseIP(strings.TrimSpace(addr))
	if ip == nil {
		return false
	}
	if ip.IsLoopback() {
		return true
	}
	if ipv4 := ip.To4(); ipv4 != nil {
		addr = ipv4.String()
	}
	if _, ok := s.whitelist["0.0.0.0"]; ok {
		return true
	}
	_, ok := s.whitelist[addr]
	return ok
}
