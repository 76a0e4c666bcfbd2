// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/33cn/rps/blockchain"
	clog "github.com/33cn/rps/common/log"
	"github.com/33cn/rps/eventstore"
	"github.com/33cn/rps/metrics"
	"github.com/33cn/rps/rpc"
	"github.com/33cn/rps/types"
	"github.com/hashicorp/go-multierror"
	log15 "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var nlog = log15.New("module", "main")

// NodeCmd runs a node in the foreground
func NodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node",
		Short: "Run a node until SIGINT or SIGTERM",
		RunE:  runNode,
	}
	cmd.Flags().StringP("config", "f", "rps.toml", "config file")
	cmd.Flags().String("datadir", "", "data dir, overrides store.dbPath and eventstore.path")
	return cmd
}

func runNode(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	datadir, _ := cmd.Flags().GetString("datadir")
	cfg, sub, err := types.InitCfg(path)
	if err != nil {
		return err
	}
	if datadir != "" {
		resetDatadir(cfg, datadir)
	}
	clog.SetFileLog(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	n, err := startNode(ctx, cfg, sub)
	if err != nil {
		return err
	}
	<-ctx.Done()
	nlog.Info("begin close node")
	return n.Close()
}

func resetDatadir(cfg *types.Config, datadir string) {
	cfg.Store.DbPath = filepath.Join(datadir, filepath.Base(cfg.Store.DbPath))
	cfg.EventStore.Path = filepath.Join(datadir, filepath.Base(cfg.EventStore.Path))
}

type node struct {
	chain  *blockchain.BlockChain
	events *eventstore.Store
	server *rpc.JSONRPCServer
	addr   string
}

// startNode opens the chain, the optional event store and the rpc endpoint
func startNode(ctx context.Context, cfg *types.Config, sub *types.ConfigSubModule) (*node, error) {
	nlog.Info("loading blockchain module", "title", cfg.Title, "driver", cfg.Store.Driver)
	chain, err := blockchain.New(cfg, sub)
	if err != nil {
		return nil, err
	}
	n := &node{chain: chain}
	if cfg.EventStore.Enable {
		nlog.Info("loading eventstore", "path", cfg.EventStore.Path)
		if dir := filepath.Dir(cfg.EventStore.Path); dir != "" {
			if err := os.MkdirAll(dir, 0750); err != nil {
				n.Close()
				return nil, errors.Wrap(err, "eventstore dir")
			}
		}
		n.events, err = eventstore.New(cfg.EventStore.Path)
		if err != nil {
			n.Close()
			return nil, err
		}
		chain.Subscribe(n.events.Subscriber())
	}
	n.server, err = rpc.NewJSONRPCServer(cfg.RPC, chain)
	if err != nil {
		n.Close()
		return nil, err
	}
	if n.events != nil {
		n.server.SetEventSource(n.events)
	}
	n.addr, err = n.server.Listen(cfg.RPC.JrpcBindAddr)
	if err != nil {
		n.Close()
		return nil, err
	}
	metrics.StartMetrics(ctx, cfg.Metrics)
	return n, nil
}

// Close stops the rpc endpoint before the stores
func (n *node) Close() error {
	var result *multierror.Error
	if n.server != nil {
		nlog.Info("begin close rpc module")
		result = multierror.Append(result, n.server.Close())
	}
	if n.events != nil {
		nlog.Info("begin close eventstore")
		result = multierror.Append(result, n.events.Close())
	}
	if n.chain != nil {
		nlog.Info("begin close blockchain module")
		n.chain.Close()
	}
	return result.ErrorOrNil()
}
