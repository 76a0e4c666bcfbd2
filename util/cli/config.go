// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ConfigCmd config file helpers
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Node configuration",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(configInitCmd(), configCheckCmd())
	return cmd
}

func configInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		RunE:  configInit,
	}
	cmd.Flags().StringP("config", "f", "rps.toml", "config file")
	cmd.Flags().Bool("force", false, "overwrite an existing file")
	return cmd
}

func configInit(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return errors.Errorf("%s exists, use --force to overwrite", path)
	}
	if err := os.WriteFile(path, []byte(types.DefaultConfig), 0600); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	fmt.Println(path)
	return nil
}

func configCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Decode a config file and print the effective values",
		RunE:  configCheck,
	}
	cmd.Flags().StringP("config", "f", "rps.toml", "config file")
	return cmd
}

func configCheck(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, sub, err := types.InitCfg(path)
	if err != nil {
		return err
	}
	fmt.Printf("title=%s store=%s:%s rpc=%s eventstore=%v metrics=%v genesis=%d\n",
		cfg.Title, cfg.Store.Driver, cfg.Store.DbPath, cfg.RPC.JrpcBindAddr,
		cfg.EventStore.Enable, cfg.Metrics.Enable, len(cfg.Genesis))
	for name, data := range sub.Exec {
		fmt.Printf("exec.sub.%s=%s\n", name, data)
	}
	return nil
}
