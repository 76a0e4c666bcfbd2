// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"os"

	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config node configuration
type Config struct {
	Title      string          `toml:"title"`
	Log        *Log            `toml:"log"`
	Store      *Store          `toml:"store"`
	RPC        *RPC            `toml:"rpc"`
	Metrics    *Metrics        `toml:"metrics"`
	EventStore *EventStore     `toml:"eventstore"`
	Genesis    []*GenesisAlloc `toml:"genesis"`
}

// Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `toml:"logFile"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `toml:"maxFileSize"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `toml:"maxBackups"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `toml:"maxAge"`
	// 日志文件名是否使用本地事件（否则使用UTC时间）
	LocalTime bool `toml:"localTime"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `toml:"compress"`
	// 是否打印调用源文件和行号
	CallerFile bool `toml:"callerFile"`
	// 是否打印调用方法
	CallerFunction bool `toml:"callerFunction"`
}

// Store state and index database
type Store struct {
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath"`
	Name    string `toml:"name"`
	DbCache int32  `toml:"dbCache"`
}

// RPC json rpc endpoint
type RPC struct {
	JrpcBindAddr string   `toml:"jrpcBindAddr"`
	Whitelist    []string `toml:"whitelist"`
}

// Metrics counters and the periodic log dump
type Metrics struct {
	Enable             bool  `toml:"enable"`
	LogIntervalSeconds int64 `toml:"logIntervalSeconds"`
}

// EventStore sqlite archive of receipt logs
type EventStore struct {
	Enable bool   `toml:"enable"`
	Path   string `toml:"path"`
}

// GenesisAlloc coins credited at height 0, Amount in coins ("1000", "0.5")
type GenesisAlloc struct {
	Addr   string `toml:"addr"`
	Amount string `toml:"amount"`
}

// ConfigSubModule executor sections, json encoded so each executor decodes its own struct
type ConfigSubModule struct {
	Exec map[string][]byte
}

type subModule struct {
	Exec struct {
		Sub map[string]interface{} `toml:"sub"`
	} `toml:"exec"`
}

// InitCfg reads and decodes the toml file at path
func InitCfg(path string) (*Config, *ConfigSubModule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read config %s", path)
	}
	return InitCfgString(string(data))
}

// InitCfgString decodes cfgstring and fills defaults
func InitCfgString(cfgstring string) (*Config, *ConfigSubModule, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, nil, errors.Wrap(err, "decode config")
	}
	fillDefaults(&cfg)
	sub, err := initSubModuleString(cfgstring)
	if err != nil {
		return nil, nil, err
	}
	return &cfg, sub, nil
}

func initSubModuleString(cfgstring string) (*ConfigSubModule, error) {
	var cfg subModule
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode exec sub config")
	}
	sub := &ConfigSubModule{Exec: make(map[string][]byte)}
	for name, item := range cfg.Exec.Sub {
		data, err := json.Marshal(item)
		if err != nil {
			return nil, errors.Wrapf(err, "exec.sub.%s", name)
		}
		sub.Exec[name] = data
	}
	return sub, nil
}

// MustDecodeSub decodes an executor section into v, a missing section leaves v untouched
func MustDecodeSub(data []byte, v interface{}) {
	if len(data) == 0 {
		return
	}
	if err := json.Unmarshal(data, v); err != nil {
		panic(err)
	}
}

func fillDefaults(cfg *Config) {
	if cfg.Title == "" {
		cfg.Title = "local"
	}
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "leveldb"
	}
	if cfg.Store.DbPath == "" {
		cfg.Store.DbPath = "datadir"
	}
	if cfg.Store.Name == "" {
		cfg.Store.Name = "rps"
	}
	if cfg.Store.DbCache <= 0 {
		cfg.Store.DbCache = 64
	}
	if cfg.RPC == nil {
		cfg.RPC = &RPC{}
	}
	if cfg.RPC.JrpcBindAddr == "" {
		cfg.RPC.JrpcBindAddr = "localhost:8801"
	}
	if len(cfg.RPC.Whitelist) == 0 {
		cfg.RPC.Whitelist = []string{"127.0.0.1"}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &Metrics{}
	}
	if cfg.Metrics.LogIntervalSeconds <= 0 {
		cfg.Metrics.LogIntervalSeconds = 60
	}
	if cfg.EventStore == nil {
		cfg.EventStore = &EventStore{}
	}
	if cfg.EventStore.Path == "" {
		cfg.EventStore.Path = "datadir/events.db"
	}
}
