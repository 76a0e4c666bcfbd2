// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log wires the log15 root logger to the console and to a rotating log file.
package log

import (
	"os"

	"github.com/33cn/rps/types"
	log15 "github.com/inconshreveable/log15"
	"github.com/mattn/go-colorable"
	"gopkg.in/natefinch/lumberjack.v2"
)

//SetLogLevel only keeps the console handler, filtered at logLevel
func SetLogLevel(logLevel string) {
	log15.Root().SetHandler(consoleHandler(logLevel))
}

//SetFileLog installs console and file handlers from the [log] section
func SetFileLog(cfg *types.Log) {
	if cfg == nil {
		cfg = &types.Log{}
	}
	fillDefaultValue(cfg)
	if cfg.LogFile == "" {
		SetLogLevel(cfg.LogConsoleLevel)
		return
	}
	log15.Root().SetHandler(log15.MultiHandler(consoleHandler(cfg.LogConsoleLevel), fileHandler(cfg)))
}

// error level unless configured, console output gets noisy otherwise
func fillDefaultValue(cfg *types.Log) {
	if cfg.Loglevel == "" {
		cfg.Loglevel = log15.LvlError.String()
	}
	if cfg.LogConsoleLevel == "" {
		cfg.LogConsoleLevel = log15.LvlError.String()
	}
}

func isWindows() bool {
	return os.PathSeparator == '\\' && os.PathListSeparator == ';'
}

func consoleHandler(logLevel string) log15.Handler {
	format := log15.TerminalFormat()
	if isWindows() {
		format = log15.LogfmtFormat()
	}
	return log15.LvlFilterHandler(getLevel(logLevel), log15.StreamHandler(colorable.NewColorableStdout(), format))
}

func fileHandler(cfg *types.Log) log15.Handler {
	rotate := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    int(cfg.MaxFileSize),
		MaxBackups: int(cfg.MaxBackups),
		MaxAge:     int(cfg.MaxAge),
		LocalTime:  cfg.LocalTime,
		Compress:   cfg.Compress,
	}
	h := log15.LvlFilterHandler(getLevel(cfg.Loglevel), log15.StreamHandler(rotate, log15.LogfmtFormat()))
	if cfg.CallerFile {
		h = log15.CallerFileHandler(h)
	}
	if cfg.CallerFunction {
		h = log15.CallerFuncHandler(h)
	}
	return h
}

func getLevel(lvl string) log15.Lvl {
	l, err := log15.LvlFromString(lvl)
	if err != nil {
		return log15.LvlError
	}
	return l
}

//New returns a child of the root logger carrying ctx
func New(ctx ...interface{}) log15.Logger {
	return log15.Root().New(ctx...)
}
