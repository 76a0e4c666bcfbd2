// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// DefaultConfig is written by `rps config init`
var DefaultConfig = `
title = "local"

[log]
# 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
loglevel = "info"
logConsoleLevel = "info"
# 日志文件名，可带目录，所有生成的日志文件都放到此目录下
logFile = "logs/rps.log"
# 单个日志文件的最大值（单位：兆）
maxFileSize = 300
maxBackups = 100
maxAge = 28
localTime = true
compress = true
callerFile = false
callerFunction = false

[store]
# leveldb, memdb or badger
driver = "leveldb"
dbPath = "datadir"
name = "rps"
dbCache = 64

[rpc]
jrpcBindAddr = "localhost:8801"
whitelist = ["127.0.0.1"]

[metrics]
enable = true
logIntervalSeconds = 60

[eventstore]
enable = false
path = "datadir/events.db"

[exec.sub.rps]
# who may resolve a game: "anyparticipant", "anycaller" or "owner"
resolutionTrigger = "anycaller"
# trigger used by tables created without one, the original deployment was owner only
tableResolutionTrigger = "owner"
maxTimeoutBlocks = 100000

[[genesis]]
addr = "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"
amount = "1000"
`
