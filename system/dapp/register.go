// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"sort"
	"sync"

	"github.com/33cn/rps/common/address"
	"github.com/33cn/rps/types"
	log "github.com/inconshreveable/log15"
)

var elog = log.New("module", "execs")

// DriverCreate defines a drivercreate function
type DriverCreate func() Driver

// DriverInit receives the json of the [exec.sub.<name>] section, nil when absent
type DriverInit func(name string, sub []byte)

type driverEntry struct {
	create DriverCreate
	init   DriverInit
}

var (
	mu                 sync.RWMutex
	registedExecDriver = make(map[string]*driverEntry)
	execAddressNameMap = make(map[string]string)
)

// Register adds a driver, called from the init of the driver package
func Register(name string, create DriverCreate, init DriverInit) {
	mu.Lock()
	defer mu.Unlock()
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	registedExecDriver[name] = &driverEntry{create: create, init: init}
	execAddressNameMap[address.ExecAddress(name)] = name
}

// InitDrivers hands each registered driver its sub config
func InitDrivers(sub *types.ConfigSubModule) {
	mu.RLock()
	defer mu.RUnlock()
	for name, entry := range registedExecDriver {
		if entry.init == nil {
			continue
		}
		var data []byte
		if sub != nil {
			data = sub.Exec[name]
		}
		elog.Debug("InitDrivers", "driver", name, "config", string(data))
		entry.init(name, data)
	}
}

// LoadDriver new instance of the driver registered under name
func LoadDriver(name string) (Driver, error) {
	mu.RLock()
	defer mu.RUnlock()
	entry, ok := registedExecDriver[name]
	if !ok {
		elog.Debug("LoadDriver", "driver", name)
		return nil, types.ErrUnknownExecutor
	}
	return entry.create(), nil
}

// DriverNames registered drivers, sorted
func DriverNames() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registedExecDriver))
	for name := range registedExecDriver {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExecAddress executor address of name
func ExecAddress(name string) string {
	return address.ExecAddress(name)
}

// GetExecName driver name behind an executor address
func GetExecName(execaddr string) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()
	name, ok := execAddressNameMap[execaddr]
	return name, ok
}
