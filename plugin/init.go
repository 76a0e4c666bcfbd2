// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plugin links every dapp plugin into the binary
package plugin

import (
	_ "github.com/33cn/rps/plugin/dapp/rps" //register plugin
)
