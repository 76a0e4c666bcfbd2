// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "github.com/pkg/errors"

// host errors
var (
	ErrNotFound          = errors.New("ErrNotFound")
	ErrNoBalance         = errors.New("ErrNoBalance")
	ErrAmount            = errors.New("ErrAmount")
	ErrSendSameToRecv    = errors.New("ErrSendSameToRecv")
	ErrInvalidParam      = errors.New("ErrInvalidParam")
	ErrInvalidAddress    = errors.New("ErrInvalidAddress")
	ErrSign              = errors.New("ErrSign")
	ErrTxDup             = errors.New("ErrTxDup")
	ErrTxSize            = errors.New("ErrTxSize")
	ErrDecode            = errors.New("ErrDecode")
	ErrUnknownExecutor   = errors.New("ErrUnknownExecutor")
	ErrActionNotSupport  = errors.New("ErrActionNotSupport")
	ErrQueryNotSupport   = errors.New("ErrQueryNotSupport")
	ErrNotPayable        = errors.New("ErrNotPayable")
	ErrGenesisAlreadyRun = errors.New("ErrGenesisAlreadyRun")
	ErrStoreDriver       = errors.New("ErrStoreDriver")
	ErrConfig            = errors.New("ErrConfig")
	ErrEventStoreDisable = errors.New("ErrEventStoreDisable")
)
