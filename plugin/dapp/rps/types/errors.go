// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidConfiguration zero price, zero timeout or timeout above the configured maximum
	ErrInvalidConfiguration = errors.New("ErrInvalidConfiguration")
	// ErrInvalidMove move is void or out of range
	ErrInvalidMove = errors.New("ErrInvalidMove")
	// ErrIneligibleCaller caller is not a participant of the attempted phase
	ErrIneligibleCaller = errors.New("ErrIneligibleCaller")
	// ErrInsufficientPayment attached value below the price
	ErrInsufficientPayment = errors.New("ErrInsufficientPayment")
	// ErrPrematureOperation resolution before both reveals and before the timeout
	ErrPrematureOperation = errors.New("ErrPrematureOperation")
	// ErrCommitmentMismatch move and secret do not hash to the commitment
	ErrCommitmentMismatch = errors.New("ErrCommitmentMismatch")
	// ErrEmptyWithdrawal nothing to withdraw
	ErrEmptyWithdrawal = errors.New("ErrEmptyWithdrawal")
	// ErrAlreadyResolved game or slot already past the phase
	ErrAlreadyResolved = errors.New("ErrAlreadyResolved")
	// ErrGameNotFound no game under the id
	ErrGameNotFound = errors.New("ErrGameNotFound")
	// ErrTableNotFound no table under the id
	ErrTableNotFound = errors.New("ErrTableNotFound")
	// ErrGameExists an unresolved game holds the id
	ErrGameExists = errors.New("ErrGameExists")
	// ErrNotPayable value attached to an action that takes none
	ErrNotPayable = types.ErrNotPayable
	// ErrUnauthorizedTrigger resolution policy does not allow the caller
	ErrUnauthorizedTrigger = errors.New("ErrUnauthorizedTrigger")
	// ErrSecretTooLong secret longer than SecretLen
	ErrSecretTooLong = errors.New("ErrSecretTooLong")
)
