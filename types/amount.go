// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// FormatAmount base units -> coins, "0.009" for 900000
func FormatAmount(amount int64) string {
	return decimal.New(amount, -CoinPrecision).String()
}

// ParseAmount coins -> base units, rejects more than CoinPrecision decimals
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(ErrAmount, "parse %q", s)
	}
	units := d.Shift(CoinPrecision)
	if !units.Equal(units.Truncate(0)) {
		return 0, errors.Wrapf(ErrAmount, "%q has more than %d decimals", s, CoinPrecision)
	}
	if units.GreaterThanOrEqual(decimal.NewFromInt(MaxCoin)) {
		return 0, errors.Wrapf(ErrAmount, "%q too large", s)
	}
	return units.IntPart(), nil
}
