// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"fmt"

	"github.com/sci-crypto/carregistryd/fault"
)

// Amount - a native coin value in atomic units
//
// one whole coin is 100 units; text form carries at most
// two decimal places, e.g. Amount(125) ⇔ "1.25"
type Amount uint64

// units per whole coin
const (
	unitsPerCoin  = 100
	decimalPlaces = 2
)

// Parse - convert a decimal coin string to an Amount
//
// i.e. "1.25" will convert to Amount(125)
//
// strict conversion: only digits and at most one decimal point are
// accepted and no more than two decimal places may be present
func Parse(s string) (Amount, error) {

	if 0 == len(s) {
		return 0, fault.InvalidAmount
	}

	value := uint64(0)
	point := false
	digits := 0
	decimals := 0

	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			if point {
				decimals += 1
				if decimals > decimalPlaces {
					return 0, fault.InvalidAmount
				}
			}
			// overflow guard
			if value > (^uint64(0)-uint64(c-'0'))/10 {
				return 0, fault.InvalidAmount
			}
			value = value*10 + uint64(c-'0')
			digits += 1
		case '.' == c:
			if point {
				return 0, fault.InvalidAmount
			}
			point = true
		default:
			return 0, fault.InvalidAmount
		}
	}

	if 0 == digits {
		return 0, fault.InvalidAmount
	}

	for decimals < decimalPlaces {
		if value > ^uint64(0)/10 {
			return 0, fault.InvalidAmount
		}
		value *= 10
		decimals += 1
	}

	return Amount(value), nil
}

// Uint64 - the raw unit count
func (amount Amount) Uint64() uint64 {
	return uint64(amount)
}

// String - the two decimal place text form
func (amount Amount) String() string {
	return fmt.Sprintf("%d.%02d", uint64(amount)/unitsPerCoin, uint64(amount)%unitsPerCoin)
}

// GoString - value and text form, for debugging
func (amount Amount) GoString() string {
	return fmt.Sprintf("<Amount#%d:%q>", uint64(amount), amount.String())
}

// MarshalText - convert an amount into JSON
func (amount Amount) MarshalText() ([]byte, error) {
	return []byte(amount.String()), nil
}

// UnmarshalText - convert a coin string to an Amount from JSON
func (amount *Amount) UnmarshalText(s []byte) error {
	a, err := Parse(string(s))
	if nil != err {
		return err
	}
	*amount = a
	return nil
}
