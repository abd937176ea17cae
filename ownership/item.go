// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/logger"

	"github.com/sci-crypto/carregistryd/fault"
)

// OwnedItem - the flag byte
type OwnedItem byte

// type codes for flag byte
const (
	OwnedCar       OwnedItem = iota
	OwnedSellOrder OwnedItem = iota
	OwnedCoin      OwnedItem = iota
)

// internal conversion
func toString(item OwnedItem) ([]byte, error) {
	switch item {
	case OwnedCar:
		return []byte("Car"), nil
	case OwnedSellOrder:
		return []byte("SellOrder"), nil
	case OwnedCoin:
		return []byte("Coin"), nil
	default:
		return []byte{}, fault.InvalidItem
	}
}

// String - convert an item to its name
func (item OwnedItem) String() string {
	s, err := toString(item)
	if nil != err {
		logger.Panicf("invalid item enumeration: %d", item)
	}
	return string(s)
}

// MarshalText - convert item to text
func (item OwnedItem) MarshalText() ([]byte, error) {
	s, err := toString(item)
	if nil != err {
		logger.Panicf("invalid item enumeration: %d", item)
	}
	return s, nil
}
