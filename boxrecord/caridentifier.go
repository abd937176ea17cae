// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package boxrecord

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/sci-crypto/carregistryd/fault"
)

// limits
const (
	CarIdentifierLength = 64
)

// CarIdentifier - the type for a car identifier
// derived from the four car fields, not from any single box
// represented as hex text for JSON encoding
// to get bytes value just use carId[:]
type CarIdentifier [CarIdentifierLength]byte

// NewCarIdentifier - create a car id from canonically packed car fields
//
// SHA3-512 Hash
func NewCarIdentifier(record []byte) CarIdentifier {
	return CarIdentifier(sha3.Sum512(record))
}

// String - convert a binary carId to hex string for use by the fmt package (for %s)
func (carId CarIdentifier) String() string {
	return hex.EncodeToString(carId[:])
}

// GoString - convert a binary carId to hex string for use by the fmt package (for %#v)
func (carId CarIdentifier) GoString() string {
	return "<car:" + hex.EncodeToString(carId[:]) + ">"
}

// Scan - convert a hex text representation to a carId for use by the format package scan routines
func (carId *CarIdentifier) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	if len(token) != hex.EncodedLen(CarIdentifierLength) {
		return fault.NotCarId
	}

	byteCount, err := hex.Decode(carId[:], token)
	if nil != err {
		return err
	}

	if CarIdentifierLength != byteCount {
		return fault.NotCarId
	}
	return nil
}

// MarshalText - convert carId to hex text
func (carId CarIdentifier) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(carId))
	buffer := make([]byte, size)
	hex.Encode(buffer, carId[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a carId
func (carId *CarIdentifier) UnmarshalText(s []byte) error {
	if len(carId) != hex.DecodedLen(len(s)) {
		return fault.NotCarId
	}
	byteCount, err := hex.Decode(carId[:], s)
	if nil != err {
		return err
	}
	if CarIdentifierLength != byteCount {
		return fault.NotCarId
	}
	return nil
}

// CarIdentifierFromBytes - convert and validate a binary byte slice to a carId
func CarIdentifierFromBytes(carId *CarIdentifier, buffer []byte) error {
	if CarIdentifierLength != len(buffer) {
		return fault.NotCarId
	}
	copy(carId[:], buffer)
	return nil
}
