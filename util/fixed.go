// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"
)

// byte counts for the fixed width encodings
const (
	Uint32Size = 4
	Uint64Size = 8
)

// ToUint32 - convert a 32 bit unsigned integer to big endian bytes
func ToUint32(value uint32) []byte {
	buffer := make([]byte, Uint32Size)
	binary.BigEndian.PutUint32(buffer, value)
	return buffer
}

// FromUint32 - convert big endian bytes back to a 32 bit unsigned integer
//
// also return the number of bytes used as second value
// returns 0, 0 if the buffer is truncated
func FromUint32(buffer []byte) (uint32, int) {
	if len(buffer) < Uint32Size {
		return 0, 0
	}
	return binary.BigEndian.Uint32(buffer), Uint32Size
}

// ClippedUint32 - return a positive clipped value as an int
// any value outside the range minimum..maximum is an error
func ClippedUint32(buffer []byte, minimum int, maximum int) (int, int) {
	if minimum < 0 || maximum < 0 || minimum >= maximum {
		return 0, 0
	}

	value, count := FromUint32(buffer)
	if 0 == count {
		return 0, 0
	}
	iValue := int(value)
	if iValue < minimum || iValue > maximum {
		return 0, 0
	}
	return iValue, count
}

// ToUint64 - convert a 64 bit unsigned integer to big endian bytes
func ToUint64(value uint64) []byte {
	buffer := make([]byte, Uint64Size)
	binary.BigEndian.PutUint64(buffer, value)
	return buffer
}

// FromUint64 - convert big endian bytes back to a 64 bit unsigned integer
//
// also return the number of bytes used as second value
// returns 0, 0 if the buffer is truncated
func FromUint64(buffer []byte) (uint64, int) {
	if len(buffer) < Uint64Size {
		return 0, 0
	}
	return binary.BigEndian.Uint64(buffer), Uint64Size
}
