// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"testing"

	"github.com/sci-crypto/carregistryd/fault"
)

// test Marshal and Unmarshal
func TestSalt(t *testing.T) {
	salt, err := MakeSalt()
	if nil != err {
		t.Fatalf("makeSalt fail: %s", err)
	}

	marshalSalt, err := salt.MarshalText()
	if nil != err {
		t.Fatalf("marshal fail: %s", err)
	}

	salt2 := new(Salt)
	err = salt2.UnmarshalText(marshalSalt)
	if nil != err {
		t.Fatalf("unmarshal fail: %s", err)
	}

	if salt.String() != salt2.String() {
		t.Errorf("unmarshal failed, %s != %s", salt.String(), salt2.String())
	}
}

// reject wrong length and non-hex input
func TestSaltInvalid(t *testing.T) {
	salt := new(Salt)

	err := salt.UnmarshalText([]byte("00112233"))
	if fault.InvalidSalt != err {
		t.Errorf("short salt: error: %v  expected: %v", err, fault.InvalidSalt)
	}

	err = salt.UnmarshalText([]byte("not hex at all.................."))
	if nil == err {
		t.Errorf("unexpected unmarshal success")
	}
}
