// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/sci-crypto/carregistryd/fault"
)

// test that the catalog errors classify correctly
func TestClassification(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
		record   bool
	}{
		{fault.CarAlreadyRegistered, true, false, false, false, false, false},
		{fault.SellOrderAlreadyExists, true, false, false, false, false, false},
		{fault.AlreadyInitialised, true, false, false, false, false, false},
		{fault.InvalidSignature, false, true, false, false, false, false},
		{fault.IncorrectProof, false, true, false, false, false, false},
		{fault.InsufficientFunds, false, true, false, false, false, false},
		{fault.WrongNetworkForPublicKey, false, true, false, false, false, false},
		{fault.VinTooShort, false, false, true, false, false, false},
		{fault.InvalidCount, false, false, true, false, false, false},
		{fault.UnknownInputBox, false, false, false, true, false, false},
		{fault.BoxNotFound, false, false, false, true, false, false},
		{fault.NotInitialised, false, false, false, false, true, false},
		{fault.RateLimiting, false, false, false, false, true, false},
		{fault.NotTransactionPack, false, false, false, false, false, true},
		{fault.NotBoxPack, false, false, false, false, false, true},
		{fault.NotProofPack, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
	}
}

// errors of different classes never compare equal even with identical text
func TestDistinctClasses(t *testing.T) {
	a := fault.InvalidError("duplicated text")
	b := fault.ProcessError("duplicated text")
	if error(a) == error(b) {
		t.Errorf("different classes with identical text compare equal")
	}
	if a.Error() != b.Error() {
		t.Errorf("expected identical error text")
	}
}
