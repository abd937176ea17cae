// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/sci-crypto/carregistryd/storage"
)

// a new database is flagged new exactly once
func TestInitialiseFlagsNewDatabase(t *testing.T) {
	setup(t) // checks isNew == true
	defer teardown(t)

	restart(t) // checks isNew == false
}

// double initialise must fail
func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown(t)

	_, err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil == err {
		t.Fatal("unexpected success on double initialise")
	}
}

// a missing database cannot be opened read only
func TestReadOnlyMissingDatabase(t *testing.T) {
	removeFiles()
	setupTestLogger()
	defer removeFiles()

	_, err := storage.Initialise(databaseFileName, storage.ReadOnly)
	if nil == err {
		storage.Finalise()
		t.Fatal("unexpected success opening missing database read only")
	}
}

// an existing database opens read only and keeps its content readable
func TestReadOnlyExistingDatabase(t *testing.T) {
	setup(t)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}
	trx.Put(storage.Pool.TestData, []byte("ro-key"), []byte("ro-data"))
	err = trx.Commit()
	if nil != err {
		t.Fatalf("transaction commit error: %s", err)
	}

	storage.Finalise()

	isNew, err := storage.Initialise(databaseFileName, storage.ReadOnly)
	if nil != err {
		t.Fatalf("read only initialise error: %s", err)
	}
	if isNew {
		t.Fatal("read only database flagged as new")
	}

	data := storage.Pool.TestData.Get([]byte("ro-key"))
	if "ro-data" != string(data) {
		t.Fatalf("read only data mismatch: %q", data)
	}

	storage.Finalise()
	removeFiles()
}
