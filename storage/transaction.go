// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"fmt"
	"sync"
)

// Transaction - atomic write access across the storage pools
//
// one transaction at a time: Begin reserves the shared batch,
// Commit writes it to the database as a single unit, Abort
// discards it leaving the database untouched
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(Handle, []byte) error
	Get(Handle, []byte) ([]byte, error)
	GetN(Handle, []byte) (uint64, bool, error)
	InUse() bool
	Put(Handle, []byte, []byte) error
	PutN(Handle, []byte, uint64)
}

// held for writing while a transaction is in progress so that
// ViewLock readers never see uncommitted batch writes or a
// half-applied owner index
var viewLock sync.RWMutex

// ViewLock - hold a consistent committed view across several reads
//
// blocks while a transaction is in progress, release with ViewUnlock
func ViewLock() {
	viewLock.RLock()
}

// ViewUnlock - release the view taken by ViewLock
func ViewUnlock() {
	viewLock.RUnlock()
}

type TransactionData struct {
	sync.Mutex
	inUse  bool
	access []DataAccess
}

func newTransaction(access []DataAccess) Transaction {
	return &TransactionData{
		inUse:  false,
		access: access,
	}
}

func isNilPtr(p interface{}) error {
	if nil == p {
		return fmt.Errorf("nil handle")
	}
	return nil
}

func (t *TransactionData) Begin() error {

	// queue writers and hold off ViewLock readers until
	// Commit or Abort
	viewLock.Lock()

	t.Lock()
	defer t.Unlock()

	if t.inUse {
		viewLock.Unlock()
		return fmt.Errorf("transaction already in use")
	}

	for _, access := range t.access {
		if err := access.Begin(); nil != err {
			viewLock.Unlock()
			return err
		}
	}

	t.inUse = true
	return nil
}

func (t *TransactionData) Put(h Handle, key []byte, value []byte) error {
	if err := isNilPtr(h); nil != err {
		return err
	}
	h.Put(key, value)
	return nil
}

func (t *TransactionData) PutN(h Handle, key []byte, value uint64) {
	h.PutN(key, value)
}

func (t *TransactionData) Delete(h Handle, key []byte) error {
	if err := isNilPtr(h); nil != err {
		return err
	}
	h.Delete(key)
	return nil
}

func (t *TransactionData) Get(h Handle, key []byte) ([]byte, error) {
	if err := isNilPtr(h); nil != err {
		return nil, err
	}
	return h.Get(key), nil
}

func (t *TransactionData) GetN(h Handle, key []byte) (uint64, bool, error) {
	if err := isNilPtr(h); nil != err {
		return 0, false, err
	}
	n, found := h.GetN(key)
	return n, found, nil
}

func (t *TransactionData) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fmt.Errorf("transaction not in use")
	}

	var commitError error
	for _, access := range t.access {
		if err := access.Commit(); nil != err {
			commitError = err
			break
		}
	}

	// the batch is either written or discarded, so reset it
	// and drop the overlay
	for _, access := range t.access {
		access.Abort()
	}
	t.inUse = false
	viewLock.Unlock()
	return commitError
}

func (t *TransactionData) Abort() {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return
	}

	for _, access := range t.access {
		access.Abort()
	}
	t.inUse = false
	viewLock.Unlock()
}

func (t *TransactionData) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}
