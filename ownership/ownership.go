// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/sci-crypto/carregistryd/account"
	"github.com/sci-crypto/carregistryd/storage"
)

// Ownership - interface for the per-owner box index
type Ownership interface {
	ListBoxesFor(*account.Account, uint64, int) ([]Record, error)
}

type ownership struct {
	PoolOwnerNext storage.Handle
	PoolOwnerList storage.Handle
	PoolBoxes     storage.Handle
}

func (o ownership) ListBoxesFor(owner *account.Account, start uint64, count int) ([]Record, error) {
	return listBoxesFor(o.PoolOwnerNext, o.PoolOwnerList, o.PoolBoxes, owner, start, count)
}

var data ownership

// Initialise - initialise ownership
func Initialise(ownerNext, ownerList, boxes storage.Handle) {
	data = ownership{
		PoolOwnerNext: ownerNext,
		PoolOwnerList: ownerList,
		PoolBoxes:     boxes,
	}
}

// Get - return Ownership interface
func Get() Ownership {
	return &data
}
