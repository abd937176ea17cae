// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/sci-crypto/carregistryd/account"
	"github.com/sci-crypto/carregistryd/digest"
	"github.com/sci-crypto/carregistryd/storage"
)

// to ensure synchronised ownership updates
var toLock sync.Mutex

const uint64ByteSize = 8

// from storage/doc.go:
//
// Ownership:
//   OwnerNext   owner            - next index for appending to owned items
//   OwnerList   owner ⧺ index    - dense list of owned box ids
//   OwnerBoxes  owner ⧺ box id   - position in list, for delete after spend

// Create - append a box to the owner's dense list
//
// must be called inside a storage transaction
func Create(trx storage.Transaction, boxId digest.Digest, owner *account.Account) {

	// ensure single threaded
	toLock.Lock()
	defer toLock.Unlock()

	create(trx, boxId, owner)
}

// need to hold the lock before calling this
func create(trx storage.Transaction, boxId digest.Digest, owner *account.Account) {

	// fetch and increment the next index for owner
	nKey := owner.Bytes()
	index, _, err := trx.GetN(storage.Pool.OwnerNext, nKey)
	logger.PanicIfError("ownership.create", err)

	trx.PutN(storage.Pool.OwnerNext, nKey, index+1)

	indexBytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(indexBytes, index)

	// append to the owner list
	oKey := append(owner.Bytes(), indexBytes...)
	err = trx.Put(storage.Pool.OwnerList, oKey, boxId[:])
	logger.PanicIfError("ownership.create", err)

	// record the position, needed for delete after spend
	dKey := append(owner.Bytes(), boxId[:]...)
	trx.PutN(storage.Pool.OwnerBoxes, dKey, index)
}

// Delete - remove a spent box from the owner's dense list
//
// the final list entry moves into the hole so the list stays dense,
// must be called inside a storage transaction
func Delete(trx storage.Transaction, boxId digest.Digest, owner *account.Account) {

	// ensure single threaded
	toLock.Lock()
	defer toLock.Unlock()

	// locate the position of the box in the owner list
	dKey := append(owner.Bytes(), boxId[:]...)
	position, found, err := trx.GetN(storage.Pool.OwnerBoxes, dKey)
	logger.PanicIfError("ownership.Delete", err)
	if !found {
		logger.Criticalf("ownership.Delete: dKey: %x", dKey)
		logger.Criticalf("ownership.Delete: box id: %v", boxId)
		logger.Criticalf("ownership.Delete: owner: %x  %v", owner.Bytes(), owner)
		logger.Panic("ownership.Delete: OwnerBoxes database corrupt")
	}

	count, found, err := trx.GetN(storage.Pool.OwnerNext, owner.Bytes())
	logger.PanicIfError("ownership.Delete", err)
	if !found || 0 == count {
		logger.Criticalf("ownership.Delete: owner: %x  count: %d", owner.Bytes(), count)
		logger.Panic("ownership.Delete: OwnerNext database corrupt")
	}

	last := count - 1
	lastBytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(lastBytes, last)

	if position != last {

		// move the final list entry into the hole
		lastBoxId, err := trx.Get(storage.Pool.OwnerList, append(owner.Bytes(), lastBytes...))
		logger.PanicIfError("ownership.Delete", err)
		if nil == lastBoxId {
			logger.Criticalf("ownership.Delete: missing list entry: %d for owner: %x", last, owner.Bytes())
			logger.Panic("ownership.Delete: OwnerList database corrupt")
		}

		positionBytes := make([]byte, uint64ByteSize)
		binary.BigEndian.PutUint64(positionBytes, position)

		oKey := append(owner.Bytes(), positionBytes...)
		err = trx.Put(storage.Pool.OwnerList, oKey, lastBoxId)
		logger.PanicIfError("ownership.Delete", err)

		trx.PutN(storage.Pool.OwnerBoxes, append(owner.Bytes(), lastBoxId...), position)
	}

	err = trx.Delete(storage.Pool.OwnerList, append(owner.Bytes(), lastBytes...))
	logger.PanicIfError("ownership.Delete", err)

	err = trx.Delete(storage.Pool.OwnerBoxes, dKey)
	logger.PanicIfError("ownership.Delete", err)

	trx.PutN(storage.Pool.OwnerNext, owner.Bytes(), last)
}

// CurrentlyOwns - check owner currently holds this box
func CurrentlyOwns(trx storage.Transaction, owner *account.Account, boxId digest.Digest, pool storage.Handle) bool {
	dKey := append(owner.Bytes(), boxId[:]...)

	if nil == trx {
		return pool.Has(dKey)
	}
	_, found, err := trx.GetN(pool, dKey)
	logger.PanicIfError("ownership.CurrentlyOwns", err)
	return found
}
