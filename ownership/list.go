// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/sci-crypto/carregistryd/account"
	"github.com/sci-crypto/carregistryd/boxrecord"
	"github.com/sci-crypto/carregistryd/digest"
	"github.com/sci-crypto/carregistryd/fault"
	"github.com/sci-crypto/carregistryd/mode"
	"github.com/sci-crypto/carregistryd/storage"
)

// Record - one entry of an owner's unspent box list
type Record struct {
	N     uint64                   `json:"n,string"`
	BoxId digest.Digest            `json:"boxId"`
	Item  OwnedItem                `json:"item"`
	CarId *boxrecord.CarIdentifier `json:"carId,omitempty"`
	Price *uint64                  `json:"price,omitempty"`
	Value *uint64                  `json:"value,omitempty"`
}

// fetch a page of the dense list, position order, no iteration needed
func listBoxesFor(ownerNext, ownerList, boxes storage.Handle, owner *account.Account, start uint64, count int) ([]Record, error) {

	if count <= 0 {
		return nil, fault.InvalidCount
	}

	// the count and the list entries must come from the same
	// committed state, otherwise a swap-with-last delete landing
	// between the reads would look like corruption
	storage.ViewLock()
	defer storage.ViewUnlock()

	ownerBytes := owner.Bytes()

	// missing count record means nothing is owned
	total, _ := ownerNext.GetN(ownerBytes)

	records := make([]Record, 0, count)

	for i := start; i < total && len(records) < count; i += 1 {

		indexBytes := make([]byte, uint64ByteSize)
		binary.BigEndian.PutUint64(indexBytes, i)

		idBytes := ownerList.Get(append(owner.Bytes(), indexBytes...))
		if nil == idBytes {
			logger.Criticalf("ownership.listBoxesFor: missing list entry: %d for owner: %x", i, ownerBytes)
			logger.Panic("ownership.listBoxesFor: OwnerList database corrupt")
		}

		var boxId digest.Digest
		err := digest.DigestFromBytes(&boxId, idBytes)
		if nil != err {
			return nil, err
		}

		record := Record{
			N:     i,
			BoxId: boxId,
		}

		packed := boxes.Get(boxId[:])
		if nil == packed {
			logger.Criticalf("ownership.listBoxesFor: missing box: %v for owner: %x", boxId, ownerBytes)
			logger.Panic("ownership.listBoxesFor: Boxes database corrupt")
		}

		box, err := boxrecord.PackedBox(packed).Unpack(mode.IsTesting())
		if nil != err {
			return nil, err
		}

		switch payload := box.Data.Payload.(type) {

		case *boxrecord.CarData:
			record.Item = OwnedCar
			carId := payload.CarId()
			record.CarId = &carId

		case *boxrecord.SellOrderData:
			record.Item = OwnedSellOrder
			carId := payload.CarId()
			record.CarId = &carId
			price := payload.Price
			record.Price = &price

		case *boxrecord.CoinData:
			record.Item = OwnedCoin
			value := payload.Value
			record.Value = &value

		default:
			logger.Panicf("ownership.listBoxesFor: unsupported payload: %v", payload)
		}

		records = append(records, record)
	}

	return records, nil
}
