// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/sci-crypto/carregistryd/boxrecord"
	"github.com/sci-crypto/carregistryd/digest"
	"github.com/sci-crypto/carregistryd/fault"
	"github.com/sci-crypto/carregistryd/mode"
	"github.com/sci-crypto/carregistryd/ownership"
	"github.com/sci-crypto/carregistryd/storage"
	"github.com/sci-crypto/carregistryd/transactionrecord"
)

// result of verifying a transaction, everything apply needs
type verifiedInfo struct {
	txId   digest.Digest
	inputs []*boxrecord.Box // resolved, same order as the input ids
	boxes  []boxrecord.Box  // created: explicit coins then derived boxes
}

// Submit - validate a packed transaction and atomically apply it
//
// the packed bytes are decoded with the network check and walked
// through the validation order: structural, authorization, domain
// rules, value conservation; only a fully valid transaction reaches
// the single storage transaction that rewrites the state, so a
// rejection never leaves partial writes behind
func (l *ledgerData) Submit(packed transactionrecord.Packed) (*SubmitInfo, error) {

	// critical code - the one writer
	l.Lock()
	defer l.Unlock()

	if !l.initialised {
		return nil, fault.NotInitialised
	}

	tx, err := packed.Unpack(mode.IsTesting())
	if nil != err {
		return nil, err
	}

	v, err := l.verifyTransaction(tx, packed)
	if nil != err {
		return nil, err
	}

	boxIds, err := l.apply(tx, packed, v)
	if nil != err {
		return nil, err
	}

	l.log.Infof("applied transaction: %v", v.txId)

	return &SubmitInfo{
		TxId:   v.txId,
		BoxIds: boxIds,
	}, nil
}

// verify a transaction, all checks in validation order
// ensure lock is held before calling this
func (l *ledgerData) verifyTransaction(tx *transactionrecord.Transaction, packed transactionrecord.Packed) (*verifiedInfo, error) {

	txId := packed.Id()

	// structural: one proof per input
	if len(tx.Proofs) != len(tx.Inputs) {
		return nil, fault.InvalidCount
	}

	// structural: every input resolves to a live box, no repeats
	inputs := make([]*boxrecord.Box, len(tx.Inputs))
	spent := make(map[digest.Digest]struct{}, len(tx.Inputs))
	for i, boxId := range tx.Inputs {

		if _, ok := spent[boxId]; ok {
			return nil, fault.DuplicateInputBox
		}
		spent[boxId] = struct{}{}

		packedBox := l.poolBoxes.Get(boxId[:])
		if nil == packedBox {
			return nil, fault.UnknownInputBox
		}
		box, err := boxrecord.PackedBox(packedBox).Unpack(mode.IsTesting())
		if nil != err {
			return nil, err
		}
		inputs[i] = box
	}

	// authorization: every proof must verify against its input box
	// proposition over the signable bytes
	signable, err := tx.SignableBytes()
	if nil != err {
		return nil, err
	}
	for i, proof := range tx.Proofs {
		err = proof.Verify(inputs[i].Data.Proposition, signable)
		if nil != err {
			return nil, err
		}
	}

	// domain rules of the specific kind
	derived, err := l.deriveBoxes(tx, inputs)
	if nil != err {
		return nil, err
	}

	// strict value conservation
	err = checkConservation(tx, inputs, derived)
	if nil != err {
		return nil, err
	}

	boxes, err := tx.OutputBoxes(derived)
	if nil != err {
		return nil, err
	}

	return &verifiedInfo{
		txId:   txId,
		inputs: inputs,
		boxes:  boxes,
	}, nil
}

// the boxes a transaction kind creates beyond its explicit outputs
// ensure lock is held before calling this
func (l *ledgerData) deriveBoxes(tx *transactionrecord.Transaction, inputs []*boxrecord.Box) ([]boxrecord.Data, error) {

	switch info := tx.Info.(type) {

	case *transactionrecord.CarDeclaration:

		// a declaration consumes nothing, coin inputs only fund the fee
		err := onlyCoinInputs(inputs, 0)
		if nil != err {
			return nil, err
		}

		// at most one live box per car identity
		carId := info.CarId()
		if l.poolCars.Has(carId[:]) || l.poolSellOrders.Has(carId[:]) {
			return nil, fault.CarAlreadyRegistered
		}

		return []boxrecord.Data{{
			Proposition: &boxrecord.OwnerProposition{
				Owner: info.Owner,
			},
			Payload: info.Car(),
		}}, nil

	case *transactionrecord.SellOrderOpen:

		if 0 == len(inputs) {
			return nil, fault.NotCarBox
		}
		car, ok := inputs[0].Data.Payload.(*boxrecord.CarData)
		if !ok {
			return nil, fault.NotCarBox
		}
		err := onlyCoinInputs(inputs, 1)
		if nil != err {
			return nil, err
		}
		if 0 == info.Price {
			return nil, fault.InvalidPrice
		}

		// the seller is whoever owns the car right now
		seller := inputs[0].Data.Proposition.GetOwner()

		carId := car.CarId()
		if l.poolSellOrders.Has(carId[:]) {
			return nil, fault.SellOrderAlreadyExists
		}

		return []boxrecord.Data{{
			Proposition: &boxrecord.SellOrderProposition{
				Seller: seller,
				Buyer:  info.Buyer,
			},
			Payload: &boxrecord.SellOrderData{
				Vin:   car.Vin,
				Year:  car.Year,
				Model: car.Model,
				Color: car.Color,
				Price: info.Price,
			},
		}}, nil

	case *transactionrecord.SellOrderResolve:

		if 0 == len(inputs) {
			return nil, fault.NotSellOrderBox
		}
		order, ok := inputs[0].Data.Payload.(*boxrecord.SellOrderData)
		if !ok {
			return nil, fault.NotSellOrderBox
		}
		err := onlyCoinInputs(inputs, 1)
		if nil != err {
			return nil, err
		}

		// the role flag of the first proof names the acting party
		proof, ok := tx.Proofs[0].(*boxrecord.RoleProof)
		if !ok {
			return nil, fault.IncorrectProof
		}

		proposition := inputs[0].Data.Proposition.(*boxrecord.SellOrderProposition)

		car := &boxrecord.CarData{
			Vin:   order.Vin,
			Year:  order.Year,
			Model: order.Model,
			Color: order.Color,
		}

		switch proof.Role {

		case boxrecord.SellerRole:
			// cancel: the car returns to the seller, nothing is paid
			return []boxrecord.Data{{
				Proposition: &boxrecord.OwnerProposition{
					Owner: proposition.Seller,
				},
				Payload: car,
			}}, nil

		case boxrecord.BuyerRole:
			// purchase: the car to the buyer, the price to the seller
			return []boxrecord.Data{
				{
					Proposition: &boxrecord.OwnerProposition{
						Owner: proposition.Buyer,
					},
					Payload: car,
				},
				{
					Proposition: &boxrecord.OwnerProposition{
						Owner: proposition.Seller,
					},
					Payload: &boxrecord.CoinData{
						Value: order.Price,
					},
				},
			}, nil

		default:
			return nil, fault.IncorrectProof
		}

	case *transactionrecord.CoinTransfer:

		if 0 == len(inputs) {
			return nil, fault.MissingParameters
		}
		err := onlyCoinInputs(inputs, 0)
		if nil != err {
			return nil, err
		}
		return nil, nil

	default:
		return nil, fault.NotTransactionPack
	}
}

// inputs from the start position on must be plain coin boxes
func onlyCoinInputs(inputs []*boxrecord.Box, start int) error {
	for i := start; i < len(inputs); i += 1 {
		if _, ok := inputs[i].Data.Payload.(*boxrecord.CoinData); !ok {
			return fault.NotCoinBox
		}
	}
	return nil
}

// strict conservation: inputs fund the outputs, the derived payment
// and the fee exactly, over- and underpaying both fail
func checkConservation(tx *transactionrecord.Transaction, inputs []*boxrecord.Box, derived []boxrecord.Data) error {

	totalIn := uint64(0)
	for _, box := range inputs {
		value := box.Data.Payload.CoinValue()
		if value > ^uint64(0)-totalIn {
			return fault.InsufficientFunds
		}
		totalIn += value
	}

	totalOut := tx.Fee
	for i := range tx.Outputs {
		value := tx.Outputs[i].Payload.CoinValue()
		if value > ^uint64(0)-totalOut {
			return fault.InsufficientFunds
		}
		totalOut += value
	}
	for i := range derived {
		value := derived[i].Payload.CoinValue()
		if value > ^uint64(0)-totalOut {
			return fault.InsufficientFunds
		}
		totalOut += value
	}

	if totalIn != totalOut {
		return fault.InsufficientFunds
	}
	return nil
}

// apply a verified transaction in one storage transaction
// ensure lock is held before calling this
func (l *ledgerData) apply(tx *transactionrecord.Transaction, packed transactionrecord.Packed, v *verifiedInfo) ([]digest.Digest, error) {

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	// remove the spent boxes and their index entries
	for i, boxId := range tx.Inputs {
		box := v.inputs[i]

		err = trx.Delete(l.poolBoxes, boxId[:])
		if nil != err {
			trx.Abort()
			return nil, err
		}
		ownership.Delete(trx, boxId, box.Data.Proposition.GetOwner())

		switch payload := box.Data.Payload.(type) {
		case *boxrecord.CarData:
			carId := payload.CarId()
			err = trx.Delete(l.poolCars, carId[:])
		case *boxrecord.SellOrderData:
			carId := payload.CarId()
			err = trx.Delete(l.poolSellOrders, carId[:])
		}
		if nil != err {
			trx.Abort()
			return nil, err
		}
	}

	// insert the created boxes and their index entries
	boxIds := make([]digest.Digest, len(v.boxes))
	for i := range v.boxes {
		box := &v.boxes[i]

		packedBox, err := box.Pack()
		if nil != err {
			trx.Abort()
			return nil, err
		}
		boxId := packedBox.Id()
		boxIds[i] = boxId

		err = trx.Put(l.poolBoxes, boxId[:], packedBox)
		if nil != err {
			trx.Abort()
			return nil, err
		}
		ownership.Create(trx, boxId, box.Data.Proposition.GetOwner())

		switch payload := box.Data.Payload.(type) {
		case *boxrecord.CarData:
			carId := payload.CarId()
			err = trx.Put(l.poolCars, carId[:], boxId[:])
		case *boxrecord.SellOrderData:
			carId := payload.CarId()
			err = trx.Put(l.poolSellOrders, carId[:], boxId[:])
		}
		if nil != err {
			trx.Abort()
			return nil, err
		}
	}

	// record the applied transaction
	err = trx.Put(l.poolTransactions, v.txId[:], packed)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		return nil, err
	}
	return boxIds, nil
}
