// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/sci-crypto/carregistryd/account"
	"github.com/sci-crypto/carregistryd/boxrecord"
	"github.com/sci-crypto/carregistryd/digest"
	"github.com/sci-crypto/carregistryd/fault"
	"github.com/sci-crypto/carregistryd/mode"
	"github.com/sci-crypto/carregistryd/storage"
	"github.com/sci-crypto/carregistryd/transactionrecord"
)

// Ledger - interface for the transaction engine
type Ledger interface {
	Submit(packed transactionrecord.Packed) (*SubmitInfo, error)
	GetBox(boxId digest.Digest) (*boxrecord.Box, error)
	CarStatus(carId boxrecord.CarIdentifier) (*CarInfo, error)
	TransactionStatus(txId digest.Digest) TrackingStatus
}

// SubmitInfo - result returned by a successful submit
type SubmitInfo struct {
	TxId   digest.Digest   `json:"txId"`
	BoxIds []digest.Digest `json:"boxIds"`
}

// CarInfo - the live registration state of one car identity
type CarInfo struct {
	BoxId  digest.Digest      `json:"boxId"`
	OnSale bool               `json:"onSale"`
	Owner  *account.Account   `json:"owner"`           // the seller while on sale
	Buyer  *account.Account   `json:"buyer,omitempty"` // only while on sale
	Price  *uint64            `json:"price,omitempty"` // only while on sale
	Car    *boxrecord.CarData `json:"car"`
}

// globals
type ledgerData struct {
	sync.RWMutex
	log *logger.L

	poolBoxes        storage.Handle
	poolCars         storage.Handle
	poolSellOrders   storage.Handle
	poolTransactions storage.Handle

	// set once during initialise
	initialised bool
}

// global storage
var globalData ledgerData

// Initialise - start the transaction engine
func Initialise(boxes, cars, sellOrders, transactions storage.Handle) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("ledger")
	globalData.log.Info("starting…")

	globalData.poolBoxes = boxes
	globalData.poolCars = cars
	globalData.poolSellOrders = sellOrders
	globalData.poolTransactions = transactions

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop the transaction engine
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Get - return Ledger interface, nil if not yet initialised
func Get() Ledger {
	if globalData.initialised {
		return &globalData
	}
	return nil
}

// GetBox - fetch and decode an unspent box
func (l *ledgerData) GetBox(boxId digest.Digest) (*boxrecord.Box, error) {

	l.RLock()
	defer l.RUnlock()

	packed := l.poolBoxes.Get(boxId[:])
	if nil == packed {
		return nil, fault.BoxNotFound
	}
	return boxrecord.PackedBox(packed).Unpack(mode.IsTesting())
}

// CarStatus - the live registration state for a car identity
//
// at most one live box carries any car identity, either a car box or
// a sell order box, never both
func (l *ledgerData) CarStatus(carId boxrecord.CarIdentifier) (*CarInfo, error) {

	l.RLock()
	defer l.RUnlock()

	onSale := false
	idBytes := l.poolCars.Get(carId[:])
	if nil == idBytes {
		idBytes = l.poolSellOrders.Get(carId[:])
		if nil == idBytes {
			return nil, fault.CarNotFound
		}
		onSale = true
	}

	var boxId digest.Digest
	err := digest.DigestFromBytes(&boxId, idBytes)
	if nil != err {
		return nil, err
	}

	packed := l.poolBoxes.Get(boxId[:])
	if nil == packed {
		logger.Criticalf("ledger.CarStatus: missing box: %v for car id: %x", boxId, carId)
		logger.Panic("ledger.CarStatus: Boxes database corrupt")
	}
	box, err := boxrecord.PackedBox(packed).Unpack(mode.IsTesting())
	if nil != err {
		return nil, err
	}

	info := &CarInfo{
		BoxId:  boxId,
		OnSale: onSale,
	}

	switch payload := box.Data.Payload.(type) {

	case *boxrecord.CarData:
		info.Owner = box.Data.Proposition.GetOwner()
		info.Car = payload

	case *boxrecord.SellOrderData:
		proposition := box.Data.Proposition.(*boxrecord.SellOrderProposition)
		info.Owner = proposition.Seller
		info.Buyer = proposition.Buyer
		price := payload.Price
		info.Price = &price
		info.Car = &boxrecord.CarData{
			Vin:   payload.Vin,
			Year:  payload.Year,
			Model: payload.Model,
			Color: payload.Color,
		}

	default:
		logger.Criticalf("ledger.CarStatus: box: %v for car id: %x is not a car", boxId, carId)
		logger.Panic("ledger.CarStatus: Cars database corrupt")
	}

	return info, nil
}

// TransactionStatus - whether a transaction id was applied
func (l *ledgerData) TransactionStatus(txId digest.Digest) TrackingStatus {

	l.RLock()
	defer l.RUnlock()

	if l.poolTransactions.Has(txId[:]) {
		return TrackingConfirmed
	}
	return TrackingUnknown
}
