// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/sci-crypto/carregistryd/account"
	"github.com/sci-crypto/carregistryd/boxrecord"
	"github.com/sci-crypto/carregistryd/digest"
	"github.com/sci-crypto/carregistryd/fault"
	"github.com/sci-crypto/carregistryd/util"
)

// Pack - binary encode the full transaction including proofs
//
// fee and timestamp, then the length prefixed inputs, proofs, outputs
// and info sections
func (tx *Transaction) Pack() (Packed, error) {
	return tx.pack(true)
}

// SignableBytes - the packed transaction with the proofs section omitted
//
// this is the message every unlock proof signs, covering fee,
// timestamp, inputs, outputs and info so nothing can change after
// signing
func (tx *Transaction) SignableBytes() ([]byte, error) {
	return tx.pack(false)
}

func (tx *Transaction) pack(withProofs bool) (Packed, error) {

	if nil == tx.Info {
		return nil, fault.NotTransactionPack
	}

	if len(tx.Inputs) > MaximumInputs {
		return nil, fault.TooManyInputBoxes
	}

	message := util.ToUint64(tx.Fee)
	message = appendUint64(message, tx.Timestamp)

	// inputs section: concatenated box ids
	inputs := make([]byte, 0, digest.Length*len(tx.Inputs))
	for _, boxId := range tx.Inputs {
		inputs = append(inputs, boxId[:]...)
	}
	message = appendBytes(message, inputs)

	// proofs section: one length prefixed proof per input
	// the signable bytes omit this section entirely, so signing can
	// happen before any proof is attached
	if withProofs {
		if len(tx.Proofs) != len(tx.Inputs) {
			return nil, fault.InvalidCount
		}
		proofs := []byte{}
		for _, proof := range tx.Proofs {
			if nil == proof {
				return nil, fault.NotProofPack
			}
			packed, err := proof.Pack()
			if nil != err {
				return nil, err
			}
			proofs = appendBytes(proofs, packed)
		}
		if len(proofs) > maximumProofsSection {
			return nil, fault.TransactionTooLarge
		}
		message = appendBytes(message, proofs)
	}

	// outputs section: length prefixed box content, coin only
	outputs := []byte{}
	for i := range tx.Outputs {
		if _, ok := tx.Outputs[i].Payload.(*boxrecord.CoinData); !ok {
			return nil, fault.NotCoinBox
		}
		packed, err := tx.Outputs[i].Pack()
		if nil != err {
			return nil, err
		}
		outputs = appendBytes(outputs, packed)
	}
	if len(outputs) > maximumSection {
		return nil, fault.TransactionTooLarge
	}
	message = appendBytes(message, outputs)

	// info section: kind tag then the type specific fields
	fields, err := tx.Info.Pack()
	if nil != err {
		return nil, err
	}
	info := util.ToUint32(uint32(tx.Info.Tag()))
	info = append(info, fields...)
	if len(info) > maximumSection {
		return nil, fault.TransactionTooLarge
	}
	message = appendBytes(message, info)

	return message, nil
}

// Pack - binary encode the declaration fields
//
// the car field limits are the same as for a car box payload
func (info *CarDeclaration) Pack() ([]byte, error) {
	if nil == info.Owner {
		return nil, fault.InvalidOwnerOrBuyer
	}
	fields, err := info.Car().Pack()
	if nil != err {
		return nil, err
	}
	message := appendAccount([]byte{}, info.Owner)
	return append(message, fields...), nil
}

// Pack - binary encode the sale offer fields
func (info *SellOrderOpen) Pack() ([]byte, error) {
	if nil == info.Buyer {
		return nil, fault.InvalidOwnerOrBuyer
	}
	if 0 == info.Price {
		return nil, fault.InvalidPrice
	}
	message := appendAccount([]byte{}, info.Buyer)
	return appendUint64(message, info.Price), nil
}

// Pack - a resolve carries no fields
func (info *SellOrderResolve) Pack() ([]byte, error) {
	return []byte{}, nil
}

// Pack - a coin transfer carries no fields
func (info *CoinTransfer) Pack() ([]byte, error) {
	return []byte{}, nil
}

// NonceForOutput - derive the nonce for an output box position
//
// the first 8 bytes, big endian, of SHA3-256 over the signable bytes
// and the big endian position, so box ids cannot collide across
// transactions or output positions
func NonceForOutput(signable []byte, index int) uint64 {
	message := make([]byte, 0, len(signable)+util.Uint32Size)
	message = append(message, signable...)
	message = append(message, util.ToUint32(uint32(index))...)
	d := digest.NewDigest(message)
	nonce, _ := util.FromUint64(d[:])
	return nonce
}

// OutputBoxes - build the boxes this transaction creates
//
// explicit coin outputs come first, then the derived domain boxes, all
// nonced by their overall output position
func (tx *Transaction) OutputBoxes(derived []boxrecord.Data) ([]boxrecord.Box, error) {

	signable, err := tx.SignableBytes()
	if nil != err {
		return nil, err
	}

	boxes := make([]boxrecord.Box, 0, len(tx.Outputs)+len(derived))
	for i := range tx.Outputs {
		boxes = append(boxes, boxrecord.Box{
			Nonce: NonceForOutput(signable, len(boxes)),
			Data:  tx.Outputs[i],
		})
	}
	for i := range derived {
		boxes = append(boxes, boxrecord.Box{
			Nonce: NonceForOutput(signable, len(boxes)),
			Data:  derived[i],
		})
	}
	return boxes, nil
}

// append an account to a buffer
//
// the field is prefixed by uint32(length)
func appendAccount(buffer []byte, address *account.Account) []byte {
	data := address.Bytes()
	l := util.ToUint32(uint32(len(data)))
	buffer = append(buffer, l...)
	buffer = append(buffer, data...)
	return buffer
}

// append bytes to a buffer
//
// the field is prefixed by uint32(length)
func appendBytes(buffer []byte, data []byte) []byte {
	l := util.ToUint32(uint32(len(data)))
	buffer = append(buffer, l...)
	buffer = append(buffer, data...)
	return buffer
}

// append a uint64 to a buffer
func appendUint64(buffer []byte, value uint64) []byte {
	valueBytes := util.ToUint64(value)
	buffer = append(buffer, valueBytes...)
	return buffer
}
