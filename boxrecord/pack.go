// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package boxrecord

import (
	"unicode/utf8"

	"github.com/sci-crypto/carregistryd/account"
	"github.com/sci-crypto/carregistryd/fault"
	"github.com/sci-crypto/carregistryd/util"
)

// Pack - binary encode an owner proposition
//
// uint32(tag) followed by the length prefixed account
func (proposition *OwnerProposition) Pack() (PackedProposition, error) {
	if nil == proposition.Owner {
		return nil, fault.InvalidOwnerOrBuyer
	}

	message := util.ToUint32(uint32(OwnerPropositionTag))
	message = appendAccount(message, proposition.Owner)
	return message, nil
}

// Pack - binary encode a sell order proposition
//
// uint32(tag) followed by the length prefixed seller and buyer accounts
func (proposition *SellOrderProposition) Pack() (PackedProposition, error) {
	if nil == proposition.Seller || nil == proposition.Buyer {
		return nil, fault.InvalidOwnerOrBuyer
	}

	message := util.ToUint32(uint32(SellOrderPropositionTag))
	message = appendAccount(message, proposition.Seller)
	message = appendAccount(message, proposition.Buyer)
	return message, nil
}

// Pack - binary encode a signature proof
//
// uint32(tag) followed by the length prefixed signature
func (proof *SignatureProof) Pack() (PackedProof, error) {
	if len(proof.Signature) > maxSignatureLength {
		return nil, fault.SignatureTooLong
	}

	message := util.ToUint32(uint32(SignatureProofTag))
	message = appendBytes(message, proof.Signature)
	return message, nil
}

// Pack - binary encode a role signature proof
//
// uint32(tag), one role byte, then the length prefixed signature
func (proof *RoleProof) Pack() (PackedProof, error) {
	if BuyerRole != proof.Role && SellerRole != proof.Role {
		return nil, fault.IncorrectProof
	}
	if len(proof.Signature) > maxSignatureLength {
		return nil, fault.SignatureTooLong
	}

	message := util.ToUint32(uint32(RoleProofTag))
	message = append(message, proof.Role)
	message = appendBytes(message, proof.Signature)
	return message, nil
}

// Pack - binary encode the car fields, checking field limits
func (car *CarData) Pack() ([]byte, error) {
	err := checkCarFields(car.Vin, car.Model, car.Color)
	if nil != err {
		return nil, err
	}
	return packCarFields(car.Vin, car.Year, car.Model, car.Color), nil
}

// Pack - binary encode the car fields and the price, checking field limits
func (order *SellOrderData) Pack() ([]byte, error) {
	err := checkCarFields(order.Vin, order.Model, order.Color)
	if nil != err {
		return nil, err
	}
	if 0 == order.Price {
		return nil, fault.InvalidPrice
	}
	message := packCarFields(order.Vin, order.Year, order.Model, order.Color)
	message = appendUint64(message, order.Price)
	return message, nil
}

// Pack - binary encode the coin value
func (coin *CoinData) Pack() ([]byte, error) {
	return util.ToUint64(coin.Value), nil
}

// Pack - binary encode box content
//
// uint32(payload tag) followed by the length prefixed proposition and
// the length prefixed payload fields
//
// the proposition variant must match the payload: car and coin boxes
// are locked to a single owner, sell order boxes to seller and buyer
func (data *Data) Pack() (PackedData, error) {

	switch data.Payload.(type) {
	case *SellOrderData:
		if _, ok := data.Proposition.(*SellOrderProposition); !ok {
			return nil, fault.NotSellOrderProposition
		}
	case *CarData, *CoinData:
		if _, ok := data.Proposition.(*OwnerProposition); !ok {
			return nil, fault.NotOwnerProposition
		}
	default:
		return nil, fault.NotBoxPack
	}

	proposition, err := data.Proposition.Pack()
	if nil != err {
		return nil, err
	}
	payload, err := data.Payload.Pack()
	if nil != err {
		return nil, err
	}

	message := util.ToUint32(uint32(data.Payload.Tag()))
	message = appendBytes(message, proposition)
	message = appendBytes(message, payload)
	return message, nil
}

// Pack - binary encode a box: uint64(nonce) followed by its content
func (box *Box) Pack() (PackedBox, error) {
	data, err := box.Data.Pack()
	if nil != err {
		return nil, err
	}
	message := util.ToUint64(box.Nonce)
	message = append(message, data...)
	return message, nil
}

// field limits shared by car and sell order payloads
func checkCarFields(vin string, model string, color string) error {
	if utf8.RuneCountInString(vin) < minVinLength {
		return fault.VinTooShort
	}
	if utf8.RuneCountInString(vin) > maxVinLength {
		return fault.VinTooLong
	}
	if utf8.RuneCountInString(model) > maxModelLength {
		return fault.ModelTooLong
	}
	if utf8.RuneCountInString(color) > maxColorLength {
		return fault.ColorTooLong
	}
	return nil
}

// canonical encoding of the four car fields
//
// this is also the preimage of the car identifier
func packCarFields(vin string, year uint64, model string, color string) []byte {
	message := appendString([]byte{}, vin)
	message = appendUint64(message, year)
	message = appendString(message, model)
	message = appendString(message, color)
	return message
}

// append a single field to a buffer
//
// the field is prefixed by uint32(length)
func appendString(buffer []byte, s string) []byte {
	l := util.ToUint32(uint32(len(s)))
	buffer = append(buffer, l...)
	return append(buffer, s...)
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
