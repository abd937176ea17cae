// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package boxrecord

import (
	"github.com/sci-crypto/carregistryd/account"
	"github.com/sci-crypto/carregistryd/fault"
	"github.com/sci-crypto/carregistryd/util"
)

// Unpack - turn a byte slice into a proposition
//
// the whole buffer must be consumed, trailing bytes are an error
//
// must cast result to correct type
// e.g.
//   owner, ok := result.(*boxrecord.OwnerProposition)
func (record PackedProposition) Unpack(testnet bool) (p Proposition, e error) {

	defer func() {
		if r := recover(); nil != r {
			e = fault.NotPropositionPack
		}
	}()

	tag, n := util.FromUint32(record)
	if 0 == n {
		return nil, fault.NotPropositionPack
	}

unpack_switch:
	switch PropositionTag(tag) {

	case OwnerPropositionTag:

		// owner public key
		owner, ownerLength, err := unpackAccount(record[n:], testnet)
		if nil != err {
			return nil, err
		}
		if 0 == ownerLength {
			break unpack_switch
		}
		n += ownerLength

		if n != len(record) {
			break unpack_switch
		}
		return &OwnerProposition{
			Owner: owner,
		}, nil

	case SellOrderPropositionTag:

		// seller public key
		seller, sellerLength, err := unpackAccount(record[n:], testnet)
		if nil != err {
			return nil, err
		}
		if 0 == sellerLength {
			break unpack_switch
		}
		n += sellerLength

		// buyer public key
		buyer, buyerLength, err := unpackAccount(record[n:], testnet)
		if nil != err {
			return nil, err
		}
		if 0 == buyerLength {
			break unpack_switch
		}
		n += buyerLength

		if n != len(record) {
			break unpack_switch
		}
		return &SellOrderProposition{
			Seller: seller,
			Buyer:  buyer,
		}, nil

	default: // also NullPropositionTag
	}
	return nil, fault.NotPropositionPack
}

// Unpack - turn a byte slice into a proof
//
// the whole buffer must be consumed, trailing bytes are an error
func (record PackedProof) Unpack() (p Proof, e error) {

	defer func() {
		if r := recover(); nil != r {
			e = fault.NotProofPack
		}
	}()

	tag, n := util.FromUint32(record)
	if 0 == n {
		return nil, fault.NotProofPack
	}

unpack_switch:
	switch ProofTag(tag) {

	case SignatureProofTag:

		// signature is remainder of record
		signatureLength, signatureOffset := util.ClippedUint32(record[n:], 1, 8192)
		if 0 == signatureOffset {
			break unpack_switch
		}
		signature := make(account.Signature, signatureLength)
		n += signatureOffset
		copy(signature, record[n:n+signatureLength])
		n += signatureLength

		if n != len(record) {
			break unpack_switch
		}
		return &SignatureProof{
			Signature: signature,
		}, nil

	case RoleProofTag:

		// role flag
		if n >= len(record) {
			break unpack_switch
		}
		role := record[n]
		n += 1
		if BuyerRole != role && SellerRole != role {
			break unpack_switch
		}

		// signature is remainder of record
		signatureLength, signatureOffset := util.ClippedUint32(record[n:], 1, 8192)
		if 0 == signatureOffset {
			break unpack_switch
		}
		signature := make(account.Signature, signatureLength)
		n += signatureOffset
		copy(signature, record[n:n+signatureLength])
		n += signatureLength

		if n != len(record) {
			break unpack_switch
		}
		return &RoleProof{
			Role:      role,
			Signature: signature,
		}, nil

	default: // also NullProofTag
	}
	return nil, fault.NotProofPack
}

// Unpack - turn a byte slice into box content
//
// the whole buffer must be consumed, trailing bytes are an error
func (record PackedData) Unpack(testnet bool) (data *Data, e error) {

	defer func() {
		if r := recover(); nil != r {
			e = fault.NotBoxPack
		}
	}()

	// payload tag
	tag, n := util.FromUint32(record)
	if 0 == n {
		return nil, fault.NotBoxPack
	}

	// proposition
	propositionLength, propositionOffset := util.ClippedUint32(record[n:], 1, 8192)
	if 0 == propositionOffset {
		return nil, fault.NotBoxPack
	}
	n += propositionOffset
	proposition, err := PackedProposition(record[n : n+propositionLength]).Unpack(testnet)
	if nil != err {
		return nil, err
	}
	n += propositionLength

	// payload fields
	payloadLength, payloadOffset := util.ClippedUint32(record[n:], 1, 8192)
	if 0 == payloadOffset {
		return nil, fault.NotBoxPack
	}
	n += payloadOffset
	payload, err := unpackPayload(TagType(tag), record[n:n+payloadLength])
	if nil != err {
		return nil, err
	}
	n += payloadLength

	if n != len(record) {
		return nil, fault.NotBoxPack
	}

	// proposition variant must match the payload
	switch payload.(type) {
	case *SellOrderData:
		if _, ok := proposition.(*SellOrderProposition); !ok {
			return nil, fault.NotSellOrderProposition
		}
	default:
		if _, ok := proposition.(*OwnerProposition); !ok {
			return nil, fault.NotOwnerProposition
		}
	}

	return &Data{
		Proposition: proposition,
		Payload:     payload,
	}, nil
}

// Unpack - turn a byte slice into a box
//
// the whole buffer must be consumed, trailing bytes are an error
func (record PackedBox) Unpack(testnet bool) (box *Box, e error) {

	defer func() {
		if r := recover(); nil != r {
			e = fault.NotBoxPack
		}
	}()

	nonce, nonceLength := util.FromUint64(record)
	if 0 == nonceLength {
		return nil, fault.NotBoxPack
	}

	data, err := PackedData(record[nonceLength:]).Unpack(testnet)
	if nil != err {
		return nil, err
	}

	return &Box{
		Nonce: nonce,
		Data:  *data,
	}, nil
}

// unpack payload fields for a given content tag
//
// the buffer holds only the payload fields and must be fully consumed
func unpackPayload(tag TagType, record []byte) (Payload, error) {

	n := 0

unpack_switch:
	switch tag {

	case CarDataTag:

		vin, year, model, color, next, err := unpackCarFields(record, n)
		if nil != err {
			return nil, err
		}
		n = next

		if n != len(record) {
			break unpack_switch
		}
		return &CarData{
			Vin:   vin,
			Year:  year,
			Model: model,
			Color: color,
		}, nil

	case SellOrderDataTag:

		vin, year, model, color, next, err := unpackCarFields(record, n)
		if nil != err {
			return nil, err
		}
		n = next

		// price
		price, priceLength := util.FromUint64(record[n:])
		if 0 == priceLength {
			break unpack_switch
		}
		n += priceLength

		if n != len(record) {
			break unpack_switch
		}
		return &SellOrderData{
			Vin:   vin,
			Year:  year,
			Model: model,
			Color: color,
			Price: price,
		}, nil

	case CoinDataTag:

		// value
		value, valueLength := util.FromUint64(record[n:])
		if 0 == valueLength {
			break unpack_switch
		}
		n += valueLength

		if n != len(record) {
			break unpack_switch
		}
		return &CoinData{
			Value: value,
		}, nil

	default: // also NullTag
	}
	return nil, fault.NotBoxPack
}

// read the four car fields shared by car and sell order payloads
func unpackCarFields(record []byte, n int) (vin string, year uint64, model string, color string, next int, err error) {

	// vin
	vinLength, vinOffset := util.ClippedUint32(record[n:], 1, 8192)
	if 0 == vinOffset {
		return "", 0, "", "", 0, fault.NotBoxPack
	}
	n += vinOffset
	vin = string(record[n : n+vinLength])
	n += vinLength

	// year
	year, yearLength := util.FromUint64(record[n:])
	if 0 == yearLength {
		return "", 0, "", "", 0, fault.NotBoxPack
	}
	n += yearLength

	// model (can be zero length)
	modelLength, modelOffset := util.ClippedUint32(record[n:], 0, 8192)
	if 0 == modelOffset {
		return "", 0, "", "", 0, fault.NotBoxPack
	}
	n += modelOffset
	model = string(record[n : n+modelLength])
	n += modelLength

	// color (can be zero length)
	colorLength, colorOffset := util.ClippedUint32(record[n:], 0, 8192)
	if 0 == colorOffset {
		return "", 0, "", "", 0, fault.NotBoxPack
	}
	n += colorOffset
	color = string(record[n : n+colorLength])
	n += colorLength

	return vin, year, model, color, n, nil
}

// read one length prefixed account, checking its network
//
// returns the byte count consumed, zero means a truncated buffer
func unpackAccount(record []byte, testnet bool) (*account.Account, int, error) {

	accountLength, accountOffset := util.ClippedUint32(record, 1, 8192)
	if 0 == accountOffset {
		return nil, 0, nil
	}
	n := accountOffset
	owner, err := account.AccountFromBytes(record[n : n+accountLength])
	if nil != err {
		return nil, 0, err
	}
	if owner.IsTesting() != testnet {
		return nil, 0, fault.WrongNetworkForPublicKey
	}
	n += accountLength

	return owner, n, nil
}
