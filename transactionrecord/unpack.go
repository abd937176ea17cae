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

// Unpack - turn a byte slice into a transaction
//
// the whole buffer must be consumed, trailing bytes are an error
func (record Packed) Unpack(testnet bool) (tx *Transaction, e error) {

	defer func() {
		if r := recover(); nil != r {
			e = fault.NotTransactionPack
		}
	}()

	// fee
	fee, feeLength := util.FromUint64(record)
	if 0 == feeLength {
		return nil, fault.NotTransactionPack
	}
	n := feeLength

	// timestamp
	timestamp, timestampLength := util.FromUint64(record[n:])
	if 0 == timestampLength {
		return nil, fault.NotTransactionPack
	}
	n += timestampLength

	// inputs section: concatenated box ids
	inputsLength, inputsOffset := util.ClippedUint32(record[n:], 0, maximumSection)
	if 0 == inputsOffset {
		return nil, fault.NotTransactionPack
	}
	if 0 != inputsLength%digest.Length {
		return nil, fault.NotTransactionPack
	}
	n += inputsOffset

	var inputs []digest.Digest
	if inputsLength > 0 {
		inputs = make([]digest.Digest, inputsLength/digest.Length)
		for i := 0; i < len(inputs); i += 1 {
			copy(inputs[i][:], record[n:n+digest.Length])
			n += digest.Length
		}
	}

	// proofs section: one length prefixed proof per input
	proofsLength, proofsOffset := util.ClippedUint32(record[n:], 0, maximumProofsSection)
	if 0 == proofsOffset {
		return nil, fault.NotTransactionPack
	}
	n += proofsOffset

	var proofs []boxrecord.Proof
	proofsEnd := n + proofsLength
	for n < proofsEnd {
		proofLength, proofOffset := util.ClippedUint32(record[n:proofsEnd], 1, maximumSection)
		if 0 == proofOffset {
			return nil, fault.NotTransactionPack
		}
		n += proofOffset
		proof, err := boxrecord.PackedProof(record[n : n+proofLength]).Unpack()
		if nil != err {
			return nil, err
		}
		n += proofLength
		proofs = append(proofs, proof)
	}
	if n != proofsEnd {
		return nil, fault.NotTransactionPack
	}
	if len(proofs) != len(inputs) {
		return nil, fault.InvalidCount
	}

	// outputs section: length prefixed box content, coin only
	outputsLength, outputsOffset := util.ClippedUint32(record[n:], 0, maximumSection)
	if 0 == outputsOffset {
		return nil, fault.NotTransactionPack
	}
	n += outputsOffset

	var outputs []boxrecord.Data
	outputsEnd := n + outputsLength
	for n < outputsEnd {
		outputLength, outputOffset := util.ClippedUint32(record[n:outputsEnd], 1, maximumSection)
		if 0 == outputOffset {
			return nil, fault.NotTransactionPack
		}
		n += outputOffset
		data, err := boxrecord.PackedData(record[n : n+outputLength]).Unpack(testnet)
		if nil != err {
			return nil, err
		}
		if _, ok := data.Payload.(*boxrecord.CoinData); !ok {
			return nil, fault.NotCoinBox
		}
		n += outputLength
		outputs = append(outputs, *data)
	}
	if n != outputsEnd {
		return nil, fault.NotTransactionPack
	}

	// info section: kind tag then the type specific fields
	infoLength, infoOffset := util.ClippedUint32(record[n:], util.Uint32Size, maximumSection)
	if 0 == infoOffset {
		return nil, fault.NotTransactionPack
	}
	n += infoOffset
	info, err := unpackInfo(record[n:n+infoLength], testnet)
	if nil != err {
		return nil, err
	}
	n += infoLength

	if n != len(record) {
		return nil, fault.NotTransactionPack
	}

	return &Transaction{
		Fee:       fee,
		Timestamp: timestamp,
		Inputs:    inputs,
		Proofs:    proofs,
		Outputs:   outputs,
		Info:      info,
	}, nil
}

// unpack the info block for a given kind tag
//
// the buffer holds the tag and the fields and must be fully consumed
func unpackInfo(record []byte, testnet bool) (TxInfo, error) {

	tag, n := util.FromUint32(record)
	if 0 == n {
		return nil, fault.NotTransactionPack
	}

unpack_switch:
	switch TagType(tag) {

	case CarDeclarationTag:

		// owner public key
		owner, ownerLength, err := unpackAccount(record[n:], testnet)
		if nil != err {
			return nil, err
		}
		if 0 == ownerLength {
			break unpack_switch
		}
		n += ownerLength

		vin, year, model, color, next, err := unpackCarFields(record, n)
		if nil != err {
			return nil, err
		}
		n = next

		if n != len(record) {
			break unpack_switch
		}
		return &CarDeclaration{
			Owner: owner,
			Vin:   vin,
			Year:  year,
			Model: model,
			Color: color,
		}, nil

	case SellOrderOpenTag:

		// buyer public key
		buyer, buyerLength, err := unpackAccount(record[n:], testnet)
		if nil != err {
			return nil, err
		}
		if 0 == buyerLength {
			break unpack_switch
		}
		n += buyerLength

		// price
		price, priceLength := util.FromUint64(record[n:])
		if 0 == priceLength {
			break unpack_switch
		}
		n += priceLength

		if n != len(record) {
			break unpack_switch
		}
		return &SellOrderOpen{
			Buyer: buyer,
			Price: price,
		}, nil

	case SellOrderResolveTag:

		if n != len(record) {
			break unpack_switch
		}
		return &SellOrderResolve{}, nil

	case CoinTransferTag:

		if n != len(record) {
			break unpack_switch
		}
		return &CoinTransfer{}, nil

	default: // also NullTag
	}
	return nil, fault.NotTransactionPack
}

// read the four car fields of a declaration
func unpackCarFields(record []byte, n int) (vin string, year uint64, model string, color string, next int, err error) {

	// vin
	vinLength, vinOffset := util.ClippedUint32(record[n:], 1, maximumSection)
	if 0 == vinOffset {
		return "", 0, "", "", 0, fault.NotTransactionPack
	}
	n += vinOffset
	vin = string(record[n : n+vinLength])
	n += vinLength

	// year
	year, yearLength := util.FromUint64(record[n:])
	if 0 == yearLength {
		return "", 0, "", "", 0, fault.NotTransactionPack
	}
	n += yearLength

	// model (can be zero length)
	modelLength, modelOffset := util.ClippedUint32(record[n:], 0, maximumSection)
	if 0 == modelOffset {
		return "", 0, "", "", 0, fault.NotTransactionPack
	}
	n += modelOffset
	model = string(record[n : n+modelLength])
	n += modelLength

	// color (can be zero length)
	colorLength, colorOffset := util.ClippedUint32(record[n:], 0, maximumSection)
	if 0 == colorOffset {
		return "", 0, "", "", 0, fault.NotTransactionPack
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

	accountLength, accountOffset := util.ClippedUint32(record, 1, maximumSection)
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
