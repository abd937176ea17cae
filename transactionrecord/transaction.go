// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"

	"github.com/sci-crypto/carregistryd/account"
	"github.com/sci-crypto/carregistryd/boxrecord"
	"github.com/sci-crypto/carregistryd/digest"
	"github.com/sci-crypto/carregistryd/util"
)

// TagType - type code for transaction info blocks
type TagType uint32

// enumerate the possible transaction kinds
// this is encoded as a big endian uint32 at the start of the info section
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	CarDeclarationTag   = TagType(iota) // register a new car
	SellOrderOpenTag    = TagType(iota) // open a sale offer for a car
	SellOrderResolveTag = TagType(iota) // cancel or complete a sale offer
	CoinTransferTag     = TagType(iota) // move coin value

	// this item must be last
	InvalidTag = TagType(iota)
)

// section size limits shared by Pack and Unpack so that every
// packed transaction round trips
const (
	maximumSection       = 8192                           // inputs, outputs and info sections
	maximumProofsSection = 3 * maximumSection             // one proof per input at MaximumInputs
	MaximumInputs        = maximumSection / digest.Length // box ids per transaction
)

// Packed - the packed byte form of a transaction
type Packed []byte

// TxInfo - the type specific info block of a transaction
type TxInfo interface {
	Tag() TagType
	Pack() ([]byte, error) // fields only, the tag is added by the transaction packer
}

// CarDeclaration - register a car to an owner
//
// the declared fields become the payload of the derived car box
type CarDeclaration struct {
	Owner *account.Account `json:"owner"` // base58
	Vin   string           `json:"vin"`   // utf-8
	Year  uint64           `json:"year"`  // production year
	Model string           `json:"model"` // utf-8
	Color string           `json:"color"` // utf-8
}

// SellOrderOpen - offer the car in input[0] to a buyer at a price
//
// the seller is always the current owner of the car box being spent
type SellOrderOpen struct {
	Buyer *account.Account `json:"buyer"`        // base58
	Price uint64           `json:"price,string"` // native coin units
}

// SellOrderResolve - cancel or complete the sale offer in input[0]
//
// the acting party is carried by the role proof, not by the info block
type SellOrderResolve struct {
}

// CoinTransfer - move coin value between owners
type CoinTransfer struct {
}

// Transaction - the ledger state transition record
//
// inputs name the boxes being spent, proofs unlock them in the same
// order, outputs list the explicit coin boxes being created and the
// info block names the kind plus its type specific fields
type Transaction struct {
	Fee       uint64            `json:"fee,string"`
	Timestamp uint64            `json:"timestamp,string"`
	Inputs    []digest.Digest   `json:"inputs"`
	Proofs    []boxrecord.Proof `json:"proofs"`
	Outputs   []boxrecord.Data  `json:"outputs"`
	Info      TxInfo            `json:"info"`
}

// Tag - transaction kind code
func (info *CarDeclaration) Tag() TagType {
	return CarDeclarationTag
}

// Tag - transaction kind code
func (info *SellOrderOpen) Tag() TagType {
	return SellOrderOpenTag
}

// Tag - transaction kind code
func (info *SellOrderResolve) Tag() TagType {
	return SellOrderResolveTag
}

// Tag - transaction kind code
func (info *CoinTransfer) Tag() TagType {
	return CoinTransferTag
}

// Car - the car payload a declaration creates
func (info *CarDeclaration) Car() *boxrecord.CarData {
	return &boxrecord.CarData{
		Vin:   info.Vin,
		Year:  info.Year,
		Model: info.Model,
		Color: info.Color,
	}
}

// CarId - the car identifier of the car being declared
func (info *CarDeclaration) CarId() boxrecord.CarIdentifier {
	return info.Car().CarId()
}

// Id - compute the transaction id
//
// SHA3-256 over the full packed bytes including proofs
func (record Packed) Id() digest.Digest {
	return digest.NewDigest(record)
}

// Type - return the transaction kind without a full unpack
//
// walks the fixed header and the length prefixed sections to reach the
// info tag, returning NullTag for anything malformed
func (record Packed) Type() TagType {

	n := 2 * util.Uint64Size // fee and timestamp

	// inputs, proofs and outputs sections
	caps := [3]int{maximumSection, maximumProofsSection, maximumSection}
	for i := 0; i < 3; i += 1 {
		if n+util.Uint32Size > len(record) {
			return NullTag
		}
		sectionLength, sectionOffset := util.ClippedUint32(record[n:], 0, caps[i])
		if 0 == sectionOffset {
			return NullTag
		}
		n += sectionOffset + sectionLength
	}

	if n+util.Uint32Size > len(record) {
		return NullTag
	}
	n += util.Uint32Size // info section length

	tag, tagLength := util.FromUint32(record[n:])
	if 0 == tagLength {
		return NullTag
	}
	if tag >= uint32(InvalidTag) {
		return NullTag
	}
	return TagType(tag)
}

// RecordName - returns the name of a transaction record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *CarDeclaration, CarDeclaration:
		return "CarDeclaration", true

	case *SellOrderOpen, SellOrderOpen:
		return "SellOrderOpen", true

	case *SellOrderResolve, SellOrderResolve:
		return "SellOrderResolve", true

	case *CoinTransfer, CoinTransfer:
		return "CoinTransfer", true

	default:
		return "*unknown*", false
	}
}

// MarshalText - convert a packed transaction to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert hex text into a packed transaction
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}
