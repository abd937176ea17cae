// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package boxrecord

import (
	"encoding/hex"

	"github.com/sci-crypto/carregistryd/account"
	"github.com/sci-crypto/carregistryd/digest"
	"github.com/sci-crypto/carregistryd/util"
)

// TagType - type code for box payloads
type TagType uint32

// enumerate the possible payload types
// this is encoded as a big endian uint32 at the start of packed box content
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	CarDataTag       = TagType(iota) // a registered car
	SellOrderDataTag = TagType(iota) // an open sale offer
	CoinDataTag      = TagType(iota) // a native coin value

	// this item must be last
	InvalidTag = TagType(iota)
)

// PropositionTag - type code for locking propositions
type PropositionTag uint32

// enumerate the possible proposition types
const (
	NullPropositionTag      = PropositionTag(iota)
	OwnerPropositionTag     = PropositionTag(iota) // single account
	SellOrderPropositionTag = PropositionTag(iota) // seller and buyer accounts
	InvalidPropositionTag   = PropositionTag(iota)
)

// ProofTag - type code for unlock proofs
type ProofTag uint32

// enumerate the possible proof types
const (
	NullProofTag      = ProofTag(iota)
	SignatureProofTag = ProofTag(iota) // plain signature
	RoleProofTag      = ProofTag(iota) // signature with a role flag
	InvalidProofTag   = ProofTag(iota)
)

// roles carried by a role signature proof
const (
	BuyerRole  byte = 0x00
	SellerRole byte = 0x01
)

// byte sizes for various fields
const (
	minVinLength       = 1
	maxVinLength       = 32
	maxModelLength     = 64
	maxColorLength     = 32
	maxSignatureLength = 1024
)

// PackedBox - packed nonce + content, the stored form of a box
type PackedBox []byte

// PackedData - packed box content: payload tag, proposition, payload
type PackedData []byte

// PackedProposition - packed locking proposition
type PackedProposition []byte

// PackedProof - packed unlock proof
type PackedProof []byte

// Proposition - generic box locking proposition
type Proposition interface {
	Pack() (PackedProposition, error)
	GetOwner() *account.Account // the account the box is indexed under
}

// Proof - generic unlock credential checked against a proposition
type Proof interface {
	Pack() (PackedProof, error)
	Verify(proposition Proposition, message []byte) error
}

// Payload - generic box payload
type Payload interface {
	Tag() TagType
	Pack() ([]byte, error)
	CoinValue() uint64 // value for conservation checks, zero for non-coin
}

// OwnerProposition - locks a box to a single account
type OwnerProposition struct {
	Owner *account.Account `json:"owner"` // base58
}

// SellOrderProposition - locks a box until the seller or the buyer resolves it
type SellOrderProposition struct {
	Seller *account.Account `json:"seller"` // base58
	Buyer  *account.Account `json:"buyer"`  // base58
}

// SignatureProof - a plain signature by the owner key
type SignatureProof struct {
	Signature account.Signature `json:"signature"` // hex
}

// RoleProof - a signature by the key the role flag selects
//
// the flag only chooses the verification key, it never weakens the
// signature check itself
type RoleProof struct {
	Role      byte              `json:"role"`      // 0x00 = buyer, 0x01 = seller
	Signature account.Signature `json:"signature"` // hex
}

// CarData - the registered car payload
type CarData struct {
	Vin   string `json:"vin"`   // utf-8
	Year  uint64 `json:"year"`  // production year
	Model string `json:"model"` // utf-8
	Color string `json:"color"` // utf-8
}

// SellOrderData - an open sale offer: the car fields plus the asking price
type SellOrderData struct {
	Vin   string `json:"vin"`          // utf-8
	Year  uint64 `json:"year"`         // production year
	Model string `json:"model"`        // utf-8
	Color string `json:"color"`        // utf-8
	Price uint64 `json:"price,string"` // native coin units
}

// CoinData - a native coin value
type CoinData struct {
	Value uint64 `json:"value,string"` // native coin units
}

// Data - box content: one proposition locking one payload
type Data struct {
	Proposition Proposition `json:"proposition"`
	Payload     Payload     `json:"payload"`
}

// Box - a ledger entry: content plus the nonce that makes its id unique
type Box struct {
	Nonce uint64 `json:"nonce,string"`
	Data
}

// GetOwner - the owning account
func (proposition *OwnerProposition) GetOwner() *account.Account {
	return proposition.Owner
}

// GetOwner - sell order boxes stay indexed under the seller
func (proposition *SellOrderProposition) GetOwner() *account.Account {
	return proposition.Seller
}

// Tag - payload type code
func (car *CarData) Tag() TagType {
	return CarDataTag
}

// Tag - payload type code
func (order *SellOrderData) Tag() TagType {
	return SellOrderDataTag
}

// Tag - payload type code
func (coin *CoinData) Tag() TagType {
	return CoinDataTag
}

// CoinValue - cars carry no coin value
func (car *CarData) CoinValue() uint64 {
	return 0
}

// CoinValue - sell orders carry no coin value, the price is only a record
func (order *SellOrderData) CoinValue() uint64 {
	return 0
}

// CoinValue - the coin value
func (coin *CoinData) CoinValue() uint64 {
	return coin.Value
}

// CarId - compute the car identifier covering the four car fields
func (car *CarData) CarId() CarIdentifier {
	return NewCarIdentifier(packCarFields(car.Vin, car.Year, car.Model, car.Color))
}

// CarId - the car identifier of the car being offered
func (order *SellOrderData) CarId() CarIdentifier {
	return NewCarIdentifier(packCarFields(order.Vin, order.Year, order.Model, order.Color))
}

// Type - returns the payload type code of packed content
func (record PackedData) Type() TagType {
	tag, n := util.FromUint32(record)
	if 0 == n {
		return NullTag
	}
	return TagType(tag)
}

// Id - compute the box id of a packed box
//
// SHA3-256 over nonce and content
func (record PackedBox) Id() digest.Digest {
	return digest.NewDigest(record)
}

// RecordName - returns the name of a box record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *CarData, CarData:
		return "Car", true

	case *SellOrderData, SellOrderData:
		return "SellOrder", true

	case *CoinData, CoinData:
		return "Coin", true

	case *OwnerProposition, OwnerProposition:
		return "OwnerProposition", true

	case *SellOrderProposition, SellOrderProposition:
		return "SellOrderProposition", true

	case *SignatureProof, SignatureProof:
		return "SignatureProof", true

	case *RoleProof, RoleProof:
		return "RoleProof", true

	default:
		return "*unknown*", false
	}
}

// MarshalText - convert a packed box to its hex JSON form
func (record PackedBox) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert hex text into a packed box
func (record *PackedBox) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}

// MarshalText - convert packed content to its hex JSON form
func (record PackedData) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert hex text into packed content
func (record *PackedData) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}
