// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package boxrecord

import (
	"github.com/sci-crypto/carregistryd/fault"
)

// Verify - check the signature against the single owner key
//
// only valid for a box locked by an owner proposition
func (proof *SignatureProof) Verify(proposition Proposition, message []byte) error {
	p, ok := proposition.(*OwnerProposition)
	if !ok {
		return fault.IncorrectProof
	}
	return p.Owner.CheckSignature(message, proof.Signature)
}

// Verify - check the signature against the key the role flag selects
//
// only valid for a box locked by a sell order proposition; the role
// picks seller or buyer key, then the full signature check runs: a
// signature made by the other party's key must fail
func (proof *RoleProof) Verify(proposition Proposition, message []byte) error {
	p, ok := proposition.(*SellOrderProposition)
	if !ok {
		return fault.IncorrectProof
	}

	switch proof.Role {
	case SellerRole:
		return p.Seller.CheckSignature(message, proof.Signature)
	case BuyerRole:
		return p.Buyer.CheckSignature(message, proof.Signature)
	default:
		return fault.IncorrectProof
	}
}
