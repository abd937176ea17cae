// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package boxrecord_test

import (
	"bytes"
	"reflect"
	"testing"

	"golang.org/x/crypto/ed25519"

	"github.com/sci-crypto/carregistryd/boxrecord"
	"github.com/sci-crypto/carregistryd/fault"
	"github.com/sci-crypto/carregistryd/util"
)

// test the packing/unpacking of a signature proof
//
// ensures that pack->unpack returns the same original value
func TestPackSignatureProof(t *testing.T) {

	ownerOneAccount := makeAccount(ownerOne.publicKey)

	data := &boxrecord.Data{
		Proposition: &boxrecord.OwnerProposition{Owner: ownerOneAccount},
		Payload:     &boxrecord.CoinData{Value: 100},
	}
	message, err := data.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	signature := ed25519.Sign(ownerOne.privateKey, message)

	p := boxrecord.SignatureProof{
		Signature: signature,
	}

	// tag and signature length prefix, the signature itself is computed above
	expected := []byte{
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x40,
	}
	expected = append(expected, signature...)

	// test the packer
	packed, err := p.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	if !bytes.Equal(packed, expected) {
		t.Errorf("pack record: %x  expected: %x", packed, expected)
		t.Errorf("*** GENERATED Packed:\n%s", util.FormatBytes("expected", packed))
		t.Fatal("fatal error")
	}

	// test the unpacker
	unpacked, err := packed.Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}

	proof, ok := unpacked.(*boxrecord.SignatureProof)
	if !ok {
		t.Fatalf("did not unpack to SignatureProof")
	}

	// check that structure is preserved through Pack/Unpack
	if !reflect.DeepEqual(p, *proof) {
		t.Fatalf("different, original: %v  recovered: %v", p, *proof)
	}

	// the recovered proof must still verify
	if err := proof.Verify(data.Proposition, message); nil != err {
		t.Errorf("verify error: %s", err)
	}
}

// test the packing/unpacking of a role signature proof
//
// ensures that pack->unpack returns the same original value
func TestPackRoleProof(t *testing.T) {

	sellerAccount := makeAccount(seller.publicKey)
	buyerAccount := makeAccount(buyer.publicKey)

	data := &boxrecord.Data{
		Proposition: &boxrecord.SellOrderProposition{
			Seller: sellerAccount,
			Buyer:  buyerAccount,
		},
		Payload: &boxrecord.SellOrderData{
			Vin:   "30124",
			Year:  1984,
			Model: "Lamborghini",
			Color: "deep black",
			Price: 7000,
		},
	}
	message, err := data.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	signature := ed25519.Sign(seller.privateKey, message)

	p := boxrecord.RoleProof{
		Role:      boxrecord.SellerRole,
		Signature: signature,
	}

	// tag, role flag and signature length prefix
	expected := []byte{
		0x00, 0x00, 0x00, 0x02, 0x01, 0x00, 0x00, 0x00,
		0x40,
	}
	expected = append(expected, signature...)

	// test the packer
	packed, err := p.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	if !bytes.Equal(packed, expected) {
		t.Errorf("pack record: %x  expected: %x", packed, expected)
		t.Errorf("*** GENERATED Packed:\n%s", util.FormatBytes("expected", packed))
		t.Fatal("fatal error")
	}

	// test the unpacker
	unpacked, err := packed.Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}

	proof, ok := unpacked.(*boxrecord.RoleProof)
	if !ok {
		t.Fatalf("did not unpack to RoleProof")
	}

	// check that structure is preserved through Pack/Unpack
	if !reflect.DeepEqual(p, *proof) {
		t.Fatalf("different, original: %v  recovered: %v", p, *proof)
	}

	// the recovered proof must still verify
	if err := proof.Verify(data.Proposition, message); nil != err {
		t.Errorf("verify error: %s", err)
	}
}

// test signature proof verification against an owner proposition
func TestSignatureProofVerify(t *testing.T) {

	ownerOneAccount := makeAccount(ownerOne.publicKey)
	ownerProposition := &boxrecord.OwnerProposition{Owner: ownerOneAccount}

	orderProposition := &boxrecord.SellOrderProposition{
		Seller: makeAccount(seller.publicKey),
		Buyer:  makeAccount(buyer.publicKey),
	}

	message := []byte{
		0xde, 0xca, 0xfb, 0xad, 0x00, 0x11, 0x22, 0x33,
		0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb,
	}

	signature := ed25519.Sign(ownerOne.privateKey, message)

	proof := &boxrecord.SignatureProof{Signature: signature}

	// a signature by the owner key verifies
	if err := proof.Verify(ownerProposition, message); nil != err {
		t.Errorf("verify error: %s", err)
	}

	// a modified message must fail
	tampered := append([]byte{}, message...)
	tampered[0] ^= 0x01
	if err := proof.Verify(ownerProposition, tampered); fault.InvalidSignature != err {
		t.Errorf("verify error: %v  expected: %v", err, fault.InvalidSignature)
	}

	// a signature by some other key must fail
	wrongKey := &boxrecord.SignatureProof{
		Signature: ed25519.Sign(ownerTwo.privateKey, message),
	}
	if err := wrongKey.Verify(ownerProposition, message); fault.InvalidSignature != err {
		t.Errorf("verify error: %v  expected: %v", err, fault.InvalidSignature)
	}

	// any single flipped signature bit must fail
	for i := 0; i < len(signature); i += 1 {
		flipped := append([]byte{}, signature...)
		flipped[i] ^= 0x40
		corrupt := &boxrecord.SignatureProof{Signature: flipped}
		if err := corrupt.Verify(ownerProposition, message); fault.InvalidSignature != err {
			t.Errorf("%d: verify error: %v  expected: %v", i, err, fault.InvalidSignature)
		}
	}

	// a truncated signature must fail
	short := &boxrecord.SignatureProof{Signature: signature[:32]}
	if err := short.Verify(ownerProposition, message); fault.InvalidSignature != err {
		t.Errorf("verify error: %v  expected: %v", err, fault.InvalidSignature)
	}

	// a plain signature cannot unlock a sell order box
	if err := proof.Verify(orderProposition, message); fault.IncorrectProof != err {
		t.Errorf("verify error: %v  expected: %v", err, fault.IncorrectProof)
	}
}

// test role proof verification against a sell order proposition
//
// the role flag only selects which key verifies, it can never turn a
// bad signature into a good one
func TestRoleProofVerify(t *testing.T) {

	sellerAccount := makeAccount(seller.publicKey)
	buyerAccount := makeAccount(buyer.publicKey)

	orderProposition := &boxrecord.SellOrderProposition{
		Seller: sellerAccount,
		Buyer:  buyerAccount,
	}

	ownerProposition := &boxrecord.OwnerProposition{
		Owner: makeAccount(ownerOne.publicKey),
	}

	message := []byte{
		0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef,
		0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10,
	}

	sellerSignature := ed25519.Sign(seller.privateKey, message)
	buyerSignature := ed25519.Sign(buyer.privateKey, message)

	// each party verifies under its own role
	sellerProof := &boxrecord.RoleProof{
		Role:      boxrecord.SellerRole,
		Signature: sellerSignature,
	}
	if err := sellerProof.Verify(orderProposition, message); nil != err {
		t.Errorf("verify error: %s", err)
	}

	buyerProof := &boxrecord.RoleProof{
		Role:      boxrecord.BuyerRole,
		Signature: buyerSignature,
	}
	if err := buyerProof.Verify(orderProposition, message); nil != err {
		t.Errorf("verify error: %s", err)
	}

	// claiming the seller role with the buyer key must fail
	sellerRoleBuyerKey := &boxrecord.RoleProof{
		Role:      boxrecord.SellerRole,
		Signature: buyerSignature,
	}
	if err := sellerRoleBuyerKey.Verify(orderProposition, message); fault.InvalidSignature != err {
		t.Errorf("verify error: %v  expected: %v", err, fault.InvalidSignature)
	}

	// claiming the buyer role with the seller key must fail
	buyerRoleSellerKey := &boxrecord.RoleProof{
		Role:      boxrecord.BuyerRole,
		Signature: sellerSignature,
	}
	if err := buyerRoleSellerKey.Verify(orderProposition, message); fault.InvalidSignature != err {
		t.Errorf("verify error: %v  expected: %v", err, fault.InvalidSignature)
	}

	// a single flipped signature byte must fail for either role
	flippedSeller := append([]byte{}, sellerSignature...)
	flippedSeller[17] ^= 0x04
	corruptSeller := &boxrecord.RoleProof{
		Role:      boxrecord.SellerRole,
		Signature: flippedSeller,
	}
	if err := corruptSeller.Verify(orderProposition, message); fault.InvalidSignature != err {
		t.Errorf("verify error: %v  expected: %v", err, fault.InvalidSignature)
	}

	flippedBuyer := append([]byte{}, buyerSignature...)
	flippedBuyer[61] ^= 0x04
	corruptBuyer := &boxrecord.RoleProof{
		Role:      boxrecord.BuyerRole,
		Signature: flippedBuyer,
	}
	if err := corruptBuyer.Verify(orderProposition, message); fault.InvalidSignature != err {
		t.Errorf("verify error: %v  expected: %v", err, fault.InvalidSignature)
	}

	// a role signature cannot unlock an owner box
	if err := sellerProof.Verify(ownerProposition, message); fault.IncorrectProof != err {
		t.Errorf("verify error: %v  expected: %v", err, fault.IncorrectProof)
	}

	// an out of range role flag must fail
	badRole := &boxrecord.RoleProof{
		Role:      0x02,
		Signature: sellerSignature,
	}
	if err := badRole.Verify(orderProposition, message); fault.IncorrectProof != err {
		t.Errorf("verify error: %v  expected: %v", err, fault.IncorrectProof)
	}
}

// test the pack failure on malformed proofs
func TestPackInvalidProof(t *testing.T) {

	oversize := make([]byte, 1025)

	tooLong := boxrecord.SignatureProof{
		Signature: oversize,
	}
	if _, err := tooLong.Pack(); fault.SignatureTooLong != err {
		t.Errorf("pack error: %v  expected: %v", err, fault.SignatureTooLong)
	}

	badRole := boxrecord.RoleProof{
		Role:      0x02,
		Signature: []byte{1, 2, 3, 4},
	}
	if _, err := badRole.Pack(); fault.IncorrectProof != err {
		t.Errorf("pack error: %v  expected: %v", err, fault.IncorrectProof)
	}

	roleTooLong := boxrecord.RoleProof{
		Role:      boxrecord.SellerRole,
		Signature: oversize,
	}
	if _, err := roleTooLong.Pack(); fault.SignatureTooLong != err {
		t.Errorf("pack error: %v  expected: %v", err, fault.SignatureTooLong)
	}
}

// test the unpack failure on malformed proofs
func TestUnpackInvalidProof(t *testing.T) {

	signature := ed25519.Sign(ownerOne.privateKey, []byte("nonsense"))

	packed, err := (&boxrecord.SignatureProof{Signature: signature}).Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	packedRole, err := (&boxrecord.RoleProof{
		Role:      boxrecord.BuyerRole,
		Signature: signature,
	}).Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	// role proof with an out of range role flag
	badRole := append([]byte{}, packedRole...)
	badRole[4] = 0x02

	invalid := [][]byte{
		{},                       // empty
		{0x00, 0x00, 0x00},      // short tag
		{0x00, 0x00, 0x00, 0x00}, // null tag
		{0x00, 0x00, 0x00, 0x03}, // unsupported tag
		{0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}, // zero length signature
		{0x00, 0x00, 0x00, 0x02},                         // missing role flag
		packed[:20],                              // truncated signature
		append(append([]byte{}, packed...), 0x00), // trailing byte
		badRole,
	}

	for i, item := range invalid {
		_, err := boxrecord.PackedProof(item).Unpack()
		if fault.NotProofPack != err {
			t.Errorf("%d: unpack error: %v  expected: %v", i, err, fault.NotProofPack)
		}
	}
}
