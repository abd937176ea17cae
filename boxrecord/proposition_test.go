// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package boxrecord_test

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/sci-crypto/carregistryd/boxrecord"
	"github.com/sci-crypto/carregistryd/fault"
	"github.com/sci-crypto/carregistryd/util"
)

// test the packing/unpacking of an owner proposition
//
// ensures that pack->unpack returns the same original value
func TestPackOwnerProposition(t *testing.T) {

	ownerOneAccount := makeAccount(ownerOne.publicKey)

	p := boxrecord.OwnerProposition{
		Owner: ownerOneAccount,
	}

	expected := []byte{
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x21,
		0x13, 0x27, 0x64, 0x0e, 0x4a, 0xab, 0x92, 0xd8,
		0x7b, 0x4a, 0x6a, 0x2f, 0x30, 0xb8, 0x81, 0xf4,
		0x49, 0x29, 0xf8, 0x66, 0x04, 0x3a, 0x84, 0x1c,
		0x38, 0x14, 0xb1, 0x66, 0xb8, 0x89, 0x44, 0xb0,
		0x92,
	}

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

	// the box stays indexed under the owner
	if p.GetOwner() != ownerOneAccount {
		t.Errorf("owner: %v  expected: %v", p.GetOwner(), ownerOneAccount)
	}

	// test the unpacker
	unpacked, err := packed.Unpack(true)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}

	proposition, ok := unpacked.(*boxrecord.OwnerProposition)
	if !ok {
		t.Fatalf("did not unpack to OwnerProposition")
	}

	// check that structure is preserved through Pack/Unpack
	if !reflect.DeepEqual(p, *proposition) {
		t.Fatalf("different, original: %v  recovered: %v", p, *proposition)
	}
}

// test the packing/unpacking of a sell order proposition
//
// ensures that pack->unpack returns the same original value
func TestPackSellOrderProposition(t *testing.T) {

	sellerAccount := makeAccount(seller.publicKey)
	buyerAccount := makeAccount(buyer.publicKey)

	p := boxrecord.SellOrderProposition{
		Seller: sellerAccount,
		Buyer:  buyerAccount,
	}

	expected := []byte{
		0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x21,
		0x13, 0x7a, 0x81, 0x92, 0x56, 0x5e, 0x6c, 0xa2,
		0x35, 0x80, 0xe1, 0x81, 0x59, 0xef, 0x30, 0x73,
		0xf6, 0xe2, 0xfb, 0x8e, 0x7e, 0x9d, 0x31, 0x49,
		0x7e, 0x79, 0xd7, 0x73, 0x1b, 0xa3, 0x74, 0x11,
		0x01, 0x00, 0x00, 0x00, 0x21, 0x13, 0x9f, 0xc4,
		0x86, 0xa2, 0x53, 0x4f, 0x17, 0xe3, 0x67, 0x07,
		0xfa, 0x4b, 0x95, 0x3e, 0x3b, 0x34, 0x00, 0xe2,
		0x72, 0x9f, 0x65, 0x61, 0x16, 0xdd, 0x7b, 0x01,
		0x8d, 0xf3, 0x46, 0x98, 0xbd, 0xc2,
	}

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

	// sell order boxes stay indexed under the seller
	if p.GetOwner() != sellerAccount {
		t.Errorf("owner: %v  expected: %v", p.GetOwner(), sellerAccount)
	}

	// test the unpacker
	unpacked, err := packed.Unpack(true)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}

	proposition, ok := unpacked.(*boxrecord.SellOrderProposition)
	if !ok {
		t.Fatalf("did not unpack to SellOrderProposition")
	}

	// check that structure is preserved through Pack/Unpack
	if !reflect.DeepEqual(p, *proposition) {
		t.Fatalf("different, original: %v  recovered: %v", p, *proposition)
	}
}

// test the pack failure on missing accounts
func TestPackPropositionWithNilAccount(t *testing.T) {

	sellerAccount := makeAccount(seller.publicKey)

	owner := boxrecord.OwnerProposition{
		Owner: nil,
	}
	if _, err := owner.Pack(); fault.InvalidOwnerOrBuyer != err {
		t.Errorf("pack error: %s  expected: %s", err, fault.InvalidOwnerOrBuyer)
	}

	missingBuyer := boxrecord.SellOrderProposition{
		Seller: sellerAccount,
		Buyer:  nil,
	}
	if _, err := missingBuyer.Pack(); fault.InvalidOwnerOrBuyer != err {
		t.Errorf("pack error: %s  expected: %s", err, fault.InvalidOwnerOrBuyer)
	}

	missingSeller := boxrecord.SellOrderProposition{
		Seller: nil,
		Buyer:  sellerAccount,
	}
	if _, err := missingSeller.Pack(); fault.InvalidOwnerOrBuyer != err {
		t.Errorf("pack error: %s  expected: %s", err, fault.InvalidOwnerOrBuyer)
	}
}

// test the unpack failure on malformed propositions
func TestUnpackInvalidProposition(t *testing.T) {

	ownerOneAccount := makeAccount(ownerOne.publicKey)

	packed, err := (&boxrecord.OwnerProposition{Owner: ownerOneAccount}).Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	invalid := []struct {
		packed   []byte
		expected error
	}{
		{[]byte{}, fault.NotPropositionPack},                   // empty
		{[]byte{0x00, 0x00, 0x00}, fault.NotPropositionPack},   // short tag
		{[]byte{0x00, 0x00, 0x00, 0x00}, fault.NotPropositionPack}, // null tag
		{[]byte{0x00, 0x00, 0x00, 0x03}, fault.NotPropositionPack}, // unsupported tag
		{packed[:20], fault.NotPropositionPack},                // truncated account
		{append(append([]byte{}, packed...), 0x00), fault.NotPropositionPack}, // trailing byte
	}

	for i, item := range invalid {
		_, err := boxrecord.PackedProposition(item.packed).Unpack(true)
		if item.expected != err {
			t.Errorf("%d: unpack error: %v  expected: %v", i, err, item.expected)
		}
	}

	// a corrupted key variant must propagate the account fault
	corrupt := append([]byte{}, packed...)
	corrupt[8] = 0x12 // clear the public key bit
	if _, err := boxrecord.PackedProposition(corrupt).Unpack(true); fault.NotPublicKey != err {
		t.Errorf("unpack error: %v  expected: %v", err, fault.NotPublicKey)
	}
	corrupt[8] = 0x23 // unsupported algorithm
	if _, err := boxrecord.PackedProposition(corrupt).Unpack(true); fault.InvalidKeyType != err {
		t.Errorf("unpack error: %v  expected: %v", err, fault.InvalidKeyType)
	}
}

// test the network check when unpacking
func TestUnpackPropositionWrongNetwork(t *testing.T) {

	ownerOneAccount := makeAccount(ownerOne.publicKey)

	packed, err := (&boxrecord.OwnerProposition{Owner: ownerOneAccount}).Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	// a test network account must not unpack for the live network
	if _, err := packed.Unpack(false); fault.WrongNetworkForPublicKey != err {
		t.Errorf("unpack error: %v  expected: %v", err, fault.WrongNetworkForPublicKey)
	}

	// a live network account must not unpack for the test network
	live := append([]byte{}, packed...)
	live[8] = 0x11 // clear the test network bit
	if _, err := boxrecord.PackedProposition(live).Unpack(true); fault.WrongNetworkForPublicKey != err {
		t.Errorf("unpack error: %v  expected: %v", err, fault.WrongNetworkForPublicKey)
	}
}
