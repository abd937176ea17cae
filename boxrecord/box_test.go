// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package boxrecord_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/sci-crypto/carregistryd/boxrecord"
	"github.com/sci-crypto/carregistryd/fault"
	"github.com/sci-crypto/carregistryd/util"
)

// append a length prefixed blob, to assemble corrupt records
func appendBlob(buffer []byte, data []byte) []byte {
	buffer = append(buffer, util.ToUint32(uint32(len(data)))...)
	return append(buffer, data...)
}

// test the packing/unpacking of car box content
//
// ensures that pack->unpack returns the same original value
func TestPackCarData(t *testing.T) {

	ownerOneAccount := makeAccount(ownerOne.publicKey)

	d := boxrecord.Data{
		Proposition: &boxrecord.OwnerProposition{
			Owner: ownerOneAccount,
		},
		Payload: &boxrecord.CarData{
			Vin:   "30124",
			Year:  1984,
			Model: "Lamborghini",
			Color: "deep black",
		},
	}

	expected := []byte{
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x29,
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x21,
		0x13, 0x27, 0x64, 0x0e, 0x4a, 0xab, 0x92, 0xd8,
		0x7b, 0x4a, 0x6a, 0x2f, 0x30, 0xb8, 0x81, 0xf4,
		0x49, 0x29, 0xf8, 0x66, 0x04, 0x3a, 0x84, 0x1c,
		0x38, 0x14, 0xb1, 0x66, 0xb8, 0x89, 0x44, 0xb0,
		0x92, 0x00, 0x00, 0x00, 0x2e, 0x00, 0x00, 0x00,
		0x05, 0x33, 0x30, 0x31, 0x32, 0x34, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x07, 0xc0, 0x00, 0x00,
		0x00, 0x0b, 0x4c, 0x61, 0x6d, 0x62, 0x6f, 0x72,
		0x67, 0x68, 0x69, 0x6e, 0x69, 0x00, 0x00, 0x00,
		0x0a, 0x64, 0x65, 0x65, 0x70, 0x20, 0x62, 0x6c,
		0x61, 0x63, 0x6b,
	}

	// test the packer
	packed, err := d.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	if !bytes.Equal(packed, expected) {
		t.Errorf("pack record: %x  expected: %x", packed, expected)
		t.Errorf("*** GENERATED Packed:\n%s", util.FormatBytes("expected", packed))
		t.Fatal("fatal error")
	}

	// check the record type
	if boxrecord.CarDataTag != packed.Type() {
		t.Fatalf("pack record type: %d  expected: %d", packed.Type(), boxrecord.CarDataTag)
	}

	t.Logf("Packed length: %d bytes", len(packed))

	// cars never count towards coin conservation
	if 0 != d.Payload.CoinValue() {
		t.Errorf("coin value: %d  expected: 0", d.Payload.CoinValue())
	}

	// test the unpacker
	unpacked, err := packed.Unpack(true)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}

	// check that structure is preserved through Pack/Unpack
	if !reflect.DeepEqual(d, *unpacked) {
		t.Fatalf("different, original: %v  recovered: %v", d, *unpacked)
	}

	// check the JSON form
	expectedJSON := fmt.Sprintf(
		`{"proposition":{"owner":%q},"payload":{"vin":"30124","year":1984,"model":"Lamborghini","color":"deep black"}}`,
		ownerOneAccount)
	convertedJSON, err := json.Marshal(d)
	if nil != err {
		t.Fatalf("marshal json error: %s", err)
	}
	if expectedJSON != string(convertedJSON) {
		t.Errorf("JSON converted: %q", convertedJSON)
		t.Errorf("     expected:  %q", expectedJSON)
	}
}

// test the packing/unpacking of sell order box content
//
// ensures that pack->unpack returns the same original value
func TestPackSellOrderData(t *testing.T) {

	sellerAccount := makeAccount(seller.publicKey)
	buyerAccount := makeAccount(buyer.publicKey)

	d := boxrecord.Data{
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

	expected := []byte{
		0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x4e,
		0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x21,
		0x13, 0x7a, 0x81, 0x92, 0x56, 0x5e, 0x6c, 0xa2,
		0x35, 0x80, 0xe1, 0x81, 0x59, 0xef, 0x30, 0x73,
		0xf6, 0xe2, 0xfb, 0x8e, 0x7e, 0x9d, 0x31, 0x49,
		0x7e, 0x79, 0xd7, 0x73, 0x1b, 0xa3, 0x74, 0x11,
		0x01, 0x00, 0x00, 0x00, 0x21, 0x13, 0x9f, 0xc4,
		0x86, 0xa2, 0x53, 0x4f, 0x17, 0xe3, 0x67, 0x07,
		0xfa, 0x4b, 0x95, 0x3e, 0x3b, 0x34, 0x00, 0xe2,
		0x72, 0x9f, 0x65, 0x61, 0x16, 0xdd, 0x7b, 0x01,
		0x8d, 0xf3, 0x46, 0x98, 0xbd, 0xc2, 0x00, 0x00,
		0x00, 0x36, 0x00, 0x00, 0x00, 0x05, 0x33, 0x30,
		0x31, 0x32, 0x34, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x07, 0xc0, 0x00, 0x00, 0x00, 0x0b, 0x4c,
		0x61, 0x6d, 0x62, 0x6f, 0x72, 0x67, 0x68, 0x69,
		0x6e, 0x69, 0x00, 0x00, 0x00, 0x0a, 0x64, 0x65,
		0x65, 0x70, 0x20, 0x62, 0x6c, 0x61, 0x63, 0x6b,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x1b, 0x58,
	}

	// test the packer
	packed, err := d.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	if !bytes.Equal(packed, expected) {
		t.Errorf("pack record: %x  expected: %x", packed, expected)
		t.Errorf("*** GENERATED Packed:\n%s", util.FormatBytes("expected", packed))
		t.Fatal("fatal error")
	}

	// check the record type
	if boxrecord.SellOrderDataTag != packed.Type() {
		t.Fatalf("pack record type: %d  expected: %d", packed.Type(), boxrecord.SellOrderDataTag)
	}

	t.Logf("Packed length: %d bytes", len(packed))

	// the price is only a record, never a coin value
	if 0 != d.Payload.CoinValue() {
		t.Errorf("coin value: %d  expected: 0", d.Payload.CoinValue())
	}

	// test the unpacker
	unpacked, err := packed.Unpack(true)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}

	// check that structure is preserved through Pack/Unpack
	if !reflect.DeepEqual(d, *unpacked) {
		t.Fatalf("different, original: %v  recovered: %v", d, *unpacked)
	}

	// check the JSON form
	expectedJSON := fmt.Sprintf(
		`{"proposition":{"seller":%q,"buyer":%q},"payload":{"vin":"30124","year":1984,"model":"Lamborghini","color":"deep black","price":"7000"}}`,
		sellerAccount, buyerAccount)
	convertedJSON, err := json.Marshal(d)
	if nil != err {
		t.Fatalf("marshal json error: %s", err)
	}
	if expectedJSON != string(convertedJSON) {
		t.Errorf("JSON converted: %q", convertedJSON)
		t.Errorf("     expected:  %q", expectedJSON)
	}
}

// test the packing/unpacking of coin box content
//
// ensures that pack->unpack returns the same original value
func TestPackCoinData(t *testing.T) {

	ownerTwoAccount := makeAccount(ownerTwo.publicKey)

	d := boxrecord.Data{
		Proposition: &boxrecord.OwnerProposition{
			Owner: ownerTwoAccount,
		},
		Payload: &boxrecord.CoinData{
			Value: 250,
		},
	}

	expected := []byte{
		0x00, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00, 0x29,
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x21,
		0x13, 0xa1, 0x36, 0x32, 0xd5, 0x42, 0x5a, 0xed,
		0x3a, 0x6b, 0x62, 0xe2, 0xbb, 0x6d, 0xe4, 0xc9,
		0x59, 0x48, 0x41, 0xc1, 0x5b, 0x70, 0x15, 0x69,
		0xec, 0x99, 0x99, 0xdc, 0x20, 0x1c, 0x35, 0xf7,
		0xb3, 0x00, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0xfa,
	}

	// test the packer
	packed, err := d.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	if !bytes.Equal(packed, expected) {
		t.Errorf("pack record: %x  expected: %x", packed, expected)
		t.Errorf("*** GENERATED Packed:\n%s", util.FormatBytes("expected", packed))
		t.Fatal("fatal error")
	}

	// check the record type
	if boxrecord.CoinDataTag != packed.Type() {
		t.Fatalf("pack record type: %d  expected: %d", packed.Type(), boxrecord.CoinDataTag)
	}

	t.Logf("Packed length: %d bytes", len(packed))

	// only coins count towards coin conservation
	if 250 != d.Payload.CoinValue() {
		t.Errorf("coin value: %d  expected: 250", d.Payload.CoinValue())
	}

	// test the unpacker
	unpacked, err := packed.Unpack(true)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}

	// check that structure is preserved through Pack/Unpack
	if !reflect.DeepEqual(d, *unpacked) {
		t.Fatalf("different, original: %v  recovered: %v", d, *unpacked)
	}
}

// test the packing/unpacking of a whole box
//
// the box id is the digest of the packed nonce and content, so any
// nonce or content change must give a new id
func TestPackBox(t *testing.T) {

	ownerTwoAccount := makeAccount(ownerTwo.publicKey)

	box := boxrecord.Box{
		Nonce: 5,
		Data: boxrecord.Data{
			Proposition: &boxrecord.OwnerProposition{
				Owner: ownerTwoAccount,
			},
			Payload: &boxrecord.CoinData{
				Value: 250,
			},
		},
	}

	expected := []byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x05,
		0x00, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00, 0x29,
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x21,
		0x13, 0xa1, 0x36, 0x32, 0xd5, 0x42, 0x5a, 0xed,
		0x3a, 0x6b, 0x62, 0xe2, 0xbb, 0x6d, 0xe4, 0xc9,
		0x59, 0x48, 0x41, 0xc1, 0x5b, 0x70, 0x15, 0x69,
		0xec, 0x99, 0x99, 0xdc, 0x20, 0x1c, 0x35, 0xf7,
		0xb3, 0x00, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0xfa,
	}

	// test the packer
	packed, err := box.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	if !bytes.Equal(packed, expected) {
		t.Errorf("pack record: %x  expected: %x", packed, expected)
		t.Errorf("*** GENERATED Packed:\n%s", util.FormatBytes("expected", packed))
		t.Fatal("fatal error")
	}

	// the id must be stable across packings
	boxId := packed.Id()

	packedAgain, err := box.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	if boxId != packedAgain.Id() {
		t.Errorf("box id: %v  differs from: %v", boxId, packedAgain.Id())
	}

	// a different nonce must give a different id
	bumpedNonce := box
	bumpedNonce.Nonce = 6
	packedBump, err := bumpedNonce.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	if boxId == packedBump.Id() {
		t.Errorf("nonce change kept the same box id: %v", boxId)
	}

	// different content must give a different id
	changedValue := box
	changedValue.Payload = &boxrecord.CoinData{Value: 251}
	packedValue, err := changedValue.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	if boxId == packedValue.Id() {
		t.Errorf("value change kept the same box id: %v", boxId)
	}

	// test the unpacker
	unpacked, err := packed.Unpack(true)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}

	// check that structure is preserved through Pack/Unpack
	if !reflect.DeepEqual(box, *unpacked) {
		t.Fatalf("different, original: %v  recovered: %v", box, *unpacked)
	}

	// a truncated box cannot unpack
	if _, err := packed[:4].Unpack(true); fault.NotBoxPack != err {
		t.Errorf("unpack error: %v  expected: %v", err, fault.NotBoxPack)
	}

	// check the JSON form
	expectedJSON := fmt.Sprintf(
		`{"nonce":"5","proposition":{"owner":%q},"payload":{"value":"250"}}`,
		ownerTwoAccount)
	convertedJSON, err := json.Marshal(box)
	if nil != err {
		t.Fatalf("marshal json error: %s", err)
	}
	if expectedJSON != string(convertedJSON) {
		t.Errorf("JSON converted: %q", convertedJSON)
		t.Errorf("     expected:  %q", expectedJSON)
	}

	// check the packed hex text form survives a round trip
	text, err := packed.MarshalText()
	if nil != err {
		t.Fatalf("marshal text error: %s", err)
	}
	var recovered boxrecord.PackedBox
	err = recovered.UnmarshalText(text)
	if nil != err {
		t.Fatalf("unmarshal text error: %s", err)
	}
	if !bytes.Equal(packed, recovered) {
		t.Errorf("packed text: %x  expected: %x", recovered, packed)
	}
}

// test the pack failure when proposition and payload do not match
func TestPackMismatchedData(t *testing.T) {

	ownerProposition := &boxrecord.OwnerProposition{
		Owner: makeAccount(ownerOne.publicKey),
	}
	orderProposition := &boxrecord.SellOrderProposition{
		Seller: makeAccount(seller.publicKey),
		Buyer:  makeAccount(buyer.publicKey),
	}

	car := &boxrecord.CarData{
		Vin:  "30124",
		Year: 1984,
	}
	order := &boxrecord.SellOrderData{
		Vin:   "30124",
		Year:  1984,
		Price: 7000,
	}
	coin := &boxrecord.CoinData{
		Value: 250,
	}

	// a car box must be locked to a single owner
	carData := boxrecord.Data{
		Proposition: orderProposition,
		Payload:     car,
	}
	if _, err := carData.Pack(); fault.NotOwnerProposition != err {
		t.Errorf("pack error: %v  expected: %v", err, fault.NotOwnerProposition)
	}

	// a coin box must be locked to a single owner
	coinData := boxrecord.Data{
		Proposition: orderProposition,
		Payload:     coin,
	}
	if _, err := coinData.Pack(); fault.NotOwnerProposition != err {
		t.Errorf("pack error: %v  expected: %v", err, fault.NotOwnerProposition)
	}

	// a sell order must be locked to seller and buyer
	orderData := boxrecord.Data{
		Proposition: ownerProposition,
		Payload:     order,
	}
	if _, err := orderData.Pack(); fault.NotSellOrderProposition != err {
		t.Errorf("pack error: %v  expected: %v", err, fault.NotSellOrderProposition)
	}

	// missing parts cannot pack
	empty := boxrecord.Data{}
	if _, err := empty.Pack(); fault.NotBoxPack != err {
		t.Errorf("pack error: %v  expected: %v", err, fault.NotBoxPack)
	}

	missingProposition := boxrecord.Data{
		Payload: car,
	}
	if _, err := missingProposition.Pack(); fault.NotOwnerProposition != err {
		t.Errorf("pack error: %v  expected: %v", err, fault.NotOwnerProposition)
	}
}

// test the pack failure on out of range car fields
func TestPackCarDataFieldLimits(t *testing.T) {

	invalid := []struct {
		car      boxrecord.CarData
		expected error
	}{
		{boxrecord.CarData{Vin: "", Year: 1984}, fault.VinTooShort},
		{boxrecord.CarData{Vin: strings.Repeat("3", 33), Year: 1984}, fault.VinTooLong},
		{boxrecord.CarData{Vin: "30124", Year: 1984, Model: strings.Repeat("m", 65)}, fault.ModelTooLong},
		{boxrecord.CarData{Vin: "30124", Year: 1984, Color: strings.Repeat("c", 33)}, fault.ColorTooLong},
	}

	for i, item := range invalid {
		if _, err := item.car.Pack(); item.expected != err {
			t.Errorf("%d: pack error: %v  expected: %v", i, err, item.expected)
		}
	}

	// limits count runes, not bytes
	unicodeVin := boxrecord.CarData{
		Vin:  strings.Repeat("車", 32),
		Year: 1984,
	}
	if _, err := unicodeVin.Pack(); nil != err {
		t.Errorf("pack error: %s", err)
	}

	// the same limits apply to a sell order
	order := boxrecord.SellOrderData{
		Vin:   strings.Repeat("3", 33),
		Year:  1984,
		Price: 7000,
	}
	if _, err := order.Pack(); fault.VinTooLong != err {
		t.Errorf("pack error: %v  expected: %v", err, fault.VinTooLong)
	}

	// a sell order must carry a non zero price
	freeCar := boxrecord.SellOrderData{
		Vin:   "30124",
		Year:  1984,
		Price: 0,
	}
	if _, err := freeCar.Pack(); fault.InvalidPrice != err {
		t.Errorf("pack error: %v  expected: %v", err, fault.InvalidPrice)
	}
}

// test the unpack failure on malformed box content
func TestUnpackInvalidData(t *testing.T) {

	ownerProposition := &boxrecord.OwnerProposition{
		Owner: makeAccount(ownerOne.publicKey),
	}
	orderProposition := &boxrecord.SellOrderProposition{
		Seller: makeAccount(seller.publicKey),
		Buyer:  makeAccount(buyer.publicKey),
	}

	car := &boxrecord.CarData{
		Vin:   "30124",
		Year:  1984,
		Model: "Lamborghini",
		Color: "deep black",
	}
	order := &boxrecord.SellOrderData{
		Vin:   "30124",
		Year:  1984,
		Model: "Lamborghini",
		Color: "deep black",
		Price: 7000,
	}

	packed, err := (&boxrecord.Data{
		Proposition: ownerProposition,
		Payload:     car,
	}).Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	packedOwner, err := ownerProposition.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	packedOrderProposition, err := orderProposition.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	packedCarFields, err := car.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	packedOrderFields, err := order.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	structural := []struct {
		packed   []byte
		expected error
	}{
		{[]byte{}, fault.NotBoxPack},                       // empty
		{packed[:12], fault.NotBoxPack},                    // truncated proposition
		{append(append([]byte{}, packed...), 0x00), fault.NotBoxPack}, // trailing byte
		{[]byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}, fault.NotBoxPack}, // zero length proposition
	}

	for i, item := range structural {
		_, err := boxrecord.PackedData(item.packed).Unpack(true)
		if item.expected != err {
			t.Errorf("%d: unpack error: %v  expected: %v", i, err, item.expected)
		}
	}

	// an unknown payload tag cannot unpack
	unknownTag := append([]byte{}, packed...)
	unknownTag[3] = 0x04
	if _, err := boxrecord.PackedData(unknownTag).Unpack(true); fault.NotBoxPack != err {
		t.Errorf("unpack error: %v  expected: %v", err, fault.NotBoxPack)
	}

	// a car payload with a sell order proposition cannot unpack
	carWithOrderProposition := util.ToUint32(uint32(boxrecord.CarDataTag))
	carWithOrderProposition = appendBlob(carWithOrderProposition, packedOrderProposition)
	carWithOrderProposition = appendBlob(carWithOrderProposition, packedCarFields)
	if _, err := boxrecord.PackedData(carWithOrderProposition).Unpack(true); fault.NotOwnerProposition != err {
		t.Errorf("unpack error: %v  expected: %v", err, fault.NotOwnerProposition)
	}

	// a sell order payload with an owner proposition cannot unpack
	orderWithOwnerProposition := util.ToUint32(uint32(boxrecord.SellOrderDataTag))
	orderWithOwnerProposition = appendBlob(orderWithOwnerProposition, packedOwner)
	orderWithOwnerProposition = appendBlob(orderWithOwnerProposition, packedOrderFields)
	if _, err := boxrecord.PackedData(orderWithOwnerProposition).Unpack(true); fault.NotSellOrderProposition != err {
		t.Errorf("unpack error: %v  expected: %v", err, fault.NotSellOrderProposition)
	}
}

// test the type to name conversion
func TestRecordName(t *testing.T) {

	items := []struct {
		record interface{}
		name   string
		ok     bool
	}{
		{&boxrecord.CarData{}, "Car", true},
		{boxrecord.CarData{}, "Car", true},
		{&boxrecord.SellOrderData{}, "SellOrder", true},
		{&boxrecord.CoinData{}, "Coin", true},
		{&boxrecord.OwnerProposition{}, "OwnerProposition", true},
		{&boxrecord.SellOrderProposition{}, "SellOrderProposition", true},
		{&boxrecord.SignatureProof{}, "SignatureProof", true},
		{&boxrecord.RoleProof{}, "RoleProof", true},
		{nil, "*unknown*", false},
		{42, "*unknown*", false},
	}

	for i, item := range items {
		name, ok := boxrecord.RecordName(item.record)
		if name != item.name || ok != item.ok {
			t.Errorf("%d: record name: %q/%t  expected: %q/%t", i, name, ok, item.name, item.ok)
		}
	}
}
