// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package genesis

import (
	"github.com/sci-crypto/carregistryd/account"
	"github.com/sci-crypto/carregistryd/boxrecord"
	"github.com/sci-crypto/carregistryd/chain"
	"github.com/sci-crypto/carregistryd/digest"
	"github.com/sci-crypto/carregistryd/fault"
	"github.com/sci-crypto/carregistryd/ownership"
	"github.com/sci-crypto/carregistryd/storage"
)

// one initial coin box
//
// the fixed nonce makes the box id reproducible on every node
type allotment struct {
	owner string // account in base58
	value uint64 // native coin units
	nonce uint64
}

// allotment for the live chain
var liveNet = []allotment{
	{
		owner: "a6GAxtRdFeUtFXdfVS1SR47ohfdHamYogWNTqgdBBzsmeheDtW",
		value: 1000000000,
		nonce: 0x4c6976652a303031, // "Live*001"
	},
}

// allotment for the test chain
//
// the owners are the published development keypairs so that testing
// wallets hold spendable coins from the start
var testNet = []allotment{
	{
		owner: "eEVYCy1tGqbjXcNHYwsv45N31zm8NzHJdH9NULNUkPqaFkquKF",
		value: 100000000,
		nonce: 0x546573742a303031, // "Test*001"
	},
	{
		owner: "fA9Hk518mJNozbmag3AgQ49QGNm1AM52n4x7zB9R9XtzZxZcqA",
		value: 100000000,
		nonce: 0x546573742a303032, // "Test*002"
	},
	{
		owner: "es6cC2aq7jxKT1pzjdwfi3Q8LLvyaQNWUgJwo1TdaSZMX4Ybv8",
		value: 100000000,
		nonce: 0x546573742a303033, // "Test*003"
	},
	{
		owner: "f9WQMtFnXeZKASkp8tGdZTWEFYmuV3yFaE44BYJ84jNxXfUaKi",
		value: 100000000,
		nonce: 0x546573742a303034, // "Test*004"
	},
}

// allotment for the local chain, same keypairs as the test chain
// but separate nonces so the box ids differ between the two chains
var localNet = []allotment{
	{
		owner: "eEVYCy1tGqbjXcNHYwsv45N31zm8NzHJdH9NULNUkPqaFkquKF",
		value: 100000000,
		nonce: 0x4c6f636c2a303031, // "Locl*001"
	},
	{
		owner: "fA9Hk518mJNozbmag3AgQ49QGNm1AM52n4x7zB9R9XtzZxZcqA",
		value: 100000000,
		nonce: 0x4c6f636c2a303032, // "Locl*002"
	},
	{
		owner: "es6cC2aq7jxKT1pzjdwfi3Q8LLvyaQNWUgJwo1TdaSZMX4Ybv8",
		value: 100000000,
		nonce: 0x4c6f636c2a303033, // "Locl*003"
	},
	{
		owner: "f9WQMtFnXeZKASkp8tGdZTWEFYmuV3yFaE44BYJ84jNxXfUaKi",
		value: 100000000,
		nonce: 0x4c6f636c2a303034, // "Locl*004"
	},
}

// select the allotment table for a chain
func chainAllotments(chainName string) ([]allotment, error) {
	switch chainName {
	case chain.Registry:
		return liveNet, nil
	case chain.Testing:
		return testNet, nil
	case chain.Local:
		return localNet, nil
	default:
		return nil, fault.InvalidChain
	}
}

// build the box record for one allotment
func allotmentBox(a allotment) (*boxrecord.Box, *account.Account, error) {

	owner, err := account.AccountFromBase58(a.owner)
	if nil != err {
		return nil, nil, err
	}

	box := &boxrecord.Box{
		Nonce: a.nonce,
		Data: boxrecord.Data{
			Proposition: &boxrecord.OwnerProposition{
				Owner: owner,
			},
			Payload: &boxrecord.CoinData{
				Value: a.value,
			},
		},
	}
	return box, owner, nil
}

// Allotment - one initial coin box in displayable form
type Allotment struct {
	Owner *account.Account `json:"owner"`
	Value uint64           `json:"value"`
	BoxId digest.Digest    `json:"boxId"`
}

// Allotments - the initial coin boxes of a chain
//
// pure enquiry, no database access; used by the chain-info command
func Allotments(chainName string) ([]Allotment, error) {

	allotments, err := chainAllotments(chainName)
	if nil != err {
		return nil, err
	}

	result := make([]Allotment, 0, len(allotments))

	for _, a := range allotments {

		box, owner, err := allotmentBox(a)
		if nil != err {
			return nil, err
		}

		packed, err := box.Pack()
		if nil != err {
			return nil, err
		}

		result = append(result, Allotment{
			Owner: owner,
			Value: a.value,
			BoxId: packed.Id(),
		})
	}

	return result, nil
}

// Seed - store the initial coin boxes of a chain
//
// call exactly once, when storage initialise reports a brand new
// database; the boxes are indexed like any later box so wallets can
// list and spend them normally
func Seed(chainName string) error {

	allotments, err := chainAllotments(chainName)
	if nil != err {
		return err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	for _, a := range allotments {

		box, owner, err := allotmentBox(a)
		if nil != err {
			trx.Abort()
			return err
		}

		packed, err := box.Pack()
		if nil != err {
			trx.Abort()
			return err
		}

		boxId := packed.Id()
		err = trx.Put(storage.Pool.Boxes, boxId[:], packed)
		if nil != err {
			trx.Abort()
			return err
		}

		ownership.Create(trx, boxId, owner)
	}

	return trx.Commit()
}
