// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/sci-crypto/carregistryd/account"
	"github.com/sci-crypto/carregistryd/boxrecord"
	"github.com/sci-crypto/carregistryd/digest"
	"github.com/sci-crypto/carregistryd/fault"
	"github.com/sci-crypto/carregistryd/ownership"
	"github.com/sci-crypto/carregistryd/rpc/owner"
	"github.com/sci-crypto/carregistryd/transactionrecord"
)

// records fetched per listing call while hunting for coins
const coinBatchSize = 100

// selection stops here so a transaction spending a car or sell
// order box alongside the coins still packs
const maximumCoinInputs = transactionrecord.MaximumInputs - 1

// one spendable coin box
type coinBox struct {
	boxId digest.Digest
	value uint64
}

// collectCoins - select coin boxes of a spender until the required
// amount is covered
//
// returns the selected boxes and their total value, iteration stops as
// soon as the total covers the requirement
func (client *Client) collectCoins(spender *account.Account, required uint64) ([]coinBox, uint64, error) {

	// a zero requirement needs no inputs at all
	if 0 == required {
		return nil, 0, nil
	}

	selected := []coinBox{}
	total := uint64(0)

	start := uint64(0)
loop:
	for {
		ownedArgs := owner.BoxesArguments{
			Owner: spender,
			Start: start,
			Count: coinBatchSize,
		}

		reply := &owner.BoxesReply{}
		err := client.client.Call("Owner.Boxes", ownedArgs, reply)
		if nil != err {
			return nil, 0, err
		}

		if 0 == len(reply.Data) {
			break loop
		}

		var covered bool
		selected, total, covered, err = pickCoins(selected, total, reply.Data, required)
		if nil != err {
			return nil, 0, err
		}
		if covered {
			break loop
		}

		start = reply.Next
	}

	if total < required {
		return nil, 0, fault.InsufficientFunds
	}

	return selected, total, nil
}

// pickCoins - take spendable coins from one listing page
//
// stops as soon as the accumulated total covers the requirement and
// errors when the input limit is reached while still short, the owner
// then has to consolidate coins with a pay to self first
func pickCoins(selected []coinBox, total uint64, page []ownership.Record, required uint64) ([]coinBox, uint64, bool, error) {

	for _, record := range page {
		if ownership.OwnedCoin != record.Item || nil == record.Value {
			continue
		}
		if len(selected) >= maximumCoinInputs {
			return nil, 0, false, fault.TooManyInputBoxes
		}
		selected = append(selected, coinBox{
			boxId: record.BoxId,
			value: *record.Value,
		})
		total += *record.Value
		if total >= required {
			return selected, total, true, nil
		}
	}
	return selected, total, false, nil
}

// input list from selected coin boxes
func boxIds(coins []coinBox) []digest.Digest {
	inputs := make([]digest.Digest, len(coins))
	for i, c := range coins {
		inputs[i] = c.boxId
	}
	return inputs
}

// a coin output returning change to the spender, nil when no change is due
func changeOutput(spender *account.Account, change uint64) []boxrecord.Data {
	if 0 == change {
		return nil
	}
	return []boxrecord.Data{
		{
			Proposition: &boxrecord.OwnerProposition{
				Owner: spender,
			},
			Payload: &boxrecord.CoinData{
				Value: change,
			},
		},
	}
}
