// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"time"

	"github.com/sci-crypto/carregistryd/account"
	"github.com/sci-crypto/carregistryd/boxrecord"
	"github.com/sci-crypto/carregistryd/digest"
	"github.com/sci-crypto/carregistryd/fault"
	"github.com/sci-crypto/carregistryd/transactionrecord"
)

// PayData - data for a coin transfer request
type PayData struct {
	Owner  *account.PrivateKey
	To     *account.Account
	Amount uint64
	Fee    uint64
}

// PayReply - JSON data to output after the transfer completes
type PayReply struct {
	TxId   digest.Digest   `json:"txId"`
	BoxIds []digest.Digest `json:"boxIds"`
}

// Pay - transfer coin value to another owner
func (client *Client) Pay(payConfig *PayData) (*PayReply, error) {

	if 0 == payConfig.Amount {
		return nil, fault.InvalidAmount
	}

	ownerAccount := payConfig.Owner.Account()

	required := payConfig.Amount + payConfig.Fee
	if required < payConfig.Amount {
		return nil, fault.InvalidAmount
	}

	coins, total, err := client.collectCoins(ownerAccount, required)
	if nil != err {
		return nil, err
	}

	outputs := []boxrecord.Data{
		{
			Proposition: &boxrecord.OwnerProposition{
				Owner: payConfig.To,
			},
			Payload: &boxrecord.CoinData{
				Value: payConfig.Amount,
			},
		},
	}
	outputs = append(outputs, changeOutput(ownerAccount, total-required)...)

	tx := &transactionrecord.Transaction{
		Fee:       payConfig.Fee,
		Timestamp: uint64(time.Now().Unix()),
		Inputs:    boxIds(coins),
		Outputs:   outputs,
		Info:      &transactionrecord.CoinTransfer{},
	}

	err = signTransaction(tx, payConfig.Owner, nil)
	if nil != err {
		return nil, err
	}

	reply, err := client.submit(tx)
	if nil != err {
		return nil, err
	}

	// make response
	response := PayReply{
		TxId:   reply.TxId,
		BoxIds: reply.BoxIds,
	}

	return &response, nil
}
