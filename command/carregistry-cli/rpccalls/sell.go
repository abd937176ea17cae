// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"time"

	"github.com/sci-crypto/carregistryd/account"
	"github.com/sci-crypto/carregistryd/digest"
	"github.com/sci-crypto/carregistryd/fault"
	"github.com/sci-crypto/carregistryd/transactionrecord"
)

// SellData - data for opening a sell order
type SellData struct {
	Owner *account.PrivateKey
	CarId string
	Buyer *account.Account
	Price uint64
	Fee   uint64
}

// SellReply - JSON data to output after the sell order is opened
type SellReply struct {
	TxId   digest.Digest   `json:"txId"`
	BoxIds []digest.Digest `json:"boxIds"`
}

// Sell - open a sell order offering a car to one buyer at a fixed price
func (client *Client) Sell(sellConfig *SellData) (*SellReply, error) {

	status, err := client.GetCarStatus(&CarStatusData{CarId: sellConfig.CarId})
	if nil != err {
		return nil, err
	}
	if !status.Registered {
		return nil, fault.CarNotFound
	}
	if status.OnSale {
		return nil, fault.SellOrderAlreadyExists
	}

	ownerAccount := sellConfig.Owner.Account()

	coins, total, err := client.collectCoins(ownerAccount, sellConfig.Fee)
	if nil != err {
		return nil, err
	}

	// the car box being offered is always the first input
	inputs := append([]digest.Digest{status.BoxId}, boxIds(coins)...)

	tx := &transactionrecord.Transaction{
		Fee:       sellConfig.Fee,
		Timestamp: uint64(time.Now().Unix()),
		Inputs:    inputs,
		Outputs:   changeOutput(ownerAccount, total-sellConfig.Fee),
		Info: &transactionrecord.SellOrderOpen{
			Buyer: sellConfig.Buyer,
			Price: sellConfig.Price,
		},
	}

	err = signTransaction(tx, sellConfig.Owner, nil)
	if nil != err {
		return nil, err
	}

	reply, err := client.submit(tx)
	if nil != err {
		return nil, err
	}

	// make response
	response := SellReply{
		TxId:   reply.TxId,
		BoxIds: reply.BoxIds,
	}

	return &response, nil
}
