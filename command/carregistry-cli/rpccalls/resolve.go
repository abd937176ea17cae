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

// BuyData - data for completing a sell order as the designated buyer
type BuyData struct {
	Buyer *account.PrivateKey
	CarId string
	Fee   uint64
}

// CancelData - data for cancelling a sell order as the seller
type CancelData struct {
	Seller *account.PrivateKey
	CarId  string
	Fee    uint64
}

// ResolveReply - JSON data to output after a sell order resolves
type ResolveReply struct {
	TxId   digest.Digest   `json:"txId"`
	BoxIds []digest.Digest `json:"boxIds"`
}

// Buy - complete a sell order, paying the asking price to the seller
func (client *Client) Buy(buyConfig *BuyData) (*ResolveReply, error) {

	status, err := client.GetCarStatus(&CarStatusData{CarId: buyConfig.CarId})
	if nil != err {
		return nil, err
	}
	if !status.Registered {
		return nil, fault.CarNotFound
	}
	if !status.OnSale || nil == status.Price {
		return nil, fault.SellOrderNotFound
	}

	buyerAccount := buyConfig.Buyer.Account()

	required := *status.Price + buyConfig.Fee
	if required < *status.Price {
		return nil, fault.InvalidAmount
	}

	coins, total, err := client.collectCoins(buyerAccount, required)
	if nil != err {
		return nil, err
	}

	// the sell order box being resolved is always the first input
	inputs := append([]digest.Digest{status.BoxId}, boxIds(coins)...)

	tx := &transactionrecord.Transaction{
		Fee:       buyConfig.Fee,
		Timestamp: uint64(time.Now().Unix()),
		Inputs:    inputs,
		Outputs:   changeOutput(buyerAccount, total-required),
		Info:      &transactionrecord.SellOrderResolve{},
	}

	role := boxrecord.BuyerRole
	err = signTransaction(tx, buyConfig.Buyer, &role)
	if nil != err {
		return nil, err
	}

	reply, err := client.submit(tx)
	if nil != err {
		return nil, err
	}

	// make response
	response := ResolveReply{
		TxId:   reply.TxId,
		BoxIds: reply.BoxIds,
	}

	return &response, nil
}

// Cancel - cancel a sell order, returning the car to the seller
func (client *Client) Cancel(cancelConfig *CancelData) (*ResolveReply, error) {

	status, err := client.GetCarStatus(&CarStatusData{CarId: cancelConfig.CarId})
	if nil != err {
		return nil, err
	}
	if !status.Registered {
		return nil, fault.CarNotFound
	}
	if !status.OnSale {
		return nil, fault.SellOrderNotFound
	}

	sellerAccount := cancelConfig.Seller.Account()

	coins, total, err := client.collectCoins(sellerAccount, cancelConfig.Fee)
	if nil != err {
		return nil, err
	}

	// the sell order box being resolved is always the first input
	inputs := append([]digest.Digest{status.BoxId}, boxIds(coins)...)

	tx := &transactionrecord.Transaction{
		Fee:       cancelConfig.Fee,
		Timestamp: uint64(time.Now().Unix()),
		Inputs:    inputs,
		Outputs:   changeOutput(sellerAccount, total-cancelConfig.Fee),
		Info:      &transactionrecord.SellOrderResolve{},
	}

	role := boxrecord.SellerRole
	err = signTransaction(tx, cancelConfig.Seller, &role)
	if nil != err {
		return nil, err
	}

	reply, err := client.submit(tx)
	if nil != err {
		return nil, err
	}

	// make response
	response := ResolveReply{
		TxId:   reply.TxId,
		BoxIds: reply.BoxIds,
	}

	return &response, nil
}
