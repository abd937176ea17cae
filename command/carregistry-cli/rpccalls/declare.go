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
	"github.com/sci-crypto/carregistryd/transactionrecord"
)

// DeclareData - data for a car declaration request
type DeclareData struct {
	Owner *account.PrivateKey
	Vin   string
	Year  uint64
	Model string
	Color string
	Fee   uint64
}

// DeclareReply - JSON data to output after declaration completes
type DeclareReply struct {
	TxId   digest.Digest           `json:"txId"`
	CarId  boxrecord.CarIdentifier `json:"carId"`
	BoxIds []digest.Digest         `json:"boxIds"`
}

// Declare - register a new car to the signing owner
func (client *Client) Declare(declareConfig *DeclareData) (*DeclareReply, error) {

	ownerAccount := declareConfig.Owner.Account()

	coins, total, err := client.collectCoins(ownerAccount, declareConfig.Fee)
	if nil != err {
		return nil, err
	}

	tx := &transactionrecord.Transaction{
		Fee:       declareConfig.Fee,
		Timestamp: uint64(time.Now().Unix()),
		Inputs:    boxIds(coins),
		Outputs:   changeOutput(ownerAccount, total-declareConfig.Fee),
		Info: &transactionrecord.CarDeclaration{
			Owner: ownerAccount,
			Vin:   declareConfig.Vin,
			Year:  declareConfig.Year,
			Model: declareConfig.Model,
			Color: declareConfig.Color,
		},
	}

	err = signTransaction(tx, declareConfig.Owner, nil)
	if nil != err {
		return nil, err
	}

	reply, err := client.submit(tx)
	if nil != err {
		return nil, err
	}

	carData := boxrecord.CarData{
		Vin:   declareConfig.Vin,
		Year:  declareConfig.Year,
		Model: declareConfig.Model,
		Color: declareConfig.Color,
	}

	// make response
	response := DeclareReply{
		TxId:   reply.TxId,
		CarId:  carData.CarId(),
		BoxIds: reply.BoxIds,
	}

	return &response, nil
}
