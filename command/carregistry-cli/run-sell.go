// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/sci-crypto/carregistryd/command/carregistry-cli/rpccalls"
)

func runSell(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	carId, err := checkCarId(c.String("car"))
	if nil != err {
		return err
	}

	buyer, err := checkAccount(c.String("buyer"), m.testnet, m.config)
	if nil != err {
		return err
	}

	price, err := checkAmount(c.String("price"))
	if nil != err {
		return err
	}

	fee, err := checkFee(c.String("fee"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "car: %s\n", carId)
		fmt.Fprintf(m.e, "buyer: %s\n", buyer)
		fmt.Fprintf(m.e, "price: %d\n", price)
		fmt.Fprintf(m.e, "fee: %d\n", fee)
	}

	ownerKey, err := identityPrivateKey(c, m)
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.testnet, connection(m), m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	sellConfig := &rpccalls.SellData{
		Owner: ownerKey,
		CarId: carId,
		Buyer: buyer,
		Price: price,
		Fee:   fee,
	}

	response, err := client.Sell(sellConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
