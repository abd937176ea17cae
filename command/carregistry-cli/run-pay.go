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

func runPay(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	receiver, err := checkAccount(c.String("receiver"), m.testnet, m.config)
	if nil != err {
		return err
	}

	amount, err := checkAmount(c.String("amount"))
	if nil != err {
		return err
	}

	fee, err := checkFee(c.String("fee"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "receiver: %s\n", receiver)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
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

	payConfig := &rpccalls.PayData{
		Owner:  ownerKey,
		To:     receiver,
		Amount: amount,
		Fee:    fee,
	}

	response, err := client.Pay(payConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
