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

func runDeclare(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	vin, err := checkVin(c.String("vin"))
	if nil != err {
		return err
	}

	year, err := checkYear(c.Uint64("year"))
	if nil != err {
		return err
	}

	model := c.String("model")
	color := c.String("color")

	fee, err := checkFee(c.String("fee"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "vin: %s\n", vin)
		fmt.Fprintf(m.e, "year: %d\n", year)
		fmt.Fprintf(m.e, "model: %s\n", model)
		fmt.Fprintf(m.e, "color: %s\n", color)
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

	declareConfig := &rpccalls.DeclareData{
		Owner: ownerKey,
		Vin:   vin,
		Year:  year,
		Model: model,
		Color: color,
		Fee:   fee,
	}

	response, err := client.Declare(declareConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
