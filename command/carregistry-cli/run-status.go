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

func runStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	carId := c.String("car")
	vin := c.String("vin")

	if "" == carId && "" == vin {
		return ErrRequiredCarIdOrVin
	}

	statusConfig := &rpccalls.CarStatusData{}
	if "" != carId {
		if _, err := checkCarId(carId); nil != err {
			return err
		}
		statusConfig.CarId = carId
	} else {
		year, err := checkYear(c.Uint64("year"))
		if nil != err {
			return err
		}
		statusConfig.Vin = vin
		statusConfig.Year = year
		statusConfig.Model = c.String("model")
		statusConfig.Color = c.String("color")
	}

	if m.verbose {
		fmt.Fprintf(m.e, "car: %s\n", carId)
		fmt.Fprintf(m.e, "vin: %s\n", vin)
	}

	client, err := rpccalls.NewClient(m.testnet, connection(m), m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetCarStatus(statusConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
