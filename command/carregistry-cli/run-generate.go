// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/sci-crypto/carregistryd/account"
)

// rawKeyPair - JSON structure for key generation output
type rawKeyPair struct {
	Account    string `json:"account"`
	PrivateKey string `json:"privateKey"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	newKey, err := account.NewPrivateKey(m.testnet)
	if nil != err {
		return err
	}

	raw := rawKeyPair{
		Account:    newKey.Account().String(),
		PrivateKey: newKey.String(),
	}

	if m.verbose {
		fmt.Fprintf(m.e, "rawKeyPair: %#v\n", raw)
	}

	printJson(m.w, raw)
	return nil
}
