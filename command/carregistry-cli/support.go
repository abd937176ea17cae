// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/sci-crypto/carregistryd/account"
)

// identityPrivateKey - obtain the private key of the acting identity
//
// the identity is the global flag, falling back to the default
// identity; the password comes from the global flag or a prompt
func identityPrivateKey(c *cli.Context, m *metadata) (*account.PrivateKey, error) {

	name := c.GlobalString("identity")
	if "" == name {
		name = m.config.DefaultIdentity
	}

	password := c.GlobalString("password")
	if "" == password {
		var err error
		password, err = promptPassword(name)
		if nil != err {
			return nil, err
		}
	}

	private, err := m.config.Private(password, name)
	if nil != err {
		return nil, err
	}

	return private.PrivateKey, nil
}

// connection - the node address selected by the connection offset
func connection(m *metadata) string {
	return m.config.Connections[m.connectionOffset]
}
