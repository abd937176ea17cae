// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/sci-crypto/carregistryd/account"
	"github.com/sci-crypto/carregistryd/boxrecord"
	"github.com/sci-crypto/carregistryd/command/carregistry-cli/configuration"
	"github.com/sci-crypto/carregistryd/currency"
	"github.com/sci-crypto/carregistryd/digest"
	"github.com/sci-crypto/carregistryd/fault"
)

// the fee charged when a command does not override it
const defaultFee = "0.01"

var (
	ErrRequiredAccount     = fault.InvalidError("account is required")
	ErrRequiredAmount      = fault.InvalidError("amount is required")
	ErrRequiredCarId       = fault.InvalidError("car id is required")
	ErrRequiredCarIdOrVin  = fault.InvalidError("car id or vin is required")
	ErrRequiredConnect     = fault.InvalidError("connect is required")
	ErrRequiredDescription = fault.InvalidError("description is required")
	ErrRequiredIdentity    = fault.InvalidError("identity is required")
	ErrRequiredTxId        = fault.InvalidError("transaction id is required")
	ErrRequiredVin         = fault.InvalidError("vin is required")
	ErrRequiredYear        = fault.InvalidError("year is required")
)

// identity is required, but not checked against the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}

	return name, nil
}

// connect is required
func checkConnect(connect string) (string, error) {
	if "" == connect {
		return "", ErrRequiredConnect
	}

	return connect, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}

	return description, nil
}

// private key is optional, generate a new one when blank
func checkPrivateKey(privateKey string, testnet bool) (string, error) {
	if "" == privateKey {
		newKey, err := account.NewPrivateKey(testnet)
		if nil != err {
			return "", err
		}
		return newKey.String(), nil
	}

	key, err := account.PrivateKeyFromBase58(privateKey)
	if nil != err {
		return "", err
	}
	if testnet != key.IsTesting() {
		return "", fault.WrongNetworkForPrivateKey
	}

	return privateKey, nil
}

// account is an identity name from the config file or a direct base58 account
func checkAccount(name string, testnet bool, config *configuration.Configuration) (*account.Account, error) {
	if "" == name {
		return nil, ErrRequiredAccount
	}

	// identity names take precedence over direct accounts
	acc, err := config.Account(name)
	if nil != err {
		acc, err = account.AccountFromBase58(name)
		if nil != err {
			return nil, err
		}
	}

	if testnet != acc.IsTesting() {
		return nil, fault.WrongNetworkForPublicKey
	}

	return acc, nil
}

// vin is required
func checkVin(vin string) (string, error) {
	if "" == vin {
		return "", ErrRequiredVin
	}

	return vin, nil
}

// year is required and cannot be zero
func checkYear(year uint64) (uint64, error) {
	if 0 == year {
		return 0, ErrRequiredYear
	}

	return year, nil
}

// car id is required and must be valid hex
func checkCarId(carId string) (string, error) {
	if "" == carId {
		return "", ErrRequiredCarId
	}

	one := new(boxrecord.CarIdentifier)
	err := one.UnmarshalText([]byte(carId))
	if nil != err {
		return "", err
	}

	return carId, nil
}

// transaction id is required and must be valid hex
func checkTxId(txId string) (string, error) {
	if "" == txId {
		return "", ErrRequiredTxId
	}

	var one digest.Digest
	err := one.UnmarshalText([]byte(txId))
	if nil != err {
		return "", err
	}

	return txId, nil
}

// amount is required and cannot be zero
func checkAmount(amount string) (uint64, error) {
	if "" == amount {
		return 0, ErrRequiredAmount
	}

	a, err := currency.Parse(amount)
	if nil != err {
		return 0, err
	}
	if 0 == a {
		return 0, fault.InvalidAmount
	}

	return a.Uint64(), nil
}

// fee may be zero but must parse as a currency amount
func checkFee(fee string) (uint64, error) {
	f, err := currency.Parse(fee)
	if nil != err {
		return 0, err
	}

	return f.Uint64(), nil
}

// check if file exists, returns true when the name is a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}
