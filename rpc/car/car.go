// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package car

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/sci-crypto/carregistryd/account"
	"github.com/sci-crypto/carregistryd/boxrecord"
	"github.com/sci-crypto/carregistryd/digest"
	"github.com/sci-crypto/carregistryd/fault"
	"github.com/sci-crypto/carregistryd/ledger"
	"github.com/sci-crypto/carregistryd/rpc/ratelimit"
)

const (
	rateLimitCar = 200
	rateBurstCar = 100
)

// Car - type for the RPC
type Car struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ldgr    ledger.Ledger
}

// StatusArguments - locate a car either by its identity fields or
// directly by its identifier
type StatusArguments struct {
	Vin   string                   `json:"vin"`
	Year  uint64                   `json:"year"`
	Model string                   `json:"model"`
	Color string                   `json:"color"`
	CarId *boxrecord.CarIdentifier `json:"carId,omitempty"`
}

// StatusReply - the live registration state of one car identity
type StatusReply struct {
	Registered bool                    `json:"registered"`
	CarId      boxrecord.CarIdentifier `json:"carId"`
	BoxId      digest.Digest           `json:"boxId"`
	OnSale     bool                    `json:"onSale"`
	Owner      *account.Account        `json:"owner,omitempty"` // the seller while on sale
	Buyer      *account.Account        `json:"buyer,omitempty"` // only while on sale
	Price      *uint64                 `json:"price,omitempty"` // only while on sale
	Car        *boxrecord.CarData      `json:"car,omitempty"`
}

func New(log *logger.L, ldgr ledger.Ledger) *Car {
	return &Car{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitCar, rateBurstCar),
		Ldgr:    ldgr,
	}
}

// Status - query the live state of a car identity
func (car *Car) Status(arguments *StatusArguments, reply *StatusReply) error {

	if err := ratelimit.Limit(car.Limiter); nil != err {
		return err
	}

	log := car.Log
	log.Infof("Car.Status: %+v", arguments)

	if nil == arguments {
		return fault.InvalidItem
	}

	var carId boxrecord.CarIdentifier
	if nil != arguments.CarId {
		carId = *arguments.CarId
	} else if "" != arguments.Vin {
		data := boxrecord.CarData{
			Vin:   arguments.Vin,
			Year:  arguments.Year,
			Model: arguments.Model,
			Color: arguments.Color,
		}
		carId = data.CarId()
	} else {
		return fault.InvalidItem
	}

	if nil == car.Ldgr {
		return fault.MissingLedger
	}

	info, err := car.Ldgr.CarStatus(carId)
	if fault.CarNotFound == err {
		reply.Registered = false
		reply.CarId = carId
		return nil
	}
	if nil != err {
		return err
	}

	reply.Registered = true
	reply.CarId = carId
	reply.BoxId = info.BoxId
	reply.OnSale = info.OnSale
	reply.Owner = info.Owner
	reply.Buyer = info.Buyer
	reply.Price = info.Price
	reply.Car = info.Car

	return nil
}
