// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/sci-crypto/carregistryd/boxrecord"
	"github.com/sci-crypto/carregistryd/rpc/car"
)

// CarStatusData - data for a car status request
//
// either the hex car identifier or the full identity fields select the car
type CarStatusData struct {
	Vin   string
	Year  uint64
	Model string
	Color string
	CarId string // hex car identifier, overrides the identity fields
}

// GetCarStatus - obtain the registration state of one car
func (client *Client) GetCarStatus(statusConfig *CarStatusData) (*car.StatusReply, error) {

	statusArgs := car.StatusArguments{
		Vin:   statusConfig.Vin,
		Year:  statusConfig.Year,
		Model: statusConfig.Model,
		Color: statusConfig.Color,
	}

	if "" != statusConfig.CarId {
		carId := new(boxrecord.CarIdentifier)
		err := carId.UnmarshalText([]byte(statusConfig.CarId))
		if nil != err {
			return nil, err
		}
		statusArgs.CarId = carId
	}

	client.printJson("Car Status Request", statusArgs)

	reply := &car.StatusReply{}
	err := client.client.Call("Car.Status", statusArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Car Status Reply", reply)

	return reply, nil
}
