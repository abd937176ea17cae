// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/sci-crypto/carregistryd/account"
	"github.com/sci-crypto/carregistryd/rpc/owner"
)

// OwnedData - data for an ownership request
type OwnedData struct {
	Owner *account.Account
	Start uint64
	Count int
}

// GetOwned - obtain list of owned boxes
func (client *Client) GetOwned(ownedConfig *OwnedData) (*owner.BoxesReply, error) {

	ownedArgs := owner.BoxesArguments{
		Owner: ownedConfig.Owner,
		Start: ownedConfig.Start,
		Count: ownedConfig.Count,
	}

	client.printJson("Owned Request", ownedArgs)

	reply := &owner.BoxesReply{}
	err := client.client.Call("Owner.Boxes", ownedArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Owned Reply", reply)

	return reply, nil
}
