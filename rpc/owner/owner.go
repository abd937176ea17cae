// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/sci-crypto/carregistryd/account"
	"github.com/sci-crypto/carregistryd/fault"
	"github.com/sci-crypto/carregistryd/ownership"
	"github.com/sci-crypto/carregistryd/rpc/ratelimit"
)

// Owner - type for the RPC
type Owner struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Ownership ownership.Ownership
}

const (
	MaximumBoxesCount = 100
	rateLimitOwner    = 200
	rateBurstOwner    = 100
)

// BoxesArguments - arguments for RPC
type BoxesArguments struct {
	Owner *account.Account `json:"owner"`        // base58
	Start uint64           `json:"start,string"` // first record number
	Count int              `json:"count"`        // number of records
}

// BoxesReply - result of owner RPC
type BoxesReply struct {
	Next uint64             `json:"next,string"` // start value for the next call
	Data []ownership.Record `json:"data"`        // list of unspent boxes
}

func New(log *logger.L, os ownership.Ownership) *Owner {
	return &Owner{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitOwner, rateBurstOwner),
		Ownership: os,
	}
}

// Boxes - list unspent boxes belonging to an account
func (owner *Owner) Boxes(arguments *BoxesArguments, reply *BoxesReply) error {

	if err := ratelimit.LimitN(owner.Limiter, arguments.Count, MaximumBoxesCount); nil != err {
		return err
	}

	log := owner.Log
	log.Infof("Owner.Boxes: %+v", arguments)

	if nil == arguments.Owner {
		return fault.InvalidItem
	}

	ownershipData, err := owner.Ownership.ListBoxesFor(arguments.Owner, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	log.Debugf("ownership: %+v", ownershipData)

	reply.Data = ownershipData

	// next possible record number, zero when no records were found
	if n := len(ownershipData); n > 0 {
		reply.Next = ownershipData[n-1].N + 1
	}

	return nil
}
