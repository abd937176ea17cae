// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/hex"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/sci-crypto/carregistryd/digest"
	"github.com/sci-crypto/carregistryd/fault"
	"github.com/sci-crypto/carregistryd/ledger"
	"github.com/sci-crypto/carregistryd/mode"
	"github.com/sci-crypto/carregistryd/rpc/ratelimit"
	"github.com/sci-crypto/carregistryd/transactionrecord"
)

const (
	rateLimitRegistry = 200
	rateBurstRegistry = 100
)

// Registry - type for the RPC
type Registry struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Ldgr         ledger.Ledger
	ReadOnly     bool
}

// SubmitArguments - arguments for Registry.Submit
//
// the payload is a fully signed transaction in its packed binary
// form, hex encoded
type SubmitArguments struct {
	Payload string `json:"payload"`
}

// SubmitReply - result from Registry.Submit
type SubmitReply struct {
	TxId   digest.Digest   `json:"txId"`
	BoxIds []digest.Digest `json:"boxIds"`
}

func New(log *logger.L,
	isNormalMode func(mode.Mode) bool,
	ldgr ledger.Ledger,
	readOnly bool,
) *Registry {
	return &Registry{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitRegistry, rateBurstRegistry),
		IsNormalMode: isNormalMode,
		Ldgr:         ldgr,
		ReadOnly:     readOnly,
	}
}

// Submit - validate and apply a packed transaction
func (registry *Registry) Submit(arguments *SubmitArguments, reply *SubmitReply) error {

	if err := ratelimit.Limit(registry.Limiter); nil != err {
		return err
	}
	if registry.ReadOnly {
		return fault.NotAvailableInReadOnlyMode
	}

	log := registry.Log
	log.Infof("Registry.Submit: %+v", arguments)

	if nil == arguments || 0 == len(arguments.Payload) {
		return fault.MissingParameters
	}

	if !registry.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	if nil == registry.Ldgr {
		return fault.MissingLedger
	}

	packed, err := hex.DecodeString(arguments.Payload)
	if nil != err {
		return err
	}

	info, err := registry.Ldgr.Submit(transactionrecord.Packed(packed))
	if nil != err {
		return err
	}

	log.Debugf("id: %v", info.TxId)

	reply.TxId = info.TxId
	reply.BoxIds = info.BoxIds

	return nil
}
