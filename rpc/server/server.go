// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/sci-crypto/carregistryd/counter"
	"github.com/sci-crypto/carregistryd/ledger"
	"github.com/sci-crypto/carregistryd/mode"
	"github.com/sci-crypto/carregistryd/ownership"
	"github.com/sci-crypto/carregistryd/rpc/car"
	"github.com/sci-crypto/carregistryd/rpc/node"
	"github.com/sci-crypto/carregistryd/rpc/owner"
	"github.com/sci-crypto/carregistryd/rpc/registry"
	"github.com/sci-crypto/carregistryd/rpc/transaction"
)

// Create - rpc server on which all the services are registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, readOnly bool) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(registry.New(log, mode.Is, ledger.Get(), readOnly))
	_ = server.Register(car.New(log, ledger.Get()))
	_ = server.Register(owner.New(log, ownership.Get()))
	_ = server.Register(node.New(log, start, version, rpcCount))
	_ = server.Register(transaction.New(log, start, ledger.Get()))

	return server
}
