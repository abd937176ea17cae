// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/sci-crypto/carregistryd/chain"
	"github.com/sci-crypto/carregistryd/counter"
	"github.com/sci-crypto/carregistryd/mode"
	"github.com/sci-crypto/carregistryd/rpc/fixtures"
	"github.com/sci-crypto/carregistryd/rpc/node"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	mode.Initialise(chain.Testing)
	defer mode.Finalise()
	mode.Set(mode.Normal)

	c := counter.Counter(0)
	c.Increment()
	c.Increment()

	n := node.New(logger.New(fixtures.LogCategory), time.Now(), "7.7", &c)

	arg := node.InfoArguments{}

	var reply node.InfoReply
	err := n.Info(&arg, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, "Normal", reply.Mode, "wrong mode")
	assert.Equal(t, uint64(2), reply.RPCs, "wrong connection count")
	assert.Equal(t, "7.7", reply.Version, "wrong version")
	assert.NotEmpty(t, reply.Uptime, "wrong uptime")
}
