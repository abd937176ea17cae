// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/sci-crypto/carregistryd/digest"
	"github.com/sci-crypto/carregistryd/fault"
	"github.com/sci-crypto/carregistryd/ledger"
	"github.com/sci-crypto/carregistryd/mode"
	"github.com/sci-crypto/carregistryd/rpc/fixtures"
	"github.com/sci-crypto/carregistryd/rpc/mocks"
	"github.com/sci-crypto/carregistryd/rpc/registry"
	"github.com/sci-crypto/carregistryd/transactionrecord"
)

func isNormal(_ mode.Mode) bool    { return true }
func isNotNormal(_ mode.Mode) bool { return false }

func TestRegistrySubmit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)

	r := registry.New(logger.New(fixtures.LogCategory), isNormal, l, false)

	packed := transactionrecord.Packed{0x01, 0x02, 0x03, 0x04}
	txId := digest.NewDigest(packed)
	boxId := digest.NewDigest([]byte("box"))

	info := ledger.SubmitInfo{
		TxId:   txId,
		BoxIds: []digest.Digest{boxId},
	}

	l.EXPECT().Submit(packed).Return(&info, nil).Times(1)

	arg := registry.SubmitArguments{Payload: "01020304"}

	var reply registry.SubmitReply
	err := r.Submit(&arg, &reply)
	assert.Nil(t, err, "wrong Submit")
	assert.Equal(t, txId, reply.TxId, "wrong tx id")
	assert.Equal(t, 1, len(reply.BoxIds), "wrong box count")
	assert.Equal(t, boxId, reply.BoxIds[0], "wrong box id")
}

func TestRegistrySubmitWhenReadOnly(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)

	r := registry.New(logger.New(fixtures.LogCategory), isNormal, l, true)

	arg := registry.SubmitArguments{Payload: "01020304"}

	var reply registry.SubmitReply
	err := r.Submit(&arg, &reply)
	assert.Equal(t, fault.NotAvailableInReadOnlyMode, err, "wrong error")
}

func TestRegistrySubmitWhenEmptyPayload(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)

	r := registry.New(logger.New(fixtures.LogCategory), isNormal, l, false)

	arg := registry.SubmitArguments{Payload: ""}

	var reply registry.SubmitReply
	err := r.Submit(&arg, &reply)
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}

func TestRegistrySubmitWhenNotNormalMode(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)

	r := registry.New(logger.New(fixtures.LogCategory), isNotNormal, l, false)

	arg := registry.SubmitArguments{Payload: "01020304"}

	var reply registry.SubmitReply
	err := r.Submit(&arg, &reply)
	assert.Equal(t, fault.NotAvailableDuringSynchronise, err, "wrong error")
}

func TestRegistrySubmitWhenLedgerEmpty(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	r := registry.New(logger.New(fixtures.LogCategory), isNormal, nil, false)

	arg := registry.SubmitArguments{Payload: "01020304"}

	var reply registry.SubmitReply
	err := r.Submit(&arg, &reply)
	assert.Equal(t, fault.MissingLedger, err, "wrong error")
}

func TestRegistrySubmitWhenInvalidHex(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)

	r := registry.New(logger.New(fixtures.LogCategory), isNormal, l, false)

	arg := registry.SubmitArguments{Payload: "zz not hex"}

	var reply registry.SubmitReply
	err := r.Submit(&arg, &reply)
	assert.NotNil(t, err, "wrong Submit")
}

func TestRegistrySubmitWhenRejected(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)

	r := registry.New(logger.New(fixtures.LogCategory), isNormal, l, false)

	packed := transactionrecord.Packed{0xff}

	l.EXPECT().Submit(packed).Return(nil, fault.UnknownInputBox).Times(1)

	arg := registry.SubmitArguments{Payload: "ff"}

	var reply registry.SubmitReply
	err := r.Submit(&arg, &reply)
	assert.Equal(t, fault.UnknownInputBox, err, "wrong error")
}
