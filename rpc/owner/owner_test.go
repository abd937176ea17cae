// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/sci-crypto/carregistryd/account"
	"github.com/sci-crypto/carregistryd/boxrecord"
	"github.com/sci-crypto/carregistryd/digest"
	"github.com/sci-crypto/carregistryd/fault"
	"github.com/sci-crypto/carregistryd/ownership"
	"github.com/sci-crypto/carregistryd/rpc/fixtures"
	"github.com/sci-crypto/carregistryd/rpc/mocks"
	"github.com/sci-crypto/carregistryd/rpc/owner"
)

func TestOwnerBoxes(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	os := mocks.NewMockOwnership(ctl)

	o := owner.New(logger.New(fixtures.LogCategory), os)

	acc := account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: fixtures.OwnerPublicKey,
		},
	}

	arg := owner.BoxesArguments{
		Owner: &acc,
		Start: 5,
		Count: 10,
	}

	carId := boxrecord.NewCarIdentifier([]byte{1, 2, 3, 4})
	value := uint64(42)

	records := []ownership.Record{
		{
			N:     5,
			BoxId: digest.NewDigest([]byte("car box")),
			Item:  ownership.OwnedCar,
			CarId: &carId,
		},
		{
			N:     7,
			BoxId: digest.NewDigest([]byte("coin box")),
			Item:  ownership.OwnedCoin,
			Value: &value,
		},
	}

	os.EXPECT().ListBoxesFor(arg.Owner, arg.Start, arg.Count).Return(records, nil).Times(1)

	var reply owner.BoxesReply
	err := o.Boxes(&arg, &reply)
	assert.Nil(t, err, "wrong Boxes")
	assert.Equal(t, uint64(8), reply.Next, "wrong next")
	assert.Equal(t, 2, len(reply.Data), "wrong record count")
	assert.Equal(t, records[0], reply.Data[0], "wrong car record")
	assert.Equal(t, records[1], reply.Data[1], "wrong coin record")
}

func TestOwnerBoxesWhenNothingOwned(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	os := mocks.NewMockOwnership(ctl)

	o := owner.New(logger.New(fixtures.LogCategory), os)

	acc := account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: fixtures.BuyerPublicKey,
		},
	}

	arg := owner.BoxesArguments{
		Owner: &acc,
		Start: 0,
		Count: 10,
	}

	os.EXPECT().ListBoxesFor(arg.Owner, arg.Start, arg.Count).Return([]ownership.Record{}, nil).Times(1)

	var reply owner.BoxesReply
	err := o.Boxes(&arg, &reply)
	assert.Nil(t, err, "wrong Boxes")
	assert.Equal(t, uint64(0), reply.Next, "wrong next")
	assert.Equal(t, 0, len(reply.Data), "wrong record count")
}

func TestOwnerBoxesWhenInvalidCount(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	os := mocks.NewMockOwnership(ctl)

	o := owner.New(logger.New(fixtures.LogCategory), os)

	acc := account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: fixtures.OwnerPublicKey,
		},
	}

	arg := owner.BoxesArguments{
		Owner: &acc,
		Start: 0,
		Count: 0,
	}

	var reply owner.BoxesReply
	err := o.Boxes(&arg, &reply)
	assert.Equal(t, fault.InvalidCount, err, "wrong error")

	arg.Count = owner.MaximumBoxesCount + 1
	err = o.Boxes(&arg, &reply)
	assert.Equal(t, fault.InvalidCount, err, "wrong error")
}

func TestOwnerBoxesWhenMissingOwner(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	os := mocks.NewMockOwnership(ctl)

	o := owner.New(logger.New(fixtures.LogCategory), os)

	arg := owner.BoxesArguments{
		Owner: nil,
		Start: 0,
		Count: 10,
	}

	var reply owner.BoxesReply
	err := o.Boxes(&arg, &reply)
	assert.Equal(t, fault.InvalidItem, err, "wrong error")
}
