// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/sci-crypto/carregistryd/digest"
	"github.com/sci-crypto/carregistryd/rpc/transaction"
)

// TransactionStatusData - data for a transaction status request
type TransactionStatusData struct {
	TxId string
}

// GetTransactionStatus - obtain the status of a transaction
func (client *Client) GetTransactionStatus(statusConfig *TransactionStatusData) (*transaction.StatusReply, error) {

	var txId digest.Digest
	err := txId.UnmarshalText([]byte(statusConfig.TxId))
	if nil != err {
		return nil, err
	}

	statusArgs := transaction.Arguments{
		TxId: txId,
	}

	client.printJson("Status Request", statusArgs)

	reply := &transaction.StatusReply{}
	err = client.client.Call("Transaction.Status", statusArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Status Reply", reply)

	return reply, nil
}
